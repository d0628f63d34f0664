package position

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrOutOfRange flags a query position outside the mapped buffer.
// Positions are never silently clamped.
var ErrOutOfRange = errors.New("position out of range")

// ErrMidSequence flags a byte offset pointing into the middle of a UTF-8
// byte sequence, i.e. not at a code-point start.
var ErrMidSequence = errors.New("byte offset inside UTF-8 sequence")

// A Mapper translates byte offsets into a buffer to code-point indexes.
// It remembers its last two answers: a query at or after one of them
// resumes scanning there, a query before both restarts from the buffer
// start.
type Mapper struct {
	buf           []byte
	current, last mark
}

// A mark pairs a byte offset with the code-point index at that offset.
type mark struct {
	bytePos int
	cpPos   int
}

// NewMapper creates a mapper from byte offsets into b to code-point
// indexes. The mapper keeps a reference to b; the buffer must not change
// during the mapper's lifetime.
func NewMapper(b []byte) *Mapper {
	return &Mapper{buf: b}
}

// Map translates a byte offset to the index of the code-point starting
// there. byteOffset may equal len(b), mapping to the total code-point
// count. Offsets outside [0, len(b)] return ErrOutOfRange, offsets inside
// a multi-byte sequence return ErrMidSequence.
func (m *Mapper) Map(byteOffset int) (int, error) {
	if byteOffset < 0 || byteOffset > len(m.buf) {
		return 0, fmt.Errorf("byte offset %d in buffer of %d bytes: %w",
			byteOffset, len(m.buf), ErrOutOfRange)
	}
	from := mark{} // restart from the buffer start
	if byteOffset >= m.current.bytePos {
		from = m.current
	} else if byteOffset >= m.last.bytePos {
		from = m.last
	}
	for from.bytePos < byteOffset {
		_, size := utf8.DecodeRune(m.buf[from.bytePos:])
		if from.bytePos+size > byteOffset {
			return 0, fmt.Errorf("byte offset %d: %w", byteOffset, ErrMidSequence)
		}
		from.bytePos += size
		from.cpPos++
	}
	m.last = m.current
	m.current = from
	return from.cpPos, nil
}

// A ReverseMapper translates code-point indexes into a string to byte
// offsets, the inverse of Mapper, with the same two-entry query cache.
type ReverseMapper struct {
	s             string
	current, last mark
}

// NewReverseMapper creates a mapper from code-point indexes into s to
// byte offsets.
func NewReverseMapper(s string) *ReverseMapper {
	return &ReverseMapper{s: s}
}

// Map translates a code-point index to the byte offset where that
// code-point starts. cpIndex may equal the total code-point count,
// mapping to len(s). Indexes outside that range return ErrOutOfRange.
func (m *ReverseMapper) Map(cpIndex int) (int, error) {
	if cpIndex < 0 {
		return 0, fmt.Errorf("code-point index %d: %w", cpIndex, ErrOutOfRange)
	}
	from := mark{}
	if cpIndex >= m.current.cpPos {
		from = m.current
	} else if cpIndex >= m.last.cpPos {
		from = m.last
	}
	for from.cpPos < cpIndex {
		if from.bytePos >= len(m.s) {
			return 0, fmt.Errorf("code-point index %d past end of text: %w",
				cpIndex, ErrOutOfRange)
		}
		_, size := utf8.DecodeRuneInString(m.s[from.bytePos:])
		from.bytePos += size
		from.cpPos++
	}
	m.last = m.current
	m.current = from
	return from.bytePos, nil
}
