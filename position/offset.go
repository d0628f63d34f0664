package position

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// separator inserted between spans by Separate.
const separator = " "

// An OffsetMapper assembles output text from spans of a source text and
// remembers, for every output position, the source offset it originated
// from. It is a two-phase object: an append phase (Add, Separate) is
// closed by the first call to Text, after which only queries (Map) are
// allowed. Calling Add or Separate after Text, or Map before, panics.
//
// All offsets are byte offsets.
type OffsetMapper struct {
	spans     *arraylist.List // of span, in output order
	out       strings.Builder
	text      string
	lastEnd   int  // source end of the last added span
	separated bool // last append was a separator
	final     bool
	cache     int // span index of the last successful Map
}

// A span records that the output bytes [outStart, outStart+length) were
// copied from the source bytes [sourceStart, sourceEnd). Separator spans
// have no source of their own and carry the source end of the span they
// follow.
type span struct {
	outStart  int
	length    int
	sourceStart, sourceEnd int
	separator bool
}

// NewOffsetMapper creates an empty mapper in the append phase.
func NewOffsetMapper() *OffsetMapper {
	return &OffsetMapper{spans: arraylist.New()}
}

// Add appends text to the output, recording that it originates from the
// source byte range [sourceStart, sourceEnd). Source ranges must be
// non-overlapping and in increasing order; violating that, or calling Add
// after Text, panics.
func (m *OffsetMapper) Add(text string, sourceStart, sourceEnd int) {
	if m.final {
		panic("position.OffsetMapper: Add() after Text()")
	}
	if sourceStart > sourceEnd || sourceStart < m.lastEnd {
		panic(fmt.Sprintf("position.OffsetMapper: source span [%d,%d) not monotonic after %d",
			sourceStart, sourceEnd, m.lastEnd))
	}
	m.spans.Add(span{
		outStart:    m.out.Len(),
		length:      len(text),
		sourceStart: sourceStart,
		sourceEnd:   sourceEnd,
	})
	m.out.WriteString(text)
	m.lastEnd = sourceEnd
	m.separated = false
}

// Separate appends a separator to the output. Consecutive separators
// collapse to one, and no separator is prepended to empty output.
// Separate panics after Text.
func (m *OffsetMapper) Separate() {
	if m.final {
		panic("position.OffsetMapper: Separate() after Text()")
	}
	if m.out.Len() == 0 || m.separated {
		return
	}
	m.spans.Add(span{
		outStart:    m.out.Len(),
		length:      len(separator),
		sourceStart: m.lastEnd,
		sourceEnd:   m.lastEnd,
		separator:   true,
	})
	m.out.WriteString(separator)
	m.separated = true
}

// Text closes the append phase and returns the assembled output. Further
// calls return the same text.
func (m *OffsetMapper) Text() string {
	if !m.final {
		m.text = m.out.String()
		m.final = true
	}
	return m.text
}

// Map translates an output byte offset to the source byte offset it
// originated from. Offsets inside a separator map to the source end of
// the preceding span. Map scans the recorded spans linearly, starting at
// the span answering the previous query for sequential access patterns.
//
// Map panics when called before Text, and returns ErrOutOfRange for
// offsets outside [0, len(Text())).
func (m *OffsetMapper) Map(outputOffset int) (int, error) {
	if !m.final {
		panic("position.OffsetMapper: Map() before Text()")
	}
	if outputOffset < 0 || outputOffset >= len(m.text) {
		return 0, fmt.Errorf("output offset %d in text of %d bytes: %w",
			outputOffset, len(m.text), ErrOutOfRange)
	}
	start := 0
	if v, ok := m.spans.Get(m.cache); ok && outputOffset >= v.(span).outStart {
		start = m.cache
	}
	for i := start; i < m.spans.Size(); i++ {
		v, _ := m.spans.Get(i)
		sp := v.(span)
		if outputOffset < sp.outStart || outputOffset >= sp.outStart+sp.length {
			continue
		}
		m.cache = i
		if sp.separator {
			return sp.sourceEnd, nil
		}
		src := sp.sourceStart + (outputOffset - sp.outStart)
		if src > sp.sourceEnd {
			src = sp.sourceEnd // output longer than its source span
		}
		return src, nil
	}
	return 0, fmt.Errorf("output offset %d not covered: %w", outputOffset, ErrOutOfRange)
}
