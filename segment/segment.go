/*
Package segment provides scanner-style iteration over text segments.

Content

A Segmenter reads text from an io.Reader and steps through its segments,
one per call to Next, in the manner of bufio.Scanner. What constitutes a
segment is defined by a break function: any of the NextBreak functions of
the grapheme, word, sentence and line packages fits, as does any custom
function with the same contract. The default break function segments into
words.

Typical Usage

  seg := segment.NewSegmenter(word.NextBreak)
  seg.Init(strings.NewReader("Hello World!"))
  for seg.Next() {
     fmt.Println(seg.Text())
  }
  if err := seg.Err(); err != nil {
     ...
  }

Tokenizers for text indexing use this to iterate words or sentences of a
document without driving the break functions by hand.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"errors"
	"io"

	"github.com/npillmayer/textops/internal/tracing"
	"github.com/npillmayer/textops/word"
)

// A BreakFunc locates the boundary following the code-point at offset.
// The NextBreak functions of the boundary packages satisfy this contract:
// the returned position is strictly greater than offset and at most
// len(text).
type BreakFunc func(text []rune, offset int) int

// MaxSegmentLen is the default upper bound for the length of a single
// segment, in code-points.
const MaxSegmentLen = 64 * 1024

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")

// ErrTooLong flags a segment exceeding the segmenter's maximum length.
var ErrTooLong = errors.New("segment too long for segmenter")

// A Segmenter steps through the segments of a text. Clients advance with
// Next and read the current segment with Bytes or Text. Segmenters are
// confined to a single caller; they are not safe for concurrent use.
type Segmenter struct {
	breakFn BreakFunc
	text    []rune
	pos     int // start of the next segment
	from    int // start of the current segment
	to      int // end of the current segment
	maxLen  int
	err     error
	inited  bool
}

// NewSegmenter creates a new Segmenter by providing breaking logic. A nil
// breakFn results in breaking into words.
//
// Before using newly created segmenters, clients will have to call
// Init(...) on them, i.e. initialize them for a reader.
func NewSegmenter(breakFn BreakFunc) *Segmenter {
	if breakFn == nil {
		breakFn = word.NextBreak
	}
	return &Segmenter{breakFn: breakFn, maxLen: MaxSegmentLen}
}

// Init initializes a Segmenter with an io.Reader to read from. s is
// either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
//
// The reader is drained: the break rules need lookahead over the
// complete text.
func (s *Segmenter) Init(reader io.Reader) error {
	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.text = []rune(string(b))
	s.pos, s.from, s.to = 0, 0, 0
	s.err = nil
	s.inited = true
	tracing.P("length", len(s.text)).Debugf("segmenter initialized")
	return nil
}

// SetMaxSegmentLen changes the upper bound for the length of a single
// segment, in code-points.
func (s *Segmenter) SetMaxSegmentLen(n int) {
	s.maxLen = n
}

// Next advances the segmenter to the next segment, which will then be
// available through Bytes or Text. It returns false at the end of the
// text or on error; after false, Err tells the two cases apart.
func (s *Segmenter) Next() bool {
	if !s.inited {
		s.err = ErrNotInitialized
		return false
	}
	if s.err != nil || s.pos >= len(s.text) {
		return false
	}
	end := s.breakFn(s.text, s.pos)
	if end-s.pos > s.maxLen {
		s.err = ErrTooLong
		return false
	}
	s.from, s.to = s.pos, end
	s.pos = end
	return true
}

// Bytes returns the current segment, UTF-8 encoded.
func (s *Segmenter) Bytes() []byte {
	return []byte(string(s.text[s.from:s.to]))
}

// Text returns the current segment as a string.
func (s *Segmenter) Text() string {
	return string(s.text[s.from:s.to])
}

// Runes returns the current segment as a slice of the segmenter's text.
// Callers must not modify it.
func (s *Segmenter) Runes() []rune {
	return s.text[s.from:s.to]
}

// Pos returns the code-point position of the current segment's start.
func (s *Segmenter) Pos() int {
	return s.from
}

// Err returns the first error encountered, or nil if iteration stopped
// at the end of the text.
func (s *Segmenter) Err() error {
	return s.err
}
