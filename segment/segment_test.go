package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/sentence"
	"github.com/npillmayer/textops/word"
)

func TestSegmenterWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	seg := NewSegmenter(nil) // will break into words
	seg.Init(strings.NewReader("Hello World!"))
	var segments []string
	for seg.Next() {
		segments = append(segments, seg.Text())
	}
	if err := seg.Err(); err != nil {
		t.Errorf("expected iteration to finish cleanly, is %v", err)
	}
	if len(segments) != 4 { // "Hello", " ", "World", "!"
		t.Errorf("expected 4 word segments, have %d: %v", len(segments), segments)
	}
}

func TestSegmenterGraphemes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	seg := NewSegmenter(grapheme.NextBreak)
	seg.Init(strings.NewReader("ab\r\nc"))
	n := 0
	for seg.Next() {
		n++
	}
	if n != 4 { // "a", "b", "\r\n", "c"
		t.Errorf("expected 4 grapheme segments, have %d", n)
	}
}

func TestSegmenterSentences(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	seg := NewSegmenter(sentence.NextBreak)
	seg.Init(strings.NewReader("One. Two."))
	var segments []string
	for seg.Next() {
		segments = append(segments, seg.Text())
	}
	if len(segments) != 2 || segments[0] != "One. " || segments[1] != "Two." {
		t.Errorf("expected two sentences, have %v", segments)
	}
}

// Segments match a direct NextBreak loop over the same text.
func TestSegmenterEquivalence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	input := "don't say \"no\" twice"
	text := []rune(input)
	seg := NewSegmenter(word.NextBreak)
	seg.Init(strings.NewReader(input))
	pos := 0
	for seg.Next() {
		end := word.NextBreak(text, pos)
		if got := string(text[pos:end]); got != seg.Text() {
			t.Errorf("expected segment %q at %d, is %q", got, pos, seg.Text())
		}
		if seg.Pos() != pos {
			t.Errorf("expected segment start %d, is %d", pos, seg.Pos())
		}
		pos = end
	}
	if pos != len(text) {
		t.Errorf("expected segmenter to consume all %d code-points, stopped at %d",
			len(text), pos)
	}
}

func TestSegmenterErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	seg := NewSegmenter(nil)
	if seg.Next() {
		t.Errorf("expected Next() on uninitialized segmenter to fail")
	}
	if seg.Err() != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, is %v", seg.Err())
	}
	seg = NewSegmenter(nil)
	seg.Init(strings.NewReader("overlong"))
	seg.SetMaxSegmentLen(3)
	if seg.Next() {
		t.Errorf("expected overlong segment to fail")
	}
	if seg.Err() != ErrTooLong {
		t.Errorf("expected ErrTooLong, is %v", seg.Err())
	}
}

func ExampleSegmenter() {
	seg := NewSegmenter(nil) // will break into words
	seg.Init(strings.NewReader("Hello World"))
	for seg.Next() {
		fmt.Printf("segment: '%s'\n", seg.Text())
	}
	// Output:
	// segment: 'Hello'
	// segment: ' '
	// segment: 'World'
}
