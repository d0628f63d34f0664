package word

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestWordClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	SetupWordClasses()
	if c := ClassForRune('A'); c != ALetterClass {
		t.Errorf("'A' should be of class ALetterClass, is %s", c)
	}
	if c := ClassForRune('5'); c != NumericClass {
		t.Errorf("'5' should be of class NumericClass, is %s", c)
	}
	if c := ClassForRune('\''); c != Single_QuoteClass {
		t.Errorf("apostrophe should be of class Single_QuoteClass, is %s", c)
	}
	if c := ClassForRune(':'); c != MidLetterClass {
		t.Errorf("colon should be of class MidLetterClass, is %s", c)
	}
	if c := ClassForRune(' '); c != WSegSpaceClass {
		t.Errorf("space should be of class WSegSpaceClass, is %s", c)
	}
	if c := ClassForRune('א'); c != Hebrew_LetterClass {
		t.Errorf("alef should be of class Hebrew_LetterClass, is %s", c)
	}
	if c := ClassForRune('カ'); c != KatakanaClass {
		t.Errorf("KA should be of class KatakanaClass, is %s", c)
	}
}

// enumerate collects all word boundaries of text, including len(text).
func enumerate(text []rune) []int {
	var breaks []int
	for pos := 0; pos < len(text); {
		pos = NextBreak(text, pos)
		breaks = append(breaks, pos)
	}
	return breaks
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWordBreakSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("Hello, World!")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{5, 6, 7, 12, 13}) {
		t.Errorf("expected breaks [5 6 7 12 13] for 'Hello, World!', have %v", breaks)
	}
}

func TestWordBreakApostrophe(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("don't")
	if pos := NextBreak(text, 0); pos != 5 {
		t.Errorf("expected \"don't\" to be a single word, break is at %d", pos)
	}
}

func TestWordBreakMidLetterColon(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("a:b")
	if pos := NextBreak(text, 0); pos != 3 {
		t.Errorf("expected 'a:b' to join across the colon, break is at %d", pos)
	}
	// a trailing colon does not glue
	text = []rune("a: b")
	if pos := NextBreak(text, 0); pos != 1 {
		t.Errorf("expected break after 'a' when colon is not followed by a letter, is %d", pos)
	}
}

func TestWordBreakNumbers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("3.14 12,000")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{4, 5, 11}) {
		t.Errorf("expected breaks [4 5 11], have %v", breaks)
	}
}

func TestWordBreakNewline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("ab\r\ncd")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{2, 4, 6}) {
		t.Errorf("expected breaks [2 4 6] around CRLF, have %v", breaks)
	}
}

func TestWordBreakExtend(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("étude") // combining accent attaches to the word
	if pos := NextBreak(text, 0); pos != 6 {
		t.Errorf("expected accented word to span up to 6, break is at %d", pos)
	}
}

func TestWordBreakHebrewQuote(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("א\"ב") // Hebrew letter, double quote, Hebrew letter
	if pos := NextBreak(text, 0); pos != 3 {
		t.Errorf("expected gershayim word to span up to 3, break is at %d", pos)
	}
}

func TestWordBreakFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune{0x1f1e9, 0x1f1ea, 0x1f1eb, 0x1f1f7}
	if pos := NextBreak(text, 0); pos != 2 {
		t.Errorf("expected first flag to end at 2, break is at %d", pos)
	}
}

func TestWordBreakZWJEmoji(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("👨‍👩x")
	if pos := NextBreak(text, 0); pos != 3 {
		t.Errorf("expected ZWJ emoji sequence to span up to 3, break is at %d", pos)
	}
}

func TestWordBreakWSegSpace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("a  b") // consecutive spaces form one segment
	breaks := enumerate(text)
	if !equalInts(breaks, []int{1, 3, 4}) {
		t.Errorf("expected breaks [1 3 4], have %v", breaks)
	}
}
