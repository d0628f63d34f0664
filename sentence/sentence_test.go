package sentence

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestSentenceClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	SetupSentenceClasses()
	if c := ClassForRune('.'); c != ATermClass {
		t.Errorf("'.' should be of class ATermClass, is %s", c)
	}
	if c := ClassForRune('!'); c != STermClass {
		t.Errorf("'!' should be of class STermClass, is %s", c)
	}
	if c := ClassForRune('a'); c != LowerClass {
		t.Errorf("'a' should be of class LowerClass, is %s", c)
	}
	if c := ClassForRune('A'); c != UpperClass {
		t.Errorf("'A' should be of class UpperClass, is %s", c)
	}
	if c := ClassForRune(')'); c != CloseClass {
		t.Errorf("')' should be of class CloseClass, is %s", c)
	}
	if c := ClassForRune(' '); c != SpClass {
		t.Errorf("space should be of class SpClass, is %s", c)
	}
	if c := ClassForRune('漢'); c != OLetterClass {
		t.Errorf("ideograph should be of class OLetterClass, is %s", c)
	}
}

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

func TestSentenceBreakSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("One. Two.")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{5, 9}) {
		t.Errorf("expected breaks [5 9] for 'One. Two.', have %v", breaks)
	}
}

func TestSentenceBreakExclamation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("Hello! A new sentence.")
	if pos := NextBreak(text, 0); pos != 7 {
		t.Errorf("expected first sentence to end at 7, break is at %d", pos)
	}
}

func TestSentenceBreakAbbreviation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// dot followed by a lower-case continuation does not end the sentence
	text := []rune("i.e. more words")
	if pos := NextBreak(text, 0); pos != len(text) {
		t.Errorf("expected abbreviation not to end the sentence, break is at %d", pos)
	}
}

func TestSentenceBreakNumber(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("It costs 3.14 dollars today")
	if pos := NextBreak(text, 0); pos != len(text) {
		t.Errorf("expected decimal dot not to end the sentence, break is at %d", pos)
	}
}

func TestSentenceBreakUpperAfterDot(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// SB7: letter-dot-letter as in initials does not break
	text := []rune("J.R.R. wrote")
	if pos := NextBreak(text, 0); pos != len(text) {
		t.Errorf("expected initials not to end the sentence, break is at %d", pos)
	}
}

func TestSentenceBreakQuote(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("He said \"Yes.\" Then left.")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{15, 25}) {
		t.Errorf("expected breaks [15 25], have %v", breaks)
	}
}

func TestSentenceBreakParagraphSep(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("First line\r\nsecond line")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{12, 23}) {
		t.Errorf("expected breaks [12 23] around CRLF, have %v", breaks)
	}
}

func TestSentenceBreakSContinue(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// a comma after a terminator continues the sentence
	text := []rune("Wait., then go")
	if pos := NextBreak(text, 0); pos != len(text) {
		t.Errorf("expected SContinue to glue the sentence, break is at %d", pos)
	}
}
