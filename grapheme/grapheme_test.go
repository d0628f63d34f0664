package grapheme

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/testconfig"
)

func TestGraphemeClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	c1 := LClass
	if c1.String() != "LClass" {
		t.Errorf("String(LClass) should be 'LClass', is %s", c1)
	}
	SetupGraphemeClasses()
	if !unicode.Is(Control, '\t') {
		t.Error("<TAB> should be identified as control character")
	}
	hangsyl := '개'
	if c := ClassForRune(hangsyl); c != LVClass {
		t.Errorf("Hang syllable GAE should be of class LV, is %s", c)
	}
	if c := ClassForRune('́'); c&ExtendClass == 0 {
		t.Errorf("combining acute accent should carry ExtendClass, is %s", c)
	}
	if c := ClassForRune('A'); c != Any {
		t.Errorf("'A' should be of class Any, is %s", c)
	}
	if c := ClassForRune('्'); c&InCBLinkerClass == 0 || c&ExtendClass == 0 {
		t.Errorf("virama should be Extend and an InCB linker, is %s", c)
	}
}

func TestGraphemeBreakSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("Hello")
	pos := NextBreak(text, 0)
	if pos != 1 {
		t.Errorf("expected break after 'H' at 1, is %d", pos)
	}
	if pos = NextBreak(text, 4); pos != 5 {
		t.Errorf("expected final break at 5, is %d", pos)
	}
}

func TestGraphemeBreakCombining(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("éx") // e + combining acute, then x
	if pos := NextBreak(text, 0); pos != 2 {
		t.Errorf("expected 'e'+accent to form one cluster up to 2, break is at %d", pos)
	}
}

func TestGraphemeBreakCRLF(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("a\r\nb")
	if pos := NextBreak(text, 1); pos != 3 {
		t.Errorf("expected CR+LF to be one cluster, break is at %d", pos)
	}
	if pos := NextBreak(text, 0); pos != 1 {
		t.Errorf("expected break between 'a' and CR, break is at %d", pos)
	}
}

func TestGraphemeBreakHangul(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// conjoining jamo L+V+T form a single syllable cluster
	text := []rune{0x1100, 0x1161, 0x11a8, 'x'}
	if pos := NextBreak(text, 0); pos != 3 {
		t.Errorf("expected jamo syllable to span up to 3, break is at %d", pos)
	}
}

func TestGraphemeBreakEmojiZWJ(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("👨‍👩‍👧") // family: man ZWJ woman ZWJ girl
	if pos := NextBreak(text, 0); pos != 5 {
		t.Errorf("expected ZWJ sequence to be one cluster of 5 code-points, break is at %d", pos)
	}
	if n := Length(text, 0); n != 1 {
		t.Errorf("expected ZWJ-joined emoji sequence to have length 1, is %d", n)
	}
}

func TestGraphemeBreakFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// two flags = four regional indicators; breaks after each pair
	text := []rune{0x1f1e9, 0x1f1ea, 0x1f1eb, 0x1f1f7}
	if pos := NextBreak(text, 0); pos != 2 {
		t.Errorf("expected first flag to end at 2, break is at %d", pos)
	}
	if pos := NextBreak(text, 2); pos != 4 {
		t.Errorf("expected second flag to end at 4, break is at %d", pos)
	}
}

func TestGraphemeBreakConjunct(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Devanagari KA + virama + SSA: linked consonants join (GB9c)
	text := []rune{0x0915, 0x094d, 0x0937, 'x'}
	if pos := NextBreak(text, 0); pos != 3 {
		t.Errorf("expected conjunct to span up to 3, break is at %d", pos)
	}
}

func TestGraphemeBreakMidCluster(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// offset marks the start of a cluster: context rules never look at
	// code-points before it
	text := []rune{0x0915, 0x094d, 0x0937} // KA + virama + SSA
	if pos := NextBreak(text, 1); pos != 2 {
		t.Errorf("expected lone virama to end at 2, break is at %d", pos)
	}
	text = []rune{0x1f469, 0x200d, 0x1f469} // woman ZWJ woman
	if pos := NextBreak(text, 1); pos != 2 {
		t.Errorf("expected lone ZWJ to end at 2, break is at %d", pos)
	}
}

func TestGraphemeBreakOffsetPanics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	defer func() {
		if recover() == nil {
			t.Error("expected out-of-range offset to panic")
		}
	}()
	NextBreak([]rune("ab"), 2)
}

func TestGraphemeLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("ab\r\nc")
	if n := Length(text, 0); n != 4 {
		t.Errorf("expected length 4 for 'ab<CRLF>c', is %d", n)
	}
	if n := Length(text, 4); n != 1 {
		t.Errorf("expected length 1 from offset 4, is %d", n)
	}
	if n := Length(nil, 0); n != 0 {
		t.Errorf("expected empty text to have length 0, is %d", n)
	}
}

func TestGraphemeSubstr(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("aéio")
	if s := string(Substr(text, 1, 3)); s != "éi" {
		t.Errorf("expected substr [1:3] = 'éi', is '%s'", s)
	}
	if s := string(Substr(text, 0, Length(text, 0))); s != string(text) {
		t.Errorf("substr over the whole string should round-trip, is '%s'", s)
	}
	if s := string(Substr(text, -2, -1)); s != "i" {
		t.Errorf("expected substr [-2:-1] = 'i', is '%s'", s)
	}
	if s := Substr(text, 2, 2); len(s) != 0 {
		t.Errorf("expected empty substr for start == stop, is '%s'", string(s))
	}
	if s := string(Substr(text, 1, 99)); s != "éio" {
		t.Errorf("expected stop to clamp to the end, is '%s'", s)
	}
}

func TestGraphemeFind(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("abcabc")
	if pos := Find(text, []rune("bc"), 0, 6); pos != 1 {
		t.Errorf("expected first grapheme-aligned match at 1, is %d", pos)
	}
	if pos := Find(text, []rune("bc"), 2, 6); pos != 4 {
		t.Errorf("expected second match at 4, is %d", pos)
	}
	if pos := Find(text, []rune("xy"), 0, 6); pos != -1 {
		t.Errorf("expected no match, is %d", pos)
	}
	// 'e' alone must not match inside the cluster e+accent
	clustered := []rune("xéy")
	if pos := Find(clustered, []rune("e"), 0, 4); pos != -1 {
		t.Errorf("expected match inside a cluster to be rejected, is %d", pos)
	}
	if pos := Find(text, nil, 0, 6); pos != 0 {
		t.Errorf("expected empty needle to match at 0, is %d", pos)
	}
	if pos := Find(text, nil, 2, 6); pos != -1 {
		t.Errorf("expected empty needle not to match at offset 2, is %d", pos)
	}
}

func TestGraphemeString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gstr := StringFromString("개=Hang Syllable GAE")
	if gstr.Len() != 19 {
		t.Errorf("expected grapheme string of length 19, is %d", gstr.Len())
	}
	if gstr.Nth(0) != "개" {
		t.Errorf("expected first grapheme to be '개' (Hang GAE), is '%v'", gstr.Nth(0))
	}
	family := "👨‍👩‍👧"
	gstr = StringFromString(family)
	if gstr.Len() != 1 {
		t.Errorf("expected emoji family to be a single grapheme, is %d", gstr.Len())
	}
	if gstr.Nth(0) != family {
		t.Errorf("expected Nth(0) to return the whole family, is '%v'", gstr.Nth(0))
	}
}
