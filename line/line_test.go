package line

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestLineClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	SetupLineClasses()
	if c := ClassForRune(' '); c != SPClass {
		t.Errorf("space should be of class SPClass, is %s", c)
	}
	if c := ClassForRune('-'); c != HYClass {
		t.Errorf("hyphen-minus should be of class HYClass, is %s", c)
	}
	if c := ClassForRune('\t'); c != BAClass {
		t.Errorf("tab should be of class BAClass, is %s", c)
	}
	if c := ClassForRune('('); c != OPClass {
		t.Errorf("parenthesis should be of class OPClass, is %s", c)
	}
	if c := ClassForRune('$'); c != PRClass {
		t.Errorf("dollar sign should be of class PRClass, is %s", c)
	}
	if c := ClassForRune('%'); c != POClass {
		t.Errorf("percent sign should be of class POClass, is %s", c)
	}
	if c := ClassForRune('א'); c != HLClass {
		t.Errorf("alef should be of class HLClass, is %s", c)
	}
	if c := ClassForRune('漢'); c != IDClass|eaFlag {
		t.Errorf("HAN should be of class IDClass|ea, is %s", c)
	}
	if c := ClassForRune(0x3063); c&NSClass == 0 {
		t.Errorf("small TSU should carry NSClass, is %s", c)
	}
	if c := ClassForRune(0x201c); c&(QUClass|piFlag) != QUClass|piFlag {
		t.Errorf("left double quote should be of class QUClass|pi, is %s", c)
	}
}

// enumerate collects all line break opportunities of text, including
// len(text).
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

func TestLineBreakSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("The quick fox")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{4, 10, 13}) {
		t.Errorf("expected breaks after the spaces, have %v", breaks)
	}
}

func TestLineBreakHyphen(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("foo-bar baz")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{4, 8, 11}) {
		t.Errorf("expected a break opportunity after the hyphen, have %v", breaks)
	}
}

func TestLineBreakMandatory(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("line one\nline two")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{5, 9, 14, 17}) {
		t.Errorf("expected a mandatory break after the newline, have %v", breaks)
	}
}

func TestLineBreakClosing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("(see note)")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{5, 10}) {
		t.Errorf("expected no break before the closing parenthesis, have %v", breaks)
	}
}

func TestLineBreakNumbers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("it costs $3.14 now")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{3, 9, 15, 18}) {
		t.Errorf("expected '$3.14' to stay unbroken, have %v", breaks)
	}
}

func TestLineBreakCJK(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("漢字と仮名")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected a break opportunity after every ideograph, have %v", breaks)
	}
}

func TestLineBreakSmallKana(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("ウィキ")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{2, 3}) {
		t.Errorf("expected no break before the small kana, have %v", breaks)
	}
}

func TestLineBreakFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("🇩🇪🇫🇷") // two regional indicator pairs
	breaks := enumerate(text)
	if !equalInts(breaks, []int{2, 4}) {
		t.Errorf("expected breaks between flags only, have %v", breaks)
	}
}

func TestLineBreakEmojiZWJ(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune{0x1f468, 0x200d, 0x1f469} // man ZWJ woman
	if n := NextBreak(text, 0); n != 3 {
		t.Errorf("expected ZWJ sequence to stay unbroken, break at %d", n)
	}
}

func TestLineBreakGlue(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if n := NextBreak([]rune("a b"), 0); n != 3 {
		t.Errorf("expected NBSP to glue, break at %d", n)
	}
	if n := NextBreak([]rune("a​b"), 0); n != 2 {
		t.Errorf("expected a break after ZERO WIDTH SPACE, break at %d", n)
	}
}

func TestLineBreakQuotes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("say “hello world” now")
	breaks := enumerate(text)
	if !equalInts(breaks, []int{4, 11, 18, 21}) {
		t.Errorf("expected the quotes to glue to their words, have %v", breaks)
	}
}

func TestNextHardBreak(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if n := NextHardBreak([]rune("a\nb"), 0); n != 2 {
		t.Errorf("expected hard break at 2, have %d", n)
	}
	if n := NextHardBreak([]rune("a\r\nb"), 0); n != 3 {
		t.Errorf("expected CR LF to count as one separator, have break at %d", n)
	}
	if n := NextHardBreak([]rune("abc"), 0); n != 3 {
		t.Errorf("expected end of text without separator, have %d", n)
	}
	if n := NextHardBreak([]rune("a b"), 0); n != 2 {
		t.Errorf("expected hard break after LINE SEPARATOR, have %d", n)
	}
}

func TestLineBreakPanics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	defer func() {
		if recover() == nil {
			t.Errorf("expected out-of-range offset to panic, did not")
		}
	}()
	NextBreak([]rune("ab"), 2)
}

func TestHardBreakPanics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	defer func() {
		if recover() == nil {
			t.Errorf("expected negative offset to panic, did not")
		}
	}()
	NextHardBreak([]rune("ab"), -1)
}
