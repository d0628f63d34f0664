package fold

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestFoldSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune("Hello World"))); folded != "hello world" {
		t.Errorf("expected 'hello world', is %q", folded)
	}
}

func TestFoldExpansion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune("Straße"))); folded != "strasse" {
		t.Errorf("expected sharp s to fold to 'ss', is %q", folded)
	}
	if folded := string(Fold([]rune("ﬃn"))); folded != "ffin" {
		t.Errorf("expected ligature to fold to 'ffi', is %q", folded)
	}
}

func TestFoldFinalSigma(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune("ὀδός"))); folded != "ὀδόσ" {
		t.Errorf("expected final sigma to fold to sigma, is %q", folded)
	}
}

func TestFoldAliasing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("already folded")
	if folded := Fold(text); &folded[0] != &text[0] {
		t.Errorf("expected unchanged input to be returned without a copy")
	}
	text = []rune("schön") // non-ASCII, but nothing to fold
	if folded := Fold(text); &folded[0] != &text[0] {
		t.Errorf("expected unchanged non-ASCII input to be returned without a copy")
	}
}

func TestFoldIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	inputs := []string{"Hello", "Straße", "ΣΊΣΥΦΟΣ", "MÄRZ", "ﬁle"}
	for _, input := range inputs {
		once := Fold([]rune(input))
		twice := Fold(once)
		if string(once) != string(twice) {
			t.Errorf("folding %q twice gives %q, testing once gives %q",
				input, string(twice), string(once))
		}
	}
}

func TestFoldString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := FoldString("Straße"); folded != "strasse" {
		t.Errorf("expected 'strasse', is %q", folded)
	}
	s := "no change here"
	if folded := FoldString(s); folded != s {
		t.Errorf("expected unchanged string, is %q", folded)
	}
}

func TestFoldGreekExpansion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// iota subscript and dialytika+tonos expand under full folding
	if folded := string(Fold([]rune{0x1f80})); folded != "ἀι" {
		t.Errorf("expected alpha+ypogegrammeni to fold to alpha iota, is %q", folded)
	}
	if folded := string(Fold([]rune{0x0390})); folded != "ΐ" {
		t.Errorf("expected iota dialytika tonos to fold to three code-points, is %q", folded)
	}
	if folded := string(Fold([]rune{0x1fb7})); folded != "ᾶι" {
		t.Errorf("expected alpha perispomeni ypogegrammeni to expand, is %q", folded)
	}
	if folded := string(Fold([]rune{0x1ffc})); folded != "ωι" {
		t.Errorf("expected omega prosgegrammeni to fold to omega iota, is %q", folded)
	}
}

func TestFoldArmenian(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune{0x0587})); folded != "եւ" {
		t.Errorf("expected ech-yiwn ligature to fold to ech yiwn, is %q", folded)
	}
	if folded := string(Fold([]rune{0xfb13})); folded != "մն" {
		t.Errorf("expected men-now ligature to fold to men now, is %q", folded)
	}
}

func TestFoldLatinExpansion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune{0x1e96})); folded != "ẖ" {
		t.Errorf("expected h with line below to fold to h + mark, is %q", folded)
	}
	if folded := string(Fold([]rune{0x1e9a})); folded != "aʾ" {
		t.Errorf("expected a with right half ring to expand, is %q", folded)
	}
}

func TestFoldCyrillicVariants(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if folded := string(Fold([]rune{0x1c80})); folded != "в" {
		t.Errorf("expected rounded ve to fold to ve, is %q", folded)
	}
}

func TestFoldCherokee(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Cherokee folds toward the uppercase letters
	if folded := Fold([]rune{0xab70}); folded[0] != 0x13a0 {
		t.Errorf("expected small a to fold to capital a, is %+q", folded)
	}
	if folded := Fold([]rune{0x13f8}); folded[0] != 0x13f0 {
		t.Errorf("expected small ye to fold to capital ye, is %+q", folded)
	}
	text := []rune{0x13a0, 0x13f0}
	if folded := Fold(text); &folded[0] != &text[0] {
		t.Errorf("expected capital Cherokee to be returned without a copy")
	}
}

func TestStripAccents(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bare := string(Strip([]rune("café"))); bare != "cafe" {
		t.Errorf("expected 'cafe', is %q", bare)
	}
	if bare := string(Strip([]rune("café"))); bare != "cafe" {
		t.Errorf("expected combining accent to be dropped, is %q", bare)
	}
	if bare := string(Strip([]rune("Ærø"))); bare != "AEro" {
		t.Errorf("expected 'AEro', is %q", bare)
	}
}

func TestStripDecomposition(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// composed letters outside the table decompose at lookup time:
	// a with caron, A with ring below, e with circumflex and dot below,
	// Cyrillic short i, I with dot above. Hangul syllables carry no marks
	// and stay untouched.
	cases := []struct{ text, bare string }{
		{"ǎ", "a"},
		{"Ḁ", "A"},
		{"ệ", "e"},
		{"й", "и"},
		{"İ", "I"},
		{"가", "가"},
	}
	for _, c := range cases {
		if bare := string(Strip([]rune(c.text))); bare != c.bare {
			t.Errorf("expected %q to strip to %q, is %q", c.text, c.bare, bare)
		}
	}
}

func TestStripPunctuation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bare := string(Strip([]rune("Hello, world!"))); bare != "Hello world" {
		t.Errorf("expected punctuation to be dropped, is %q", bare)
	}
}

func TestStripExpansion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// output may be longer than the input in code points
	if bare := string(Strip([]rune("5㎈"))); bare != "5cal" {
		t.Errorf("expected SQUARE CAL to expand, is %q", bare)
	}
	if bare := string(Strip([]rune{0x3389})); bare != "kcal" {
		t.Errorf("expected SQUARE KCAL to expand, is %q", bare)
	}
	if bare := string(Strip([]rune{0x33d1})); bare != "ln" {
		t.Errorf("expected SQUARE LN to expand, is %q", bare)
	}
}

func TestStripAliasing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("nothing to do")
	if bare := Strip(text); &bare[0] != &text[0] {
		t.Errorf("expected unchanged input to be returned without a copy")
	}
}

func TestStripIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	inputs := []string{"café!", "Œuvre", "naïve, no?", "þorn"}
	for _, input := range inputs {
		once := Strip([]rune(input))
		twice := Strip(once)
		if string(once) != string(twice) {
			t.Errorf("stripping %q twice gives %q, stripping once gives %q",
				input, string(twice), string(once))
		}
	}
}

func TestStripString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bare := StripString("l'élève"); bare != "leleve" {
		t.Errorf("expected 'leleve', is %q", bare)
	}
}
