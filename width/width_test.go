package width

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05D0, // HEBREW LETTER ALEF               => N
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
		0xFF61, // HALFWIDTH IDEOGRAPHIC FULL STOP  => H
	}
	cats := [...]Category{Na, N, A, W, F, H}
	for i, c := range chars {
		cat := WidthCategory(c)
		if cat != cats[i] {
			t.Errorf("expected width category of %#U to be %s, is %s", c, cats[i], cat)
		}
	}
}

func TestWidthSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if w := Width([]rune("A"), 0); w != 1 {
		t.Errorf("expected width of 'A' to be 1, is %d", w)
	}
	if w := Width([]rune("漢"), 0); w != 2 {
		t.Errorf("expected width of '漢' to be 2, is %d", w)
	}
	if w := Width([]rune("A漢B"), 0); w != 4 {
		t.Errorf("expected width of 'A漢B' to be 4, is %d", w)
	}
	if w := Width([]rune("A漢B"), 1); w != 3 {
		t.Errorf("expected width from offset 1 to be 3, is %d", w)
	}
	if w := Width(nil, 0); w != 0 {
		t.Errorf("expected width of empty text to be 0, is %d", w)
	}
}

func TestWidthCombining(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if w := Width([]rune("é"), 0); w != 1 {
		t.Errorf("expected accented 'e' to occupy one column, is %d", w)
	}
}

func TestWidthZWJSequence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// man ZWJ woman: the joined pictograph renders over the first one
	text := []rune("👨‍👩")
	if w := Width(text, 0); w != 2 {
		t.Errorf("expected ZWJ emoji sequence to occupy two columns, is %d", w)
	}
}

func TestWidthInvalid(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if w := Width([]rune{'a', 0x0007}, 0); w != -1 {
		t.Errorf("expected width of text with BEL to be -1, is %d", w)
	}
	if w := Width([]rune{0xdc00}, 0); w != -1 {
		t.Errorf("expected width of a lone surrogate to be -1, is %d", w)
	}
}

func TestEnvLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	ctx := ContextFromEnvironment()
	if ctx == nil {
		t.Fatalf("context from environment is nil, should not")
	}
	t.Logf("user environment has locale '%s'", ctx.Locale)
}

func TestContextResolve(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// DIVIDES is ambiguous: wide in East Asian context, narrow otherwise
	if cat := EastAsianContext.Resolve(0x2223); cat != W {
		t.Errorf("expected ambiguous char to resolve to W, is %s", cat)
	}
	if cat := LatinContext.Resolve(0x2223); cat != Na {
		t.Errorf("expected ambiguous char to resolve to Na, is %s", cat)
	}
}
