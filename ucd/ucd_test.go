package ucd

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestGeneralCategory(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if c := GeneralCategory('A'); c&Lu == 0 {
		t.Errorf("'A' should be of category Lu, is %v", c.Names())
	}
	if c := GeneralCategory('5'); c&Nd == 0 {
		t.Errorf("'5' should be of category Nd, is %v", c.Names())
	}
	if c := GeneralCategory('€'); c&Sc == 0 {
		t.Errorf("euro sign should be of category Sc, is %v", c.Names())
	}
	if c := GeneralCategory('漢'); c&Lo == 0 || c&Wide == 0 {
		t.Errorf("HAN should be a wide letter, is %v", c.Names())
	}
	if c := GeneralCategory(0x0301); c&Mn == 0 || c&ZeroWidth == 0 {
		t.Errorf("combining accent should be a zero-width mark, is %v", c.Names())
	}
	if c := GeneralCategory(0x0378); c&Cn == 0 { // unassigned
		t.Errorf("U+0378 should be of category Cn, is %v", c.Names())
	}
	if c := GeneralCategory('a'); c&Letters == 0 {
		t.Errorf("'a' should be in the Letters superset, is %v", c.Names())
	}
}

func TestCategoryNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	names, err := CategoryNames("word", 'カ')
	if err != nil || len(names) != 1 || names[0] != "KatakanaClass" {
		t.Errorf("expected [KatakanaClass], is %v (%v)", names, err)
	}
	names, err = CategoryNames("grapheme", '\t')
	if err != nil || len(names) != 1 || names[0] != "ControlClass" {
		t.Errorf("expected [ControlClass], is %v (%v)", names, err)
	}
	names, err = CategoryNames("line", '-')
	if err != nil || len(names) != 1 || names[0] != "HYClass" {
		t.Errorf("expected [HYClass], is %v (%v)", names, err)
	}
	names, err = CategoryNames("category", 'A')
	if err != nil || len(names) == 0 || names[0] != "Lu" {
		t.Errorf("expected [Lu], is %v (%v)", names, err)
	}
	if _, err = CategoryNames("paragraph", 'A'); err == nil {
		t.Errorf("expected unknown domain to be an error")
	}
}

func TestHas(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	text := []rune("abc42")
	if ok, err := Has(text, 0, len(text), Nd); err != nil || !ok {
		t.Errorf("expected digits to be found, is %v (%v)", ok, err)
	}
	if ok, err := Has(text, 0, 3, Nd); err != nil || ok {
		t.Errorf("expected no digits in 'abc', is %v (%v)", ok, err)
	}
	if ok, err := Has(text, 0, len(text), Punctuation); err != nil || ok {
		t.Errorf("expected no punctuation, is %v (%v)", ok, err)
	}
	if _, err := Has(text, 2, 7, Nd); err == nil {
		t.Errorf("expected out-of-bounds range to be an error")
	}
	if _, err := Has(text, -1, 3, Nd); err == nil {
		t.Errorf("expected negative start to be an error")
	}
}

func TestAge(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if age := Age('A'); age != "1.1" {
		t.Errorf("expected 'A' to be Unicode 1.1, is %q", age)
	}
	if age := Age('€'); age != "2.1" {
		t.Errorf("expected euro sign to be Unicode 2.1, is %q", age)
	}
	if age := Age(0x1f600); age != "6.1" {
		t.Errorf("expected GRINNING FACE to be Unicode 6.1, is %q", age)
	}
	if age := Age(0x0378); age != "" { // unassigned
		t.Errorf("expected unassigned code-point to have no age, is %q", age)
	}
}

func TestName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if name := Name('€'); name != "EURO SIGN" {
		t.Errorf("expected 'EURO SIGN', is %q", name)
	}
	if name := Name('A'); name != "LATIN CAPITAL LETTER A" {
		t.Errorf("expected 'LATIN CAPITAL LETTER A', is %q", name)
	}
}
