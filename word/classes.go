package word

import (
	"sync"
	"unicode"

	"github.com/npillmayer/textops/emoji"
	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/internal/tracing"
)

//go:generate go run ./internal/generator

// Class is the bitmask type for UAX#29 word break classes. The zero mask is
// the end-of-text sentinel of the scanning iterator; real code-points always
// carry at least one bit.
type Class uint32

// Word break classes, from WordBreakProperty.txt, plus the
// Extended_Pictographic property from UTS#51 (rule WB3c).
const (
	Any Class = 1 << iota // no specific word class
	CRClass
	LFClass
	NewlineClass
	ExtendClass
	ZWJClass
	Regional_IndicatorClass
	FormatClass
	KatakanaClass
	Hebrew_LetterClass
	ALetterClass
	Single_QuoteClass
	Double_QuoteClass
	MidNumLetClass
	MidLetterClass
	MidNumClass
	NumericClass
	ExtendNumLetClass
	WSegSpaceClass
	PictographicClass // Extended_Pictographic
)

// Compound masks used by the break rules: AHLetter and MidNumLetQ are the
// macro classes of the UAX#29 rule definitions.
const (
	AHLetter   = ALetterClass | Hebrew_LetterClass
	MidNumLetQ = MidNumLetClass | Single_QuoteClass
)

var classNames = map[Class]string{
	Any:                     "Any",
	CRClass:                 "CRClass",
	LFClass:                 "LFClass",
	NewlineClass:            "NewlineClass",
	ExtendClass:             "ExtendClass",
	ZWJClass:                "ZWJClass",
	Regional_IndicatorClass: "Regional_IndicatorClass",
	FormatClass:             "FormatClass",
	KatakanaClass:           "KatakanaClass",
	Hebrew_LetterClass:      "Hebrew_LetterClass",
	ALetterClass:            "ALetterClass",
	Single_QuoteClass:       "Single_QuoteClass",
	Double_QuoteClass:       "Double_QuoteClass",
	MidNumLetClass:          "MidNumLetClass",
	MidLetterClass:          "MidLetterClass",
	MidNumClass:             "MidNumClass",
	NumericClass:            "NumericClass",
	ExtendNumLetClass:       "ExtendNumLetClass",
	WSegSpaceClass:          "WSegSpaceClass",
	PictographicClass:       "PictographicClass",
}

func (c Class) String() string {
	if c == 0 {
		return "eot"
	}
	s := ""
	for bit := Any; bit <= PictographicClass; bit <<= 1 {
		if c&bit != 0 {
			if s != "" {
				s += "|"
			}
			s += classNames[bit]
		}
	}
	return s
}

const (
	zwj  = '‍'
	zwnj = '‌'
	zwsp = '​'
)

// ClassForRune gets the UAX#29 word class mask for a Unicode code-point.
func ClassForRune(r rune) Class {
	SetupWordClasses()
	switch r {
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case zwj:
		return ZWJClass
	case '\'':
		return Single_QuoteClass
	case '"':
		return Double_QuoteClass
	case 0x000b, 0x000c, 0x0085, 0x2028, 0x2029:
		return NewlineClass
	}
	c := Class(0)
	for _, ct := range classTables {
		if unicode.Is(ct.table, r) {
			c |= ct.class
		}
	}
	if c == 0 {
		if cc := letterClass(r); cc != 0 {
			c = cc
		}
	}
	if grapheme.Extends(r) {
		c |= ExtendClass
	} else if unicode.Is(unicode.Cf, r) && r != zwsp && r != zwnj {
		c |= FormatClass
	}
	if emoji.IsExtendedPictographic(r) {
		c |= PictographicClass
	}
	if c&^PictographicClass == 0 {
		c |= Any // WB999: no word class at all
	}
	return c
}

// letterClass resolves the letter classes ALetter, Hebrew_Letter and
// Katakana. ALetter subsumes alphabetic scripts but excludes ideographs and
// the scripts whose words are not letter-delimited (Hiragana, Katakana and
// the South-East Asian scripts, which UAX#29 leaves to dictionary-based
// breaking).
func letterClass(r rune) Class {
	if unicode.Is(unicode.Katakana, r) {
		return KatakanaClass
	}
	if !unicode.IsLetter(r) {
		return 0
	}
	if unicode.Is(unicode.Hebrew, r) {
		return Hebrew_LetterClass
	}
	for _, nonLetter := range nonALetterScripts {
		if unicode.Is(nonLetter, r) {
			return 0
		}
	}
	return ALetterClass
}

var nonALetterScripts = []*unicode.RangeTable{
	unicode.Ideographic,
	unicode.Hiragana,
	unicode.Thai,
	unicode.Lao,
	unicode.Khmer,
	unicode.Myanmar,
}

var setupOnce sync.Once

// SetupWordClasses is the top-level preparation function:
// Create code-point classes for word breaking.
// Will in turn set up emoji and grapheme classes as well.
// (Concurrency-safe).
//
// NextBreak will call this transparently if it has not been called beforehand.
func SetupWordClasses() {
	setupOnce.Do(func() {
		tracing.Infof("setting up word breaking classes")
		setupWordClasses()
		grapheme.SetupGraphemeClasses()
		emoji.SetupEmojiClasses()
	})
}
