package grapheme

import (
	"sync"
	"unicode"

	"github.com/npillmayer/textops/emoji"
	"github.com/npillmayer/textops/internal/tracing"
)

//go:generate go run ./internal/generator

// Class is the bitmask type for UAX#29 grapheme cluster break classes.
// A code-point may carry several class bits at once (e.g. a virama is both
// Extend and an InCB linker). The zero mask is the end-of-text sentinel of
// the scanning iterator; real code-points always carry at least one bit.
type Class uint32

// Grapheme cluster break classes, from GraphemeBreakProperty.txt, plus the
// Extended_Pictographic property from UTS#51 and the two Indic conjunct
// break (InCB) properties needed by rule GB9c.
const (
	Any Class = 1 << iota // no specific grapheme class
	CRClass
	LFClass
	ControlClass
	ExtendClass
	ZWJClass
	Regional_IndicatorClass
	PrependClass
	SpacingMarkClass
	LClass
	VClass
	TClass
	LVClass
	LVTClass
	PictographicClass // Extended_Pictographic
	InCBConsonantClass
	InCBLinkerClass
)

var classNames = map[Class]string{
	Any:                     "Any",
	CRClass:                 "CRClass",
	LFClass:                 "LFClass",
	ControlClass:            "ControlClass",
	ExtendClass:             "ExtendClass",
	ZWJClass:                "ZWJClass",
	Regional_IndicatorClass: "Regional_IndicatorClass",
	PrependClass:            "PrependClass",
	SpacingMarkClass:        "SpacingMarkClass",
	LClass:                  "LClass",
	VClass:                  "VClass",
	TClass:                  "TClass",
	LVClass:                 "LVClass",
	LVTClass:                "LVTClass",
	PictographicClass:       "PictographicClass",
	InCBConsonantClass:      "InCBConsonantClass",
	InCBLinkerClass:         "InCBLinkerClass",
}

func (c Class) String() string {
	if c == 0 {
		return "eot"
	}
	s := ""
	for bit := Any; bit <= InCBLinkerClass; bit <<= 1 {
		if c&bit != 0 {
			if s != "" {
				s += "|"
			}
			s += classNames[bit]
		}
	}
	return s
}

// Names returns the names of all class bits set in c, in bit order.
func (c Class) Names() []string {
	var names []string
	for bit := Any; bit <= InCBLinkerClass; bit <<= 1 {
		if c&bit != 0 {
			names = append(names, classNames[bit])
		}
	}
	return names
}

// Hangul syllable composition. LV and LVT syllables are not table-driven but
// arithmetic: every 28th syllable of the Hangul block is an LV syllable.
const (
	hangulSBase = 0xac00
	hangulSLast = 0xd7a3
	hangulTCnt  = 28
)

// ClassForRune gets the grapheme class mask for a Unicode code-point.
func ClassForRune(r rune) Class {
	SetupGraphemeClasses()
	switch r {
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case zwj:
		return ZWJClass
	}
	if r >= hangulSBase && r <= hangulSLast {
		if (r-hangulSBase)%hangulTCnt == 0 {
			return LVClass
		}
		return LVTClass
	}
	c := Class(0)
	for _, ct := range classTables {
		if unicode.Is(ct.table, r) {
			c |= ct.class
		}
	}
	if emoji.IsExtendedPictographic(r) {
		c |= PictographicClass
	}
	if c&^(PictographicClass|InCBConsonantClass|InCBLinkerClass) == 0 {
		c |= Any // GB999: no primary class at all
	}
	return c
}

const zwj = '‍'

// Extends reports whether r carries the grapheme Extend property. The word
// and sentence packages (whose Extend classes subsume grapheme extenders and
// spacing marks) and the line package (class CM) consult this instead of
// duplicating the combining-mark tables.
func Extends(r rune) bool {
	SetupGraphemeClasses()
	return unicode.Is(_Extend, r) || unicode.Is(_SpacingMark, r)
}

var setupOnce sync.Once

// SetupGraphemeClasses is the top-level preparation function:
// Create code-point classes for grapheme breaking.
// Will in turn set up emoji classes as well.
// (Concurrency-safe).
func SetupGraphemeClasses() {
	setupOnce.Do(func() {
		tracing.Infof("setting up grapheme breaking classes")
		setupGraphemeClasses()
		emoji.SetupEmojiClasses()
	})
}
