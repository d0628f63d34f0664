package sentence

import (
	"sync"
	"unicode"

	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/internal/tracing"
)

//go:generate go run ./internal/generator

// Class is the bitmask type for UAX#29 sentence break classes. The zero mask
// is the end-of-text sentinel of the scanning iterator; real code-points
// always carry at least one bit.
type Class uint32

// Sentence break classes, from SentenceBreakProperty.txt.
const (
	Any Class = 1 << iota // no specific sentence class
	CRClass
	LFClass
	SepClass
	ExtendClass
	FormatClass
	SpClass
	LowerClass
	UpperClass
	OLetterClass
	NumericClass
	ATermClass
	STermClass
	SContinueClass
	CloseClass
)

var classNames = map[Class]string{
	Any:            "Any",
	CRClass:        "CRClass",
	LFClass:        "LFClass",
	SepClass:       "SepClass",
	ExtendClass:    "ExtendClass",
	FormatClass:    "FormatClass",
	SpClass:        "SpClass",
	LowerClass:     "LowerClass",
	UpperClass:     "UpperClass",
	OLetterClass:   "OLetterClass",
	NumericClass:   "NumericClass",
	ATermClass:     "ATermClass",
	STermClass:     "STermClass",
	SContinueClass: "SContinueClass",
	CloseClass:     "CloseClass",
}

func (c Class) String() string {
	if c == 0 {
		return "eot"
	}
	s := ""
	for bit := Any; bit <= CloseClass; bit <<= 1 {
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

// ClassForRune gets the UAX#29 sentence class mask for a Unicode code-point.
func ClassForRune(r rune) Class {
	SetupSentenceClasses()
	switch r {
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case 0x0085, 0x2028, 0x2029:
		return SepClass
	case zwj, zwnj:
		return ExtendClass
	}
	c := Class(0)
	for _, ct := range classTables {
		if unicode.Is(ct.table, r) {
			c |= ct.class
		}
	}
	if c == 0 {
		c = letterClass(r)
	}
	if grapheme.Extends(r) {
		c |= ExtendClass
	} else if c == 0 && unicode.Is(unicode.Cf, r) && r != zwsp {
		c |= FormatClass
	}
	if c == 0 {
		c = Any // SB998: no sentence class at all
	}
	return c
}

// letterClass resolves Lower, Upper and OLetter. OLetter covers letters of
// caseless scripts.
func letterClass(r rune) Class {
	switch {
	case unicode.Is(unicode.Lower, r):
		return LowerClass
	case unicode.Is(unicode.Upper, r) || unicode.Is(unicode.Lt, r):
		return UpperClass
	case unicode.IsLetter(r) || unicode.Is(unicode.Nl, r):
		return OLetterClass
	}
	return 0
}

var setupOnce sync.Once

// SetupSentenceClasses is the top-level preparation function:
// Create code-point classes for sentence breaking.
// (Concurrency-safe).
//
// NextBreak will call this transparently if it has not been called beforehand.
func SetupSentenceClasses() {
	setupOnce.Do(func() {
		tracing.Infof("setting up sentence breaking classes")
		setupSentenceClasses()
		grapheme.SetupGraphemeClasses()
	})
}
