package line

import (
	"sync"
	"unicode"

	"github.com/npillmayer/textops/emoji"
	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/internal/tracing"
	"github.com/npillmayer/textops/width"
)

//go:generate go run ./internal/generator

// Class is the bitmask type for UAX#14 line break classes. The zero mask is
// the end-of-text sentinel of the scanning iterator; real code-points always
// carry at least one class bit, plus optional modifier flags.
type Class uint64

// Line break classes, from LineBreak.txt. The resolution of section 6.1 is
// already applied by ClassForRune: AI, SG and XX resolve to AL, SA resolves
// to CM or AL, CJ resolves to NS.
const (
	BKClass Class = 1 << iota // mandatory break
	CRClass
	LFClass
	NLClass
	SPClass
	ZWClass
	WJClass
	GLClass
	ZWJClass
	CMClass
	OPClass
	CLClass
	CPClass
	QUClass
	EXClass
	ISClass
	SYClass
	HYClass
	BAClass
	BBClass
	B2Class
	CBClass
	NSClass
	INClass
	PRClass
	POClass
	NUClass
	ALClass
	HLClass
	IDClass
	EBClass
	EMClass
	RIClass
	JLClass
	JVClass
	JTClass
	H2Class
	H3Class
	AKClass
	APClass
	ASClass
	VFClass
	VIClass
)

// Modifier flags, OR-ed onto the class bits above. They are not line break
// classes of their own but carry the extra code-point properties some rules
// test: initial/final quote punctuation (LB15a/b), East Asian width
// (LB21a, LB30) and the dotted circle (LB28a).
const (
	piFlag Class = 1 << (iota + 43) // General_Category Pi
	pfFlag                          // General_Category Pf
	eaFlag                          // East_Asian_Width F, W or H
	dcFlag                          // U+25CC DOTTED CIRCLE
)

var classNames = map[Class]string{
	BKClass: "BKClass", CRClass: "CRClass", LFClass: "LFClass",
	NLClass: "NLClass", SPClass: "SPClass", ZWClass: "ZWClass",
	WJClass: "WJClass", GLClass: "GLClass", ZWJClass: "ZWJClass",
	CMClass: "CMClass", OPClass: "OPClass", CLClass: "CLClass",
	CPClass: "CPClass", QUClass: "QUClass", EXClass: "EXClass",
	ISClass: "ISClass", SYClass: "SYClass", HYClass: "HYClass",
	BAClass: "BAClass", BBClass: "BBClass", B2Class: "B2Class",
	CBClass: "CBClass", NSClass: "NSClass", INClass: "INClass",
	PRClass: "PRClass", POClass: "POClass", NUClass: "NUClass",
	ALClass: "ALClass", HLClass: "HLClass", IDClass: "IDClass",
	EBClass: "EBClass", EMClass: "EMClass", RIClass: "RIClass",
	JLClass: "JLClass", JVClass: "JVClass", JTClass: "JTClass",
	H2Class: "H2Class", H3Class: "H3Class", AKClass: "AKClass",
	APClass: "APClass", ASClass: "ASClass", VFClass: "VFClass",
	VIClass: "VIClass",
	piFlag:  "pi", pfFlag: "pf", eaFlag: "ea", dcFlag: "dc",
}

func (c Class) String() string {
	if c == 0 {
		return "eot"
	}
	s := ""
	for bit := BKClass; bit <= dcFlag; bit <<= 1 {
		if c&bit != 0 {
			if s != "" {
				s += "|"
			}
			s += classNames[bit]
		}
	}
	return s
}

// Hangul syllable composition, mirroring the grapheme package: every 28th
// syllable of the Hangul block is an LV syllable (class H2), the others are
// LVT syllables (class H3).
const (
	hangulSBase = 0xac00
	hangulSLast = 0xd7a3
	hangulTCnt  = 28
)

// ClassForRune gets the UAX#14 line break class mask for a Unicode
// code-point, with the resolutions of UAX#14 section 6.1 already applied
// and the modifier flags of the quote, East Asian and dotted circle rules
// OR-ed in.
func ClassForRune(r rune) Class {
	SetupLineClasses()
	c := primaryClass(r)
	if unicode.Is(unicode.Pi, r) {
		c |= piFlag
	} else if unicode.Is(unicode.Pf, r) {
		c |= pfFlag
	}
	if width.IsEastAsian(r) {
		c |= eaFlag
	}
	if r == '◌' {
		c |= dcFlag
	}
	return c
}

func primaryClass(r rune) Class {
	switch r {
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case 0x0085:
		return NLClass
	case ' ':
		return SPClass
	case 0x200b:
		return ZWClass
	case 0x200d:
		return ZWJClass
	case '-':
		return HYClass
	case '/':
		return SYClass
	case 0x2014:
		return B2Class
	case 0xfffc:
		return CBClass
	case '(', '[', 0x00a1, 0x00bf:
		return OPClass
	case ')', ']':
		return CPClass
	case '"', '\'', 0xff02, 0xff07:
		return QUClass
	}
	if r >= hangulSBase && r <= hangulSLast {
		if (r-hangulSBase)%hangulTCnt == 0 {
			return H2Class
		}
		return H3Class
	}
	// first match wins; table order resolves overlapping ranges
	for _, ct := range classTables {
		if unicode.Is(ct.table, r) {
			return ct.class
		}
	}
	return fallbackClass(r)
}

// fallbackClass implements the section 6.1 resolution for code-points not
// covered by the explicit tables: combining marks become CM, ideographs and
// pictographs ID, Hebrew letters HL, numbers NU, everything else AL.
func fallbackClass(r rune) Class {
	if unicode.Is(emoji.Emoji_Modifier, r) {
		return EMClass
	}
	if grapheme.Extends(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) ||
		unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r) {
		return CMClass
	}
	if unicode.Is(unicode.Nd, r) {
		return NUClass
	}
	if unicode.Is(unicode.Hebrew, r) && unicode.IsLetter(r) {
		return HLClass
	}
	if unicode.Is(unicode.Sc, r) {
		return PRClass
	}
	if unicode.Is(unicode.Ps, r) {
		return OPClass
	}
	if unicode.Is(unicode.Pe, r) {
		return CLClass
	}
	if unicode.Is(unicode.Pi, r) || unicode.Is(unicode.Pf, r) {
		return QUClass
	}
	if emoji.IsExtendedPictographic(r) {
		if unicode.Is(emoji.Emoji_Modifier_Base, r) {
			return EBClass
		}
		return IDClass
	}
	if unicode.Is(unicode.Ideographic, r) || unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Yi, r) {
		return IDClass
	}
	return ALClass // AI, SG, XX and SA non-marks all resolve to AL
}

var setupOnce sync.Once

// SetupLineClasses is the top-level preparation function:
// Create code-point classes for UAX#14 line breaking.
// Will in turn set up emoji and grapheme classes as well.
// (Concurrency-safe).
//
// NextBreak will call this transparently if it has not been called beforehand.
func SetupLineClasses() {
	setupOnce.Do(func() {
		tracing.Infof("setting up line breaking classes")
		setupLineClasses()
		grapheme.SetupGraphemeClasses()
		emoji.SetupEmojiClasses()
	})
}
