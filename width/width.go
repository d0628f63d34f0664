package width

import (
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/textops"
	"github.com/npillmayer/textops/emoji"
	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/internal/tracing"
	"golang.org/x/text/language"
)

//go:generate go run ./internal/generator

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (cat Category) String() string {
	switch cat {
	case N:
		return "N"
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "N"
}

// WidthCategory returns the width category of a single rune as proposed by
// the UAX#11 standard. Please note that this is most probably not what
// clients will want to use in full-grown international applications, as it
// is preferable to work on graphemes rather than on runes. This function is
// nevertheless provided as a low level API function corresponding to UAX#11
// section 6.
//
// Returns one of N, A, W, Na, H, F.
func WidthCategory(r rune) Category {
	return consultEAWTables(r)
}

const (
	zwj  = '‍'
	zwnj = '‌'
)

// Width sums the terminal column widths of the code-points of text from
// offset to the end of the text. Each code-point contributes 0 columns
// (combining marks, format characters, zero-width characters), 1 column
// (narrow) or 2 columns (East Asian wide and fullwidth characters, and
// pictographs). A zero-width joiner immediately followed by an
// Extended_Pictographic code-point suppresses the pictograph's width, so
// that a joined emoji sequence is as wide as its first pictograph only.
//
// Width returns -1 as soon as any code-point has no terminal rendition
// (control characters, surrogates, unassigned code-points). That sentinel
// is an answer, not an error: "don't know how to render this".
//
// Width panics if offset is outside the range 0 ≤ offset < len(text);
// an empty text has width 0.
func Width(text []rune, offset int) int {
	if len(text) == 0 && offset == 0 {
		return 0
	}
	textops.CheckOffset(offset, len(text))
	cells := 0
	for i := offset; i < len(text); i++ {
		r := text[i]
		if r == zwj && i+1 < len(text) && emoji.IsExtendedPictographic(text[i+1]) {
			i++ // ZWJ and the joined pictograph render as zero columns
			continue
		}
		w := runeWidth(r)
		if w < 0 {
			return -1
		}
		cells += w
	}
	return cells
}

// runeWidth is the column width of a single code-point: 0, 1, 2 or the
// invalid sentinel -1.
func runeWidth(r rune) int {
	if r == zwj || r == zwnj || r == 0xfeff {
		return 0
	}
	if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cs, r) {
		return -1
	}
	if grapheme.Extends(r) || unicode.Is(unicode.Cf, r) {
		return 0
	}
	if emoji.IsExtendedPictographic(r) && r > 0xffff {
		return 2
	}
	if !unicode.IsGraphic(r) {
		return -1
	}
	switch consultEAWTables(r) {
	case W, F:
		return 2
	}
	return 1
}

// IsEastAsian reports whether r belongs to one of the East Asian width
// categories W, F or H. The line breaking algorithm consults this for its
// rule about hyphens and East Asian characters.
func IsEastAsian(r rune) bool {
	switch consultEAWTables(r) {
	case W, F, H:
		return true
	}
	return false
}

// --- Context ---------------------------------------------------------------

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language
// and script identification
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western languages.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	ctx := &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
		resolve:        resolveToWide,
	}
	return ctx
}

func makeLatinContext() *Context {
	ctx := &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
		resolve:        resolveToNarrow,
	}
	return ctx
}

// A resolver maps the ambiguous category A onto a definite one, depending
// on context.
type resolver func(Category, *Context) Category

func resolveToNarrow(cat Category, ctx *Context) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category, ctx *Context) Category {
	if cat == A {
		return W
	}
	return cat
}

// Resolve maps the width category of r onto a definite category, resolving
// the ambiguous category A according to the context. With an empty context,
// LatinContext is assumed.
func (ctx *Context) Resolve(r rune) Category {
	if ctx == nil || ctx.resolve == nil {
		ctx = LatinContext
	}
	return ctx.resolve(consultEAWTables(r), ctx)
}

// ContextFromEnvironment creates a Context from the operating system
// environment, i.e. the user's locale settings.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracing.Errorf(err.Error())
		userLocale = "en-US"
		tracing.Infof("UAX#11 sets default user locale %v", userLocale)
	} else {
		tracing.Infof("UAX#11 detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	ctx := &Context{
		Script:  script,
		Locale:  userLocale,
		resolve: findResolver(script, lang),
	}
	return ctx
}

func findResolver(script language.Script, lang language.Tag) resolver {
	scrcode := script.String()
	switch scrcode {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd",
		// South East Asian
		"Batk", "Beng", "Bugi", "Mymr",
		"Cham", "Java", "Khmr", "Laoo",
		"Lisu", "Mtei", "Thai", "Yiii",
		"Bali", "Khar", "Rjng", "Roro",
		"Tglg", "Wole", "Buhd", "Tagb":
		return resolveToWide
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// ---------------------------------------------------------------------------

// UAX#11:
//  - The unassigned code points in the following blocks default to "W":
//         CJK Unified Ideographs Extension A: U+3400..U+4DBF
//         CJK Unified Ideographs:             U+4E00..U+9FFF
//         CJK Compatibility Ideographs:       U+F900..U+FAFF
//  - All undesignated code points in Planes 2 and 3, whether inside or
//      outside of allocated blocks, default to "W":
//         Plane 2:                            U+20000..U+2FFFD
//         Plane 3:                            U+30000..U+3FFFD
var _CJK_Default_W = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}

func consultEAWTables(r rune) Category {
	for cat, table := range rangeTables {
		if table != nil && unicode.Is(table, r) {
			return Category(cat)
		}
	}
	if unicode.Is(_CJK_Default_W, r) {
		return W
	}
	// UAX#11:
	//  - All code points, assigned or unassigned, that are not listed
	//      explicitly are given the value "N".
	return N
}
