package ucd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/npillmayer/textops/grapheme"
	"github.com/npillmayer/textops/line"
	"github.com/npillmayer/textops/sentence"
	"github.com/npillmayer/textops/width"
	"github.com/npillmayer/textops/word"
)

// ErrOutOfRange flags a text range outside the queried text.
var ErrOutOfRange = errors.New("text range out of bounds")

// Category is a packed mask of general categories, one bit per category,
// plus the width flags. A code-point carries exactly one category bit;
// masks with several bits serve as category sets for Has.
type Category uint64

// General categories, in UnicodeData.txt order.
const (
	Lu Category = 1 << iota // uppercase letter
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Co
	Cs
	Cn // unassigned

	Wide      // East Asian width W or F
	ZeroWidth // occupies no terminal cell
)

// Letters, Marks, Numbers, Punctuation, Symbols and Separators are the
// one-letter category supersets.
const (
	Letters     = Lu | Ll | Lt | Lm | Lo
	Marks       = Mn | Mc | Me
	Numbers     = Nd | Nl | No
	Punctuation = Pc | Pd | Ps | Pe | Pi | Pf | Po
	Symbols     = Sm | Sc | Sk | So
	Separators  = Zs | Zl | Zp
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{Lu, "Lu"}, {Ll, "Ll"}, {Lt, "Lt"}, {Lm, "Lm"}, {Lo, "Lo"},
	{Mn, "Mn"}, {Mc, "Mc"}, {Me, "Me"},
	{Nd, "Nd"}, {Nl, "Nl"}, {No, "No"},
	{Pc, "Pc"}, {Pd, "Pd"}, {Ps, "Ps"}, {Pe, "Pe"}, {Pi, "Pi"},
	{Pf, "Pf"}, {Po, "Po"},
	{Sm, "Sm"}, {Sc, "Sc"}, {Sk, "Sk"}, {So, "So"},
	{Zs, "Zs"}, {Zl, "Zl"}, {Zp, "Zp"},
	{Cc, "Cc"}, {Cf, "Cf"}, {Co, "Co"}, {Cs, "Cs"}, {Cn, "Cn"},
	{Wide, "Wide"}, {ZeroWidth, "ZeroWidth"},
}

// GeneralCategory returns the packed category mask for a code-point: its
// general category bit, plus Wide for East Asian wide code-points and
// ZeroWidth for code-points taking no terminal cell.
func GeneralCategory(r rune) Category {
	c := category(r)
	if width.IsEastAsian(r) {
		c |= Wide
	}
	if grapheme.Extends(r) || unicode.Is(unicode.Cf, r) {
		c |= ZeroWidth
	}
	return c
}

func category(r rune) Category {
	for _, cn := range categoryNames[:len(categoryNames)-3] { // Cn and flags excluded
		if unicode.Is(unicode.Categories[cn.name], r) {
			return cn.cat
		}
	}
	return Cn
}

// Names lists the names of the categories in the mask, in category order.
func (c Category) Names() []string {
	var names []string
	for _, cn := range categoryNames {
		if c&cn.cat != 0 {
			names = append(names, cn.name)
		}
	}
	return names
}

// CategoryNames reports the category names of a code-point in the given
// domain. Valid domains are "grapheme", "word", "sentence" and "line",
// naming the break classification of the respective boundary package,
// and "category" for the general category. Unknown domains return an
// error.
func CategoryNames(which string, r rune) ([]string, error) {
	switch which {
	case "grapheme":
		return strings.Split(grapheme.ClassForRune(r).String(), "|"), nil
	case "word":
		return strings.Split(word.ClassForRune(r).String(), "|"), nil
	case "sentence":
		return strings.Split(sentence.ClassForRune(r).String(), "|"), nil
	case "line":
		return strings.Split(line.ClassForRune(r).String(), "|"), nil
	case "category":
		return GeneralCategory(r).Names(), nil
	}
	return nil, fmt.Errorf("unknown category domain %q", which)
}

// Has reports whether any code-point of text[start:end] carries a
// category of mask. Ranges outside the text return ErrOutOfRange.
func Has(text []rune, start, end int, mask Category) (bool, error) {
	if start < 0 || end > len(text) || start > end {
		return false, fmt.Errorf("range [%d,%d) in text of length %d: %w",
			start, end, len(text), ErrOutOfRange)
	}
	for _, r := range text[start:end] {
		if GeneralCategory(r)&mask != 0 {
			return true, nil
		}
	}
	return false, nil
}

// Name returns the Unicode character name of a code-point, or "" if it
// has none.
func Name(r rune) string {
	return runenames.Name(r)
}
