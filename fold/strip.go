package fold

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Strip removes accents and punctuation from text: combining marks and
// punctuation code-points produce no output, composed letters are reduced
// to their base letters ("é" becomes "e", "Æ" becomes "AE"). If nothing
// changes, text itself is returned, without a copy. Strip is idempotent.
//
// Output length is bounded by the total the first pass computes, not by
// len(text): multi-code-point reductions may grow the output locally even
// though marks and punctuation shrink it.
func Strip(text []rune) []rune {
	changed, total := false, 0
	for _, r := range text {
		rp := stripRepl(r)
		if rp.op != replUnchanged {
			changed = true
		}
		total += rp.width(_StripRuns)
	}
	if !changed {
		return text
	}
	out := make([]rune, 0, total)
	for _, r := range text {
		out = stripRepl(r).expand(out, r, _StripRuns)
	}
	return out
}

// StripString is Strip for strings. If nothing changes, s itself is
// returned.
func StripString(s string) string {
	text := []rune(s)
	out := Strip(text)
	if len(out) == len(text) {
		same := true
		for i := range out {
			if out[i] != text[i] {
				same = false
				break
			}
		}
		if same {
			return s
		}
	}
	return string(out)
}

// stripRepl looks up the stripping replacement for a single code-point.
// The table carries the replacements no decomposition provides; composed
// letters are decomposed canonically and their marks dropped; marks and
// punctuation not covered by either are classified by general category.
func stripRepl(r rune) replacement {
	if r < 0x80 {
		if unicode.IsPunct(r) {
			return replacement{op: replNone}
		}
		return replacement{op: replUnchanged}
	}
	if rp, ok := _StripMap[r]; ok {
		return rp
	}
	if rp, ok := decompose(r); ok {
		return rp
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.IsPunct(r) {
		return replacement{op: replNone}
	}
	return replacement{op: replUnchanged}
}

// decompose reduces a code-point with a canonical decomposition to its
// base code-points, dropping the marks ("é" to "e"). The second return
// value is false if there is no decomposition or no mark to drop, so that
// Hangul syllables and other mark-free compositions stay untouched.
func decompose(r rune) (replacement, bool) {
	d := norm.NFD.PropertiesString(string(r)).Decomposition()
	if d == nil {
		return replacement{}, false
	}
	var base []rune
	dropped := false
	for len(d) > 0 {
		c, size := utf8.DecodeRune(d)
		if unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Me, c) {
			dropped = true
		} else {
			base = append(base, c)
		}
		d = d[size:]
	}
	if !dropped {
		return replacement{}, false
	}
	switch len(base) {
	case 0:
		return replacement{op: replNone}, true
	case 1:
		return replacement{op: replOne, a: base[0]}, true
	case 2:
		return replacement{op: replPair, a: base[0], b: base[1]}, true
	}
	return replacement{}, false
}
