package fold

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:generate go run ./internal/generator

// A replacement describes what a transform does with a single code-point.
// The tag makes the variants explicit; replacements never carry more than
// two code-points inline, longer expansions live in a side table and are
// addressed by index.
type replacement struct {
	op   replOp
	a, b rune // replOne: a; replPair: a and b; replRun: a is a side table index
}

type replOp uint8

const (
	replUnchanged replOp = iota
	replNone             // code-point produces no output
	replOne              // single code-point replacement
	replPair             // two code-point replacement
	replRun              // longer replacement, indexed into a run table
)

// expand appends the replacement for r to out.
func (rp replacement) expand(out []rune, r rune, runs [][]rune) []rune {
	switch rp.op {
	case replUnchanged:
		return append(out, r)
	case replOne:
		return append(out, rp.a)
	case replPair:
		return append(out, rp.a, rp.b)
	case replRun:
		return append(out, runs[rp.a]...)
	}
	return out // replNone
}

// width is the number of code-points the replacement produces.
func (rp replacement) width(runs [][]rune) int {
	switch rp.op {
	case replNone:
		return 0
	case replPair:
		return 2
	case replRun:
		return len(runs[rp.a])
	}
	return 1
}

// Fold case-folds text for caseless comparison, applying the full case
// folding of CaseFolding.txt: some code-points expand to multiple folded
// code-points. If nothing changes under folding, text itself is returned,
// without a copy. Fold is idempotent.
func Fold(text []rune) []rune {
	if asciiNoUpper(text) {
		return text
	}
	changed, total := false, 0
	for _, r := range text {
		rp := foldRepl(r)
		if rp.op != replUnchanged {
			changed = true
		}
		total += rp.width(_FoldRuns)
	}
	if !changed {
		return text
	}
	out := make([]rune, 0, total)
	for _, r := range text {
		out = foldRepl(r).expand(out, r, _FoldRuns)
	}
	return out
}

// FoldString is Fold for strings. The first pass computes the exact byte
// length of the folded result, so the second pass fills a single
// right-sized buffer. If nothing changes, s itself is returned.
func FoldString(s string) string {
	if asciiNoUpperString(s) {
		return s
	}
	changed, bytes := false, 0
	for _, r := range s {
		rp := foldRepl(r)
		if rp.op != replUnchanged {
			changed = true
		}
		bytes += rp.byteLen(r, _FoldRuns)
	}
	if !changed {
		return s
	}
	var b strings.Builder
	b.Grow(bytes)
	var scratch []rune
	for _, r := range s {
		scratch = foldRepl(r).expand(scratch[:0], r, _FoldRuns)
		for _, f := range scratch {
			b.WriteRune(f)
		}
	}
	return b.String()
}

func (rp replacement) byteLen(r rune, runs [][]rune) int {
	switch rp.op {
	case replUnchanged:
		return utf8.RuneLen(r)
	case replNone:
		return 0
	case replOne:
		return utf8.RuneLen(rp.a)
	case replPair:
		return utf8.RuneLen(rp.a) + utf8.RuneLen(rp.b)
	}
	n := 0
	for _, f := range runs[rp.a] {
		n += utf8.RuneLen(f)
	}
	return n
}

// foldRepl looks up the folding replacement for a single code-point. The
// table carries only the foldings that differ from simple lowercasing.
func foldRepl(r rune) replacement {
	if r < utf8.RuneSelf {
		if r >= 'A' && r <= 'Z' {
			return replacement{op: replOne, a: r + ('a' - 'A')}
		}
		return replacement{op: replUnchanged}
	}
	if rp, ok := _FoldMap[r]; ok {
		return rp
	}
	// Cherokee folds toward the uppercase letters, against the direction
	// of ToLower.
	if r >= 0x13a0 && r <= 0x13f5 {
		return replacement{op: replUnchanged}
	}
	if r >= 0x13f8 && r <= 0x13fd {
		return replacement{op: replOne, a: r - 8}
	}
	if r >= 0xab70 && r <= 0xabbf {
		return replacement{op: replOne, a: r - (0xab70 - 0x13a0)}
	}
	if lower := unicode.ToLower(r); lower != r {
		return replacement{op: replOne, a: lower}
	}
	return replacement{op: replUnchanged}
}

// asciiNoUpper reports whether folding is a guaranteed no-op: all ASCII
// and no upper-case letter.
func asciiNoUpper(text []rune) bool {
	for _, r := range text {
		if r >= utf8.RuneSelf || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func asciiNoUpperString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || (s[i] >= 'A' && s[i] <= 'Z') {
			return false
		}
	}
	return true
}
