package grapheme

import "github.com/npillmayer/textops"

// Length counts the grapheme clusters of text from offset to the end of the
// text. It is a single forward pass and does not allocate. An empty text has
// length 0; otherwise offset must be a cluster boundary in the range
// 0 ≤ offset < len(text), or Length panics.
func Length(text []rune, offset int) int {
	if len(text) == 0 && offset == 0 {
		return 0
	}
	textops.CheckOffset(offset, len(text))
	n := 0
	for offset < len(text) {
		offset = NextBreak(text, offset)
		n++
	}
	return n
}

// Substr returns the sub-sequence of text from grapheme cluster index start
// up to (excluding) cluster index stop, with Python slice semantics:
// negative indices count from the end of the text and out-of-range indices
// are clamped, never a panic.
//
// For non-negative indices a single forward scan stops as soon as the
// stop-th cluster boundary is found. Negative indices require the cluster
// count, so all break offsets are collected first.
func Substr(text []rune, start, stop int) []rune {
	if len(text) == 0 {
		return text
	}
	if start >= 0 && stop >= 0 {
		if stop <= start {
			return nil
		}
		from, pos, i := -1, 0, 0
		for pos < len(text) && i < stop {
			if i == start {
				from = pos
			}
			pos = NextBreak(text, pos)
			i++
		}
		if from < 0 {
			if i == start { // start clusters consumed exactly
				from = pos
			} else { // start beyond the end
				return nil
			}
		}
		return text[from:pos]
	}
	breaks := breakOffsets(text)
	n := len(breaks) - 1 // cluster count
	start = clampIndex(start, n)
	stop = clampIndex(stop, n)
	if stop <= start {
		return nil
	}
	return text[breaks[start]:breaks[stop]]
}

// Find searches text[start:end] for the literal code-point sequence sub and
// returns the code-point index of the first occurrence whose begin and end
// both fall on grapheme cluster boundaries, or -1. A raw match in the
// interior of a cluster does not count. start must be a cluster boundary.
// An empty sub matches trivially at the start of the text only, so Find
// returns 0 when start is 0 and -1 otherwise.
func Find(text []rune, sub []rune, start, end int) int {
	if len(sub) == 0 {
		if start == 0 {
			return 0
		}
		return -1
	}
	if end > len(text) {
		end = len(text)
	}
	if start < 0 || start > end {
		return -1
	}
	// Cluster boundaries of text[start:end], in increasing order.
	var breaks []int
	for pos := start; pos < end; {
		breaks = append(breaks, pos)
		pos = NextBreak(text, pos)
	}
	breaks = append(breaks, end)
	for i, b := range breaks {
		if b+len(sub) > end {
			break
		}
		if !runesEqual(text[b:b+len(sub)], sub) {
			continue
		}
		for _, e := range breaks[i:] {
			if e == b+len(sub) {
				return b
			}
			if e > b+len(sub) {
				break
			}
		}
	}
	return -1
}

// breakOffsets collects every cluster boundary of text, including 0 and
// len(text).
func breakOffsets(text []rune) []int {
	breaks := []int{0}
	for pos := 0; pos < len(text); {
		pos = NextBreak(text, pos)
		breaks = append(breaks, pos)
	}
	return breaks
}

// clampIndex resolves a possibly negative slice index against a sequence of
// length n, Python-style.
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if b[i] != r {
			return false
		}
	}
	return true
}
