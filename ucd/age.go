package ucd

import "sort"

//go:generate go run ./internal/generator

// Age returns the Unicode version a code-point was assigned in, e.g.
// "2.1" for the euro sign, or "" for unassigned code-points.
func Age(r rune) string {
	i := sort.Search(len(_AgeRanges), func(i int) bool {
		return _AgeRanges[i].hi >= r
	})
	if i < len(_AgeRanges) && _AgeRanges[i].lo <= r {
		return _AgeRanges[i].version
	}
	return ""
}
