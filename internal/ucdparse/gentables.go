package ucdparse

import (
	"bytes"
	"fmt"
	"sort"
	"unicode"
)

// Table generation support. The per-package generators collect code-point
// ranges per category while iterating a UCD file and emit them as Go source
// for unicode.RangeTable variables, in the format the rest of the module
// consumes with unicode.Is.

// RangeTableCollector collects character ranges for one category during
// iteration of UCD files, for later output as Go source code.
type RangeTableCollector struct {
	Cat    string // character category, used for the variable name
	ranges [][2]rune
}

// Append a range of code-points to a range table collector. A single
// code-point is denoted by l == r. Ranges may arrive unsorted and may abut;
// Output will sort and coalesce them.
func (rt *RangeTableCollector) Append(l, r rune) {
	rt.ranges = append(rt.ranges, [2]rune{l, r})
}

// Count returns the number of coalesced ranges collected so far.
func (rt *RangeTableCollector) Count() int {
	rt.normalize()
	return len(rt.ranges)
}

func (rt *RangeTableCollector) normalize() {
	if len(rt.ranges) < 2 {
		return
	}
	sort.Slice(rt.ranges, func(i, j int) bool { return rt.ranges[i][0] < rt.ranges[j][0] })
	out := rt.ranges[:1]
	for _, r := range rt.ranges[1:] {
		last := &out[len(out)-1]
		if r[0] <= last[1]+1 {
			if r[1] > last[1] {
				last[1] = r[1]
			}
			continue
		}
		out = append(out, r)
	}
	rt.ranges = out
}

// Output creates Go source code for a range table.
func (rt *RangeTableCollector) Output(buf *bytes.Buffer) {
	rt.normalize()
	latinOffset := 0
	switch32 := -1
	for i, r := range rt.ranges {
		if r[1] <= unicode.MaxLatin1 {
			latinOffset = i + 1
		}
		if switch32 < 0 && r[0] > 0xffff {
			switch32 = i
		}
	}
	fmt.Fprintf(buf, "var _%s = &unicode.RangeTable{ // %d entries\n", rt.Cat, len(rt.ranges))
	fmt.Fprintf(buf, "\tR16: []unicode.Range16{\n")
	for i, r := range rt.ranges {
		if switch32 >= 0 && i == switch32 {
			fmt.Fprintf(buf, "\t},\n\tR32: []unicode.Range32{\n")
		}
		fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r[0], r[1])
	}
	if latinOffset > 0 {
		fmt.Fprintf(buf, "\t},\n\tLatinOffset: %d,\n}\n\n", latinOffset)
	} else {
		fmt.Fprintf(buf, "\t},\n}\n\n")
	}
}
