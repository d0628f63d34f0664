/*
Package generator generates the code-point age table.

Ages are generated from "DerivedAge.txt": each range is tagged with the
Unicode version that assigned it, and adjacent ranges of the same version
are merged. The generator looks for the file in a directory
"$GOPATH/etc/".

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "agetables.go" in the current directory. It is
designed to be called from the "ucd" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/textops/internal/ucdparse"
)

var logger = log.New(os.Stderr, "ucd generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

type ageRange struct {
	lo, hi  rune
	version string
}

func main() {
	flag.Parse()
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/DerivedAge.txt")
	if err != nil {
		logger.Fatalf("loading DerivedAge.txt: %v", err)
	}
	defer f.Close()
	items := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		lo, hi := token.Range()
		items.Add(ageRange{lo: lo, hi: hi, version: token.Field(1)})
	})
	if err != nil {
		logger.Fatalf("parsing DerivedAge.txt: %v", err)
	}
	ranges := merge(items)
	if *verbose {
		logger.Printf("%d ranges after merging %d items", len(ranges), items.Size())
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package ucd")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Code generated by ./internal/generator from DerivedAge.txt. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "var _AgeRanges = []struct {")
	fmt.Fprintln(&buf, "\tlo, hi  rune")
	fmt.Fprintln(&buf, "\tversion string")
	fmt.Fprintf(&buf, "}{ // %d entries\n", len(ranges))
	for _, ar := range ranges {
		fmt.Fprintf(&buf, "\t{%#04x, %#04x, %q},\n", ar.lo, ar.hi, ar.version)
	}
	fmt.Fprintln(&buf, "}")
	if err := os.WriteFile("agetables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing agetables.go: %v", err)
	}
}

// merge sorts the collected ranges and fuses adjacent ranges of the same
// version.
func merge(items *arraylist.List) []ageRange {
	ranges := make([]ageRange, 0, items.Size())
	items.Each(func(_ int, value interface{}) {
		ranges = append(ranges, value.(ageRange))
	})
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	merged := ranges[:0]
	for _, ar := range ranges {
		if n := len(merged); n > 0 && merged[n-1].version == ar.version &&
			merged[n-1].hi+1 == ar.lo {
			merged[n-1].hi = ar.hi
			continue
		}
		merged = append(merged, ar)
	}
	return merged
}
