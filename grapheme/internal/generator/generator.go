/*
Package generator generates the grapheme class tables.

Classes are generated from the UAX#29 companion file
"GraphemeBreakProperty.txt", with the Indic conjunct break classes taken
from "DerivedCoreProperties.txt". The generator looks for the files in a
directory "$GOPATH/etc/".

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "grapheme" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/textops/internal/ucdparse"
)

var logger = log.New(os.Stderr, "grapheme generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

// Classes taken from GraphemeBreakProperty.txt. CR, LF, ZWJ and the Hangul
// syllable classes LV and LVT are computed at runtime and not collected.
var graphemeClassNames = []string{
	"Control", "Extend", "SpacingMark", "Prepend",
	"Regional_Indicator", "L", "V", "T",
}

func main() {
	flag.Parse()
	collectors := make(map[string]*ucdparse.RangeTableCollector)
	for _, name := range graphemeClassNames {
		collectors[name] = &ucdparse.RangeTableCollector{Cat: name}
	}
	items := collect("GraphemeBreakProperty.txt", collectors, func(token *ucdparse.Token) string {
		return token.Field(1)
	})
	// InCB=Consonant and InCB=Linker live in DerivedCoreProperties.txt as
	// two-field properties: "InCB; Consonant".
	collectors["InCB_Consonant"] = &ucdparse.RangeTableCollector{Cat: "InCB_Consonant"}
	collectors["InCB_Linker"] = &ucdparse.RangeTableCollector{Cat: "InCB_Linker"}
	items += collect("DerivedCoreProperties.txt", collectors, func(token *ucdparse.Token) string {
		if token.Field(1) != "InCB" {
			return ""
		}
		return "InCB_" + token.Field(2)
	})
	if *verbose {
		logger.Printf("%d data items read", items)
	}
	var buf bytes.Buffer
	for _, name := range append(graphemeClassNames, "InCB_Consonant", "InCB_Linker") {
		collectors[name].Output(&buf)
		if *verbose {
			logger.Printf("class %s: %d ranges", name, collectors[name].Count())
		}
	}
	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing tables.go: %v", err)
	}
}

// collect parses a UCD file, mapping each line to a collector via classify.
func collect(filename string, collectors map[string]*ucdparse.RangeTableCollector,
	classify func(*ucdparse.Token) string) int {
	//
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/" + filename)
	if err != nil {
		logger.Fatalf("loading %s: %v", filename, err)
	}
	defer f.Close()
	items := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		name := classify(token)
		items.Add(name)
		from, to := token.Range()
		if coll := collectors[name]; coll != nil {
			coll.Append(from, to)
		}
	})
	if err != nil {
		logger.Fatalf("parsing %s: %v", filename, err)
	}
	return items.Size()
}
