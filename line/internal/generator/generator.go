/*
Package generator generates the line break class tables.

Classes are generated from the UAX#14 companion file "LineBreak.txt". The
generator looks for the file in a directory "$GOPATH/etc/". Only the
table-driven classes are collected; classes resolved at runtime (CR, LF,
NL, SP, ZW, ZWJ, the dash and bracket singletons, the Hangul syllables and
the section 6.1 fallbacks) are skipped, and class CJ is folded into NS.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "line" directory.

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

var logger = log.New(os.Stderr, "line generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

// Classes taken from LineBreak.txt, in lookup order: the first matching
// table wins, so NS (which receives the small kana of class CJ) has to
// precede the ID blocks containing it.
var lineClassNames = []string{
	"BK", "WJ", "GL", "CL", "EX", "IS", "IN", "BA", "BB", "NS",
	"PR", "PO", "RI", "JL", "JV", "JT", "AK", "AP", "AS", "VF", "VI", "ID",
}

func main() {
	flag.Parse()
	collectors := make(map[string]*ucdparse.RangeTableCollector)
	for _, name := range lineClassNames {
		collectors[name] = &ucdparse.RangeTableCollector{Cat: name}
	}
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/LineBreak.txt")
	if err != nil {
		logger.Fatalf("loading LineBreak.txt: %v", err)
	}
	defer f.Close()
	items := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		name := token.Field(1)
		if name == "CJ" { // section 6.1: CJ resolves to NS
			name = "NS"
		}
		items.Add(name)
		from, to := token.Range()
		if coll := collectors[name]; coll != nil {
			coll.Append(from, to)
		}
	})
	if err != nil {
		logger.Fatalf("parsing LineBreak.txt: %v", err)
	}
	if *verbose {
		logger.Printf("%d data items read", items.Size())
	}
	var buf bytes.Buffer
	for _, name := range lineClassNames {
		collectors[name].Output(&buf)
		if *verbose {
			logger.Printf("class %s: %d ranges", name, collectors[name].Count())
		}
	}
	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing tables.go: %v", err)
	}
}
