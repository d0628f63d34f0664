/*
Package generator generates the East Asian width tables.

Tables are generated from the UAX#11 companion file "EastAsianWidth.txt".
The generator looks for it in a directory "$GOPATH/etc/". Category N is
the default for unlisted code-points and is not collected.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "width" directory.

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

var logger = log.New(os.Stderr, "width generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

var eawCategoryNames = []string{"A", "W", "Na", "H", "F"}

func main() {
	flag.Parse()
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/EastAsianWidth.txt")
	if err != nil {
		logger.Fatalf("loading EastAsianWidth.txt: %v", err)
	}
	defer f.Close()
	collectors := make(map[string]*ucdparse.RangeTableCollector)
	for _, name := range eawCategoryNames {
		collectors[name] = &ucdparse.RangeTableCollector{Cat: "EAW_" + name}
	}
	items := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		items.Add(token.Field(1))
		from, to := token.Range()
		if coll := collectors[token.Field(1)]; coll != nil {
			coll.Append(from, to)
		}
	})
	if err != nil {
		logger.Fatalf("parsing EastAsianWidth.txt: %v", err)
	}
	if *verbose {
		logger.Printf("%d data items read", items.Size())
	}
	var buf bytes.Buffer
	for _, name := range eawCategoryNames {
		collectors[name].Output(&buf)
		if *verbose {
			logger.Printf("category %s: %d ranges", name, collectors[name].Count())
		}
	}
	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing tables.go: %v", err)
	}
}
