/*
Package generator generates the sentence class tables.

Classes are generated from the UAX#29 companion file
"SentenceBreakProperty.txt". The generator looks for it in a directory
"$GOPATH/etc/". Only the table-driven classes are collected; letter and
paired punctuation classes are resolved against the category tables of
the standard library at runtime.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "sentence" directory.

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

var logger = log.New(os.Stderr, "sentence generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

var sentenceClassNames = []string{
	"Sp", "ATerm", "STerm", "SContinue",
}

func main() {
	flag.Parse()
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/SentenceBreakProperty.txt")
	if err != nil {
		logger.Fatalf("loading SentenceBreakProperty.txt: %v", err)
	}
	defer f.Close()
	collectors := make(map[string]*ucdparse.RangeTableCollector)
	for _, name := range sentenceClassNames {
		collectors[name] = &ucdparse.RangeTableCollector{Cat: name}
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
		logger.Fatalf("parsing SentenceBreakProperty.txt: %v", err)
	}
	if *verbose {
		logger.Printf("%d data items read", items.Size())
	}
	var buf bytes.Buffer
	for _, name := range sentenceClassNames {
		collectors[name].Output(&buf)
		if *verbose {
			logger.Printf("class %s: %d ranges", name, collectors[name].Count())
		}
	}
	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing tables.go: %v", err)
	}
}
