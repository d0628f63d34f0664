/*
Package generator generates the emoji class tables.

Classes are generated from the UTS#51 companion file "emoji-data.txt".
This is the definite source for emoji code-point classes. The generator
looks for it in a directory "$GOPATH/etc/".

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "emojiclasses.go" in the current directory. It is
designed to be called from the "emoji" directory.

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

var logger = log.New(os.Stderr, "emoji generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

var emojiClassNames = []string{
	"Emoji", "Emoji_Presentation", "Emoji_Modifier",
	"Emoji_Modifier_Base", "Emoji_Component", "Extended_Pictographic",
}

func main() {
	flag.Parse()
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/emoji-data.txt")
	if err != nil {
		logger.Fatalf("loading emoji-data.txt: %v", err)
	}
	defer f.Close()
	collectors := make(map[string]*ucdparse.RangeTableCollector)
	for _, name := range emojiClassNames {
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
		logger.Fatalf("parsing emoji-data.txt: %v", err)
	}
	if *verbose {
		logger.Printf("%d data items read", items.Size())
	}
	var buf bytes.Buffer
	for _, name := range emojiClassNames {
		collectors[name].Output(&buf)
		if *verbose {
			logger.Printf("class %s: %d ranges", name, collectors[name].Count())
		}
	}
	if err := os.WriteFile("emojiclasses.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing emojiclasses.go: %v", err)
	}
}
