/*
Package generator generates the folding and stripping tables.

Foldings are generated from "CaseFolding.txt" (full foldings, status C
and F, skipping entries that coincide with the simple lowercase mapping
and the Cherokee blocks, which are folded arithmetically at lookup
time). Stripping replacements are the transliterations of letters
without a Unicode decomposition, together with the squared Latin
abbreviations of "UnicodeData.txt" that reduce to plain lower-case
letters; letters with a canonical decomposition are decomposed at lookup
time and need no table entry. The generator looks for the files in a
directory "$GOPATH/etc/".

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "fold" directory.

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
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/textops/internal/ucdparse"
)

var logger = log.New(os.Stderr, "fold generator: ", log.LstdFlags)

var verbose = flag.Bool("v", false, "verbose output")

func main() {
	flag.Parse()
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package fold")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Code generated by ./internal/generator from CaseFolding.txt and UnicodeData.txt. DO NOT EDIT.")
	foldings(&buf)
	strippings(&buf)
	emitRuns(&buf, "_FoldRuns", foldRuns)
	emitRuns(&buf, "_StripRuns", stripRuns)
	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		logger.Fatalf("writing tables.go: %v", err)
	}
}

// foldings collects the full case foldings of CaseFolding.txt that differ
// from unicode.ToLower.
func foldings(buf *bytes.Buffer) {
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/CaseFolding.txt")
	if err != nil {
		logger.Fatalf("loading CaseFolding.txt: %v", err)
	}
	defer f.Close()
	entries := 0
	fmt.Fprintln(buf, "var _FoldMap = map[rune]replacement{")
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		status := token.Field(1)
		if status != "C" && status != "F" {
			return
		}
		from, _ := token.Range()
		if from >= 0x13a0 && from <= 0x13fd || from >= 0xab70 && from <= 0xabbf {
			return // Cherokee, folded arithmetically at lookup time
		}
		folded := parseRunes(token.Field(2))
		if len(folded) == 1 && folded[0] == unicode.ToLower(from) {
			return // simple lowercasing, resolved at lookup time
		}
		fmt.Fprintf(buf, "\t%#x: %s,\n", from, replLiteral(folded, &foldRuns))
		entries++
	})
	if err != nil {
		logger.Fatalf("parsing CaseFolding.txt: %v", err)
	}
	fmt.Fprintln(buf, "}")
	if *verbose {
		logger.Printf("%d foldings collected", entries)
	}
}

// translit carries the base-letter transliterations of letters that have
// no Unicode decomposition at all. Hand-maintained.
var translit = map[rune]string{
	0x00c6: "AE", 0x00e6: "ae",
	0x00d0: "D", 0x00f0: "d",
	0x00d8: "O", 0x00f8: "o",
	0x00de: "TH", 0x00fe: "th",
	0x0110: "D", 0x0111: "d",
	0x0131: "i",
	0x0141: "L", 0x0142: "l",
	0x0152: "OE", 0x0153: "oe",
}

// strippings emits the transliterations and the squared Latin
// abbreviations of UnicodeData.txt whose compatibility decomposition is
// plain lower-case ASCII letters.
func strippings(buf *bytes.Buffer) {
	f, err := os.Open(os.Getenv("GOPATH") + "/etc/UnicodeData.txt")
	if err != nil {
		logger.Fatalf("loading UnicodeData.txt: %v", err)
	}
	defer f.Close()
	fmt.Fprintln(buf, "var _StripMap = map[rune]replacement{")
	from := make([]rune, 0, len(translit))
	for r := range translit {
		from = append(from, r)
	}
	sort.Slice(from, func(i, j int) bool { return from[i] < from[j] })
	for _, r := range from {
		fmt.Fprintf(buf, "\t%#x: %s,\n", r, replLiteral([]rune(translit[r]), &stripRuns))
	}
	entries := len(from)
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		decomp := token.Field(5)
		if !strings.HasPrefix(decomp, "<square> ") {
			return
		}
		expansion := parseRunes(strings.TrimPrefix(decomp, "<square> "))
		for _, r := range expansion {
			if r < 'a' || r > 'z' {
				return
			}
		}
		r, _ := token.Range()
		fmt.Fprintf(buf, "\t%#x: %s,\n", r, replLiteral(expansion, &stripRuns))
		entries++
	})
	if err != nil {
		logger.Fatalf("parsing UnicodeData.txt: %v", err)
	}
	fmt.Fprintln(buf, "}")
	if *verbose {
		logger.Printf("%d strippings collected", entries)
	}
}

// foldRuns and stripRuns accumulate the expansions longer than two
// code-points; they become the run side tables.
var foldRuns, stripRuns [][]rune

func replLiteral(expansion []rune, runs *[][]rune) string {
	switch len(expansion) {
	case 0:
		return "{op: replNone}"
	case 1:
		return fmt.Sprintf("{op: replOne, a: %#x}", expansion[0])
	case 2:
		return fmt.Sprintf("{op: replPair, a: %#x, b: %#x}", expansion[0], expansion[1])
	}
	*runs = append(*runs, expansion)
	return fmt.Sprintf("{op: replRun, a: %d}", len(*runs)-1)
}

func emitRuns(buf *bytes.Buffer, name string, runs [][]rune) {
	fmt.Fprintf(buf, "\nvar %s = [][]rune{\n", name)
	for _, run := range runs {
		fmt.Fprint(buf, "\t{")
		for i, r := range run {
			if i > 0 {
				fmt.Fprint(buf, ", ")
			}
			fmt.Fprintf(buf, "%#x", r)
		}
		fmt.Fprintln(buf, "},")
	}
	fmt.Fprintln(buf, "}")
}

func parseRunes(field string) []rune {
	var rs []rune
	for _, part := range strings.Fields(field) {
		n, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			logger.Fatalf("parsing code-point %q: %v", part, err)
		}
		rs = append(rs, rune(n))
	}
	return rs
}
