/*
Package ucdparse provides a parser for Unicode Character Database files.

The file format is defined in http://www.unicode.org/reports/tr44/; see
http://www.unicode.org/Public/UCD/latest/ucd/ for example files. The parser
is used by the table generators of this module and deliberately depends on
the standard library only, so that generators can run before any tables
exist.
*/
package ucdparse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Token subsumes the properties of one data line of a UCD file: a single
// code-point or a code-point range, followed by semicolon-separated fields,
// optionally trailed by a comment.
type Token struct {
	LineNo  int      // line number within the input source
	from    rune     // first/single code-point
	to      rune     // final code-point of range (identical to from for singles)
	fields  []string // data fields, without the leading code-point field
	Comment string   // rest-of-line comment, if any
}

// Range gets the code-point range of the data item. Single code-points
// are denoted by from == to.
func (token *Token) Range() (from, to rune) {
	return token.from, token.to
}

// Field gets data field #1…n of the data item, with surrounding blanks
// stripped. Field numbers out of range yield "".
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.fields) {
		return token.fields[i-1]
	}
	return ""
}

// Parse reads a UCD file line by line and calls f for every data item.
// Comment-only and empty lines are skipped. Mal-formed code-point fields
// abort the parse with an error.
func Parse(r io.Reader, f func(*Token)) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment := strings.TrimSpace(line[i+1:])
			line = line[:i]
			if strings.TrimSpace(line) == "" {
				continue
			}
			token, err := parseDataItem(line, lineno)
			if err != nil {
				return err
			}
			token.Comment = comment
			f(token)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		token, err := parseDataItem(line, lineno)
		if err != nil {
			return err
		}
		f(token)
	}
	return scanner.Err()
}

func parseDataItem(line string, lineno int) (*Token, error) {
	parts := strings.Split(line, ";")
	token := &Token{LineNo: lineno}
	cps := strings.TrimSpace(parts[0])
	var err error
	if i := strings.Index(cps, ".."); i >= 0 {
		if token.from, err = parseCodepoint(cps[:i]); err != nil {
			return nil, err
		}
		if token.to, err = parseCodepoint(cps[i+2:]); err != nil {
			return nil, err
		}
	} else {
		if token.from, err = parseCodepoint(cps); err != nil {
			return nil, err
		}
		token.to = token.from
	}
	for _, field := range parts[1:] {
		token.fields = append(token.fields, strings.TrimSpace(field))
	}
	return token, nil
}

func parseCodepoint(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	return rune(n), err
}
