package sentence

import (
	"github.com/npillmayer/textops"
	"github.com/npillmayer/textops/internal/tracing"
)

var iterPool = textops.NewIteratorPool[Class]()

// ignorable is the mask of code-points rule SB5 attaches to the preceding
// code-point: (Extend | Format).
const ignorable = ExtendClass | FormatClass

// paraSep is the mask of the paragraph separator classes of rule SB4.
const paraSep = SepClass | CRClass | LFClass

// saTerm is the mask of the sentence terminator classes.
const saTerm = ATermClass | STermClass

// NextBreak locates the sentence boundary following the code-point at
// offset, applying the rules SB1–SB998 of UAX#29. The returned position is a
// code-point index into text; for the last sentence of the text it equals
// len(text).
//
// offset is interpreted as the start of a sentence: rules looking at context
// before offset are evaluated against the text from offset on only.
//
// NextBreak panics if offset is outside the range 0 ≤ offset < len(text).
func NextBreak(text []rune, offset int) int {
	textops.CheckOffset(offset, len(text))
	SetupSentenceClasses()
	it := iterPool.Borrow(text, offset, ClassForRune)
	defer iterPool.Release(it)
	prev := Class(0) // class of the code-point before the current one
	for {
		cur, la := it.Cur(), it.La()
		tracing.P("class", cur).Debugf("proceeding with rune %+q", it.Rune())
		if la == 0 { // SB2: break at end of text
			return it.Pos() + 1
		}
		if cur&CRClass != 0 && la&LFClass != 0 { // SB3
			prev = cur
			it.Advance()
			continue
		}
		if cur&paraSep != 0 { // SB4
			tracing.P("class", cur).Debugf("fire rule SB4 Sep|CR|LF")
			return it.Pos() + 1
		}
		if la&ignorable != 0 { // SB5
			tracing.P("class", la).Debugf("fire rule SB5 Extend|Format")
			it.Absorb(ignorable, 0)
			if la = it.La(); la == 0 {
				return it.Pos() + 1
			}
		}
		if cur&saTerm == 0 { // SB998: no break by default
			prev = cur
			it.Advance()
			continue
		}
		if cur&ATermClass != 0 {
			if la&NumericClass != 0 { // SB6
				prev = cur
				it.Advance()
				continue
			}
			if prev&(UpperClass|LowerClass) != 0 && la&UpperClass != 0 { // SB7
				prev = cur
				it.Advance()
				continue
			}
		}
		it.Absorb(CloseClass, ignorable) // SB9
		it.Absorb(SpClass, ignorable)    // SB10
		la = it.La()
		if la == 0 {
			return it.Pos() + 1
		}
		if cur&ATermClass != 0 && lowerAhead(text, it.Pos()+1) { // SB8
			tracing.P("class", cur).Debugf("fire rule SB8 ATerm followed by lower")
			prev = cur
			it.Advance()
			continue
		}
		if la&(SContinueClass|saTerm) != 0 { // SB8a
			prev = cur
			it.Advance()
			continue
		}
		if la&paraSep != 0 { // SB11, trailing paragraph separator included
			it.Advance()
			if it.Cur()&CRClass != 0 && it.La()&LFClass != 0 {
				it.Advance()
			}
			return it.Pos() + 1
		}
		tracing.P("class", cur).Debugf("fire rule SB11 sentence terminator")
		return it.Pos() + 1 // SB11
	}
}

// lowerAhead reports whether text continues with zero or more neutral
// code-points followed by a lower-case letter, the right-hand context of
// rule SB8 ("The quick brown fox.") that keeps an abbreviation dot from
// ending the sentence.
func lowerAhead(text []rune, pos int) bool {
	for i := pos; i < len(text); i++ {
		c := ClassForRune(text[i])
		if c&LowerClass != 0 {
			return true
		}
		if c&(OLetterClass|UpperClass|paraSep|saTerm) != 0 {
			return false
		}
	}
	return false
}
