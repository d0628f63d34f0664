package word

import (
	"github.com/npillmayer/textops"
	"github.com/npillmayer/textops/internal/tracing"
)

var iterPool = textops.NewIteratorPool[Class]()

// ignorable is the mask of code-points rule WB4 attaches to the preceding
// word unit: (Extend | Format | ZWJ).
const ignorable = ExtendClass | FormatClass | ZWJClass

// NextBreak locates the word boundary following the code-point at offset,
// applying the rules WB1–WB999 of UAX#29. The returned position is a
// code-point index into text; for the last word of the text it equals
// len(text).
//
// offset is interpreted as the start of a word: rules looking at context
// before offset are evaluated against the text from offset on only.
//
// NextBreak panics if offset is outside the range 0 ≤ offset < len(text).
func NextBreak(text []rune, offset int) int {
	textops.CheckOffset(offset, len(text))
	SetupWordClasses()
	it := iterPool.Borrow(text, offset, ClassForRune)
	defer iterPool.Release(it)
	for {
		cur, la := it.Cur(), it.La()
		tracing.P("class", cur).Debugf("proceeding with rune %+q", it.Rune())
		if la == 0 { // WB2: break at end of text
			return it.Pos() + 1
		}
		if cur&CRClass != 0 && la&LFClass != 0 { // WB3
			tracing.P("class", cur).Debugf("fire rule WB3 CR x LF")
			it.Advance()
			continue
		}
		if cur&(NewlineClass|CRClass|LFClass) != 0 { // WB3a
			tracing.P("class", cur).Debugf("fire rule WB3a Newline")
			return it.Pos() + 1
		}
		if la&(NewlineClass|CRClass|LFClass) != 0 { // WB3b
			return it.Pos() + 1
		}
		// WB3c: ZWJ × ExtPict. Checked before WB4 attaches the ZWJ to the
		// preceding unit, as WB3c has priority over WB4.
		if cur&ZWJClass != 0 && la&PictographicClass != 0 {
			it.Advance()
			continue
		}
		if la&ZWJClass != 0 {
			it.Begin()
			it.Advance() // onto the ZWJ
			if it.La()&PictographicClass != 0 {
				it.Commit()
				it.Advance() // onto the pictograph
				continue
			}
			it.Rollback()
		}
		if cur&WSegSpaceClass != 0 && la&WSegSpaceClass != 0 { // WB3d
			it.Advance()
			continue
		}
		if la&ignorable != 0 { // WB4
			tracing.P("class", la).Debugf("fire rule WB4 Extend|Format|ZWJ")
			it.Absorb(ignorable, 0)
			if la = it.La(); la == 0 {
				return it.Pos() + 1
			}
		}
		if cur&AHLetter != 0 && la&AHLetter != 0 { // WB5
			it.Advance()
			continue
		}
		if cur&AHLetter != 0 && la&(MidLetterClass|MidNumLetQ) != 0 { // WB6, WB7
			if joinAcross(it, AHLetter) {
				continue
			}
		}
		if cur&Hebrew_LetterClass != 0 && la&Single_QuoteClass != 0 { // WB7a
			it.Advance()
			continue
		}
		if cur&Hebrew_LetterClass != 0 && la&Double_QuoteClass != 0 { // WB7b, WB7c
			if joinAcross(it, Hebrew_LetterClass) {
				continue
			}
		}
		if cur&NumericClass != 0 && la&NumericClass != 0 { // WB8
			it.Advance()
			continue
		}
		if cur&AHLetter != 0 && la&NumericClass != 0 { // WB9
			it.Advance()
			continue
		}
		if cur&NumericClass != 0 && la&AHLetter != 0 { // WB10
			it.Advance()
			continue
		}
		if cur&NumericClass != 0 && la&(MidNumClass|MidNumLetQ) != 0 { // WB11, WB12
			if joinAcross(it, NumericClass) {
				continue
			}
		}
		if cur&KatakanaClass != 0 && la&KatakanaClass != 0 { // WB13
			it.Advance()
			continue
		}
		if cur&(AHLetter|NumericClass|KatakanaClass|ExtendNumLetClass) != 0 &&
			la&ExtendNumLetClass != 0 { // WB13a
			it.Advance()
			continue
		}
		if cur&ExtendNumLetClass != 0 &&
			la&(AHLetter|NumericClass|KatakanaClass) != 0 { // WB13b
			it.Advance()
			continue
		}
		if cur&Regional_IndicatorClass != 0 && la&Regional_IndicatorClass != 0 { // WB15, WB16
			tracing.P("class", cur).Debugf("fire rule WB15 RI")
			it.Advance() // pair of flags
			it.Absorb(ignorable, 0)
			if it.La()&Regional_IndicatorClass != 0 {
				return it.Pos() + 1 // pair is complete, next flag starts a new one
			}
			continue
		}
		tracing.P("class", cur).Debugf("fire rule WB999 any x any")
		return it.Pos() + 1 // WB999
	}
}

// joinAcross speculatively advances across a single mid code-point (plus
// WB4 absorbees) if the code-point after it matches target, implementing
// the two-sided rules WB6/7, WB7b/c and WB11/12. It reports whether the
// join succeeded; on failure the iterator is left unchanged.
func joinAcross(it *textops.Iterator[Class], target Class) bool {
	it.Begin()
	it.Advance() // onto the mid code-point
	it.Absorb(ignorable, 0)
	if it.La()&target != 0 {
		it.Advance()
		it.Commit()
		return true
	}
	it.Rollback()
	return false
}
