package grapheme

import (
	"github.com/npillmayer/textops"
	"github.com/npillmayer/textops/internal/tracing"
)

// iterPool recycles scanning iterators between NextBreak calls.
var iterPool = textops.NewIteratorPool[Class]()

// NextBreak locates the grapheme cluster boundary following the code-point
// at offset, applying the rules GB1–GB999 of UAX#29. The returned position
// is a code-point index into text; the cluster starting at offset spans
// text[offset:NextBreak(text, offset)]. For the last cluster of the text the
// returned position equals len(text).
//
// offset is interpreted as the start of a cluster: rules looking at context
// before offset are evaluated against the text from offset on only.
//
// NextBreak panics if offset is outside the range 0 ≤ offset < len(text).
func NextBreak(text []rune, offset int) int {
	textops.CheckOffset(offset, len(text))
	SetupGraphemeClasses()
	it := iterPool.Borrow(text, offset, ClassForRune)
	defer iterPool.Release(it)
	for {
		cur, la := it.Cur(), it.La()
		tracing.P("class", cur).Debugf("proceeding with rune %+q", it.Rune())
		if la == 0 { // GB2: break at end of text
			return it.Pos() + 1
		}
		switch {
		case cur&CRClass != 0 && la&LFClass != 0: // GB3
			tracing.P("class", cur).Debugf("fire rule GB3 CR x LF")
			it.Advance()
		case cur&(ControlClass|CRClass|LFClass) != 0: // GB4
			tracing.P("class", cur).Debugf("fire rule GB4 Control")
			return it.Pos() + 1
		case la&(ControlClass|CRClass|LFClass) != 0: // GB5
			tracing.P("class", la).Debugf("fire rule GB5 Control")
			return it.Pos() + 1
		case cur&LClass != 0 && la&(LClass|VClass|LVClass|LVTClass) != 0: // GB6
			it.Advance()
		case cur&(LVClass|VClass) != 0 && la&(VClass|TClass) != 0: // GB7
			it.Advance()
		case cur&(LVTClass|TClass) != 0 && la&TClass != 0: // GB8
			it.Advance()
		case la&(ExtendClass|ZWJClass|SpacingMarkClass) != 0: // GB9, GB9a
			tracing.P("class", la).Debugf("fire rule GB9 ZWJ|Extend|SpacingMark")
			it.Advance()
		case cur&PrependClass != 0: // GB9b
			it.Advance()
		case la&InCBConsonantClass != 0 && conjunctContext(text, offset, it.Pos()): // GB9c
			tracing.P("class", la).Debugf("fire rule GB9c conjunct cluster")
			it.Advance()
		case cur&ZWJClass != 0 && la&PictographicClass != 0 &&
			pictographicContext(text, offset, it.Pos()-1): // GB11
			tracing.P("class", la).Debugf("fire rule GB11 emoji ZWJ sequence")
			it.Advance()
		case cur&Regional_IndicatorClass != 0 && la&Regional_IndicatorClass != 0: // GB12, GB13
			tracing.P("class", cur).Debugf("fire rule GB12 RI")
			it.Advance() // pair of flags
			if it.La()&Regional_IndicatorClass != 0 {
				return it.Pos() + 1 // pair is complete, next flag starts a new one
			}
		default: // GB999
			return it.Pos() + 1
		}
	}
}

// conjunctContext reports whether the code-points of text[floor:] up to
// and including pos end in
//
//	Consonant [Extend Linker]* Linker [Extend Linker]*
//
// i.e. whether rule GB9c forbids a break before a following consonant.
// The scan never looks below floor, the start of the current cluster.
func conjunctContext(text []rune, floor, pos int) bool {
	sawLinker := false
	for i := pos; i >= floor; i-- {
		c := ClassForRune(text[i])
		if c&InCBLinkerClass != 0 {
			sawLinker = true
			continue
		}
		if c&(ExtendClass|ZWJClass) != 0 {
			continue
		}
		if c&InCBConsonantClass != 0 {
			return sawLinker
		}
		return false
	}
	return false
}

// pictographicContext reports whether the code-points of text[floor:] up
// to and including pos end in Extended_Pictographic Extend*, the left
// context of rule GB11 (the ZWJ itself sits at pos+1).
func pictographicContext(text []rune, floor, pos int) bool {
	for i := pos; i >= floor; i-- {
		c := ClassForRune(text[i])
		if c&ExtendClass != 0 {
			continue
		}
		return c&PictographicClass != 0
	}
	return false
}
