package line

import (
	"github.com/npillmayer/textops"
	"github.com/npillmayer/textops/internal/tracing"
)

// iterPool recycles scanning iterators between NextBreak calls.
var iterPool = textops.NewIteratorPool[Class]()

const zwj = 0x200d

// Classes after which a combining mark is not absorbed (rule LB9) but
// stands alone and is treated as AL (rule LB10).
const noAbsorbAfter = BKClass | CRClass | LFClass | NLClass | SPClass | ZWClass

// NextBreak locates the line break opportunity following the code-point at
// offset, applying the rules LB2–LB31 of UAX#14. The returned position is a
// code-point index into text; the line segment starting at offset spans
// text[offset:NextBreak(text, offset)]. For the last segment of the text
// the returned position equals len(text).
//
// The opportunity may be a mandatory break (after BK, CR, LF, NL) or an
// optional one; NextHardBreak finds mandatory breaks only. offset is
// interpreted as the start of a line: rules looking at context before
// offset are evaluated against the text from offset on only.
//
// NextBreak panics if offset is outside the range 0 ≤ offset < len(text).
func NextBreak(text []rune, offset int) int {
	textops.CheckOffset(offset, len(text))
	SetupLineClasses()
	it := iterPool.Borrow(text, offset, ClassForRune)
	defer iterPool.Release(it)
	var prev Class     // class of the code-point before the current one
	var beforeSP Class // class of the code-point before the current space run
	piGlue := false    // an opening quote glues across following spaces (LB15a)
	for {
		cur := it.Cur()
		if cur&noAbsorbAfter == 0 {
			it.Absorb(CMClass|ZWJClass, 0) // LB9: treat X (CM|ZWJ)* as X
			if cur&(CMClass|ZWJClass) != 0 {
				tracing.P("class", cur).Debugf("fire rule LB10 standalone mark as AL")
				cur = ALClass // LB10: standalone marks count as AL
			}
		}
		la := it.La()
		tracing.P("class", cur).Debugf("proceeding with rune %+q", it.Rune())
		zwjTail := it.Rune() == zwj // last code-point of the segment so far
		if la == 0 {
			return it.Pos() + 1 // LB3: break at end of text
		}
		before := cur // left side of the SP* rules LB8, LB14, LB16, LB17
		if cur&SPClass != 0 {
			before = beforeSP
		}
		if cur&QUClass != 0 && cur&piFlag != 0 &&
			(prev == 0 || prev&(BKClass|CRClass|LFClass|NLClass|OPClass|QUClass|GLClass|SPClass|ZWClass) != 0) {
			piGlue = true // LB15a left context holds
		} else if cur&SPClass == 0 {
			piGlue = false
		}
		switch {
		case cur&CRClass != 0 && la&LFClass != 0: // LB5: CR × LF
			it.Advance()
		case cur&(BKClass|CRClass|LFClass|NLClass) != 0: // LB4, LB5
			tracing.P("class", cur).Debugf("fire rule LB4 mandatory break")
			return it.Pos() + 1
		case la&(BKClass|CRClass|LFClass|NLClass) != 0: // LB6
			it.Advance()
		case la&(SPClass|ZWClass) != 0: // LB7
			if cur&SPClass == 0 {
				beforeSP = cur
			}
			it.Advance()
		case before&ZWClass != 0: // LB8: ZW SP* ÷
			tracing.P("class", before).Debugf("fire rule LB8 ZW")
			return it.Pos() + 1
		case zwjTail: // LB8a: ZWJ ×
			it.Advance()
		case cur&WJClass != 0 || la&WJClass != 0: // LB11
			it.Advance()
		case cur&GLClass != 0: // LB12
			it.Advance()
		case la&GLClass != 0 && cur&(SPClass|BAClass|HYClass) == 0: // LB12a
			it.Advance()
		case la&(CLClass|CPClass|EXClass|ISClass|SYClass) != 0: // LB13
			it.Advance()
		case before&OPClass != 0: // LB14: OP SP* ×
			it.Advance()
		case piGlue: // LB15a: [Pi]QU SP* ×
			it.Advance()
		case la&QUClass != 0 && la&pfFlag != 0 && pfContext(text, it.Pos()+2): // LB15b
			it.Advance()
		case before&(CLClass|CPClass) != 0 && la&NSClass != 0: // LB16
			it.Advance()
		case before&B2Class != 0 && la&B2Class != 0: // LB17
			it.Advance()
		case cur&SPClass != 0: // LB18: SP ÷
			tracing.P("class", cur).Debugf("fire rule LB18 break after spaces")
			return it.Pos() + 1
		case cur&QUClass != 0 || la&QUClass != 0: // LB19
			it.Advance()
		case cur&CBClass != 0 || la&CBClass != 0: // LB20
			return it.Pos() + 1
		case la&(BAClass|HYClass|NSClass) != 0 || cur&BBClass != 0: // LB21
			it.Advance()
		case prev&HLClass != 0 && la&HLClass == 0 &&
			(cur&HYClass != 0 || cur&BAClass != 0 && cur&eaFlag == 0): // LB21a
			it.Advance()
		case cur&SYClass != 0 && la&HLClass != 0: // LB21b
			it.Advance()
		case la&INClass != 0: // LB22
			it.Advance()
		case cur&(ALClass|HLClass) != 0 && la&NUClass != 0: // LB23
			it.Advance()
		case cur&NUClass != 0 && la&(ALClass|HLClass) != 0: // LB23
			it.Advance()
		case cur&PRClass != 0 && la&(IDClass|EBClass|EMClass) != 0: // LB23a
			it.Advance()
		case cur&(IDClass|EBClass|EMClass) != 0 && la&POClass != 0: // LB23a
			it.Advance()
		case cur&(PRClass|POClass) != 0 && la&(ALClass|HLClass) != 0: // LB24
			it.Advance()
		case cur&(ALClass|HLClass) != 0 && la&(PRClass|POClass) != 0: // LB24
			it.Advance()
		case cur&(CLClass|CPClass|NUClass) != 0 && la&(POClass|PRClass) != 0: // LB25
			it.Advance()
		case cur&(POClass|PRClass) != 0 && la&(OPClass|NUClass) != 0: // LB25
			it.Advance()
		case cur&(HYClass|ISClass|NUClass|SYClass) != 0 && la&NUClass != 0: // LB25
			it.Advance()
		case cur&JLClass != 0 && la&(JLClass|JVClass|H2Class|H3Class) != 0: // LB26
			it.Advance()
		case cur&(JVClass|H2Class) != 0 && la&(JVClass|JTClass) != 0: // LB26
			it.Advance()
		case cur&(JTClass|H3Class) != 0 && la&JTClass != 0: // LB26
			it.Advance()
		case cur&(JLClass|JVClass|JTClass|H2Class|H3Class) != 0 && la&POClass != 0: // LB27
			it.Advance()
		case cur&PRClass != 0 && la&(JLClass|JVClass|JTClass|H2Class|H3Class) != 0: // LB27
			it.Advance()
		case cur&(ALClass|HLClass) != 0 && la&(ALClass|HLClass) != 0: // LB28
			it.Advance()
		case cur&APClass != 0 && akLike(la): // LB28a
			it.Advance()
		case akLike(cur) && la&(VFClass|VIClass) != 0: // LB28a
			it.Advance()
		case akLike(prev) && cur&VIClass != 0 && la&(AKClass|dcFlag) != 0: // LB28a
			it.Advance()
		case akLike(cur) && akLike(la) && vfAfter(text, it.Pos()+2): // LB28a
			it.Advance()
		case cur&ISClass != 0 && la&(ALClass|HLClass) != 0: // LB29
			it.Advance()
		case cur&(ALClass|HLClass|NUClass) != 0 && la&OPClass != 0 && la&eaFlag == 0: // LB30
			it.Advance()
		case cur&CPClass != 0 && cur&eaFlag == 0 && la&(ALClass|HLClass|NUClass) != 0: // LB30
			it.Advance()
		case cur&RIClass != 0 && la&RIClass != 0: // LB30a
			it.Advance() // pair of flags
			if it.La()&RIClass != 0 {
				return it.Pos() + 1 // pair is complete, next flag starts a new one
			}
		case cur&EBClass != 0 && la&EMClass != 0: // LB30b
			it.Advance()
		default: // LB31
			tracing.P("class", cur).Debugf("fire rule LB31 break everywhere else")
			return it.Pos() + 1
		}
		prev = cur
	}
}

// NextHardBreak locates the mandatory line break following the code-point
// at offset: the position after the next BK, CR, LF or NL code-point, with
// CR LF counting as a single separator (rules LB4 and LB5). If no separator
// follows, the returned position equals len(text).
//
// NextHardBreak panics if offset is outside the range 0 ≤ offset < len(text).
func NextHardBreak(text []rune, offset int) int {
	textops.CheckOffset(offset, len(text))
	for i := offset; i < len(text); i++ {
		switch text[i] {
		case '\n', 0x000b, 0x000c, 0x0085, 0x2028, 0x2029:
			return i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		}
	}
	return len(text)
}

func akLike(c Class) bool {
	return c&(AKClass|ASClass|dcFlag) != 0
}

// pfContext reports whether the code-point at pos lets a preceding [Pf]
// quote close a quotation, i.e. the right context of rule LB15b holds.
func pfContext(text []rune, pos int) bool {
	if pos >= len(text) {
		return true
	}
	c := ClassForRune(text[pos])
	return c&(SPClass|GLClass|WJClass|CLClass|QUClass|CPClass|EXClass|ISClass|SYClass|
		BKClass|CRClass|LFClass|NLClass|ZWClass) != 0
}

func vfAfter(text []rune, pos int) bool {
	return pos < len(text) && ClassForRune(text[pos])&VFClass != 0
}
