package word

// Code generated by ./internal/generator from WordBreakProperty.txt.
// DO NOT EDIT.
//
// Unicode version 15.0.0

import "unicode"

// classTables pairs each table-driven class bit with its range table.
// CR, LF, ZWJ, Newline and the quote classes are resolved in ClassForRune
// without tables; the letter classes are derived from the Unicode script
// tables of the standard library.
var classTables []struct {
	class Class
	table *unicode.RangeTable
}

func setupWordClasses() {
	classTables = []struct {
		class Class
		table *unicode.RangeTable
	}{
		{MidLetterClass, _MidLetter},
		{MidNumClass, _MidNum},
		{MidNumLetClass, _MidNumLet},
		{NumericClass, unicode.Nd},
		{ExtendNumLetClass, _ExtendNumLet},
		{WSegSpaceClass, _WSegSpace},
		{Regional_IndicatorClass, _Regional_Indicator},
	}
}

var _MidLetter = &unicode.RangeTable{ // 9 entries
	R16: []unicode.Range16{
		{0x003a, 0x003a, 1},
		{0x00b7, 0x00b7, 1},
		{0x0387, 0x0387, 1},
		{0x055f, 0x055f, 1},
		{0x05f4, 0x05f4, 1},
		{0x2027, 0x2027, 1},
		{0xfe13, 0xfe13, 1},
		{0xfe55, 0xfe55, 1},
		{0xff1a, 0xff1a, 1},
	},
	LatinOffset: 1,
}

var _MidNum = &unicode.RangeTable{ // 14 entries
	R16: []unicode.Range16{
		{0x002c, 0x002c, 1},
		{0x003b, 0x003b, 1},
		{0x037e, 0x037e, 1},
		{0x0589, 0x0589, 1},
		{0x060c, 0x060d, 1},
		{0x066c, 0x066c, 1},
		{0x07f8, 0x07f8, 1},
		{0x2044, 0x2044, 1},
		{0xfe10, 0xfe10, 1},
		{0xfe14, 0xfe14, 1},
		{0xfe50, 0xfe50, 1},
		{0xfe54, 0xfe54, 1},
		{0xff0c, 0xff0c, 1},
		{0xff1b, 0xff1b, 1},
	},
	LatinOffset: 2,
}

var _MidNumLet = &unicode.RangeTable{ // 7 entries
	R16: []unicode.Range16{
		{0x002e, 0x002e, 1},
		{0x2018, 0x2019, 1},
		{0x2024, 0x2024, 1},
		{0xfe52, 0xfe52, 1},
		{0xff07, 0xff07, 1},
		{0xff0e, 0xff0e, 1},
	},
	LatinOffset: 1,
}

var _ExtendNumLet = &unicode.RangeTable{ // 8 entries
	R16: []unicode.Range16{
		{0x005f, 0x005f, 1},
		{0x202f, 0x202f, 1},
		{0x203f, 0x2040, 1},
		{0x2054, 0x2054, 1},
		{0xfe33, 0xfe34, 1},
		{0xfe4d, 0xfe4f, 1},
		{0xff3f, 0xff3f, 1},
	},
	LatinOffset: 1,
}

var _WSegSpace = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x0020, 0x0020, 1},
		{0x1680, 0x1680, 1},
		{0x2000, 0x2006, 1},
		{0x2008, 0x200a, 1},
		{0x205f, 0x205f, 1},
		{0x3000, 0x3000, 1},
	},
	LatinOffset: 1,
}

var _Regional_Indicator = &unicode.RangeTable{ // 1 entries
	R32: []unicode.Range32{
		{0x1f1e6, 0x1f1ff, 1},
	},
}
