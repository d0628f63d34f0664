package sentence

// Code generated by ./internal/generator from SentenceBreakProperty.txt.
// DO NOT EDIT.
//
// Unicode version 15.0.0

import "unicode"

// classTables pairs each table-driven class bit with its range table.
// CR, LF, Sep and the zero-width joiners are resolved in ClassForRune
// without tables; letter classes are derived from the case and letter
// tables of the standard library, Close subsumes the standard paired
// punctuation categories.
var classTables []struct {
	class Class
	table *unicode.RangeTable
}

func setupSentenceClasses() {
	classTables = []struct {
		class Class
		table *unicode.RangeTable
	}{
		{SpClass, _Sp},
		{NumericClass, unicode.Nd},
		{ATermClass, _ATerm},
		{STermClass, _STerm},
		{SContinueClass, _SContinue},
		{CloseClass, _Close},
		{CloseClass, unicode.Ps},
		{CloseClass, unicode.Pe},
		{CloseClass, unicode.Pi},
		{CloseClass, unicode.Pf},
	}
}

var _Sp = &unicode.RangeTable{ // 9 entries
	R16: []unicode.Range16{
		{0x0009, 0x0009, 1},
		{0x000b, 0x000c, 1},
		{0x0020, 0x0020, 1},
		{0x00a0, 0x00a0, 1},
		{0x1680, 0x1680, 1},
		{0x2000, 0x200a, 1},
		{0x202f, 0x202f, 1},
		{0x205f, 0x205f, 1},
		{0x3000, 0x3000, 1},
	},
	LatinOffset: 4,
}

var _ATerm = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x002e, 0x002e, 1},
		{0x2024, 0x2024, 1},
		{0xfe52, 0xfe52, 1},
		{0xff0e, 0xff0e, 1},
	},
	LatinOffset: 1,
}

var _STerm = &unicode.RangeTable{ // 46 entries
	R16: []unicode.Range16{
		{0x0021, 0x0021, 1},
		{0x003f, 0x003f, 1},
		{0x0589, 0x0589, 1},
		{0x061d, 0x061f, 1},
		{0x06d4, 0x06d4, 1},
		{0x0700, 0x0702, 1},
		{0x07f9, 0x07f9, 1},
		{0x0837, 0x0837, 1},
		{0x0839, 0x0839, 1},
		{0x083d, 0x083e, 1},
		{0x0964, 0x0965, 1},
		{0x104a, 0x104b, 1},
		{0x1362, 0x1362, 1},
		{0x1367, 0x1368, 1},
		{0x166e, 0x166e, 1},
		{0x1735, 0x1736, 1},
		{0x1803, 0x1803, 1},
		{0x1809, 0x1809, 1},
		{0x1944, 0x1945, 1},
		{0x1aa8, 0x1aab, 1},
		{0x1b5a, 0x1b5b, 1},
		{0x1b5e, 0x1b5f, 1},
		{0x1b7d, 0x1b7e, 1},
		{0x1c3b, 0x1c3c, 1},
		{0x1c7e, 0x1c7f, 1},
		{0x203c, 0x203d, 1},
		{0x2047, 0x2049, 1},
		{0x2e2e, 0x2e2e, 1},
		{0x2e3c, 0x2e3c, 1},
		{0x2e53, 0x2e54, 1},
		{0x3002, 0x3002, 1},
		{0xa4ff, 0xa4ff, 1},
		{0xa60e, 0xa60f, 1},
		{0xa6f3, 0xa6f3, 1},
		{0xa6f7, 0xa6f7, 1},
		{0xa876, 0xa877, 1},
		{0xa8ce, 0xa8cf, 1},
		{0xa92f, 0xa92f, 1},
		{0xa9c8, 0xa9c9, 1},
		{0xaa5d, 0xaa5f, 1},
		{0xaaf0, 0xaaf1, 1},
		{0xabeb, 0xabeb, 1},
		{0xfe56, 0xfe57, 1},
		{0xff01, 0xff01, 1},
		{0xff1f, 0xff1f, 1},
		{0xff61, 0xff61, 1},
	},
	R32: []unicode.Range32{
		{0x10a56, 0x10a57, 1},
		{0x11047, 0x11048, 1},
		{0x110be, 0x110c1, 1},
		{0x11141, 0x11143, 1},
		{0x111c5, 0x111c6, 1},
		{0x111cd, 0x111cd, 1},
		{0x111de, 0x111df, 1},
		{0x11238, 0x11239, 1},
		{0x1123b, 0x1123c, 1},
		{0x112a9, 0x112a9, 1},
		{0x1144b, 0x1144c, 1},
		{0x115c2, 0x115c3, 1},
		{0x115c9, 0x115d7, 1},
		{0x11641, 0x11642, 1},
		{0x1173c, 0x1173e, 1},
		{0x11944, 0x11944, 1},
		{0x11946, 0x11946, 1},
		{0x11a42, 0x11a43, 1},
		{0x11a9b, 0x11a9c, 1},
		{0x11c41, 0x11c42, 1},
		{0x11ef7, 0x11ef8, 1},
		{0x16a6e, 0x16a6f, 1},
		{0x16af5, 0x16af5, 1},
		{0x16b37, 0x16b38, 1},
		{0x16b44, 0x16b44, 1},
		{0x16e98, 0x16e98, 1},
		{0x1bc9f, 0x1bc9f, 1},
		{0x1da88, 0x1da88, 1},
	},
	LatinOffset: 2,
}

var _SContinue = &unicode.RangeTable{ // 22 entries
	R16: []unicode.Range16{
		{0x002c, 0x002d, 1},
		{0x003a, 0x003a, 1},
		{0x055d, 0x055d, 1},
		{0x060c, 0x060d, 1},
		{0x07f8, 0x07f8, 1},
		{0x1802, 0x1802, 1},
		{0x1808, 0x1808, 1},
		{0x2013, 0x2014, 1},
		{0x3001, 0x3001, 1},
		{0xfe10, 0xfe11, 1},
		{0xfe13, 0xfe13, 1},
		{0xfe31, 0xfe32, 1},
		{0xfe50, 0xfe51, 1},
		{0xfe55, 0xfe55, 1},
		{0xfe58, 0xfe58, 1},
		{0xfe63, 0xfe63, 1},
		{0xff0c, 0xff0d, 1},
		{0xff1a, 0xff1a, 1},
		{0xff64, 0xff64, 1},
	},
	LatinOffset: 2,
}

// Close code-points beyond the paired punctuation categories Ps/Pe/Pi/Pf.
var _Close = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x0022, 0x0022, 1},
		{0x0027, 0x0027, 1},
		{0xff02, 0xff02, 1},
		{0xff07, 0xff07, 1},
	},
	LatinOffset: 2,
}
