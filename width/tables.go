package width

// Code generated by ./internal/generator from EastAsianWidth.txt.
// DO NOT EDIT.
//
// Unicode version 15.0.0

import "unicode"

// rangeTables is an array of Unicode range tables, indexed by Category.
// Category N is the default for unlisted code-points and carries no table.
var rangeTables = [...]*unicode.RangeTable{
	N:  nil,
	A:  _EAW_A,
	W:  _EAW_W,
	Na: _EAW_Na,
	H:  _EAW_H,
	F:  _EAW_F,
}

var _EAW_A = &unicode.RangeTable{ // 171 entries
	R16: []unicode.Range16{
		{0x00a1, 0x00a1, 1},
		{0x00a4, 0x00a4, 1},
		{0x00a7, 0x00a8, 1},
		{0x00aa, 0x00aa, 1},
		{0x00ad, 0x00ae, 1},
		{0x00b0, 0x00b4, 1},
		{0x00b6, 0x00ba, 1},
		{0x00bc, 0x00bf, 1},
		{0x00c6, 0x00c6, 1},
		{0x00d0, 0x00d0, 1},
		{0x00d7, 0x00d8, 1},
		{0x00de, 0x00e1, 1},
		{0x00e6, 0x00e6, 1},
		{0x00e8, 0x00ea, 1},
		{0x00ec, 0x00ed, 1},
		{0x00f0, 0x00f0, 1},
		{0x00f2, 0x00f3, 1},
		{0x00f7, 0x00fa, 1},
		{0x00fc, 0x00fc, 1},
		{0x00fe, 0x00fe, 1},
		{0x0101, 0x0101, 1},
		{0x0111, 0x0111, 1},
		{0x0113, 0x0113, 1},
		{0x011b, 0x011b, 1},
		{0x0126, 0x0127, 1},
		{0x012b, 0x012b, 1},
		{0x0131, 0x0133, 1},
		{0x0138, 0x0138, 1},
		{0x013f, 0x0142, 1},
		{0x0144, 0x0144, 1},
		{0x0148, 0x014b, 1},
		{0x014d, 0x014d, 1},
		{0x0152, 0x0153, 1},
		{0x0166, 0x0167, 1},
		{0x016b, 0x016b, 1},
		{0x01ce, 0x01ce, 1},
		{0x01d0, 0x01d0, 1},
		{0x01d2, 0x01d2, 1},
		{0x01d4, 0x01d4, 1},
		{0x01d6, 0x01d6, 1},
		{0x01d8, 0x01d8, 1},
		{0x01da, 0x01da, 1},
		{0x01dc, 0x01dc, 1},
		{0x0251, 0x0251, 1},
		{0x0261, 0x0261, 1},
		{0x02c4, 0x02c4, 1},
		{0x02c7, 0x02c7, 1},
		{0x02c9, 0x02cb, 1},
		{0x02cd, 0x02cd, 1},
		{0x02d0, 0x02d0, 1},
		{0x02d8, 0x02db, 1},
		{0x02dd, 0x02dd, 1},
		{0x02df, 0x02df, 1},
		{0x2010, 0x2010, 1},
		{0x2013, 0x2016, 1},
		{0x2018, 0x2019, 1},
		{0x201c, 0x201d, 1},
		{0x2020, 0x2022, 1},
		{0x2024, 0x2027, 1},
		{0x2030, 0x2030, 1},
		{0x2032, 0x2033, 1},
		{0x2035, 0x2035, 1},
		{0x203b, 0x203b, 1},
		{0x203e, 0x203e, 1},
		{0x2074, 0x2074, 1},
		{0x207f, 0x207f, 1},
		{0x2081, 0x2084, 1},
		{0x20ac, 0x20ac, 1},
		{0x2103, 0x2103, 1},
		{0x2105, 0x2105, 1},
		{0x2109, 0x2109, 1},
		{0x2113, 0x2113, 1},
		{0x2116, 0x2116, 1},
		{0x2121, 0x2122, 1},
		{0x2126, 0x2126, 1},
		{0x212b, 0x212b, 1},
		{0x2153, 0x2154, 1},
		{0x215b, 0x215e, 1},
		{0x2160, 0x216b, 1},
		{0x2170, 0x2179, 1},
		{0x2189, 0x2189, 1},
		{0x2190, 0x2199, 1},
		{0x21b8, 0x21b9, 1},
		{0x21d2, 0x21d2, 1},
		{0x21d4, 0x21d4, 1},
		{0x21e7, 0x21e7, 1},
		{0x2200, 0x2200, 1},
		{0x2202, 0x2203, 1},
		{0x2207, 0x2208, 1},
		{0x220b, 0x220b, 1},
		{0x220f, 0x220f, 1},
		{0x2211, 0x2211, 1},
		{0x2215, 0x2215, 1},
		{0x221a, 0x221a, 1},
		{0x221d, 0x2220, 1},
		{0x2223, 0x2223, 1},
		{0x2225, 0x2225, 1},
		{0x2227, 0x222c, 1},
		{0x222e, 0x222e, 1},
		{0x2234, 0x2237, 1},
		{0x223c, 0x223d, 1},
		{0x2248, 0x2248, 1},
		{0x224c, 0x224c, 1},
		{0x2252, 0x2252, 1},
		{0x2260, 0x2261, 1},
		{0x2264, 0x2267, 1},
		{0x226a, 0x226b, 1},
		{0x226e, 0x226f, 1},
		{0x2282, 0x2283, 1},
		{0x2286, 0x2287, 1},
		{0x2295, 0x2295, 1},
		{0x2299, 0x2299, 1},
		{0x22a5, 0x22a5, 1},
		{0x22bf, 0x22bf, 1},
		{0x2312, 0x2312, 1},
		{0x2460, 0x24e9, 1},
		{0x24eb, 0x254b, 1},
		{0x2550, 0x2573, 1},
		{0x2580, 0x258f, 1},
		{0x2592, 0x2595, 1},
		{0x25a0, 0x25a1, 1},
		{0x25a3, 0x25a9, 1},
		{0x25b2, 0x25b3, 1},
		{0x25b6, 0x25b7, 1},
		{0x25bc, 0x25bd, 1},
		{0x25c0, 0x25c1, 1},
		{0x25c6, 0x25c8, 1},
		{0x25cb, 0x25cb, 1},
		{0x25ce, 0x25d1, 1},
		{0x25e2, 0x25e5, 1},
		{0x25ef, 0x25ef, 1},
		{0x2605, 0x2606, 1},
		{0x2609, 0x2609, 1},
		{0x260e, 0x260f, 1},
		{0x261c, 0x261c, 1},
		{0x261e, 0x261e, 1},
		{0x2640, 0x2640, 1},
		{0x2642, 0x2642, 1},
		{0x2660, 0x2661, 1},
		{0x2663, 0x2665, 1},
		{0x2667, 0x266a, 1},
		{0x266c, 0x266d, 1},
		{0x266f, 0x266f, 1},
		{0x269e, 0x269f, 1},
		{0x26bf, 0x26bf, 1},
		{0x26c6, 0x26cd, 1},
		{0x26cf, 0x26d3, 1},
		{0x26d5, 0x26e1, 1},
		{0x26e3, 0x26e3, 1},
		{0x26e8, 0x26e9, 1},
		{0x26eb, 0x26f1, 1},
		{0x26f4, 0x26f4, 1},
		{0x26f6, 0x26f9, 1},
		{0x26fb, 0x26fc, 1},
		{0x26fe, 0x26ff, 1},
		{0x273d, 0x273d, 1},
		{0x2776, 0x277f, 1},
		{0x2b56, 0x2b59, 1},
		{0x3248, 0x324f, 1},
		{0xe000, 0xf8ff, 1},
		{0xfe00, 0xfe0f, 1},
		{0xfffd, 0xfffd, 1},
	},
	R32: []unicode.Range32{
		{0x1f100, 0x1f10a, 1},
		{0x1f110, 0x1f12d, 1},
		{0x1f130, 0x1f169, 1},
		{0x1f170, 0x1f18d, 1},
		{0x1f18f, 0x1f190, 1},
		{0x1f19b, 0x1f1ac, 1},
		{0xe0100, 0xe01ef, 1},
		{0xf0000, 0xffffd, 1},
		{0x100000, 0x10fffd, 1},
	},
	LatinOffset: 20,
}

var _EAW_W = &unicode.RangeTable{ // 114 entries
	R16: []unicode.Range16{
		{0x1100, 0x115f, 1},
		{0x231a, 0x231b, 1},
		{0x2329, 0x232a, 1},
		{0x23e9, 0x23ec, 1},
		{0x23f0, 0x23f0, 1},
		{0x23f3, 0x23f3, 1},
		{0x25fd, 0x25fe, 1},
		{0x2614, 0x2615, 1},
		{0x2648, 0x2653, 1},
		{0x267f, 0x267f, 1},
		{0x2693, 0x2693, 1},
		{0x26a1, 0x26a1, 1},
		{0x26aa, 0x26ab, 1},
		{0x26bd, 0x26be, 1},
		{0x26c4, 0x26c5, 1},
		{0x26ce, 0x26ce, 1},
		{0x26d4, 0x26d4, 1},
		{0x26ea, 0x26ea, 1},
		{0x26f2, 0x26f3, 1},
		{0x26f5, 0x26f5, 1},
		{0x26fa, 0x26fa, 1},
		{0x26fd, 0x26fd, 1},
		{0x2705, 0x2705, 1},
		{0x270a, 0x270b, 1},
		{0x2728, 0x2728, 1},
		{0x274c, 0x274c, 1},
		{0x274e, 0x274e, 1},
		{0x2753, 0x2755, 1},
		{0x2757, 0x2757, 1},
		{0x2795, 0x2797, 1},
		{0x27b0, 0x27b0, 1},
		{0x27bf, 0x27bf, 1},
		{0x2b1b, 0x2b1c, 1},
		{0x2b50, 0x2b50, 1},
		{0x2b55, 0x2b55, 1},
		{0x2e80, 0x2e99, 1},
		{0x2e9b, 0x2ef3, 1},
		{0x2f00, 0x2fd5, 1},
		{0x2ff0, 0x2ffb, 1},
		{0x3001, 0x303e, 1},
		{0x3041, 0x3096, 1},
		{0x3099, 0x30ff, 1},
		{0x3105, 0x312f, 1},
		{0x3131, 0x318e, 1},
		{0x3190, 0x31e3, 1},
		{0x31f0, 0x321e, 1},
		{0x3220, 0x3247, 1},
		{0x3250, 0x4dbf, 1},
		{0x4e00, 0xa48c, 1},
		{0xa490, 0xa4c6, 1},
		{0xa960, 0xa97c, 1},
		{0xac00, 0xd7a3, 1},
		{0xf900, 0xfaff, 1},
		{0xfe10, 0xfe19, 1},
		{0xfe30, 0xfe52, 1},
		{0xfe54, 0xfe66, 1},
		{0xfe68, 0xfe6b, 1},
	},
	R32: []unicode.Range32{
		{0x16fe0, 0x16fe4, 1},
		{0x16ff0, 0x16ff1, 1},
		{0x17000, 0x187f7, 1},
		{0x18800, 0x18cd5, 1},
		{0x18d00, 0x18d08, 1},
		{0x1aff0, 0x1affe, 1},
		{0x1b000, 0x1b152, 1},
		{0x1b164, 0x1b167, 1},
		{0x1b170, 0x1b2fb, 1},
		{0x1f004, 0x1f004, 1},
		{0x1f0cf, 0x1f0cf, 1},
		{0x1f18e, 0x1f18e, 1},
		{0x1f191, 0x1f19a, 1},
		{0x1f200, 0x1f202, 1},
		{0x1f210, 0x1f23b, 1},
		{0x1f240, 0x1f248, 1},
		{0x1f250, 0x1f251, 1},
		{0x1f260, 0x1f265, 1},
		{0x1f300, 0x1f320, 1},
		{0x1f32d, 0x1f335, 1},
		{0x1f337, 0x1f37c, 1},
		{0x1f37e, 0x1f393, 1},
		{0x1f3a0, 0x1f3ca, 1},
		{0x1f3cf, 0x1f3d3, 1},
		{0x1f3e0, 0x1f3f0, 1},
		{0x1f3f4, 0x1f3f4, 1},
		{0x1f3f8, 0x1f43e, 1},
		{0x1f440, 0x1f440, 1},
		{0x1f442, 0x1f4fc, 1},
		{0x1f4ff, 0x1f53d, 1},
		{0x1f54b, 0x1f54e, 1},
		{0x1f550, 0x1f567, 1},
		{0x1f57a, 0x1f57a, 1},
		{0x1f595, 0x1f596, 1},
		{0x1f5a4, 0x1f5a4, 1},
		{0x1f5fb, 0x1f64f, 1},
		{0x1f680, 0x1f6c5, 1},
		{0x1f6cc, 0x1f6cc, 1},
		{0x1f6d0, 0x1f6d2, 1},
		{0x1f6d5, 0x1f6d7, 1},
		{0x1f6dc, 0x1f6df, 1},
		{0x1f6eb, 0x1f6ec, 1},
		{0x1f6f4, 0x1f6fc, 1},
		{0x1f7e0, 0x1f7eb, 1},
		{0x1f7f0, 0x1f7f0, 1},
		{0x1f90c, 0x1f93a, 1},
		{0x1f93c, 0x1f945, 1},
		{0x1f947, 0x1f9ff, 1},
		{0x1fa70, 0x1fa7c, 1},
		{0x1fa80, 0x1fa88, 1},
		{0x1fa90, 0x1fabd, 1},
		{0x1fabf, 0x1fac5, 1},
		{0x1face, 0x1fadb, 1},
		{0x1fae0, 0x1fae8, 1},
		{0x1faf0, 0x1faf8, 1},
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}

var _EAW_Na = &unicode.RangeTable{ // 7 entries
	R16: []unicode.Range16{
		{0x0020, 0x007e, 1},
		{0x00a2, 0x00a3, 1},
		{0x00a5, 0x00a6, 1},
		{0x00ac, 0x00ac, 1},
		{0x00af, 0x00af, 1},
		{0x27e6, 0x27ed, 1},
		{0x2985, 0x2986, 1},
	},
	LatinOffset: 5,
}

var _EAW_H = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x20a9, 0x20a9, 1},
		{0xff61, 0xffbe, 1},
		{0xffc2, 0xffdc, 1},
		{0xffe8, 0xffee, 1},
	},
}

var _EAW_F = &unicode.RangeTable{ // 3 entries
	R16: []unicode.Range16{
		{0x3000, 0x3000, 1},
		{0xff01, 0xff60, 1},
		{0xffe0, 0xffe6, 1},
	},
}
