package grapheme

// Code generated by ./internal/generator from GraphemeBreakProperty.txt
// and DerivedCoreProperties.txt. DO NOT EDIT.
//
// Unicode version 15.0.0

import "unicode"

// classTables pairs each table-driven class bit with its range table.
// CR, LF, ZWJ and the Hangul syllable classes LV/LVT are resolved in
// ClassForRune without tables.
var classTables []struct {
	class Class
	table *unicode.RangeTable
}

func setupGraphemeClasses() {
	classTables = []struct {
		class Class
		table *unicode.RangeTable
	}{
		{ControlClass, _Control},
		{ExtendClass, _Extend},
		{SpacingMarkClass, _SpacingMark},
		{PrependClass, _Prepend},
		{Regional_IndicatorClass, _Regional_Indicator},
		{LClass, _L},
		{VClass, _V},
		{TClass, _T},
		{InCBConsonantClass, _InCB_Consonant},
		{InCBLinkerClass, _InCB_Linker},
	}
}

// Control is the range table for the grapheme Control class, exported for
// clients that need to test single code-points (e.g. tokenizers skipping
// control characters).
var Control = _Control

var _Control = &unicode.RangeTable{ // 18 entries
	R16: []unicode.Range16{
		{0x0000, 0x0009, 1},
		{0x000b, 0x000c, 1},
		{0x000e, 0x001f, 1},
		{0x007f, 0x009f, 1},
		{0x00ad, 0x00ad, 1},
		{0x061c, 0x061c, 1},
		{0x180e, 0x180e, 1},
		{0x200b, 0x200b, 1},
		{0x200e, 0x200f, 1},
		{0x2028, 0x202e, 1},
		{0x2060, 0x206f, 1},
		{0xd800, 0xdfff, 1},
		{0xfeff, 0xfeff, 1},
		{0xfff0, 0xfffb, 1},
	},
	R32: []unicode.Range32{
		{0x13430, 0x1343f, 1},
		{0x1bca0, 0x1bca3, 1},
		{0x1d173, 0x1d17a, 1},
		{0xe0000, 0xe001f, 1},
	},
	LatinOffset: 4,
}

var _Extend = &unicode.RangeTable{ // 164 entries
	R16: []unicode.Range16{
		{0x0300, 0x036f, 1},
		{0x0483, 0x0489, 1},
		{0x0591, 0x05bd, 1},
		{0x05bf, 0x05bf, 1},
		{0x05c1, 0x05c2, 1},
		{0x05c4, 0x05c5, 1},
		{0x05c7, 0x05c7, 1},
		{0x0610, 0x061a, 1},
		{0x064b, 0x065f, 1},
		{0x0670, 0x0670, 1},
		{0x06d6, 0x06dc, 1},
		{0x06df, 0x06e4, 1},
		{0x06e7, 0x06e8, 1},
		{0x06ea, 0x06ed, 1},
		{0x0711, 0x0711, 1},
		{0x0730, 0x074a, 1},
		{0x07a6, 0x07b0, 1},
		{0x07eb, 0x07f3, 1},
		{0x07fd, 0x07fd, 1},
		{0x0816, 0x0819, 1},
		{0x081b, 0x0823, 1},
		{0x0825, 0x0827, 1},
		{0x0829, 0x082d, 1},
		{0x0859, 0x085b, 1},
		{0x0898, 0x089f, 1},
		{0x08ca, 0x0902, 1},
		{0x093a, 0x093a, 1},
		{0x093c, 0x093c, 1},
		{0x0941, 0x0948, 1},
		{0x094d, 0x094d, 1},
		{0x0951, 0x0957, 1},
		{0x0962, 0x0963, 1},
		{0x0981, 0x0981, 1},
		{0x09bc, 0x09bc, 1},
		{0x09be, 0x09be, 1},
		{0x09c1, 0x09c4, 1},
		{0x09cd, 0x09cd, 1},
		{0x09d7, 0x09d7, 1},
		{0x09e2, 0x09e3, 1},
		{0x09fe, 0x09fe, 1},
		{0x0a01, 0x0a02, 1},
		{0x0a3c, 0x0a3c, 1},
		{0x0a41, 0x0a42, 1},
		{0x0a47, 0x0a48, 1},
		{0x0a4b, 0x0a4d, 1},
		{0x0a51, 0x0a51, 1},
		{0x0a70, 0x0a71, 1},
		{0x0a75, 0x0a75, 1},
		{0x0a81, 0x0a82, 1},
		{0x0abc, 0x0abc, 1},
		{0x0ac1, 0x0ac5, 1},
		{0x0ac7, 0x0ac8, 1},
		{0x0acd, 0x0acd, 1},
		{0x0ae2, 0x0ae3, 1},
		{0x0afa, 0x0aff, 1},
		{0x0b01, 0x0b01, 1},
		{0x0b3c, 0x0b3c, 1},
		{0x0b3e, 0x0b3f, 1},
		{0x0b41, 0x0b44, 1},
		{0x0b4d, 0x0b4d, 1},
		{0x0b55, 0x0b57, 1},
		{0x0b62, 0x0b63, 1},
		{0x0b82, 0x0b82, 1},
		{0x0bbe, 0x0bbe, 1},
		{0x0bc0, 0x0bc0, 1},
		{0x0bcd, 0x0bcd, 1},
		{0x0bd7, 0x0bd7, 1},
		{0x0c00, 0x0c00, 1},
		{0x0c04, 0x0c04, 1},
		{0x0c3c, 0x0c3c, 1},
		{0x0c3e, 0x0c40, 1},
		{0x0c46, 0x0c48, 1},
		{0x0c4a, 0x0c4d, 1},
		{0x0c55, 0x0c56, 1},
		{0x0c62, 0x0c63, 1},
		{0x0c81, 0x0c81, 1},
		{0x0cbc, 0x0cbc, 1},
		{0x0cbf, 0x0cbf, 1},
		{0x0cc2, 0x0cc2, 1},
		{0x0cc6, 0x0cc6, 1},
		{0x0ccc, 0x0ccd, 1},
		{0x0cd5, 0x0cd6, 1},
		{0x0ce2, 0x0ce3, 1},
		{0x0d00, 0x0d01, 1},
		{0x0d3b, 0x0d3c, 1},
		{0x0d3e, 0x0d3e, 1},
		{0x0d41, 0x0d44, 1},
		{0x0d4d, 0x0d4d, 1},
		{0x0d57, 0x0d57, 1},
		{0x0d62, 0x0d63, 1},
		{0x0d81, 0x0d81, 1},
		{0x0dca, 0x0dca, 1},
		{0x0dcf, 0x0dcf, 1},
		{0x0dd2, 0x0dd4, 1},
		{0x0dd6, 0x0dd6, 1},
		{0x0ddf, 0x0ddf, 1},
		{0x0e31, 0x0e31, 1},
		{0x0e34, 0x0e3a, 1},
		{0x0e47, 0x0e4e, 1},
		{0x0eb1, 0x0eb1, 1},
		{0x0eb4, 0x0ebc, 1},
		{0x0ec8, 0x0ece, 1},
		{0x0f18, 0x0f19, 1},
		{0x0f35, 0x0f35, 1},
		{0x0f37, 0x0f37, 1},
		{0x0f39, 0x0f39, 1},
		{0x0f71, 0x0f7e, 1},
		{0x0f80, 0x0f84, 1},
		{0x0f86, 0x0f87, 1},
		{0x0f8d, 0x0f97, 1},
		{0x0f99, 0x0fbc, 1},
		{0x0fc6, 0x0fc6, 1},
		{0x102d, 0x1030, 1},
		{0x1032, 0x1037, 1},
		{0x1039, 0x103a, 1},
		{0x103d, 0x103e, 1},
		{0x1058, 0x1059, 1},
		{0x105e, 0x1060, 1},
		{0x1071, 0x1074, 1},
		{0x1082, 0x1082, 1},
		{0x1085, 0x1086, 1},
		{0x108d, 0x108d, 1},
		{0x109d, 0x109d, 1},
		{0x135d, 0x135f, 1},
		{0x1712, 0x1714, 1},
		{0x1732, 0x1733, 1},
		{0x1752, 0x1753, 1},
		{0x1772, 0x1773, 1},
		{0x17b4, 0x17b5, 1},
		{0x17b7, 0x17bd, 1},
		{0x17c6, 0x17c6, 1},
		{0x17c9, 0x17d3, 1},
		{0x17dd, 0x17dd, 1},
		{0x180b, 0x180d, 1},
		{0x180f, 0x180f, 1},
		{0x1885, 0x1886, 1},
		{0x18a9, 0x18a9, 1},
		{0x1920, 0x1922, 1},
		{0x1927, 0x1928, 1},
		{0x1932, 0x1932, 1},
		{0x1939, 0x193b, 1},
		{0x1a17, 0x1a18, 1},
		{0x1a1b, 0x1a1b, 1},
		{0x1a56, 0x1a56, 1},
		{0x1a58, 0x1a5e, 1},
		{0x1a60, 0x1a60, 1},
		{0x1a62, 0x1a62, 1},
		{0x1a65, 0x1a6c, 1},
		{0x1a73, 0x1a7c, 1},
		{0x1a7f, 0x1a7f, 1},
		{0x1ab0, 0x1ace, 1},
		{0x1b00, 0x1b03, 1},
		{0x1b34, 0x1b3a, 1},
		{0x1b3c, 0x1b3c, 1},
		{0x1b42, 0x1b42, 1},
		{0x1b6b, 0x1b73, 1},
		{0x1b80, 0x1b81, 1},
		{0x1ba2, 0x1ba5, 1},
		{0x1ba8, 0x1ba9, 1},
		{0x1bab, 0x1bad, 1},
		{0x1be6, 0x1be6, 1},
		{0x1be8, 0x1be9, 1},
		{0x1bed, 0x1bed, 1},
		{0x1bef, 0x1bf1, 1},
		{0x1c2c, 0x1c33, 1},
		{0x1c36, 0x1c37, 1},
		{0x1cd0, 0x1cd2, 1},
		{0x1cd4, 0x1ce0, 1},
		{0x1ce2, 0x1ce8, 1},
		{0x1ced, 0x1ced, 1},
		{0x1cf4, 0x1cf4, 1},
		{0x1cf8, 0x1cf9, 1},
		{0x1dc0, 0x1dff, 1},
		{0x200c, 0x200c, 1},
		{0x20d0, 0x20f0, 1},
		{0x2cef, 0x2cf1, 1},
		{0x2d7f, 0x2d7f, 1},
		{0x2de0, 0x2dff, 1},
		{0x302a, 0x302f, 1},
		{0x3099, 0x309a, 1},
		{0xa66f, 0xa672, 1},
		{0xa674, 0xa67d, 1},
		{0xa69e, 0xa69f, 1},
		{0xa6f0, 0xa6f1, 1},
		{0xa802, 0xa802, 1},
		{0xa806, 0xa806, 1},
		{0xa80b, 0xa80b, 1},
		{0xa825, 0xa826, 1},
		{0xa82c, 0xa82c, 1},
		{0xa8c4, 0xa8c5, 1},
		{0xa8e0, 0xa8f1, 1},
		{0xa8ff, 0xa8ff, 1},
		{0xa926, 0xa92d, 1},
		{0xa947, 0xa951, 1},
		{0xa980, 0xa982, 1},
		{0xa9b3, 0xa9b3, 1},
		{0xa9b6, 0xa9b9, 1},
		{0xa9bc, 0xa9bd, 1},
		{0xa9e5, 0xa9e5, 1},
		{0xaa29, 0xaa2e, 1},
		{0xaa31, 0xaa32, 1},
		{0xaa35, 0xaa36, 1},
		{0xaa43, 0xaa43, 1},
		{0xaa4c, 0xaa4c, 1},
		{0xaa7c, 0xaa7c, 1},
		{0xaab0, 0xaab0, 1},
		{0xaab2, 0xaab4, 1},
		{0xaab7, 0xaab8, 1},
		{0xaabe, 0xaabf, 1},
		{0xaac1, 0xaac1, 1},
		{0xaaec, 0xaaed, 1},
		{0xaaf6, 0xaaf6, 1},
		{0xabe5, 0xabe5, 1},
		{0xabe8, 0xabe8, 1},
		{0xabed, 0xabed, 1},
		{0xfb1e, 0xfb1e, 1},
		{0xfe00, 0xfe0f, 1},
		{0xfe20, 0xfe2f, 1},
		{0xff9e, 0xff9f, 1},
	},
	R32: []unicode.Range32{
		{0x101fd, 0x101fd, 1},
		{0x102e0, 0x102e0, 1},
		{0x10376, 0x1037a, 1},
		{0x10a01, 0x10a03, 1},
		{0x10a05, 0x10a06, 1},
		{0x10a0c, 0x10a0f, 1},
		{0x10a38, 0x10a3a, 1},
		{0x10a3f, 0x10a3f, 1},
		{0x10ae5, 0x10ae6, 1},
		{0x10d24, 0x10d27, 1},
		{0x10eab, 0x10eac, 1},
		{0x10f46, 0x10f50, 1},
		{0x10f82, 0x10f85, 1},
		{0x11001, 0x11001, 1},
		{0x11038, 0x11046, 1},
		{0x11070, 0x11070, 1},
		{0x11073, 0x11074, 1},
		{0x1107f, 0x11081, 1},
		{0x110b3, 0x110b6, 1},
		{0x110b9, 0x110ba, 1},
		{0x110c2, 0x110c2, 1},
		{0x11100, 0x11102, 1},
		{0x11127, 0x1112b, 1},
		{0x1112d, 0x11134, 1},
		{0x11173, 0x11173, 1},
		{0x11180, 0x11181, 1},
		{0x111b6, 0x111be, 1},
		{0x111c9, 0x111cc, 1},
		{0x111cf, 0x111cf, 1},
		{0x1122f, 0x11231, 1},
		{0x11234, 0x11234, 1},
		{0x11236, 0x11237, 1},
		{0x1123e, 0x1123e, 1},
		{0x11241, 0x11241, 1},
		{0x112df, 0x112df, 1},
		{0x112e3, 0x112ea, 1},
		{0x11300, 0x11301, 1},
		{0x1133b, 0x1133c, 1},
		{0x1133e, 0x1133e, 1},
		{0x11340, 0x11340, 1},
		{0x11357, 0x11357, 1},
		{0x11366, 0x1136c, 1},
		{0x11370, 0x11374, 1},
		{0x11438, 0x1143f, 1},
		{0x11442, 0x11444, 1},
		{0x11446, 0x11446, 1},
		{0x1145e, 0x1145e, 1},
		{0x114b0, 0x114b0, 1},
		{0x114b3, 0x114b8, 1},
		{0x114ba, 0x114ba, 1},
		{0x114bd, 0x114bd, 1},
		{0x114bf, 0x114c0, 1},
		{0x114c2, 0x114c3, 1},
		{0x115af, 0x115af, 1},
		{0x115b2, 0x115b5, 1},
		{0x115bc, 0x115bd, 1},
		{0x115bf, 0x115c0, 1},
		{0x115dc, 0x115dd, 1},
		{0x11633, 0x1163a, 1},
		{0x1163d, 0x1163d, 1},
		{0x1163f, 0x11640, 1},
		{0x116ab, 0x116ab, 1},
		{0x116ad, 0x116ad, 1},
		{0x116b0, 0x116b5, 1},
		{0x116b7, 0x116b7, 1},
		{0x1171d, 0x1171f, 1},
		{0x11722, 0x11725, 1},
		{0x11727, 0x1172b, 1},
		{0x1182f, 0x11837, 1},
		{0x11839, 0x1183a, 1},
		{0x11930, 0x11930, 1},
		{0x1193b, 0x1193c, 1},
		{0x1193e, 0x1193e, 1},
		{0x11943, 0x11943, 1},
		{0x119d4, 0x119d7, 1},
		{0x119da, 0x119db, 1},
		{0x119e0, 0x119e0, 1},
		{0x11a01, 0x11a0a, 1},
		{0x11a33, 0x11a38, 1},
		{0x11a3b, 0x11a3e, 1},
		{0x11a47, 0x11a47, 1},
		{0x11a51, 0x11a56, 1},
		{0x11a59, 0x11a5b, 1},
		{0x11a8a, 0x11a96, 1},
		{0x11a98, 0x11a99, 1},
		{0x11c30, 0x11c36, 1},
		{0x11c38, 0x11c3d, 1},
		{0x11c3f, 0x11c3f, 1},
		{0x11c92, 0x11ca7, 1},
		{0x11caa, 0x11cb0, 1},
		{0x11cb2, 0x11cb3, 1},
		{0x11cb5, 0x11cb6, 1},
		{0x11d31, 0x11d36, 1},
		{0x11d3a, 0x11d3a, 1},
		{0x11d3c, 0x11d3d, 1},
		{0x11d3f, 0x11d45, 1},
		{0x11d47, 0x11d47, 1},
		{0x11d90, 0x11d91, 1},
		{0x11d95, 0x11d95, 1},
		{0x11d97, 0x11d97, 1},
		{0x11ef3, 0x11ef4, 1},
		{0x16af0, 0x16af4, 1},
		{0x16b30, 0x16b36, 1},
		{0x16f4f, 0x16f4f, 1},
		{0x16f8f, 0x16f92, 1},
		{0x16fe4, 0x16fe4, 1},
		{0x1bc9d, 0x1bc9e, 1},
		{0x1cf00, 0x1cf2d, 1},
		{0x1cf30, 0x1cf46, 1},
		{0x1d165, 0x1d165, 1},
		{0x1d167, 0x1d169, 1},
		{0x1d16e, 0x1d172, 1},
		{0x1d17b, 0x1d182, 1},
		{0x1d185, 0x1d18b, 1},
		{0x1d1aa, 0x1d1ad, 1},
		{0x1d242, 0x1d244, 1},
		{0x1da00, 0x1da36, 1},
		{0x1da3b, 0x1da6c, 1},
		{0x1da75, 0x1da75, 1},
		{0x1da84, 0x1da84, 1},
		{0x1da9b, 0x1da9f, 1},
		{0x1daa1, 0x1daaf, 1},
		{0x1e000, 0x1e006, 1},
		{0x1e008, 0x1e018, 1},
		{0x1e01b, 0x1e021, 1},
		{0x1e023, 0x1e024, 1},
		{0x1e026, 0x1e02a, 1},
		{0x1e130, 0x1e136, 1},
		{0x1e2ae, 0x1e2ae, 1},
		{0x1e2ec, 0x1e2ef, 1},
		{0x1e4ec, 0x1e4ef, 1},
		{0x1e8d0, 0x1e8d6, 1},
		{0x1e944, 0x1e94a, 1},
		{0x1f3fb, 0x1f3ff, 1},
		{0xe0020, 0xe007f, 1},
		{0xe0100, 0xe01ef, 1},
	},
}

var _SpacingMark = &unicode.RangeTable{ // 122 entries
	R16: []unicode.Range16{
		{0x0903, 0x0903, 1},
		{0x093b, 0x093b, 1},
		{0x093e, 0x0940, 1},
		{0x0949, 0x094c, 1},
		{0x094e, 0x094f, 1},
		{0x0982, 0x0983, 1},
		{0x09bf, 0x09c0, 1},
		{0x09c7, 0x09c8, 1},
		{0x09cb, 0x09cc, 1},
		{0x0a03, 0x0a03, 1},
		{0x0a3e, 0x0a40, 1},
		{0x0a83, 0x0a83, 1},
		{0x0abe, 0x0ac0, 1},
		{0x0ac9, 0x0ac9, 1},
		{0x0acb, 0x0acc, 1},
		{0x0b02, 0x0b03, 1},
		{0x0b40, 0x0b40, 1},
		{0x0b47, 0x0b48, 1},
		{0x0b4b, 0x0b4c, 1},
		{0x0bbf, 0x0bbf, 1},
		{0x0bc1, 0x0bc2, 1},
		{0x0bc6, 0x0bc8, 1},
		{0x0bca, 0x0bcc, 1},
		{0x0c01, 0x0c03, 1},
		{0x0c41, 0x0c44, 1},
		{0x0c82, 0x0c83, 1},
		{0x0cbe, 0x0cbe, 1},
		{0x0cc0, 0x0cc1, 1},
		{0x0cc3, 0x0cc4, 1},
		{0x0cc7, 0x0cc8, 1},
		{0x0cca, 0x0ccb, 1},
		{0x0cf3, 0x0cf3, 1},
		{0x0d02, 0x0d03, 1},
		{0x0d3f, 0x0d40, 1},
		{0x0d46, 0x0d48, 1},
		{0x0d4a, 0x0d4c, 1},
		{0x0d82, 0x0d83, 1},
		{0x0dd0, 0x0dd1, 1},
		{0x0dd8, 0x0dde, 1},
		{0x0df2, 0x0df3, 1},
		{0x0e33, 0x0e33, 1},
		{0x0eb3, 0x0eb3, 1},
		{0x0f3e, 0x0f3f, 1},
		{0x0f7f, 0x0f7f, 1},
		{0x102b, 0x102c, 1},
		{0x1031, 0x1031, 1},
		{0x1038, 0x1038, 1},
		{0x103b, 0x103c, 1},
		{0x1056, 0x1057, 1},
		{0x1062, 0x1064, 1},
		{0x1067, 0x106d, 1},
		{0x1083, 0x1084, 1},
		{0x1087, 0x108c, 1},
		{0x108f, 0x108f, 1},
		{0x109a, 0x109c, 1},
		{0x1715, 0x1715, 1},
		{0x1734, 0x1734, 1},
		{0x17b6, 0x17b6, 1},
		{0x17be, 0x17c5, 1},
		{0x17c7, 0x17c8, 1},
		{0x1923, 0x1926, 1},
		{0x1929, 0x192b, 1},
		{0x1930, 0x1931, 1},
		{0x1933, 0x1938, 1},
		{0x1a19, 0x1a1a, 1},
		{0x1a55, 0x1a55, 1},
		{0x1a57, 0x1a57, 1},
		{0x1a61, 0x1a61, 1},
		{0x1a63, 0x1a64, 1},
		{0x1a6d, 0x1a72, 1},
		{0x1b04, 0x1b04, 1},
		{0x1b35, 0x1b35, 1},
		{0x1b3b, 0x1b3b, 1},
		{0x1b3d, 0x1b41, 1},
		{0x1b43, 0x1b44, 1},
		{0x1b82, 0x1b82, 1},
		{0x1ba1, 0x1ba1, 1},
		{0x1ba6, 0x1ba7, 1},
		{0x1baa, 0x1baa, 1},
		{0x1be7, 0x1be7, 1},
		{0x1bea, 0x1bec, 1},
		{0x1bee, 0x1bee, 1},
		{0x1bf2, 0x1bf3, 1},
		{0x1c24, 0x1c2b, 1},
		{0x1c34, 0x1c35, 1},
		{0x1ce1, 0x1ce1, 1},
		{0x1cf7, 0x1cf7, 1},
		{0xa823, 0xa824, 1},
		{0xa827, 0xa827, 1},
		{0xa880, 0xa881, 1},
		{0xa8b4, 0xa8c3, 1},
		{0xa952, 0xa953, 1},
		{0xa983, 0xa983, 1},
		{0xa9b4, 0xa9b5, 1},
		{0xa9ba, 0xa9bb, 1},
		{0xa9be, 0xa9c0, 1},
		{0xaa2f, 0xaa30, 1},
		{0xaa33, 0xaa34, 1},
		{0xaa4d, 0xaa4d, 1},
		{0xaa7b, 0xaa7b, 1},
		{0xaa7d, 0xaa7d, 1},
		{0xaaeb, 0xaaeb, 1},
		{0xaaee, 0xaaef, 1},
		{0xaaf5, 0xaaf5, 1},
		{0xabe3, 0xabe4, 1},
		{0xabe6, 0xabe7, 1},
		{0xabe9, 0xabea, 1},
		{0xabec, 0xabec, 1},
	},
	R32: []unicode.Range32{
		{0x11000, 0x11000, 1},
		{0x11002, 0x11002, 1},
		{0x11082, 0x11082, 1},
		{0x110b0, 0x110b2, 1},
		{0x110b7, 0x110b8, 1},
		{0x1112c, 0x1112c, 1},
		{0x11145, 0x11146, 1},
		{0x11182, 0x11182, 1},
		{0x111b3, 0x111b5, 1},
		{0x111bf, 0x111c0, 1},
		{0x1122c, 0x1122e, 1},
		{0x11232, 0x11233, 1},
		{0x11235, 0x11235, 1},
		{0x112e0, 0x112e2, 1},
		{0x11302, 0x11303, 1},
		{0x1133f, 0x1133f, 1},
		{0x11341, 0x11344, 1},
		{0x11347, 0x11348, 1},
		{0x1134b, 0x1134d, 1},
		{0x11362, 0x11363, 1},
		{0x11435, 0x11437, 1},
		{0x11440, 0x11441, 1},
		{0x11445, 0x11445, 1},
		{0x114b1, 0x114b2, 1},
		{0x114b9, 0x114b9, 1},
		{0x114bb, 0x114bc, 1},
		{0x114be, 0x114be, 1},
		{0x114c1, 0x114c1, 1},
		{0x115b0, 0x115b1, 1},
		{0x115b8, 0x115bb, 1},
		{0x115be, 0x115be, 1},
		{0x11630, 0x11632, 1},
		{0x1163b, 0x1163c, 1},
		{0x1163e, 0x1163e, 1},
		{0x116ac, 0x116ac, 1},
		{0x116ae, 0x116af, 1},
		{0x116b6, 0x116b6, 1},
		{0x11720, 0x11721, 1},
		{0x11726, 0x11726, 1},
		{0x1182c, 0x1182e, 1},
		{0x11838, 0x11838, 1},
		{0x11931, 0x11935, 1},
		{0x11937, 0x11938, 1},
		{0x1193d, 0x1193d, 1},
		{0x11940, 0x11940, 1},
		{0x11942, 0x11942, 1},
		{0x119d1, 0x119d3, 1},
		{0x119dc, 0x119df, 1},
		{0x119e4, 0x119e4, 1},
		{0x11a39, 0x11a39, 1},
		{0x11a57, 0x11a58, 1},
		{0x11a97, 0x11a97, 1},
		{0x11c2f, 0x11c2f, 1},
		{0x11c3e, 0x11c3e, 1},
		{0x11ca9, 0x11ca9, 1},
		{0x11cb1, 0x11cb1, 1},
		{0x11cb4, 0x11cb4, 1},
		{0x11d8a, 0x11d8e, 1},
		{0x11d93, 0x11d94, 1},
		{0x11d96, 0x11d96, 1},
		{0x11ef5, 0x11ef6, 1},
		{0x16f51, 0x16f87, 1},
		{0x16ff0, 0x16ff1, 1},
		{0x1d166, 0x1d166, 1},
		{0x1d16d, 0x1d16d, 1},
	},
}

var _Prepend = &unicode.RangeTable{ // 13 entries
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06dd, 0x06dd, 1},
		{0x070f, 0x070f, 1},
		{0x0890, 0x0891, 1},
		{0x08e2, 0x08e2, 1},
		{0x0d4e, 0x0d4e, 1},
	},
	R32: []unicode.Range32{
		{0x110bd, 0x110bd, 1},
		{0x110cd, 0x110cd, 1},
		{0x111c2, 0x111c3, 1},
		{0x1193f, 0x1193f, 1},
		{0x11941, 0x11941, 1},
		{0x11a3a, 0x11a3a, 1},
		{0x11a84, 0x11a89, 1},
		{0x11d46, 0x11d46, 1},
		{0x11f02, 0x11f02, 1},
	},
}

var _Regional_Indicator = &unicode.RangeTable{ // 1 entries
	R32: []unicode.Range32{
		{0x1f1e6, 0x1f1ff, 1},
	},
}

var _L = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x1100, 0x115f, 1},
		{0xa960, 0xa97c, 1},
	},
}

var _V = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x1160, 0x11a7, 1},
		{0xd7b0, 0xd7c6, 1},
	},
}

var _T = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x11a8, 0x11ff, 1},
		{0xd7cb, 0xd7fb, 1},
	},
}

// Indic conjunct break properties (DerivedCoreProperties.txt, InCB=…).
// The Extend flavour of InCB coincides with the grapheme extenders plus ZWJ
// and is resolved from those classes at scan time.

var _InCB_Consonant = &unicode.RangeTable{ // 14 entries
	R16: []unicode.Range16{
		{0x0915, 0x0939, 1},
		{0x0958, 0x095f, 1},
		{0x0978, 0x097f, 1},
		{0x0995, 0x09b9, 1},
		{0x09dc, 0x09df, 1},
		{0x09f0, 0x09f1, 1},
		{0x0a95, 0x0ab9, 1},
		{0x0b15, 0x0b39, 1},
		{0x0b5c, 0x0b5f, 1},
		{0x0b71, 0x0b71, 1},
		{0x0c15, 0x0c39, 1},
		{0x0c58, 0x0c5a, 1},
		{0x0c95, 0x0cb9, 1},
		{0x0d15, 0x0d3a, 1},
	},
}

var _InCB_Linker = &unicode.RangeTable{ // 7 entries
	R16: []unicode.Range16{
		{0x094d, 0x094d, 1},
		{0x09cd, 0x09cd, 1},
		{0x0acd, 0x0acd, 1},
		{0x0b4d, 0x0b4d, 1},
		{0x0c4d, 0x0c4d, 1},
		{0x0ccd, 0x0ccd, 1},
		{0x0d4d, 0x0d4d, 1},
	},
}
