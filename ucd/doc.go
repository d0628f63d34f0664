/*
Package ucd answers metadata queries about single code-points: break and
general category membership, the Unicode version a code-point was added
in, and its character name.

Content

The boundary packages of this module classify code-points for their own
algorithms; this package exposes those classifications, plus the general
category, under one query surface. Category masks are returned packed,
one bit per category, so that texts can be probed for "contains any of
these categories" without materializing name lists.

Typical Usage

  names, _ := ucd.CategoryNames("word", 'カ')   // ["KatakanaClass"]
  cat := ucd.GeneralCategory('A')               // Lu, a letter bit
  ok, _ := ucd.Has(text, 0, len(text), ucd.Nd)  // any digit in text?
  ucd.Age('€')                                  // "2.1"
  ucd.Name('€')                                 // "EURO SIGN"

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

// Version is the Unicode version of the underlying tables.
const Version = "15.0.0"
