/*
Package grapheme implements UAX#29 grapheme cluster breaking.

Content

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about grapheme breaking, i.e. finding the boundaries
of user-perceived characters, and about operations defined in units of
graphemes: length, substring and substring search.

Typical Usage

The core of the package is function NextBreak:

  text := []rune("é=latin small e with combining acute")
  grapheme.NextBreak(text, 0)       // => 2: 'e' and the accent are one cluster

Calling NextBreak repeatedly, starting each call at the position the
previous one returned, enumerates every cluster boundary of the text.
On top of NextBreak the package provides Length, Substr and Find, and
a read-only convenience type String with by-cluster indexed access.

Attention

Before using grapheme breakers directly, clients may initialize the
classes and rules:

  SetupGraphemeClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory. All functions
of this package will call it transparently if it has not been called
beforehand.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grapheme

// Version is the Unicode version this package conforms to.
const Version = "15.0.0"
