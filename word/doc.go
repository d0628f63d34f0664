/*
Package word implements Unicode Annex #29 word breaking.

Content

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences.
It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about word breaking.

Typical Usage

Clients call NextBreak to find the word boundary following a given
code-point position:

  text := []rune("Hello, World!")
  brk := word.NextBreak(text, 0)     // brk = 5, after "Hello"

Calling NextBreak repeatedly, each time feeding back the returned
position, enumerates all word boundaries of a text.

Attention

Before finding breaks, clients usually should initialize the classes:

  SetupWordClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes some memory. However, NextBreak
will call it if range tables are not yet initialized.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package word

// Version is the UAX#29 version this package implements.
const Version = "15.0.0"
