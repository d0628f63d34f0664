/*
Package sentence implements Unicode Annex #29 sentence breaking.

Content

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences.
It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about sentence breaking.

Sentence breaking is the least deterministic of the three UAX#29
algorithms: it is deliberately conservative and will rather under-break
than split a sentence at an abbreviation dot. Notably, contrary to the
word and grapheme algorithms, the default between two code-points is to
NOT break.

Typical Usage

Clients call NextBreak to find the sentence boundary following a given
code-point position:

  text := []rune("Hello! A new sentence.")
  brk := sentence.NextBreak(text, 0)     // brk = 7, after "Hello! "

Attention

Before finding breaks, clients usually should initialize the classes:

  SetupSentenceClasses()

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
package sentence

// Version is the UAX#29 version this package implements.
const Version = "15.0.0"
