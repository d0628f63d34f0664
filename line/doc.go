/*
Package line implements Unicode Annex #14 line breaking.

Content

UAX#14 is the Unicode Annex for breaking text into lines, i.e. for
finding legal positions for line wrap. It defines far more code-point
classes than the other breaking algorithms (word, sentence, grapheme)
and a long list of rules for how to place break opportunities and break
inhibitors.

Typical Usage

Clients call NextBreak to find the line break opportunity following a
given code-point position:

  text := []rune("Hello, World!")
  brk := line.NextBreak(text, 0)     // brk = 7, before "World!"

A reduced variant, NextHardBreak, reports mandatory breaks only
(paragraph separators) and ignores all optional line-wrap opportunities.
It is a cheap way of splitting text into hard paragraphs.

Attention

Before finding breaks, clients usually should initialize the classes:

  SetupLineClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory. However,
NextBreak will call it if range tables are not yet initialized.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package line

// Version is the UAX#14 version this package implements.
const Version = "15.0.0"
