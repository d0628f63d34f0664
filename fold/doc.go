/*
Package fold implements locale-independent case folding and accent and
punctuation stripping.

Content

Case folding is the Unicode normalization used for caseless comparison:
it maps code-points to a canonical caseless form, expanding some of them
to multiple code-points ("ß" folds to "ss"). Stripping removes accents
and punctuation, reducing composed letters to their base letters.

Both transforms work in two passes: a first pass detects whether
anything changes at all and computes the exact output size, a second
pass writes the output. If the first pass finds nothing to do, the input
is returned as is, without a copy. Folding is table-driven; stripping
combines a table of transliterations with canonical decomposition of
composed letters at lookup time.

Typical Usage

  folded := fold.Fold([]rune("Straße"))    // "strasse"
  bare := fold.Strip([]rune("café!"))      // "cafe"

Both functions are idempotent: applying them to their own output is a
no-op.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fold

// Version is the Unicode version the folding and stripping tables are
// generated from.
const Version = "15.0.0"
