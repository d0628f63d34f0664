/*
Package width computes fixed-pitch display widths of text, based on
Unicode® Standard Annex #11 “East Asian Width”.

Content

For a traditional East Asian fixed pitch font, the inherent width of a
character translates to a display width of either one half or a whole unit
width, commonly called “Em”. Except for a few characters, which are
explicitly called out as fullwidth or halfwidth in the Unicode Standard,
characters are not duplicated based on distinction in width. Some
characters, such as the ideographs, are always wide; others are always
narrow; and some can be narrow or wide, depending on the context. The
Unicode character property East_Asian_Width provides a default
classification, which this package uses to decide at runtime whether to
treat a character as narrow or wide.

On top of the categories of UAX#11, the package derives terminal column
widths: Width sums per-code-point widths of 0, 1 or 2 columns, treating
combining marks and format characters as invisible and suppressing the
width of pictographs joined by a zero-width joiner.

Caveats

Determining the legacy fixed-width display length is not an exact science.
Much depends on the properties of output devices, on fonts used, on a
device's interpretation of display rules, etc. Clients should treat results
of UAX#11 as heuristics. Using proportional fonts is almost always a better
solution.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package width

// Version is the UAX#11 version this package implements.
const Version = "15.0.0"
