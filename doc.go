/*
Package textops is about Unicode text segmentation and the string operations
built on top of it.

Description

A string of Unicode-encoded text often needs to be broken up into
text elements programmatically. Common examples of text elements
include what users think of as characters (grapheme clusters), words,
sentences, and positions where line breaks are allowed. The Unicode
Standard Annexes UAX#29 and UAX#14 define default rules for finding
such boundaries. This module implements them, together with a set of
operations that are naturally expressed on top of boundary detection:
grapheme-aware length, substring and find, case folding, accent and
punctuation stripping, terminal column width, and utilities to map
between byte offsets, code-point indices and offsets in reassembled
text.

Implementations of the specific algorithms live in the various
sub-packages of textops: grapheme, word, sentence and line hold the
four boundary scanners; fold and width hold the code-point transforms;
position holds the offset mappers; ucd exposes code-point metadata;
segment drives any boundary scanner over an io.Reader in the manner of
bufio.Scanner; emoji carries the UTS#51 property tables the scanners
share.

Base package textops provides the scanning primitive shared by all
boundary scanners: an Iterator over a sequence of code-points which
exposes the category of the current code-point and a one-code-point
lookahead. Boundary rules are tested in the fixed priority order given
by the respective annex; a rule either accepts the current code-point
as a non-boundary (and the scan advances), or the scan stops and
reports a boundary. Rules that have to look ahead through several
code-points before deciding use the iterator's single-level
transaction (Begin/Rollback/Commit). Rules that ignore interspersed
formatting characters (such as UAX#29 rule WB4 or UAX#14 rule LB9) use
Absorb, which consumes runs of code-points without shifting the
current category.

Scanning this way keeps every rule a few lines of plain code in the
order the annex lists them, which is preferable from a maintenance
point of view to encoding the rule tables in opaque transition
matrices.

Boundary positions are code-point indices, not byte offsets. A scan
over a text of length n, restarted at each reported boundary, visits
every boundary exactly once and ends at n.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package textops

// Version is the Unicode version the tables in this module conform to.
const Version = "15.0.0"
