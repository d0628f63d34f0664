/*
Package position maps between byte offsets and code-point indexes, and
tracks the provenance of reconstructed text.

Content

UTF-8 is a variable-length encoding: byte offsets and code-point indexes
into the same text differ as soon as the text leaves ASCII. Mapper
translates byte offsets to code-point indexes, ReverseMapper goes the
other way. Both remember their last two queries, so that sequences of
queries in increasing order, the access pattern of boundary scans, are
answered in amortized constant time.

OffsetMapper serves text reconstruction: output text is assembled from
spans of a source text, and every output position can later be mapped
back to the source offset it originated from. Text indexers use this to
report match positions in the original document rather than in the
tokenized copy.

Typical Usage

  m := position.NewMapper([]byte("naïve"))
  idx, err := m.Map(4)          // idx = 3, the byte after "ï" starts cp 3

Mappers are confined to a single buffer and a single caller; they are
not safe for concurrent use.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package position
