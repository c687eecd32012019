// Copyright 2024 The CCSDS-LDPC Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ldpc

// InitGenerator expands the compact circulant-packed generator blob for c
// into the dense parity portion of the systematic generator matrix, G'. g
// must have length c.Params().GeneratorLen and is assumed zeroed by the
// caller (every bit this function sets is a 1; it never clears).
//
// spec.md §4.C notes the reference implementation left this function's
// body unimplemented; it is completed here from the prose contract: the
// first row of each circulant column-block is the compact blob's row
// verbatim, and the remaining C-1 rows of that block are obtained by
// rotating that row right by one bit within each C-bit circulant column
// sub-block, independently per sub-block.
func (c Code) InitGenerator(g []uint32) {
	p := c.Params()
	validateLen("generator buffer", len(g), p.GeneratorLen)

	cols := p.N - p.K
	rowWords := cols / 32
	blob := compactGenerators[c]
	wordsPerRow := (cols + 63) / 64
	rowsPerBlock := p.K / p.C
	groups := cols / p.C

	row := make([]uint32, cols) // 0/1 per column, scratch for the block's first row

	for b := 0; b < rowsPerBlock; b++ {
		// Unpack the compact first row of this circulant column-block.
		base := b * wordsPerRow
		for j := 0; j < cols; j++ {
			word := blob[base+j/64]
			shift := uint(63 - j%64)
			row[j] = uint32((word >> shift) & 1)
		}

		// First row of the block: verbatim.
		absRow := b * p.C
		for j := 0; j < cols; j++ {
			if row[j] == 1 {
				setBit(g, rowWords, absRow, j)
			}
		}

		// Remaining C-1 rows: row t is row 0 rotated right by t, per
		// C-wide column sub-block, independently.
		for t := 1; t < p.C; t++ {
			for grp := 0; grp < groups; grp++ {
				base := grp * p.C
				for l := 0; l < p.C; l++ {
					src := (l - t) % p.C
					if src < 0 {
						src += p.C
					}
					if row[base+src] == 1 {
						setBit(g, rowWords, absRow+t, base+l)
					}
				}
			}
		}
	}
}
