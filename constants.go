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

import (
	"encoding/binary"
	"fmt"
)

// Component B: the constants provider. These tables are, per the CCSDS
// standard, large binary Annex tables; see SPEC_FULL.md §1 for why this
// package ships structurally faithful placeholders rather than the literal
// Annex values (which were not present in the retrieval pack this library
// was distilled from).

// Prototype cell flags (spec.md §3). Low 6 bits of a cell hold the
// rotation amount (TC) or permutation selector k (TM); 0 there means empty.
const (
	hi      byte = 0x40 // identity sub-matrix present
	hp      byte = 0x80 // rotated-identity (TC) / permutation (TM) present
	hs      byte = hi | hp
	rotMask byte = 0x3F
)

// tcPrototype is the 4-row x 8-column grid of sub-matrix cells shared by all
// three TC codes (the grid shape is fixed at (n-k)/M x n/M = 4x8 regardless
// of M, and every rotation used here is well below the smallest M=16, so one
// grid serves TC128/TC256/TC512 alike).
var tcPrototype = [4][8]byte{
	{0x40, 0x83, 0xC5, 0xC0, 0x40, 0x87, 0xC2, 0xC0},
	{0xC0, 0x40, 0x83, 0xC5, 0xC0, 0x40, 0x87, 0xC2},
	{0xC2, 0xC0, 0x40, 0x83, 0xC5, 0xC0, 0x40, 0x87},
	{0x87, 0xC2, 0xC0, 0x40, 0x83, 0xC5, 0xC0, 0x40},
}

// tmPlane is one of the three summed sub-matrices making up a TM overlay:
// 3 block-rows by up to 5 block-columns (narrower overlays use only the
// first pwidth columns; the rest are zero and ignored).
type tmPlane = [3][5]byte

// tmOverlay is the three planes XOR-summed to build one rate's prototype.
type tmOverlay = [3]tmPlane

// tmR12, tmR23, tmR45 are the three CCSDS TM prototype overlays (spec.md
// §4.E): rate 1/2 uses 5 block-columns, rate 2/3 uses 2, rate 4/5 uses 4.
var (
	tmR12 = tmOverlay{
		{{hi, 0, hp | 1, 0, hp | 2}, {0, hi, 0, hp | 3, 0}, {hp | 4, 0, hi, 0, hp | 1}},
		{{0, hp | 2, 0, hi, 0}, {hp | 1, 0, hp | 4, 0, hi}, {0, hi, 0, hp | 2, 0}},
		{{hp | 3, 0, hi, 0, hp | 4}, {0, hp | 1, 0, hi, 0}, {hi, 0, hp | 2, 0, hp | 3}},
	}
	tmR23 = tmOverlay{
		{{hi, hp | 1, 0, 0, 0}, {hp | 2, 0, 0, 0, 0}, {0, hi, 0, 0, 0}},
		{{0, hi, 0, 0, 0}, {hi, 0, 0, 0, 0}, {hp | 3, hp | 1, 0, 0, 0}},
		{{hp | 4, 0, 0, 0, 0}, {0, hp | 2, 0, 0, 0}, {hi, hi, 0, 0, 0}},
	}
	tmR45 = tmOverlay{
		{{hi, 0, hp | 1, 0, 0}, {0, hi, 0, hp | 2, 0}, {hp | 3, 0, hi, 0, 0}},
		{{0, hp | 2, 0, hi, 0}, {hi, 0, hp | 4, 0, 0}, {0, hi, 0, hp | 1, 0}},
		{{hp | 1, 0, hi, 0, 0}, {0, hp | 3, 0, hi, 0}, {hi, 0, hp | 2, 0, 0}},
	}
)

const tmPwidthR12 = 5
const tmPwidthR23 = 2
const tmPwidthR45 = 4

// overlayFor returns the prototype overlay, its column width, and the
// block-column at which that overlay starts, for a given number of
// block-columns q = (n+p)/M and a block-column index. It mirrors the
// layering rule in spec.md §4.E: for q=5 the rate 1/2 overlay covers all
// columns; for q=7 the 2-wide rate 2/3 overlay sits at block 0 and the rate
// 1/2 overlay at block 2; for q=11 the 4-wide rate 4/5 overlay sits at
// block 0, the rate 2/3 overlay at block 4 and the rate 1/2 overlay at 6.
func overlayFor(q, blockCol int) (overlay *tmOverlay, pwidth, col0Blocks int) {
	switch q {
	case 5:
		return &tmR12, tmPwidthR12, 0
	case 7:
		if blockCol < 2 {
			return &tmR23, tmPwidthR23, 0
		}
		return &tmR12, tmPwidthR12, 2
	case 11:
		if blockCol < 4 {
			return &tmR45, tmPwidthR45, 0
		}
		if blockCol < 6 {
			return &tmR23, tmPwidthR23, 4
		}
		return &tmR12, tmPwidthR12, 6
	default:
		panic("ldpc: unsupported TM block-column count")
	}
}

// thetaK is the θ table of spec.md §4.E, indexed by permutation selector
// k-1. phiTables maps sub-matrix size M to the 4x(len(thetaK)) φ table,
// indexed [quadrant][k-1]. Seven tables are carried (M up to 8192) per
// spec.md's note that hooks for the not-yet-supported larger TM codes
// should be left in place, even though only M<=2048 is exercised by the
// nine registered codes.
var thetaK = [4]byte{1, 3, 0, 2}

var phiTables = map[int][4][4]byte{
	128:  {{0, 1, 2, 3}, {1, 2, 3, 0}, {2, 3, 0, 1}, {3, 0, 1, 2}},
	256:  {{1, 0, 3, 2}, {0, 3, 2, 1}, {3, 2, 1, 0}, {2, 1, 0, 3}},
	512:  {{0, 2, 1, 3}, {2, 1, 3, 0}, {1, 3, 0, 2}, {3, 0, 2, 1}},
	1024: {{2, 0, 3, 1}, {0, 3, 1, 2}, {3, 1, 2, 0}, {1, 2, 0, 3}},
	2048: {{1, 3, 0, 2}, {3, 0, 2, 1}, {0, 2, 1, 3}, {2, 1, 3, 0}},
	4096: {{3, 1, 2, 0}, {1, 2, 0, 3}, {2, 0, 3, 1}, {0, 3, 1, 2}},
	8192: {{2, 3, 1, 0}, {3, 1, 0, 2}, {1, 0, 2, 3}, {0, 2, 3, 1}},
}

// compactGenerators holds, per code, the compact circulant-packed generator
// blob described in spec.md §4.C: for each of k/C first-rows-per-circulant,
// the (n-k) parity bits of that row, packed MSB-first into uint64 words.
//
// The real blobs are official CCSDS Annex data this distillation does not
// carry (see SPEC_FULL.md §1); these are generated once, from codes.go's
// init() once the registry is populated, by a small deterministic mixing
// function so the package needs no literal multi-kilobyte tables, while
// remaining exactly reproducible run to run (spec.md §5's determinism
// requirement holds for placeholder data exactly as it would for the
// genuine Annex tables).
var compactGenerators [numCodes][]uint64

// buildCompactGenerator fills compactGenerators[c] from p's already-resolved
// K/C/N. Called from codes.go's init() so it never depends on cross-file
// init() ordering.
func buildCompactGenerator(c Code, p CodeParams) {
	rowsPerBlock := p.K / p.C
	wordsPerRow := (p.N - p.K + 63) / 64
	blob := make([]uint64, rowsPerBlock*wordsPerRow)
	for i := range blob {
		blob[i] = mixWord(uint64(c), uint64(i))
	}
	compactGenerators[c] = blob
}

// LoadGeneratorConstants installs an externally supplied compact generator
// blob for c, overriding the placeholder installed at init() (spec.md's
// out-of-scope note treats these large binary tables as opaque inputs the
// core accepts rather than owns). blob is big-endian uint64 words, packed
// the same way compactGenerators stores them. A length mismatch is reported
// as ErrCorruptConstants rather than a panic, since malformed external data
// is a runtime condition, not a caller precondition bug (spec.md §7).
func (c Code) LoadGeneratorConstants(blob []byte) error {
	p := c.Params()
	rowsPerBlock := p.K / p.C
	wordsPerRow := (p.N - p.K + 63) / 64
	wantWords := rowsPerBlock * wordsPerRow

	if len(blob) != wantWords*8 {
		return fmt.Errorf("%w: %s expects %d bytes, got %d", ErrCorruptConstants, c, wantWords*8, len(blob))
	}

	words := make([]uint64, wantWords)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(blob[i*8:])
	}
	compactGenerators[c] = words
	return nil
}

// mixWord is a small fixed-point splittable mixing function (a SplitMix64
// step) used only to fill placeholder constant tables deterministically.
func mixWord(seed, i uint64) uint64 {
	z := seed*0x9E3779B97F4A7C15 + i*0xBF58476D1CE4E5B9 + 1
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
