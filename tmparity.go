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

import "sort"

// Component E (dense) and half of Component F (sparse) for the TM codes.
// The dense and sparse paths share the prototype/phi/theta tables and the
// permute helper (the π computation); the matrix-building code is separate.

// initParityCheckTM builds the dense (n-k+p) x (n+p) parity-check matrix
// by XOR-summing the rate's overlay(s), per spec.md §4.E's layering rule.
// h is assumed zeroed and sized for c.Params().ParityLen.
func (c Code) initParityCheckTM(h []uint32) {
	p := c.Params()
	m := p.M
	rowWords := (p.N + p.P) / 32
	q := (p.N + p.P) / m

	switch q {
	case 5:
		c.applyOverlay(h, rowWords, 0, tmPwidthR12, &tmR12)
	case 7:
		c.applyOverlay(h, rowWords, 2*m, tmPwidthR12, &tmR12)
		c.applyOverlay(h, rowWords, 0, tmPwidthR23, &tmR23)
	case 11:
		c.applyOverlay(h, rowWords, 6*m, tmPwidthR12, &tmR12)
		c.applyOverlay(h, rowWords, 4*m, tmPwidthR23, &tmR23)
		c.applyOverlay(h, rowWords, 0, tmPwidthR45, &tmR45)
	default:
		panic("ldpc: unsupported TM block-column count")
	}
}

// applyOverlay XORs one overlay (three summed planes) into h, starting at
// absolute column col0, using pwidth of the overlay's (up to 5) block
// columns. permute computes each plane cell's target column.
func (c Code) applyOverlay(h []uint32, rowWords, col0, pwidth int, overlay *tmOverlay) {
	m := c.Params().M
	for _, plane := range overlay {
		for v := 0; v < 3; v++ {
			for w := 0; w < pwidth; w++ {
				cell := plane[v][w]
				if cell == 0 {
					continue
				}
				for i := 0; i < m; i++ {
					j := c.permute(cell, m, i)
					row := v*m + i
					col := col0 + w*m + j
					xorBit(h, rowWords, row, col)
				}
			}
		}
	}
}

// permute computes the target column j for prototype cell `cell` and
// in-sub-matrix row i (spec.md §4.E): j=i for an identity cell, or the
// θ/φ-driven π permutation for a permutation cell.
func (c Code) permute(cell byte, m, i int) int {
	if cell&hp != hp {
		return i
	}
	k := int(cell & rotMask)
	qi := (4 * i) / m
	return (m/4)*((int(thetaK[k-1])+qi)%4) + ((int(phiTables[m][qi][k-1]) + i) % (m / 4))
}

// tmRowVariables calls emit, in ascending column order, with the variable
// index of every 1 bit of check row `check` of the TM parity-check matrix,
// reproducing the three-plane XOR-summation directly from the prototype
// tables without materialising the dense matrix (spec.md §4.F) — critical
// for the larger TM codes, whose dense H would otherwise dominate memory.
// This is the single source of truth for TM row weight, shared by the
// sparse check-builder and the S-derivation in codes.go.
func (c Code) tmRowVariables(check int, emit func(variable int)) {
	p := c.Params()
	m := p.M
	blockCheck := check % m
	u := check / m
	q := (p.N + p.P) / m

	for variableBlock := 0; variableBlock < q; variableBlock++ {
		overlay, _, col0Blocks := overlayFor(q, variableBlock)
		w := variableBlock - col0Blocks

		counts := make(map[int]int, 3)
		for _, plane := range overlay {
			cell := plane[u][w]
			if cell == 0 {
				continue
			}
			counts[c.permute(cell, m, blockCheck)]++
		}

		var positions []int
		for pos, n := range counts {
			if n%2 == 1 {
				positions = append(positions, pos)
			}
		}
		sort.Ints(positions)
		for _, pos := range positions {
			emit(variableBlock*m + pos)
		}
	}
}

// initSparseChecksTM fills ci/cs for a TM code directly from the prototype
// tables, independent of initParityCheckTM.
func (c Code) initSparseChecksTM(ci, cs []uint16) {
	p := c.Params()
	rows := p.N - p.K + p.P
	idx := 0
	for check := 0; check < rows; check++ {
		cs[check] = uint16(idx)
		c.tmRowVariables(check, func(variable int) {
			ci[idx] = uint16(variable)
			idx++
		})
	}
	cs[rows] = uint16(idx)
}

// countParityBitsTM sums the weight of every TM check row directly from the
// prototype, without building ci/cs, for use by codes.go's init().
func (c Code) countParityBitsTM(rows int) int {
	total := 0
	for check := 0; check < rows; check++ {
		c.tmRowVariables(check, func(int) { total++ })
	}
	return total
}
