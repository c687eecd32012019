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

// Component D (dense) and half of Component F (sparse) for the TC codes.
// The two paths below share only the prototype table, never a code path,
// per spec.md §4.F's requirement that the sparse check-builder not depend
// on the materialised dense matrix.

func (c Code) isTC() bool {
	return c == TC128 || c == TC256 || c == TC512
}

// initParityCheckTC builds the dense (n-k) x n parity-check matrix from the
// TC rotated-identity prototype (spec.md §4.D). h is assumed zeroed and
// sized for c.Params().ParityLen.
func (c Code) initParityCheckTC(h []uint32) {
	p := c.Params()
	m := p.M
	rowWords := p.N / 32

	for u := 0; u < 4; u++ {
		for v := 0; v < 8; v++ {
			cell := tcPrototype[u][v]
			if cell&hp != hp && cell&hi != hi {
				continue
			}
			rot := int(cell & rotMask)
			for i := 0; i < m; i++ {
				row := u*m + i
				j := (i + rot) % m
				setBit(h, rowWords, row, v*m+j)
				if cell&hs == hs {
					xorBit(h, rowWords, row, v*m+(i%m))
				}
			}
		}
	}
}

// tcRowVariables calls emit, in ascending column order, with the variable
// index of every 1 bit of check row `check` of the TC parity-check matrix,
// computed directly from the prototype (no dense matrix involved). Each
// prototype cell contributes to at most two columns — the "rotated"
// position (i+rot)%m, which is always OR'd in when HI or HP is set, and,
// for HS cells, the identity position i, XOR'd in afterwards. When HS has
// rot=0 those two writes land on the same column and cancel, per spec.md
// §4.D's note that this is correct by the standard's construction.
// This is the single source of truth for TC row weight, shared by the
// sparse check-builder and the S-derivation in codes.go.
func (c Code) tcRowVariables(check int, emit func(variable int)) {
	m := c.Params().M
	u := check / m
	blockCheck := check % m

	for v := 0; v < 8; v++ {
		cell := tcPrototype[u][v]
		if cell&hp != hp && cell&hi != hi {
			continue
		}
		rot := int(cell & rotMask)
		rotated := (blockCheck + rot) % m

		if cell&hs == hs {
			if rot == 0 {
				continue // OR then XOR on the same column cancels
			}
			lo, hiCol := blockCheck, rotated
			if lo > hiCol {
				lo, hiCol = hiCol, lo
			}
			emit(v*m + lo)
			emit(v*m + hiCol)
		} else {
			emit(v*m + rotated)
		}
	}
}

// initSparseChecksTC fills ci/cs for a TC code directly from the prototype,
// independent of initParityCheckTC.
func (c Code) initSparseChecksTC(ci, cs []uint16) {
	p := c.Params()
	idx := 0
	for check := 0; check < p.N-p.K; check++ {
		cs[check] = uint16(idx)
		c.tcRowVariables(check, func(variable int) {
			ci[idx] = uint16(variable)
			idx++
		})
	}
	cs[p.N-p.K] = uint16(idx)
}

// countParityBitsTC sums the weight of every TC check row directly from the
// prototype, without building ci/cs, for use by codes.go's init().
func (c Code) countParityBitsTC(rows int) int {
	total := 0
	for check := 0; check < rows; check++ {
		c.tcRowVariables(check, func(int) { total++ })
	}
	return total
}
