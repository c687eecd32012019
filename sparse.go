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

// InitParityCheck builds the dense (n-k+p) x (n+p) parity-check matrix H for
// c into h, dispatching to the TC (component D) or TM (component E)
// expander. h must have length c.Params().ParityLen and is assumed zeroed.
func (c Code) InitParityCheck(h []uint32) {
	p := c.Params()
	validateLen("parity-check buffer", len(h), p.ParityLen)
	if c.isTC() {
		c.initParityCheckTC(h)
	} else {
		c.initParityCheckTM(h)
	}
}

// InitSparseParityCheckChecks builds the check-side adjacency list (ci, cs)
// directly from the prototype tables, without ever materialising H
// (component F, check side). cs[i] is the offset into ci of check row i's
// first variable; ci holds variable indices in ascending order within each
// row. len(ci) must be c.Params().CiLen and len(cs) must be c.Params().CsLen.
func (c Code) InitSparseParityCheckChecks(ci, cs []uint16) {
	p := c.Params()
	validateLen("ci", len(ci), p.CiLen)
	validateLen("cs", len(cs), p.CsLen)
	if c.isTC() {
		c.initSparseChecksTC(ci, cs)
	} else {
		c.initSparseChecksTM(ci, cs)
	}
}

// InitSparseParityCheckVariables builds the variable-side adjacency list
// (vi, vs) by transposing an already-built check-side list (ci, cs).
// Rather than the naive quadratic column scan, it uses the counting-sort
// transposition spec.md §4.F recommends: one pass to count each variable's
// degree and prefix-sum it into vs, then one pass to place each check index
// into vi at a per-variable cursor — O(S+n) instead of O(n*S).
func (c Code) InitSparseParityCheckVariables(ci, cs, vi, vs []uint16) {
	p := c.Params()
	validateLen("ci", len(ci), p.CiLen)
	validateLen("cs", len(cs), p.CsLen)
	validateLen("vi", len(vi), p.ViLen)
	validateLen("vs", len(vs), p.VsLen)

	numVars := p.N + p.P

	degree := make([]int, numVars)
	for _, v := range ci {
		degree[v]++
	}

	vs[0] = 0
	for v := 0; v < numVars; v++ {
		vs[v+1] = vs[v] + uint16(degree[v])
	}

	cursor := make([]uint16, numVars)
	copy(cursor, vs[:numVars])

	rows := len(cs) - 1
	for check := 0; check < rows; check++ {
		start, end := cs[check], cs[check+1]
		for _, v := range ci[start:end] {
			vi[cursor[v]] = uint16(check)
			cursor[v]++
		}
	}
}

// InitSparseParityCheck builds both the check-side and variable-side
// adjacency lists for c, in one call. len(ci)/len(cs) must match
// c.Params().CiLen/CsLen, and len(vi)/len(vs) must match
// c.Params().ViLen/VsLen.
func (c Code) InitSparseParityCheck(ci, cs, vi, vs []uint16) {
	p := c.Params()
	validateLen("ci", len(ci), p.CiLen)
	validateLen("cs", len(cs), p.CsLen)
	validateLen("vi", len(vi), p.ViLen)
	validateLen("vs", len(vs), p.VsLen)
	c.InitSparseParityCheckChecks(ci, cs)
	c.InitSparseParityCheckVariables(ci, cs, vi, vs)
}
