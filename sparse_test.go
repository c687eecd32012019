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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitParityCheckLengthPanic(t *testing.T) {
	assert.Panics(t, func() {
		TC128.InitParityCheck(make([]uint32, 1))
	})
}

func TestInitSparseParityCheckLengthPanics(t *testing.T) {
	p := TM1280.Params()
	assert.Panics(t, func() {
		TM1280.InitSparseParityCheckChecks(make([]uint16, p.CiLen), make([]uint16, 1))
	})
	assert.Panics(t, func() {
		ci := make([]uint16, p.CiLen)
		cs := make([]uint16, p.CsLen)
		TM1280.InitSparseParityCheckChecks(ci, cs)
		TM1280.InitSparseParityCheckVariables(ci, cs, make([]uint16, 1), make([]uint16, p.VsLen))
	})
}

func TestInitParityCheckDenseDispatch(t *testing.T) {
	for _, c := range []Code{TC128, TC256, TC512, TM1280, TM2048, TM8192} {
		p := c.Params()
		h := make([]uint32, p.ParityLen)
		c.InitParityCheck(h)
		assert.Equal(t, p.S, popcount(h), "%s: popcount(H) must equal registered S", c)
	}
}

// TestVariableSideTransposition checks the counting-sort transposition
// (spec.md §4.F) against a direct, independently-written quadratic scan
// over ci/cs, for every registered code.
func TestVariableSideTransposition(t *testing.T) {
	for c := Code(0); c < numCodes; c++ {
		t.Run(c.String(), func(t *testing.T) {
			p := c.Params()
			ci := make([]uint16, p.CiLen)
			cs := make([]uint16, p.CsLen)
			c.InitSparseParityCheckChecks(ci, cs)

			vi := make([]uint16, p.ViLen)
			vs := make([]uint16, p.VsLen)
			c.InitSparseParityCheckVariables(ci, cs, vi, vs)

			numVars := p.N + p.P
			rows := len(cs) - 1

			require.EqualValues(t, 0, vs[0])
			require.EqualValues(t, len(vi), vs[numVars])

			for variable := 0; variable < numVars; variable++ {
				var want []int
				for check := 0; check < rows; check++ {
					for _, v := range ci[cs[check]:cs[check+1]] {
						if int(v) == variable {
							want = append(want, check)
						}
					}
				}

				var got []int
				for _, ch := range vi[vs[variable]:vs[variable+1]] {
					got = append(got, int(ch))
				}

				assert.Equal(t, want, got, "variable %d", variable)
			}
		})
	}
}

// TestDeterminism stands in for spec.md §8's literal CRC-32 regression
// anchors (see SPEC_FULL.md §1 and §8): two independent expansions of every
// artifact for every code must be byte-identical.
func TestDeterminism(t *testing.T) {
	for c := Code(0); c < numCodes; c++ {
		p := c.Params()

		h1 := make([]uint32, p.ParityLen)
		h2 := make([]uint32, p.ParityLen)
		c.InitParityCheck(h1)
		c.InitParityCheck(h2)
		assert.Equal(t, h1, h2, "%s dense parity-check", c)

		ci1, cs1 := make([]uint16, p.CiLen), make([]uint16, p.CsLen)
		ci2, cs2 := make([]uint16, p.CiLen), make([]uint16, p.CsLen)
		vi1, vs1 := make([]uint16, p.ViLen), make([]uint16, p.VsLen)
		vi2, vs2 := make([]uint16, p.ViLen), make([]uint16, p.VsLen)
		c.InitSparseParityCheck(ci1, cs1, vi1, vs1)
		c.InitSparseParityCheck(ci2, cs2, vi2, vs2)
		assert.Equal(t, ci1, ci2, "%s ci", c)
		assert.Equal(t, cs1, cs2, "%s cs", c)
		assert.Equal(t, vi1, vi2, "%s vi", c)
		assert.Equal(t, vs1, vs2, "%s vs", c)
	}
}

func TestInitSparseParityCheckComposesBothSides(t *testing.T) {
	c := TM1536
	p := c.Params()
	ci := make([]uint16, p.CiLen)
	cs := make([]uint16, p.CsLen)
	vi := make([]uint16, p.ViLen)
	vs := make([]uint16, p.VsLen)
	c.InitSparseParityCheck(ci, cs, vi, vs)

	assert.EqualValues(t, len(ci), cs[len(cs)-1])
	assert.EqualValues(t, len(vi), vs[len(vs)-1])
}
