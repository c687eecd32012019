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

func TestParamsSizeLaw(t *testing.T) {
	tests := []struct {
		name string
		code Code
	}{
		{"TC128", TC128}, {"TC256", TC256}, {"TC512", TC512},
		{"TM1280", TM1280}, {"TM1536", TM1536}, {"TM2048", TM2048},
		{"TM5120", TM5120}, {"TM6144", TM6144}, {"TM8192", TM8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.code.Params()
			rows := p.N - p.K + p.P
			cols := p.N + p.P

			assert.Equal(t, p.K*(p.N-p.K)/32, p.GeneratorLen, "generator buffer length")
			assert.Equal(t, cols*rows/32, p.ParityLen, "parity-check buffer length")
			assert.Equal(t, rows+1, p.CsLen, "cs length")
			assert.Equal(t, cols+1, p.VsLen, "vs length")
			assert.Equal(t, p.S, p.CiLen, "ci length equals S")
			assert.Equal(t, p.S, p.ViLen, "vi length equals S")
			assert.Greater(t, p.S, 0, "paritycheck_sum must be positive")
		})
	}
}

func TestCodeStringRoundTrip(t *testing.T) {
	for c := Code(0); c < numCodes; c++ {
		name := c.String()
		require.NotEmpty(t, name)
		assert.Equal(t, codeNames[c], name)
	}
}

func TestCodeStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Code(99)", Code(99).String())
	assert.Equal(t, "Code(-1)", Code(-1).String())
}

func TestIsTCPartitionsTheRegistry(t *testing.T) {
	tcCount, tmCount := 0, 0
	for c := Code(0); c < numCodes; c++ {
		if c.isTC() {
			tcCount++
		} else {
			tmCount++
		}
	}
	assert.Equal(t, 3, tcCount)
	assert.Equal(t, 6, tmCount)
}
