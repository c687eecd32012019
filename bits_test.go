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
)

func TestSetGetBit(t *testing.T) {
	const rowWords = 2 // 64 columns
	buf := make([]uint32, rowWords*3)

	setBit(buf, rowWords, 0, 0)
	setBit(buf, rowWords, 0, 63)
	setBit(buf, rowWords, 1, 32)
	setBit(buf, rowWords, 2, 17)

	assert.EqualValues(t, 1, getBit(buf, rowWords, 0, 0))
	assert.EqualValues(t, 1, getBit(buf, rowWords, 0, 63))
	assert.EqualValues(t, 1, getBit(buf, rowWords, 1, 32))
	assert.EqualValues(t, 1, getBit(buf, rowWords, 2, 17))

	assert.EqualValues(t, 0, getBit(buf, rowWords, 0, 1))
	assert.EqualValues(t, 0, getBit(buf, rowWords, 1, 0))
	assert.EqualValues(t, 0, getBit(buf, rowWords, 2, 16))
}

func TestXorBitTogglesIndependently(t *testing.T) {
	const rowWords = 1
	buf := make([]uint32, rowWords)

	xorBit(buf, rowWords, 0, 5)
	assert.EqualValues(t, 1, getBit(buf, rowWords, 0, 5))

	xorBit(buf, rowWords, 0, 5)
	assert.EqualValues(t, 0, getBit(buf, rowWords, 0, 5), "xor twice cancels")

	xorBit(buf, rowWords, 0, 5)
	xorBit(buf, rowWords, 0, 6)
	assert.EqualValues(t, 1, getBit(buf, rowWords, 0, 5))
	assert.EqualValues(t, 1, getBit(buf, rowWords, 0, 6))
}

func TestPopcount(t *testing.T) {
	buf := []uint32{0, 0xFFFFFFFF, 0x1, 0x80000000}
	assert.Equal(t, 32+1+1, popcount(buf))
}
