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

import "math/bits"

// Every dense matrix in this package (the generator's parity columns, and
// the full parity-check matrix) uses the same packed convention: row-major
// 32-bit words, MSB of a word holding the lowest column index it carries.
// wordIndex and bitShift are the single place that convention is expressed,
// so every expander agrees on layout regardless of submatrix size.

// wordIndex returns the index into a row-major packed buffer of the word
// holding column col of a row that starts at row*rowWords.
func wordIndex(rowWords, row, col int) int {
	return row*rowWords + col/32
}

// bitShift returns the shift (from the LSB) of column col within its word.
func bitShift(col int) uint {
	return 31 - uint(col%32)
}

// setBit ORs a 1 into (row, col) of a packed matrix with rowWords words per row.
func setBit(buf []uint32, rowWords, row, col int) {
	buf[wordIndex(rowWords, row, col)] |= 1 << bitShift(col)
}

// xorBit toggles (row, col) of a packed matrix with rowWords words per row.
func xorBit(buf []uint32, rowWords, row, col int) {
	buf[wordIndex(rowWords, row, col)] ^= 1 << bitShift(col)
}

// getBit reads (row, col) of a packed matrix with rowWords words per row.
func getBit(buf []uint32, rowWords, row, col int) uint32 {
	return (buf[wordIndex(rowWords, row, col)] >> bitShift(col)) & 1
}

// popcount returns the total number of set bits across buf.
func popcount(buf []uint32) int {
	total := 0
	for _, w := range buf {
		total += bits.OnesCount32(w)
	}
	return total
}
