// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package frame

import (
	"github.com/consensys/go-bitvec/pkg/bitvec"
)

// Each bit of the CRC is the XOR of a fixed set of bit positions taken from
// both the previous CRC state and the data.  Since the same positions are used
// for both, each output bit is the parity of (state ^ data) over its taps.
var crcTaps = [CrcWidth][]uint{
	{0, 1, 2, 3, 4, 6, 7, 8, 16, 20, 22, 23, 26},
	{1, 2, 3, 4, 5, 7, 8, 9, 17, 21, 23, 24, 27},
	{0, 2, 3, 4, 5, 6, 8, 9, 10, 18, 22, 24, 25, 28},
	{1, 3, 4, 5, 6, 7, 9, 10, 11, 19, 23, 25, 26, 29},
	{2, 4, 5, 6, 7, 8, 10, 11, 12, 20, 24, 26, 27, 30},
	{0, 3, 5, 6, 7, 8, 9, 11, 12, 13, 21, 25, 27, 28, 31},
	{0, 2, 3, 9, 10, 12, 13, 14, 16, 20, 23, 28, 29},
	{1, 3, 4, 10, 11, 13, 14, 15, 17, 21, 24, 29, 30},
	{0, 2, 4, 5, 11, 12, 14, 15, 16, 18, 22, 25, 30, 31},
	{0, 2, 4, 5, 7, 8, 12, 13, 15, 17, 19, 20, 22, 31},
	{0, 2, 4, 5, 7, 9, 13, 14, 18, 21, 22, 26},
	{1, 3, 5, 6, 8, 10, 14, 15, 19, 22, 23, 27},
	{2, 4, 6, 7, 9, 11, 15, 16, 20, 23, 24, 28},
	{0, 3, 5, 7, 8, 10, 12, 16, 17, 21, 24, 25, 29},
	{0, 1, 4, 6, 8, 9, 11, 13, 17, 18, 22, 25, 26, 30},
	{1, 2, 5, 7, 9, 10, 12, 14, 18, 19, 23, 26, 27, 31},
	{1, 4, 7, 10, 11, 13, 15, 16, 19, 22, 23, 24, 26, 27, 28},
	{2, 5, 8, 11, 12, 14, 16, 17, 20, 23, 24, 25, 27, 28, 29},
	{0, 3, 6, 9, 12, 13, 15, 17, 18, 21, 24, 25, 26, 28, 29, 30},
	{0, 1, 4, 7, 10, 13, 14, 16, 18, 19, 22, 25, 26, 27, 29, 30, 31},
	{0, 3, 4, 5, 6, 7, 11, 14, 15, 16, 17, 19, 22, 27, 28, 30, 31},
	{0, 2, 3, 5, 12, 15, 17, 18, 22, 26, 28, 29, 31},
	{2, 7, 8, 13, 18, 19, 20, 22, 26, 27, 29, 30},
	{0, 3, 8, 9, 14, 19, 20, 21, 23, 27, 28, 30, 31},
	{2, 3, 6, 7, 8, 9, 10, 15, 16, 21, 23, 24, 26, 28, 29, 31},
	{1, 2, 6, 9, 10, 11, 17, 20, 23, 24, 25, 26, 27, 29, 30},
	{2, 3, 7, 10, 11, 12, 18, 21, 24, 25, 26, 27, 28, 30, 31},
	{0, 1, 2, 6, 7, 11, 12, 13, 16, 19, 20, 23, 25, 27, 28, 29, 31},
	{0, 4, 6, 12, 13, 14, 16, 17, 21, 22, 23, 24, 28, 29, 30},
	{0, 1, 5, 7, 13, 14, 15, 17, 18, 22, 23, 24, 25, 29, 30, 31},
	{3, 4, 7, 14, 15, 18, 19, 20, 22, 24, 25, 30, 31},
	{0, 1, 2, 3, 5, 6, 7, 15, 19, 21, 22, 25, 31},
}

// Masks selecting the taps of each CRC bit.
var crcMasks = buildCrcMasks()

func buildCrcMasks() []*bitvec.BitVector {
	var masks = make([]*bitvec.BitVector, CrcWidth)
	//
	for i, taps := range crcTaps {
		masks[i] = bitvec.New(CrcWidth, 0)
		//
		for _, tap := range taps {
			if err := masks[i].SetBit(tap, bitvec.Int(1)); err != nil {
				panic(err)
			}
		}
	}
	//
	return masks
}

// CRC computes the 32-bit CRC of some data, given the previous CRC state.  Both
// must be 32 bits wide.
func CRC(state *bitvec.BitVector, data *bitvec.BitVector) *bitvec.BitVector {
	var (
		crc   = bitvec.New(CrcWidth, 0)
		input = state.Xor(data)
	)
	//
	for i, mask := range crcMasks {
		if err := crc.SetBit(uint(i), input.And(mask).Parity()); err != nil {
			panic(err)
		}
	}
	//
	return crc
}
