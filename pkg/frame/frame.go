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
	"github.com/pkg/errors"
)

// Interleave the bytes of a payload and its CRC into a frame.  Starting from
// the most significant end, the frame holds the payload's least significant
// byte followed by the CRC's least significant byte, and so on:
//
// {d[7:0], c[7:0], d[15:8], c[15:8], d[23:16], c[23:16], d[31:24], c[31:24]}
func Interleave(payload *bitvec.BitVector, crc *bitvec.BitVector) *bitvec.BitVector {
	var items []bitvec.Operand
	//
	for lo := uint(0); lo < PayloadWidth; lo += 8 {
		items = append(items, field(payload, lo+7, lo), field(crc, lo+7, lo))
	}
	//
	return bitvec.ConcatAll(items...)
}

// Deinterleave a frame into its payload and CRC.  This is the inverse of
// Interleave.
func Deinterleave(frame *bitvec.BitVector) (payload *bitvec.BitVector, crc *bitvec.BitVector, err error) {
	var payloadBytes, crcBytes []bitvec.Operand
	//
	if frame.Width() != FrameWidth {
		return nil, nil, errors.Wrapf(bitvec.ErrRange, "frame has width %d, expected %d", frame.Width(), FrameWidth)
	}
	// The frame's least significant byte holds the CRC's most significant byte.
	for lo := uint(0); lo < FrameWidth; lo += 16 {
		crcBytes = append(crcBytes, field(frame, lo+7, lo))
		payloadBytes = append(payloadBytes, field(frame, lo+15, lo+8))
	}
	//
	return bitvec.ConcatAll(payloadBytes...), bitvec.ConcatAll(crcBytes...), nil
}

// Read a field whose bounds are known to lie within the vector.
func field(v *bitvec.BitVector, hi uint, lo uint) *bitvec.BitVector {
	f, err := v.Slice(hi, lo)
	if err != nil {
		panic(err)
	}
	//
	return f
}
