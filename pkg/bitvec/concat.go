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
package bitvec

import (
	"math/big"
)

// Concat returns the concatenation {a, b} of two vectors.  The order matters:
// a occupies the most significant bits of the result, and b the least.  The
// result is unsigned.
func Concat(a *BitVector, b *BitVector) *BitVector {
	var val big.Int
	//
	val.Lsh(&a.val, b.width)
	val.Or(&val, &b.val)
	//
	return newVector(a.width+b.width, &val, false)
}

// Repeat returns the replication {n{a}} of a vector, i.e. a concatenated with
// itself n times.  The repetition count must be positive.
func Repeat(a *BitVector, n uint) *BitVector {
	if n == 0 {
		panic("zero repetition")
	}
	//
	var vec = a.AsUnsigned()
	//
	for i := uint(1); i < n; i++ {
		vec = Concat(vec, a)
	}
	//
	return vec
}

// ConcatAll returns the concatenation {v1, v2, ..., vk} of zero or more
// operands, where v1 occupies the most significant bits.  Integers are first
// promoted to vectors of their minimal bit length.  The concatenation of
// nothing is the (empty) vector of width zero.
func ConcatAll(items ...Operand) *BitVector {
	var vec = newVector(0, new(big.Int), false)
	//
	for _, item := range items {
		vec = Concat(vec, resolve(item).vector)
	}
	//
	return vec
}
