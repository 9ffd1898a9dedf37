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
	"github.com/consensys/go-bitvec/pkg/util/collection/bit"
	"github.com/consensys/go-bitvec/pkg/util/collection/iter"
)

// PatternMatch returns an iterator over the positions in this vector at which
// a given pattern occurs.  A position i is reported when the sub-field
// [i : i - w + 1] has the same bits as the pattern, where w is the pattern's
// width.  Thus, positions identify where the most significant bit of the
// pattern lands, and are reported in ascending order.  For example, the pattern
// 4'b1011 occurs in 8'b10111011 at position 3 (and 7).  If the pattern is nil,
// then a single set bit is used, such that every set bit is reported.  The
// iterator is lazy and can be restarted from any point by cloning it.
func (p *BitVector) PatternMatch(pattern *BitVector) iter.Iterator[uint] {
	if pattern == nil {
		pattern = New(1, 1)
	}
	//
	if pattern.width == 0 || pattern.width > p.width {
		return iter.NewFilterIterator(0, 0, nil)
	}
	//
	return iter.NewFilterIterator(pattern.width-1, p.width, func(i uint) bool {
		field, err := p.Slice(i, i+1-pattern.width)
		// Cannot fail as i < width
		if err != nil {
			panic(err)
		}
		//
		return field.val.Cmp(&pattern.val) == 0
	})
}

// SetBits returns the positions of all bits in this vector which are one, in
// ascending order.
func (p *BitVector) SetBits() []uint {
	return p.PatternMatch(nil).Collect()
}

// ClearBits returns the positions of all bits in this vector which are zero, in
// ascending order.
func (p *BitVector) ClearBits() []uint {
	var set = bit.NewPositionSet(p.width)
	//
	set.Insert(p.SetBits()...)
	//
	return bit.FullPositionSet(p.width).Difference(set).Positions()
}

// Parity returns the XOR reduction of this vector, which is one when an odd
// number of bits are set.
func (p *BitVector) Parity() *BitVector {
	return Reduce().Xor(p)
}

// ============================================================================
// Reduction
// ============================================================================

// Reducer folds a bitwise operator across every bit of a vector, as for
// Verilog's reduction operators (e.g. |4'b1101 == 1'b1).  A reducer holds no
// state.
type Reducer struct{}

// Reduce returns a reducer.
func Reduce() Reducer {
	return Reducer{}
}

// And returns v[0] & v[1] & ... & v[n-1] as a vector of width one.
func (r Reducer) And(v *BitVector) *BitVector {
	return r.fold(v, (*BitVector).AndAssign)
}

// Or returns v[0] | v[1] | ... | v[n-1] as a vector of width one.
func (r Reducer) Or(v *BitVector) *BitVector {
	return r.fold(v, (*BitVector).OrAssign)
}

// Xor returns v[0] ^ v[1] ^ ... ^ v[n-1] as a vector of width one.
func (r Reducer) Xor(v *BitVector) *BitVector {
	return r.fold(v, (*BitVector).XorAssign)
}

func (r Reducer) fold(v *BitVector, op func(*BitVector, Operand)) *BitVector {
	var (
		bits = v.Bits()
		acc  = New(1, 0)
	)
	// The first bit seeds the accumulator
	if bits.HasNext() {
		acc = bits.Next()
	}
	//
	for bits.HasNext() {
		op(acc, bits.Next())
	}
	//
	return acc
}
