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

	"github.com/pkg/errors"
)

// Set assigns every bit of this vector from a given operand, i.e. v[...] = rhs.
// The operand's magnitude is reduced into this vector's width.
func (p *BitVector) Set(rhs Operand) error {
	if !valid(rhs) {
		return errors.Wrap(ErrType, "expected integer or vector")
	}
	//
	p.val.Set(&rhs.resolve().vector.val)
	p.normalise()
	//
	return nil
}

// SetBit assigns the iᵗʰ bit of this vector from the least significant bit of
// a given operand.
func (p *BitVector) SetBit(i uint, rhs Operand) error {
	return p.WriteSlice(Span(i, i), rhs)
}

// SetSlice assigns bits [start:stop] of this vector from a given operand.  See
// WriteSlice for details.
func (p *BitVector) SetSlice(start uint, stop uint, rhs Operand) error {
	return p.WriteSlice(Span(start, stop), rhs)
}

// WriteSlice assigns the bits selected by a given range from a given operand.
// The operand is fitted to the width of the range by taking its low bits or,
// if it is narrower, extending it with zeros.  For a reversed range, the bit
// order of the fitted value is flipped before it is written.  Stepped ranges
// are not supported.  On error, this vector is left unchanged.
func (p *BitVector) WriteSlice(r Range, rhs Operand) error {
	var mask, fitted big.Int
	//
	if !valid(rhs) {
		return errors.Wrap(ErrType, "expected integer or vector")
	} else if r.stepped {
		return errors.Wrapf(ErrUnsupported, "step in slice assignment %s", r.String())
	}
	//
	start, stop, err := r.bounds(p.width)
	if err != nil {
		return err
	}
	//
	hi, lo := max(start, stop), min(start, stop)
	if hi >= p.width {
		return rangeError(hi, p.width)
	}
	//
	n := hi - lo + 1
	value := rhs.resolve().vector
	// Fit value to target width
	fitted.And(&value.val, ones(n))
	//
	if start < stop {
		fitted.Set(&newVector(n, &fitted, false).Reverse().val)
	}
	// Clear target bits
	mask.Lsh(ones(n), lo)
	p.val.AndNot(&p.val, &mask)
	// Write fitted bits
	fitted.Lsh(&fitted, lo)
	p.val.Or(&p.val, &fitted)
	p.normalise()
	//
	return nil
}

// Assign distributes the bits of a given operand across one or more target
// vectors, in the style of Verilog's {a, b, c} = rhs.  Targets are given from
// most significant to least significant.  Thus, the last target receives the
// low bits of the operand, the one before it receives the next bits, and so
// on.  A single target receives every bit of the operand (reduced into its
// width).
func Assign(lhs []*BitVector, rhs Operand) error {
	var (
		shift uint
		val   big.Int
	)
	//
	if !valid(rhs) {
		return errors.Wrap(ErrType, "expected integer or vector")
	}
	//
	for _, v := range lhs {
		if v == nil {
			return errors.Wrap(ErrType, "nil assignment target")
		}
	}
	//
	if len(lhs) == 1 {
		return lhs[0].Set(rhs)
	}
	//
	// Copy operand, since it may also be a target
	value := new(big.Int).Set(&rhs.resolve().vector.val)
	//
	for i := len(lhs) - 1; i >= 0; i-- {
		val.Rsh(value, shift)
		lhs[i].val.Set(&val)
		lhs[i].normalise()
		//
		shift += lhs[i].width
	}
	//
	return nil
}
