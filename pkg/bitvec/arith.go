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

// Add returns the sum of this vector and a given operand.  The result is one
// bit wider than the widest operand, such that overflow is never lost.
func (p *BitVector) Add(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Add(&p.val, o.raw)
	//
	return newVector(max(p.width, o.width())+1, &val, p.signed || o.signed())
}

// Sub returns the difference of this vector and a given operand, computed as
// p + ~rhs + 1.  The result is one bit wider than the widest operand.
func (p *BitVector) Sub(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	// NOTE: ~x + 1 == -x for unbounded integers.
	val.Not(o.raw)
	val.Add(&val, &p.val)
	val.Add(&val, big.NewInt(1))
	//
	return newVector(max(p.width, o.width())+1, &val, p.signed || o.signed())
}

// Mul returns the product of this vector and a given operand.  The result is
// exactly wide enough to hold the product.
func (p *BitVector) Mul(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Mul(&p.val, o.raw)
	//
	return newVector(bitLength(&val), &val, p.signed || o.signed())
}

// Pow returns this vector raised to the power of a given operand.  The result
// is exactly wide enough to hold the result.  A negative exponent yields one.
func (p *BitVector) Pow(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Exp(&p.val, o.raw, nil)
	//
	return newVector(bitLength(&val), &val, p.signed || o.signed())
}

// Div returns the quotient of this vector and a given operand.  The sign of the
// result is the sign of the product of both decoded values, whilst its
// magnitude is obtained by dividing their absolute values.  Thus, -7 / 2 is -3
// (rather than -4).  Division by zero panics.
func (p *BitVector) Div(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Quo(new(big.Int).Abs(p.Int()), new(big.Int).Abs(o.value))
	//
	return p.signedMagnitude(o, &val)
}

// Mod returns the remainder of this vector and a given operand, following the
// same sign convention as Div.  Thus, 7 % -2 is -1 (rather than 1).  Modulo by
// zero panics.
func (p *BitVector) Mod(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Rem(new(big.Int).Abs(p.Int()), new(big.Int).Abs(o.value))
	//
	return p.signedMagnitude(o, &val)
}

// Apply the sign of the product of two decoded values to a given magnitude,
// producing a vector wide enough for either operand.
func (p *BitVector) signedMagnitude(o operand, magnitude *big.Int) *BitVector {
	if p.Int().Sign()*o.value.Sign() < 0 {
		magnitude.Neg(magnitude)
	}
	//
	return newVector(max(p.width, o.width()), magnitude, p.signed || o.signed())
}

// Shl returns this vector shifted left by a given amount, discarding bits
// shifted beyond its width.  Thus, shifting by the width or more gives zero.
// For a vector operand the amount is its magnitude, whilst a negative integer
// amount panics.
func (p *BitVector) Shl(amount Operand) *BitVector {
	var val big.Int
	//
	val.Lsh(&p.val, shiftAmount(amount, p.width))
	//
	return newVector(p.width, &val, p.signed)
}

// Shr returns this vector logically shifted right by a given amount, which is
// handled as for Shl.
func (p *BitVector) Shr(amount Operand) *BitVector {
	var val big.Int
	//
	val.Rsh(&p.val, shiftAmount(amount, p.width))
	//
	return newVector(p.width, &val, p.signed)
}

// RotateLeft returns this vector circularly shifted left by a given amount,
// taken modulo its width.  A negative integer amount panics.
func (p *BitVector) RotateLeft(amount Operand) *BitVector {
	var n = p.rotation(amount)
	//
	return p.rotate(n, p.width-n)
}

// RotateRight returns this vector circularly shifted right by a given amount,
// taken modulo its width.
func (p *BitVector) RotateRight(amount Operand) *BitVector {
	var n = p.rotation(amount)
	//
	return p.rotate(p.width-n, n)
}

// Combine the left-shifted and right-shifted halves of this vector.
func (p *BitVector) rotate(left uint, right uint) *BitVector {
	var lhs, rhs big.Int
	//
	lhs.Lsh(&p.val, left)
	rhs.Rsh(&p.val, right)
	lhs.Or(&lhs, &rhs)
	//
	return newVector(p.width, &lhs, p.signed)
}

// Reduce a rotation amount modulo the width of this vector.
func (p *BitVector) rotation(amount Operand) uint {
	var (
		n   = shiftValue(amount)
		val big.Int
	)
	//
	if p.width == 0 {
		return 0
	}
	//
	val.Mod(n, new(big.Int).SetUint64(uint64(p.width)))
	//
	return uint(val.Uint64())
}

// And returns the bitwise AND of this vector and a given operand, where the
// narrower is zero extended.
func (p *BitVector) And(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.And(&p.val, &o.vector.val)
	//
	return newVector(max(p.width, o.width()), &val, p.signed || o.signed())
}

// Or returns the bitwise OR of this vector and a given operand, where the
// narrower is zero extended.
func (p *BitVector) Or(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Or(&p.val, &o.vector.val)
	//
	return newVector(max(p.width, o.width()), &val, p.signed || o.signed())
}

// Xor returns the bitwise XOR of this vector and a given operand, where the
// narrower is zero extended.
func (p *BitVector) Xor(rhs Operand) *BitVector {
	var (
		o   = resolve(rhs)
		val big.Int
	)
	//
	val.Xor(&p.val, &o.vector.val)
	//
	return newVector(max(p.width, o.width()), &val, p.signed || o.signed())
}

// Not returns the bitwise complement of this vector.
func (p *BitVector) Not() *BitVector {
	var val big.Int
	//
	val.Xor(&p.val, ones(p.width))
	//
	return newVector(p.width, &val, p.signed)
}

// Determine a shift amount from an operand, saturating at a given bound.
func shiftAmount(amount Operand, bound uint) uint {
	var n = shiftValue(amount)
	//
	if !n.IsUint64() || n.Uint64() > uint64(bound) {
		return bound
	}
	//
	return uint(n.Uint64())
}

// Extract the (unbounded) value of a shift or rotate amount.  As for Go's own
// shift operators, a negative amount panics.
func shiftValue(amount Operand) *big.Int {
	var n = resolve(amount).raw
	//
	if n.Sign() < 0 {
		panic("negative shift amount")
	}
	//
	return n
}

// ============================================================================
// Comparisons
// ============================================================================

// Cmp compares the decoded value of this vector against a given operand,
// returning -1, 0 or 1.  Integers are compared by their exact value.
func (p *BitVector) Cmp(rhs Operand) int {
	return p.Int().Cmp(resolve(rhs).value)
}

// Eq checks whether this vector and a given operand have the same value.
func (p *BitVector) Eq(rhs Operand) bool {
	return p.Cmp(rhs) == 0
}

// Ne checks whether this vector and a given operand have different values.
func (p *BitVector) Ne(rhs Operand) bool {
	return p.Cmp(rhs) != 0
}

// Lt checks whether this vector is less than a given operand.
func (p *BitVector) Lt(rhs Operand) bool {
	return p.Cmp(rhs) < 0
}

// Le checks whether this vector is less than or equal to a given operand.
func (p *BitVector) Le(rhs Operand) bool {
	return p.Cmp(rhs) <= 0
}

// Gt checks whether this vector is greater than a given operand.
func (p *BitVector) Gt(rhs Operand) bool {
	return p.Cmp(rhs) > 0
}

// Ge checks whether this vector is greater than or equal to a given operand.
func (p *BitVector) Ge(rhs Operand) bool {
	return p.Cmp(rhs) >= 0
}
