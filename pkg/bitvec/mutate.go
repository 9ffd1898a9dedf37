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

// The assignment forms of the arithmetic and bitwise operators model a fixed
// width register.  Unlike their pure counterparts, the width never grows: the
// result is reduced back into the receiver's width and its signed flag is
// retained.

// AddAssign implements p += rhs.
func (p *BitVector) AddAssign(rhs Operand) {
	p.update(p.Add(rhs))
}

// SubAssign implements p -= rhs.
func (p *BitVector) SubAssign(rhs Operand) {
	p.update(p.Sub(rhs))
}

// MulAssign implements p *= rhs.
func (p *BitVector) MulAssign(rhs Operand) {
	p.update(p.Mul(rhs))
}

// PowAssign implements p **= rhs.
func (p *BitVector) PowAssign(rhs Operand) {
	p.update(p.Pow(rhs))
}

// DivAssign implements p /= rhs, using the sign convention of Div.
func (p *BitVector) DivAssign(rhs Operand) {
	p.update(p.Div(rhs))
}

// ModAssign implements p %= rhs, using the sign convention of Mod.
func (p *BitVector) ModAssign(rhs Operand) {
	p.update(p.Mod(rhs))
}

// ShlAssign implements p <<= amount.
func (p *BitVector) ShlAssign(amount Operand) {
	p.update(p.Shl(amount))
}

// ShrAssign implements p >>= amount.
func (p *BitVector) ShrAssign(amount Operand) {
	p.update(p.Shr(amount))
}

// AndAssign implements p &= rhs.
func (p *BitVector) AndAssign(rhs Operand) {
	p.update(p.And(rhs))
}

// OrAssign implements p |= rhs.
func (p *BitVector) OrAssign(rhs Operand) {
	p.update(p.Or(rhs))
}

// XorAssign implements p ^= rhs.
func (p *BitVector) XorAssign(rhs Operand) {
	p.update(p.Xor(rhs))
}

// NotAssign complements every bit of this vector in place.
func (p *BitVector) NotAssign() {
	p.update(p.Not())
}

// Replace the magnitude of this vector with that of a freshly computed result,
// reduced into this vector's width.
func (p *BitVector) update(result *BitVector) {
	p.val.Set(&result.val)
	p.normalise()
}
