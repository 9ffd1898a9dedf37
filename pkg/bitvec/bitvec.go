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
// Package bitvec provides a fixed-width, arbitrary-size bit-vector which
// reproduces Verilog-style bit semantics: signed and unsigned interpretation,
// [msb:lsb] slicing (including reversed ranges), slice assignment,
// concatenation, repetition, reduction and pattern search.
package bitvec

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-bitvec/pkg/util/collection/bit"
	"github.com/holiman/uint256"
)

// BitVector is a vector of bits with a fixed width.  The vector holds an
// unsigned magnitude which is always reduced modulo 2^width.  A vector may be
// signed, in which case the magnitude is decoded as a two's complement integer
// for the purposes of comparison, division, modulo and textual rendering.  The
// signed flag never affects the stored bits.
//
// Operations which return a vector always allocate a fresh instance and never
// modify their operands.  The only exceptions are the assignment methods (e.g.
// SetVal, WriteSlice, AddAssign), which update the magnitude in place whilst
// holding the width and signed flag fixed.  Such methods require external
// synchronisation if an instance is shared.
type BitVector struct {
	// Magnitude of this vector, where 0 <= val < 2^width.
	val big.Int
	// Number of bits in this vector.
	width uint
	// Determines whether magnitude is decoded as two's complement.
	signed bool
}

// New constructs an unsigned vector of the given width holding the given value.
// Negative values wrap around using two's complement, such that the magnitude
// is always value mod 2^width.
func New(width uint, value int64) *BitVector {
	return NewBig(width, big.NewInt(value), false)
}

// NewSigned constructs a signed vector of the given width holding the given
// value.  For example, NewSigned(8, -15) decodes to -15 whilst its magnitude is
// 241.
func NewSigned(width uint, value int64) *BitVector {
	return NewBig(width, big.NewInt(value), true)
}

// NewBig constructs a vector of the given width from an arbitrary (and
// possibly negative) integer value.  The width must be positive.
func NewBig(width uint, value *big.Int, signed bool) *BitVector {
	if width == 0 {
		panic("zero-width vector")
	}
	//
	return newVector(width, value, signed)
}

// NewFrom constructs a vector of the given width whose magnitude is copied from
// another vector.  Only the bits are copied: the width and signed flag of the
// other vector are ignored, and its magnitude is reduced into the given width.
func NewFrom(width uint, other *BitVector, signed bool) *BitVector {
	return NewBig(width, &other.val, signed)
}

// FromInt constructs an unsigned vector whose width is the minimal bit length
// of the given integer (and at least one bit).  Negative values are reduced
// into that width.
func FromInt(value int64) *BitVector {
	return FromBig(big.NewInt(value))
}

// FromBig constructs an unsigned vector whose width is the minimal bit length
// of the given integer (and at least one bit).
func FromBig(value *big.Int) *BitVector {
	return newVector(bitLength(value), value, false)
}

// FromBytes constructs an unsigned vector of the given width from a big-endian
// byte array.  Any bits beyond the width are discarded.
func FromBytes(width uint, bytes []byte) *BitVector {
	var val big.Int
	//
	val.SetBytes(bytes)
	//
	return NewBig(width, &val, false)
}

// FromUint256 constructs an unsigned vector of the given width from a 256-bit
// word.
func FromUint256(width uint, word *uint256.Int) *BitVector {
	return NewBig(width, word.ToBig(), false)
}

// Construct a vector without checking the width.  A zero-width vector acts as
// the identity for concatenation.
func newVector(width uint, value *big.Int, signed bool) *BitVector {
	var vec = &BitVector{width: width, signed: signed}
	//
	vec.val.Set(value)
	vec.normalise()
	//
	return vec
}

// Reduce the magnitude modulo 2^width.  This must be called after every
// update to the magnitude.  Note that big.Int.Mod implements Euclidean modulus,
// hence the result is non-negative even for values below -2^width.
func (p *BitVector) normalise() {
	if p.val.Sign() < 0 || uint(p.val.BitLen()) > p.width {
		p.val.Mod(&p.val, modulus(p.width))
	}
}

// Width returns the number of bits in this vector.
func (p *BitVector) Width() uint {
	return p.width
}

// IsSigned determines whether or not this vector is interpreted as a two's
// complement integer.
func (p *BitVector) IsSigned() bool {
	return p.signed
}

// IsNegative determines whether this vector is signed and has its top bit set.
func (p *BitVector) IsNegative() bool {
	return p.signed && p.width > 0 && p.val.Bit(int(p.width-1)) == 1
}

// IsZero checks whether all bits of this vector are zero.
func (p *BitVector) IsZero() bool {
	return p.val.Sign() == 0
}

// Magnitude returns (a copy of) the unsigned bit pattern of this vector.
func (p *BitVector) Magnitude() *big.Int {
	return new(big.Int).Set(&p.val)
}

// Int returns the integer value of this vector.  For an unsigned vector this is
// just the magnitude.  For a signed vector whose top bit is set, this is the
// magnitude minus 2^width.
func (p *BitVector) Int() *big.Int {
	var val = new(big.Int).Set(&p.val)
	//
	if p.IsNegative() {
		val.Sub(val, modulus(p.width))
	}
	//
	return val
}

// Uint64 returns the low 64 bits of the magnitude.
func (p *BitVector) Uint64() uint64 {
	return p.val.Uint64()
}

// Int64 returns the integer value of this vector, truncated to 64 bits.
func (p *BitVector) Int64() int64 {
	return p.Int().Int64()
}

// Uint256 returns the magnitude as a 256-bit word.  The flag is true if the
// magnitude did not fit, in which case the word holds the low 256 bits.
func (p *BitVector) Uint256() (*uint256.Int, bool) {
	return uint256.FromBig(&p.val)
}

// Bytes returns the magnitude as a big-endian byte array which is large enough
// to hold every bit of this vector.
func (p *BitVector) Bytes() []byte {
	return p.val.FillBytes(make([]byte, bit.BytesRequiredFor(p.width)))
}

// Clone returns a copy of this vector, such that there is no aliasing between
// them.
func (p *BitVector) Clone() *BitVector {
	return newVector(p.width, &p.val, p.signed)
}

// AsSigned returns a signed vector with the same width and bits as this.
func (p *BitVector) AsSigned() *BitVector {
	return newVector(p.width, &p.val, true)
}

// AsUnsigned returns an unsigned vector with the same width and bits as this.
func (p *BitVector) AsUnsigned() *BitVector {
	return newVector(p.width, &p.val, false)
}

// SetVal updates the magnitude of this vector in place by reducing the given
// value into its width.  For an integer operand this is the integer itself
// (e.g. -1 sets every bit), whilst for a vector this is its magnitude.
func (p *BitVector) SetVal(value Operand) {
	o := resolve(value)
	//
	p.val.Set(o.raw)
	p.normalise()
}

// Format implements fmt.Formatter such that %v and %s print the binary form,
// %x the hexadecimal form and %d the decimal form.
func (p *BitVector) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprint(state, p.Hex())
	case 'd':
		fmt.Fprint(state, p.Decimal())
	default:
		fmt.Fprint(state, p.Binary())
	}
}

// Compute 2^width.
func modulus(width uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), width)
}

// Compute 2^width - 1.
func ones(width uint) *big.Int {
	var m = modulus(width)
	//
	return m.Sub(m, big.NewInt(1))
}

// Determine the minimal bit length of an integer, ignoring its sign.  Zero
// requires one bit.
func bitLength(value *big.Int) uint {
	if n := uint(value.BitLen()); n > 0 {
		return n
	}
	//
	return 1
}
