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

// Operand represents the right-hand side of a binary operator or assignment,
// which is either another vector or a plain integer.  Integers are promoted to
// an unsigned vector whose width is their minimal bit length.  Operands are
// resolved once on entry to an operator and are then handled uniformly.
type Operand interface {
	resolve() operand
}

// Int constructs an integer operand.
func Int(value int64) Operand {
	return integer{big.NewInt(value)}
}

// Big constructs an arbitrary precision integer operand.
func Big(value *big.Int) Operand {
	return integer{new(big.Int).Set(value)}
}

type integer struct {
	value *big.Int
}

func (p integer) resolve() operand {
	return operand{FromBig(p.value), p.value, p.value}
}

func (p *BitVector) resolve() operand {
	return operand{p, &p.val, p.Int()}
}

// operand is a resolved Operand.
type operand struct {
	// Vector form of the operand.  For an integer, this is its promotion.
	vector *BitVector
	// Raw value used by arithmetic operators.  For a vector, this is its
	// magnitude whilst, for an integer, this is the integer itself.
	raw *big.Int
	// Decoded value used by comparisons, division and modulo.  For a vector,
	// this is its (possibly signed) integer value.
	value *big.Int
}

func (p operand) width() uint {
	return p.vector.width
}

func (p operand) signed() bool {
	return p.vector.signed
}

// Check whether a given operand is well-formed.  Since Operand is sealed, the
// only ill-formed operands are nil interfaces or nil vectors.
func valid(o Operand) bool {
	if o == nil {
		return false
	} else if v, ok := o.(*BitVector); ok && v == nil {
		return false
	}
	//
	return true
}

// Resolve an operand, panicking if it is nil.  Only assignments report nil
// operands as errors, since they are expected to be checked before any
// mutation occurs.
func resolve(o Operand) operand {
	if !valid(o) {
		panic("nil operand")
	}
	//
	return o.resolve()
}
