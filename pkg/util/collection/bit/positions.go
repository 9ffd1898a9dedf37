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
package bit

import (
	"github.com/bits-and-blooms/bitset"
)

// PositionSet is a set of bit positions within a vector of fixed width.  Unlike
// the vector itself, this is used to reason about positions (e.g. which
// positions matched a pattern) rather than values.
type PositionSet struct {
	width uint
	bits  *bitset.BitSet
}

// NewPositionSet constructs an empty set of positions over a vector of the
// given width.
func NewPositionSet(width uint) PositionSet {
	return PositionSet{width, bitset.New(width)}
}

// FullPositionSet constructs a set containing every valid position of a vector
// of the given width.
func FullPositionSet(width uint) PositionSet {
	set := NewPositionSet(width)
	set.bits.FlipRange(0, width)
	//
	return set
}

// Width returns the width of the vector over which this set is defined.
func (p PositionSet) Width() uint {
	return p.width
}

// Insert a position into this set.  Positions outside the width are ignored.
func (p PositionSet) Insert(positions ...uint) {
	for _, i := range positions {
		if i < p.width {
			p.bits.Set(i)
		}
	}
}

// Contains checks whether a given position is in this set, or not.
func (p PositionSet) Contains(position uint) bool {
	return p.bits.Test(position)
}

// Count returns the number of positions in this set.
func (p PositionSet) Count() uint {
	return p.bits.Count()
}

// Difference returns a fresh set containing those positions in this set which
// are not in the other.
func (p PositionSet) Difference(other PositionSet) PositionSet {
	return PositionSet{p.width, p.bits.Difference(other.bits)}
}

// Positions returns the positions of this set in ascending order.
func (p PositionSet) Positions() []uint {
	var positions = make([]uint, 0, p.bits.Count())
	//
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		positions = append(positions, i)
	}
	//
	return positions
}

// BytesRequiredFor returns the minimum number of bytes required to hold the
// given bitwidth.  For example, a u16 needs 2 bytes whilst a u17 needs 3.
func BytesRequiredFor(bitwidth uint) uint {
	return (bitwidth + 7) / 8
}
