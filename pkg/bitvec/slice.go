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
	"fmt"
	"math/big"

	"github.com/consensys/go-bitvec/pkg/util/collection/iter"
	"github.com/pkg/errors"
)

// Range identifies a selection of bits within a vector using Verilog
// [start:stop] ordering.  When start >= stop, the selection is a normal
// sub-field whose least significant bit is stop.  When start < stop, the
// selection is reversed: it covers the same sub-field, but with its bit order
// flipped.  An optional step selects every nᵗʰ bit, whilst a negative step
// swaps start and stop.
type Range struct {
	start uint
	stop  uint
	// Indicates start / stop are the defaults, which cover the whole vector.
	all bool
	// Step between selected bits (when stepped).
	step int
	// Indicates a step was given explicitly.
	stepped bool
}

// Span constructs a range [start:stop] with unit step.
func Span(start uint, stop uint) Range {
	return Range{start: start, stop: stop}
}

// All constructs a range covering every bit of a vector, i.e. [width-1:0].
func All() Range {
	return Range{all: true}
}

// WithStep returns a copy of this range with a given step.
func (r Range) WithStep(step int) Range {
	r.step = step
	r.stepped = true
	//
	return r
}

// Step returns the step of this range, which defaults to one.
func (r Range) Step() int {
	if r.stepped {
		return r.step
	}
	//
	return 1
}

func (r Range) String() string {
	var bounds = "[:"
	//
	if !r.all {
		bounds = fmt.Sprintf("[%d:%d", r.start, r.stop)
	}
	//
	if r.stepped {
		return fmt.Sprintf("%s:%d]", bounds, r.step)
	}
	//
	return bounds + "]"
}

// Determine the concrete start and stop for a vector of the given width.
func (r Range) bounds(width uint) (uint, uint, error) {
	if !r.all {
		return r.start, r.stop, nil
	} else if width == 0 {
		return 0, 0, rangeError(0, width)
	}
	//
	return width - 1, 0, nil
}

// Bit returns the iᵗʰ bit of this vector as a vector of width one.  Bits are
// indexed from the least significant.
func (p *BitVector) Bit(i uint) (*BitVector, error) {
	if i >= p.width {
		return nil, rangeError(i, p.width)
	}
	//
	return New(1, int64(p.val.Bit(int(i)))), nil
}

// Slice returns the bits [start:stop] of this vector as an unsigned vector.
// For example, given v = 8'b10110100 then v[5:2] is 4'b1101, whilst the
// reversed range v[2:5] is 4'b1011.
func (p *BitVector) Slice(start uint, stop uint) (*BitVector, error) {
	return p.ReadSlice(Span(start, stop))
}

// Reverse returns a copy of this vector with its bit order flipped, i.e.
// v[::-1].
func (p *BitVector) Reverse() *BitVector {
	if p.width == 0 {
		return p.AsUnsigned()
	}
	//
	vec, err := p.ReadSlice(All().WithStep(-1))
	// Cannot fail for a non-empty vector
	if err != nil {
		panic(err)
	}
	//
	return vec
}

// ReadSlice returns the bits selected by a given range as a fresh unsigned
// vector.  The width of the result is ⌈(hi - lo + 1) / step⌉, where hi and lo
// are the greater and lesser of start and stop.  Bit k of the result is bit
// lo + k*step of this vector, or bit (width - 1 - k) of the result for a
// reversed range.
func (p *BitVector) ReadSlice(r Range) (*BitVector, error) {
	var (
		val      big.Int
		step     = r.Step()
		reversed = false
	)
	//
	start, stop, err := r.bounds(p.width)
	//
	if err != nil {
		return nil, err
	} else if step == 0 {
		return nil, errors.Wrapf(ErrUnsupported, "zero step in slice %s", r.String())
	} else if step < 0 {
		start, stop, step = stop, start, -step
	}
	// Detect reversal
	if start < stop {
		start, stop, reversed = stop, start, true
	}
	//
	if start >= p.width {
		return nil, rangeError(start, p.width)
	}
	//
	n := (start-stop)/uint(step) + 1
	//
	for k := uint(0); k < n; k++ {
		b := p.val.Bit(int(stop + k*uint(step)))
		//
		if reversed {
			val.SetBit(&val, int(n-1-k), b)
		} else {
			val.SetBit(&val, int(k), b)
		}
	}
	//
	return newVector(n, &val, false), nil
}

// Bits returns an iterator over the bits of this vector, starting from the
// least significant.  Each bit is returned as a vector of width one.
func (p *BitVector) Bits() iter.Iterator[*BitVector] {
	return iter.NewFunctionIterator(p.width, func(i uint) *BitVector {
		return New(1, int64(p.val.Bit(int(i))))
	})
}
