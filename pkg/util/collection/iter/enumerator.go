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
package iter

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// NewFunctionIterator constructs an iterator over a sequence of n items, where
// the iᵗʰ item is produced by a given (pure) function.  Since the function is
// pure, cloning the iterator simply copies its cursor.
func NewFunctionIterator[T any](n uint, fn func(uint) T) Iterator[T] {
	return &functionIterator[T]{fn, 0, n}
}

type functionIterator[T any] struct {
	fn    func(uint) T
	index uint
	n     uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *functionIterator[T]) HasNext() bool {
	return p.index < p.n
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *functionIterator[T]) Next() T {
	next := p.fn(p.index)
	p.index++

	return next
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *functionIterator[T]) Clone() Iterator[T] {
	return &functionIterator[T]{p.fn, p.index, p.n}
}

// Collect allocates a new array containing all items of this iterator.
//
//nolint:revive
func (p *functionIterator[T]) Collect() []T {
	return collect[T](p)
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *functionIterator[T]) Count() uint {
	return p.n - p.index
}

// NewFilterIterator constructs an iterator over the indices in [start,end)
// which satisfy a given (pure) predicate.  Indices are examined lazily, so
// nothing is evaluated until HasNext() is called.
func NewFilterIterator(start uint, end uint, predicate func(uint) bool) Iterator[uint] {
	return &filterIterator{predicate, start, end}
}

type filterIterator struct {
	predicate func(uint) bool
	// next index to examine
	index uint
	// index one past the last to examine
	end uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *filterIterator) HasNext() bool {
	for ; p.index < p.end; p.index++ {
		if p.predicate(p.index) {
			return true
		}
	}
	//
	return false
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *filterIterator) Next() uint {
	if !p.HasNext() {
		panic("iterator out-of-bounds")
	}
	//
	next := p.index
	p.index++
	//
	return next
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *filterIterator) Clone() Iterator[uint] {
	return &filterIterator{p.predicate, p.index, p.end}
}

// Collect allocates a new array containing all items of this iterator.
//
//nolint:revive
func (p *filterIterator) Collect() []uint {
	return collect[uint](p)
}

// Count returns the number of items left in the iterator, without modifying
// it.
//
//nolint:revive
func (p *filterIterator) Count() uint {
	return count[uint](p.Clone())
}
