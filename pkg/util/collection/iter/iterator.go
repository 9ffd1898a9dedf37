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

// Iterator is a lazy sequence of items, such as the bits of a vector or the
// positions at which a pattern occurs within it.
type Iterator[T any] interface {
	Enumerator[T]

	// Clone returns an independent copy of this iterator at its current
	// position.  Advancing either has no effect on the other.
	Clone() Iterator[T]

	// Collect drains every remaining item into a fresh slice.
	Collect() []T

	// Count returns the number of remaining items, without advancing this
	// iterator.
	Count() uint
}

// Drain an enumerator, returning the number of items visited.
func count[T any](items Enumerator[T]) uint {
	var n uint
	//
	for ; items.HasNext(); n++ {
		items.Next()
	}
	//
	return n
}

// Drain an enumerator into a (non-nil) slice.
func collect[T any](items Enumerator[T]) []T {
	var result = []T{}
	//
	for items.HasNext() {
		result = append(result, items.Next())
	}
	//
	return result
}
