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

import (
	"slices"
	"testing"
)

func Test_FunctionIterator_00(t *testing.T) {
	checkFunctionIterator(t, 0)
}

func Test_FunctionIterator_01(t *testing.T) {
	checkFunctionIterator(t, 1)
}

func Test_FunctionIterator_02(t *testing.T) {
	checkFunctionIterator(t, 17)
}

func Test_FilterIterator_00(t *testing.T) {
	checkFilterIterator(t, 0, 10, func(i uint) bool { return i%2 == 0 }, 0, 2, 4, 6, 8)
}

func Test_FilterIterator_01(t *testing.T) {
	checkFilterIterator(t, 3, 10, func(i uint) bool { return i%3 == 0 }, 3, 6, 9)
}

func Test_FilterIterator_02(t *testing.T) {
	checkFilterIterator(t, 0, 10, func(i uint) bool { return false })
}

func Test_FilterIterator_03(t *testing.T) {
	checkFilterIterator(t, 5, 5, nil)
}

func Test_FilterIterator_04(t *testing.T) {
	var calls = 0
	//
	iter := NewFilterIterator(0, 100, func(i uint) bool {
		calls++
		return i > 50
	})
	// Nothing evaluated until requested
	if calls != 0 {
		t.Errorf("predicate evaluated eagerly (%d calls)", calls)
	}
	//
	if next := iter.Next(); next != 51 {
		t.Errorf("expected 51, got %d", next)
	} else if calls != 52 {
		t.Errorf("expected 52 calls, got %d", calls)
	}
}

func checkFunctionIterator(t *testing.T, n uint) {
	var (
		iter     = NewFunctionIterator(n, func(i uint) uint { return i * i })
		expected = make([]uint, n)
	)
	//
	for i := range expected {
		expected[i] = uint(i * i)
	}
	//
	if c := iter.Count(); c != n {
		t.Errorf("expected %d items, got %d", n, c)
	}
	//
	clone := iter.Clone()
	//
	if items := iter.Collect(); !slices.Equal(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	} else if items := clone.Collect(); !slices.Equal(items, expected) {
		t.Errorf("expected %v from clone, got %v", expected, items)
	}
}

func checkFilterIterator(t *testing.T, start uint, end uint, predicate func(uint) bool, expected ...uint) {
	var iter = NewFilterIterator(start, end, predicate)
	//
	if expected == nil {
		expected = []uint{}
	}
	//
	if c := iter.Count(); c != uint(len(expected)) {
		t.Errorf("expected %d items, got %d", len(expected), c)
	} else if items := iter.Collect(); !slices.Equal(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
}
