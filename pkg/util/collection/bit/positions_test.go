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
	"slices"
	"testing"
)

func Test_PositionSet_00(t *testing.T) {
	checkPositionSet(t, 8, []uint{}, []uint{0, 1, 2, 3, 4, 5, 6, 7})
}

func Test_PositionSet_01(t *testing.T) {
	checkPositionSet(t, 8, []uint{0, 1, 3, 4, 5, 7}, []uint{2, 6})
}

func Test_PositionSet_02(t *testing.T) {
	checkPositionSet(t, 4, []uint{0, 1, 2, 3}, []uint{})
}

func Test_PositionSet_03(t *testing.T) {
	// Positions outside the width are dropped
	checkPositionSet(t, 3, []uint{1, 3, 9}, []uint{0, 2})
}

func Test_PositionSet_04(t *testing.T) {
	checkPositionSet(t, 130, []uint{0, 64, 129}, nil)
}

func Test_BytesRequiredFor_00(t *testing.T) {
	for bitwidth, expected := range map[uint]uint{0: 0, 1: 1, 8: 1, 9: 2, 16: 2, 17: 3, 64: 8, 65: 9} {
		if actual := BytesRequiredFor(bitwidth); actual != expected {
			t.Errorf("BytesRequiredFor(%d) == %d, expected %d", bitwidth, actual, expected)
		}
	}
}

func checkPositionSet(t *testing.T, width uint, inserted []uint, complement []uint) {
	var (
		set  = NewPositionSet(width)
		full = FullPositionSet(width)
	)
	//
	set.Insert(inserted...)
	//
	if full.Count() != width {
		t.Errorf("full set has %d positions, expected %d", full.Count(), width)
	}
	//
	for _, i := range inserted {
		if i < width && !set.Contains(i) {
			t.Errorf("missing position %d", i)
		}
	}
	//
	diff := full.Difference(set)
	if complement != nil && !slices.Equal(diff.Positions(), complement) {
		t.Errorf("complement is %v, expected %v", diff.Positions(), complement)
	}
	// Union of set and complement should account for all positions
	if set.Count()+diff.Count() != width {
		t.Errorf("set (%d) and complement (%d) do not partition %d positions", set.Count(), diff.Count(), width)
	}
}
