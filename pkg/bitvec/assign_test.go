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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Assign_Slice_00(t *testing.T) {
	v := New(8, 0xf8)
	//
	require.NoError(t, v.SetSlice(3, 2, Int(0b01)))
	checkMagnitude(t, v, 8, 0xf4)
}

func Test_Assign_Slice_01(t *testing.T) {
	v := New(8, 0)
	// Wider values are truncated
	require.NoError(t, v.SetSlice(7, 4, Int(0x1f)))
	checkMagnitude(t, v, 8, 0xf0)
}

func Test_Assign_Slice_02(t *testing.T) {
	v := New(8, 0xff)
	// Narrower values are zero extended
	require.NoError(t, v.SetSlice(7, 4, Int(1)))
	checkMagnitude(t, v, 8, 0x1f)
}

func Test_Assign_Slice_03(t *testing.T) {
	v := New(8, 0)
	// Reversed
	require.NoError(t, v.SetSlice(0, 3, Int(0b0001)))
	checkMagnitude(t, v, 8, 0x08)
	// Reading back through the same range
	r, err := v.Slice(0, 3)
	require.NoError(t, err)
	checkMagnitude(t, r, 4, 0b0001)
}

func Test_Assign_Slice_04(t *testing.T) {
	v := NewSigned(8, 0)
	// Width and signedness retained
	require.NoError(t, v.SetSlice(7, 7, New(4, 1)))
	assert.Equal(t, int64(-128), v.Int64())
	assert.Equal(t, uint(8), v.Width())
}

func Test_Assign_Slice_05(t *testing.T) {
	v := New(8, 0)
	require.NoError(t, v.WriteSlice(All(), Int(0x1ab)))
	checkMagnitude(t, v, 8, 0xab)
}

func Test_Assign_Slice_06(t *testing.T) {
	// Writing back a slice leaves the vector unchanged
	for i := 0; i < 200; i++ {
		var (
			v  = randomVector(40)
			hi = uint(i % 40)
			lo = uint(i % (int(hi) + 1))
		)
		//
		c := v.Clone()
		s, err := c.Slice(hi, lo)
		require.NoError(t, err)
		require.NoError(t, c.SetSlice(hi, lo, s))
		//
		if !c.Eq(v) {
			t.Errorf("v[%d:%d] = v[%d:%d] changed %s into %s", hi, lo, hi, lo, v, c)
		}
		// Same for reversed ranges
		s, err = c.Slice(lo, hi)
		require.NoError(t, err)
		require.NoError(t, c.SetSlice(lo, hi, s))
		//
		if !c.Eq(v) {
			t.Errorf("v[%d:%d] = v[%d:%d] changed %s into %s", lo, hi, lo, hi, v, c)
		}
	}
}

func Test_Assign_Bit_00(t *testing.T) {
	v := New(4, 0)
	//
	require.NoError(t, v.SetBit(2, Int(1)))
	checkMagnitude(t, v, 4, 4)
	// Only the least significant bit is used
	require.NoError(t, v.SetBit(2, Int(2)))
	checkMagnitude(t, v, 4, 0)
	require.NoError(t, v.SetBit(0, NewSigned(4, -1)))
	checkMagnitude(t, v, 4, 1)
}

func Test_Assign_Error_00(t *testing.T) {
	v := New(8, 0x5a)
	//
	assert.ErrorIs(t, v.WriteSlice(Span(3, 0).WithStep(1), Int(1)), ErrUnsupported)
	assert.ErrorIs(t, v.SetSlice(8, 4, Int(1)), ErrRange)
	assert.ErrorIs(t, v.SetSlice(4, 8, Int(1)), ErrRange)
	assert.ErrorIs(t, v.SetBit(8, Int(1)), ErrRange)
	assert.ErrorIs(t, v.Set(nil), ErrType)
	assert.ErrorIs(t, v.SetSlice(1, 0, (*BitVector)(nil)), ErrType)
	// Vector left unchanged
	checkMagnitude(t, v, 8, 0x5a)
}

func Test_Assign_Set_00(t *testing.T) {
	s := New(4, 0)
	//
	require.NoError(t, s.Set(Int(0xff)))
	checkMagnitude(t, s, 4, 0xf)
	require.NoError(t, s.Set(New(8, 0x12)))
	checkMagnitude(t, s, 4, 0x2)
}

func Test_Assign_Multi_00(t *testing.T) {
	var c, s = New(4, 0), New(4, 0)
	//
	require.NoError(t, Assign([]*BitVector{c, s}, New(4, 0xf).Add(New(4, 0x1))))
	checkMagnitude(t, c, 4, 1)
	checkMagnitude(t, s, 4, 0)
}

func Test_Assign_Multi_01(t *testing.T) {
	var a, b, c = New(4, 0), New(4, 0), New(4, 0)
	//
	require.NoError(t, Assign([]*BitVector{a, b, c}, Int(0xabc)))
	checkMagnitude(t, a, 4, 0xa)
	checkMagnitude(t, b, 4, 0xb)
	checkMagnitude(t, c, 4, 0xc)
}

func Test_Assign_Multi_02(t *testing.T) {
	var a, b = New(2, 0), New(6, 0)
	//
	require.NoError(t, Assign([]*BitVector{a, b}, Int(0b10110011)))
	checkMagnitude(t, a, 2, 0b10)
	checkMagnitude(t, b, 6, 0b110011)
}

func Test_Assign_Multi_03(t *testing.T) {
	x := New(8, 0)
	//
	require.NoError(t, Assign([]*BitVector{x}, Int(0x1ff)))
	checkMagnitude(t, x, 8, 0xff)
}

func Test_Assign_Multi_04(t *testing.T) {
	var x, y = New(8, 0xab), New(4, 0xf)
	// Operand is also a target
	require.NoError(t, Assign([]*BitVector{y, x}, x))
	checkMagnitude(t, x, 8, 0xab)
	checkMagnitude(t, y, 4, 0)
}

func Test_Assign_Multi_05(t *testing.T) {
	x := New(8, 0x12)
	//
	assert.ErrorIs(t, Assign([]*BitVector{x, nil}, Int(1)), ErrType)
	assert.ErrorIs(t, Assign([]*BitVector{x}, nil), ErrType)
	checkMagnitude(t, x, 8, 0x12)
}
