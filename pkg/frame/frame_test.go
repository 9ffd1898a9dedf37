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
package frame

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Interleaving
// ============================================================================

func Test_Interleave_01(t *testing.T) {
	var (
		payload = bitvec.New(PayloadWidth, 0x11223344)
		crc     = bitvec.New(CrcWidth, 0xaabbccdd)
		frame   = Interleave(payload, crc)
	)
	//
	assert.Equal(t, uint(FrameWidth), frame.Width())
	assert.Equal(t, "64'h44dd33cc22bb11aa", frame.Hex())
}

func Test_Interleave_02(t *testing.T) {
	for i := 0; i < 100; i++ {
		payload := randomVector(PayloadWidth)
		crc := randomVector(CrcWidth)
		//
		d, c, err := Deinterleave(Interleave(payload, crc))
		require.NoError(t, err)
		assert.True(t, d.Eq(payload), "payload %s != %s", d, payload)
		assert.True(t, c.Eq(crc), "crc %s != %s", c, crc)
	}
}

func Test_Interleave_03(t *testing.T) {
	_, _, err := Deinterleave(bitvec.New(32, 0))
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

// ============================================================================
// CRC
// ============================================================================

func Test_CRC_01(t *testing.T) {
	var seed = bitvec.New(CrcWidth, 0x1234abcd)
	// Input equal to state gives zero
	crc := CRC(seed, seed)
	assert.True(t, crc.IsZero())
	assert.Equal(t, uint(CrcWidth), crc.Width())
}

func Test_CRC_02(t *testing.T) {
	var (
		seed = bitvec.New(CrcWidth, 0x1234abcd)
		zero = bitvec.New(PayloadWidth, 0)
	)
	// CRC is affine in its input
	for i := 0; i < 50; i++ {
		d1 := randomVector(PayloadWidth)
		d2 := randomVector(PayloadWidth)
		lhs := CRC(seed, d1.Xor(d2))
		rhs := CRC(seed, d1).Xor(CRC(seed, d2)).Xor(CRC(seed, zero))
		assert.True(t, lhs.Eq(rhs), "%s != %s", lhs, rhs)
	}
}

func Test_CRC_03(t *testing.T) {
	var seed = bitvec.New(CrcWidth, 0)
	// Each single bit input selects exactly the rows tapping it
	for i := uint(0); i < PayloadWidth; i++ {
		data := bitvec.New(PayloadWidth, 0)
		require.NoError(t, data.SetBit(i, bitvec.Int(1)))
		//
		crc := CRC(seed, data)
		//
		for row, taps := range crcTaps {
			bit, err := crc.Bit(uint(row))
			require.NoError(t, err)
			assert.Equal(t, tapped(taps, i), bit.Eq(bitvec.Int(1)), "row %d, bit %d", row, i)
		}
	}
}

func tapped(taps []uint, i uint) bool {
	for _, tap := range taps {
		if tap == i {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// Generator / Checker
// ============================================================================

func Test_Check_01(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
	)
	//
	result := check(t, checker, gen.Next())
	assert.Equal(t, Result{Good: true, CRCPass: true, ValidAddress: true}, result)
}

func Test_Check_02(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
	)
	//
	for i := uint64(0); i < 10; i++ {
		result := check(t, checker, gen.Next())
		assert.True(t, result.Good)
		assert.False(t, result.Drop)
		assert.Equal(t, i, result.PresentSeqn)
	}
}

func Test_Check_03(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
		frame   = gen.Next()
	)
	// Corrupt a payload bit
	bit, err := frame.Bit(8)
	require.NoError(t, err)
	require.NoError(t, frame.SetBit(8, bit.Not()))
	//
	result := check(t, checker, frame)
	assert.False(t, result.Good)
	assert.False(t, result.CRCPass)
	assert.True(t, result.ValidAddress)
}

func Test_Check_04(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
	)
	//
	check(t, checker, gen.Next())
	gen.Next()
	//
	result := check(t, checker, gen.Next())
	assert.True(t, result.Good)
	assert.True(t, result.Drop)
	assert.Equal(t, uint64(0), result.PrevSeqn)
	assert.Equal(t, uint64(2), result.PresentSeqn)
	// Resynchronised
	result = check(t, checker, gen.Next())
	assert.False(t, result.Drop)
	assert.Equal(t, uint64(2), result.PrevSeqn)
}

func Test_Check_05(t *testing.T) {
	var (
		config  = DefaultConfig()
		checker = NewChecker(config)
	)
	//
	config.Address = 2
	gen := NewGenerator(config)
	//
	result := check(t, checker, gen.Next())
	assert.False(t, result.Good)
	assert.True(t, result.CRCPass)
	assert.False(t, result.ValidAddress)
}

func Test_Check_06(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
		last    = uint64(1)<<SeqnWidth - 1
	)
	//
	gen.Seek(last)
	assert.Equal(t, last, check(t, checker, gen.Next()).PresentSeqn)
	// Sequence number wraps around
	assert.Equal(t, uint64(0), gen.Seqn())
	//
	result := check(t, checker, gen.Next())
	assert.True(t, result.Good)
	assert.False(t, result.Drop)
	assert.Equal(t, last, result.PrevSeqn)
	assert.Equal(t, uint64(0), result.PresentSeqn)
}

func Test_Check_07(t *testing.T) {
	var checker = NewChecker(DefaultConfig())
	//
	_, err := checker.Check(bitvec.New(63, 0))
	assert.Error(t, err)
}

func Test_Check_08(t *testing.T) {
	var (
		gen     = NewGenerator(DefaultConfig())
		checker = NewChecker(DefaultConfig())
	)
	//
	gen.Seek(5)
	frame := gen.Next()
	// Corrupt a CRC bit, leaving the payload intact
	bit, err := frame.Bit(0)
	require.NoError(t, err)
	require.NoError(t, frame.SetBit(0, bit.Not()))
	//
	result := check(t, checker, frame)
	assert.False(t, result.CRCPass)
	assert.Equal(t, uint64(5), result.PresentSeqn)
	assert.Equal(t, uint64(0), result.PrevSeqn)
}

func check(t *testing.T, checker *Checker, frame *bitvec.BitVector) Result {
	result, err := checker.Check(frame)
	require.NoError(t, err)
	//
	return result
}

// ============================================================================
// Config
// ============================================================================

func Test_Config_01(t *testing.T) {
	filename := writeConfig(t, "key = 0xdeadbeef\naddress = 7\n")
	//
	config, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, Config{Key: 0xdeadbeef, Seed: DefaultConfig().Seed, Address: 7}, config)
}

func Test_Config_02(t *testing.T) {
	filename := writeConfig(t, "address = 16\n")
	//
	_, err := LoadConfig(filename)
	assert.Error(t, err)
}

func Test_Config_03(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func writeConfig(t *testing.T, contents string) string {
	filename := filepath.Join(t.TempDir(), "frame.toml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	//
	return filename
}

func randomVector(width uint) *bitvec.BitVector {
	var bytes = make([]byte, (width+7)/8)
	//
	for i := range bytes {
		bytes[i] = byte(rand.Intn(256))
	}
	//
	return bitvec.FromBytes(width, bytes)
}
