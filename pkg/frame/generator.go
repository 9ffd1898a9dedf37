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
	"math/big"

	"github.com/consensys/go-bitvec/pkg/bitvec"
)

// Generator produces a stream of frames from a single source.  Each frame
// carries the next sequence number, which wraps around after 2^28 frames.
type Generator struct {
	key     *bitvec.BitVector
	seed    *bitvec.BitVector
	address *bitvec.BitVector
	seqn    *bitvec.BitVector
}

// NewGenerator constructs a generator whose first frame has sequence number
// zero.
func NewGenerator(config Config) *Generator {
	return &Generator{
		key:     bitvec.New(PayloadWidth, int64(config.Key)),
		seed:    bitvec.New(CrcWidth, int64(config.Seed)),
		address: bitvec.New(AddressWidth, int64(config.Address)),
		seqn:    bitvec.New(SeqnWidth, 0),
	}
}

// Seqn returns the sequence number of the next frame.
func (p *Generator) Seqn() uint64 {
	return p.seqn.Uint64()
}

// Seek sets the sequence number of the next frame, reduced modulo 2^28.
func (p *Generator) Seek(seqn uint64) {
	p.seqn.SetVal(bitvec.Big(new(big.Int).SetUint64(seqn)))
}

// Next returns the next frame in the stream.
func (p *Generator) Next() *bitvec.BitVector {
	payload := bitvec.Concat(p.seqn, p.address).Xor(p.key)
	crc := CRC(p.seed, payload)
	//
	p.seqn.AddAssign(bitvec.Int(1))
	//
	return Interleave(payload, crc)
}
