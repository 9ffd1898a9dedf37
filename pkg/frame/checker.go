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
	"github.com/consensys/go-bitvec/pkg/bitvec"
	log "github.com/sirupsen/logrus"
)

// Result summarises the outcome of checking a single frame.
type Result struct {
	// Good indicates the frame passed every check.
	Good bool
	// Drop indicates one or more frames were lost immediately before this
	// one.
	Drop bool
	// CRCPass indicates the frame's CRC matched its payload.
	CRCPass bool
	// ValidAddress indicates the frame originated from the expected source.
	ValidAddress bool
	// PrevSeqn is the last sequence number seen prior to this frame.
	PrevSeqn uint64
	// PresentSeqn is the sequence number carried by this frame.  This is
	// reported even when the CRC fails, in which case it may be corrupt.
	PresentSeqn uint64
}

// Checker validates a stream of frames produced by a Generator, tracking
// sequence numbers to identify dropped frames.
type Checker struct {
	key     *bitvec.BitVector
	seed    *bitvec.BitVector
	address *bitvec.BitVector
	seqn    *bitvec.BitVector
	// Indicates no frame has yet been accepted.
	first bool
}

// NewChecker constructs a checker for frames from a given source.
func NewChecker(config Config) *Checker {
	return &Checker{
		key:     bitvec.New(PayloadWidth, int64(config.Key)),
		seed:    bitvec.New(CrcWidth, int64(config.Seed)),
		address: bitvec.New(AddressWidth, int64(config.Address)),
		seqn:    bitvec.New(SeqnWidth, 0),
		first:   true,
	}
}

// Check a given frame.  Frames failing the CRC or address checks do not
// affect the tracked sequence number.  An error is returned only when the
// frame does not have the expected width.
func (p *Checker) Check(frame *bitvec.BitVector) (Result, error) {
	var result = Result{Good: true, CRCPass: true, ValidAddress: true, PrevSeqn: p.seqn.Uint64()}
	//
	payload, crc, err := Deinterleave(frame)
	if err != nil {
		return result, err
	}
	// Descramble
	data := payload.Xor(p.key)
	address := field(data, AddressWidth-1, 0)
	seqn := field(data, PayloadWidth-1, AddressWidth)
	result.PresentSeqn = seqn.Uint64()
	// Check CRC
	if CRC(p.seed, payload).Ne(crc) {
		log.Debugf("frame %s failed CRC check", frame.Hex())
		//
		result.Good, result.CRCPass = false, false
		//
		return result, nil
	}
	//
	if address.Ne(p.address) {
		log.WithFields(log.Fields{
			"expected": p.address.Uint64(),
			"actual":   address.Uint64(),
		}).Debug("frame has invalid address")
		//
		result.Good, result.ValidAddress = false, false
	} else if p.first {
		p.seqn.SetVal(seqn)
		p.first = false
	} else {
		p.checkSequence(seqn, &result)
	}
	//
	return result, nil
}

// Advance the expected sequence number and compare it against that received.
// On a mismatch, resynchronise to the received sequence number.
func (p *Checker) checkSequence(seqn *bitvec.BitVector, result *Result) {
	// Wraps around at 2^28
	if err := bitvec.Assign([]*bitvec.BitVector{p.seqn}, p.seqn.Add(bitvec.Int(1))); err != nil {
		panic(err)
	}
	//
	if p.seqn.Ne(seqn) {
		log.WithFields(log.Fields{
			"expected": p.seqn.Uint64(),
			"actual":   seqn.Uint64(),
		}).Debug("frames dropped")
		//
		result.Drop = true
		//
		p.seqn.SetVal(seqn)
	}
}
