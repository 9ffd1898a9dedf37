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
// Package frame implements a self-validating stream of 64-bit frames built
// from bit vectors.  Each frame carries a 4-bit source address and a 28-bit
// sequence number, scrambled with a key and protected by a 32-bit CRC whose
// bytes are interleaved with those of the scrambled payload.
package frame

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// FrameWidth is the width (in bits) of a frame.
	FrameWidth = 64
	// PayloadWidth is the width (in bits) of the (scrambled) payload.
	PayloadWidth = 32
	// CrcWidth is the width (in bits) of the CRC.
	CrcWidth = 32
	// AddressWidth is the width (in bits) of a source address.
	AddressWidth = 4
	// SeqnWidth is the width (in bits) of a sequence number.
	SeqnWidth = PayloadWidth - AddressWidth
)

// Config determines the parameters shared by a generator and a checker.
type Config struct {
	// Key used to scramble payloads.
	Key uint32 `toml:"key"`
	// Seed is the initial CRC state.
	Seed uint32 `toml:"seed"`
	// Address of the source.
	Address uint8 `toml:"address"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Key: 0xa21b345c, Seed: 0x1234abcd, Address: 0x1}
}

// LoadConfig reads a configuration from a TOML file.  Any parameter not given
// in the file retains its default value.
func LoadConfig(filename string) (Config, error) {
	var config = DefaultConfig()
	//
	if _, err := toml.DecodeFile(filename, &config); err != nil {
		return config, errors.Wrapf(err, "reading %s", filename)
	}
	//
	return config, config.Validate()
}

// Validate checks that this configuration is well-formed.
func (p Config) Validate() error {
	if p.Address >= 1<<AddressWidth {
		return errors.Errorf("address %d does not fit in %d bits", p.Address, AddressWidth)
	}
	//
	return nil
}
