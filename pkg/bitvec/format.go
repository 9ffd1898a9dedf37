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
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Binary returns the binary form of this vector, e.g. 8'b00001111.  A negative
// signed vector is rendered as a minus sign followed by its two's complement,
// e.g. -8'b00001111 for -15.
func (p *BitVector) Binary() string {
	return p.text('b', 2, p.width)
}

// Hex returns the hexadecimal form of this vector, e.g. 16'h00f0.  A negative
// signed vector is handled as for Binary.
func (p *BitVector) Hex() string {
	return p.text('h', 16, (p.width+3)/4)
}

// Decimal returns the decimal form of this vector, which is signed for a
// signed vector.
func (p *BitVector) Decimal() string {
	return p.Int().String()
}

// String returns the binary form of this vector.
func (p *BitVector) String() string {
	return p.Binary()
}

func (p *BitVector) text(radix byte, base int, digits uint) string {
	var (
		builder strings.Builder
		val     = &p.val
	)
	//
	if p.IsNegative() {
		builder.WriteString("-")
		// Two's complement
		val = new(big.Int).Sub(modulus(p.width), val)
	}
	//
	builder.WriteString(strconv.FormatUint(uint64(p.width), 10))
	builder.WriteByte('\'')
	builder.WriteByte(radix)
	//
	text := val.Text(base)
	//
	for i := uint(len(text)); i < digits; i++ {
		builder.WriteByte('0')
	}
	//
	builder.WriteString(text)
	//
	return builder.String()
}

// Parse a vector from a given string.  This accepts Verilog literals (e.g.
// 8'hf0 or 8'b1010_1010) which determine their own width, and plain integers (e.g.
// 0xf0, 0b1011, 0o17, -15) which take the given width.  When the given width is
// zero, a plain integer takes its minimal bit length instead.
func Parse(width uint, text string, signed bool) (*BitVector, error) {
	var (
		val    big.Int
		digits = text
		base   = 0
		neg    = false
	)
	// Check for a Verilog literal
	if i := strings.IndexByte(text, '\''); i >= 0 && i+1 < len(text) {
		w, err := strconv.ParseUint(strings.TrimPrefix(text[:i], "-"), 10, 32)
		if err != nil || w == 0 {
			return nil, errors.Wrapf(ErrType, "invalid literal width \"%s\"", text)
		}
		//
		width, neg, digits = uint(w), strings.HasPrefix(text, "-"), text[i+2:]
		//
		switch text[i+1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'd', 'D':
			base = 10
		case 'h', 'H':
			base = 16
		default:
			return nil, errors.Wrapf(ErrType, "invalid literal base \"%s\"", text)
		}
		// Sign belongs before the width
		if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
			return nil, errors.Wrapf(ErrType, "misplaced sign in literal \"%s\"", text)
		}
		//
		digits = strings.ReplaceAll(digits, "_", "")
	}
	//
	if _, ok := val.SetString(digits, base); !ok {
		return nil, errors.Wrapf(ErrType, "invalid literal \"%s\"", text)
	} else if neg {
		val.Neg(&val)
	}
	//
	if width == 0 {
		width = bitLength(&val)
	}
	//
	return NewBig(width, &val, signed), nil
}
