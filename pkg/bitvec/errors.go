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
	"github.com/pkg/errors"
)

// ErrRange signals that a bit (or slice) index lies beyond the declared width
// of a vector.
var ErrRange = errors.New("index out of range")

// ErrType signals that the right-hand side of an assignment is neither an
// integer nor a vector.
var ErrType = errors.New("invalid operand")

// ErrUnsupported signals an operation which is not supported, such as
// assigning through a stepped slice.
var ErrUnsupported = errors.New("unsupported operation")

func rangeError(index uint, width uint) error {
	return errors.Wrapf(ErrRange, "index %d exceeds vector of width %d", index, width)
}
