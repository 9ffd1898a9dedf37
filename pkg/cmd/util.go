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
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a range of the form "start:stop" or "start:stop:step", where the
// bounds may be omitted together to select the whole vector.  For example,
// "7:4" selects the high nibble of a byte, whilst "::-1" reverses it.
func parseRange(text string) (bitvec.Range, error) {
	var parts = strings.Split(text, ":")
	//
	if len(parts) < 2 || len(parts) > 3 {
		return bitvec.Range{}, errors.Errorf("invalid range \"%s\"", text)
	}
	//
	r := bitvec.All()
	//
	if parts[0] != "" || parts[1] != "" {
		start, err1 := strconv.ParseUint(parts[0], 0, 32)
		stop, err2 := strconv.ParseUint(parts[1], 0, 32)
		//
		if err1 != nil || err2 != nil {
			return bitvec.Range{}, errors.Errorf("invalid bounds in range \"%s\"", text)
		}
		//
		r = bitvec.Span(uint(start), uint(stop))
	}
	//
	if len(parts) == 3 && parts[2] != "" {
		step, err := strconv.ParseInt(parts[2], 0, 32)
		if err != nil {
			return bitvec.Range{}, errors.Errorf("invalid step in range \"%s\"", text)
		}
		//
		r = r.WithStep(int(step))
	}
	//
	return r, nil
}
