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

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] value [width]",
	Short: "print a bit vector in binary, hexadecimal and decimal.",
	Long: `Print a bit vector given either as a plain integer (e.g. 0xff or -3),
	or as a Verilog literal (e.g. 8'hff).  For a plain integer, the width defaults
	to the minimal number of bits needed to hold its magnitude.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var width uint64
		//
		if len(args) == 2 {
			var err error
			//
			if width, err = strconv.ParseUint(args[1], 0, 32); err != nil {
				fmt.Printf("invalid width \"%s\"\n", args[1])
				os.Exit(2)
			}
		}
		//
		vec, err := bitvec.Parse(uint(width), args[0], GetFlag(cmd, "signed"))
		exitOnError(err)
		// Apply slice (if requested)
		if text := GetString(cmd, "slice"); text != "" {
			r, err := parseRange(text)
			exitOnError(err)
			vec, err = vec.ReadSlice(r)
			exitOnError(err)
		}
		//
		printVector(vec)
		// Search for pattern (if requested)
		if text := GetString(cmd, "match"); text != "" {
			pattern, err := bitvec.Parse(0, text, false)
			exitOnError(err)
			//
			printMatches(pattern, vec.PatternMatch(pattern).Collect())
		}
	},
}

var (
	labelColour  = color.New(color.Bold).SprintfFunc()
	numberColour = color.New(color.FgCyan).SprintfFunc()
)

func printVector(vec *bitvec.BitVector) {
	var sign = "unsigned"
	//
	if vec.IsSigned() {
		sign = "signed"
	}
	//
	fmt.Printf("%s %d (%s)\n", labelColour("width:"), vec.Width(), sign)
	fmt.Printf("%s %s\n", labelColour("bin:  "), numberColour("%b", vec))
	fmt.Printf("%s %s\n", labelColour("hex:  "), numberColour("%x", vec))
	fmt.Printf("%s %s\n", labelColour("dec:  "), numberColour("%d", vec))
	fmt.Printf("%s %v\n", labelColour("set:  "), vec.SetBits())
	fmt.Printf("%s %s\n", labelColour("|&^:  "), reductions(vec))
}

func printMatches(pattern *bitvec.BitVector, matches []uint) {
	fmt.Printf("%s %s at %v\n", labelColour("match:"), numberColour("%b", pattern), matches)
}

func reductions(vec *bitvec.BitVector) string {
	var (
		and = bitvec.Reduce().And(vec)
		or  = bitvec.Reduce().Or(vec)
		xor = bitvec.Reduce().Xor(vec)
	)
	//
	return fmt.Sprintf("%d %d %d", or, and, xor)
}

// Print an error and exit (if one arose).
func exitOnError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("signed", false, "decode the vector using two's complement")
	showCmd.Flags().String("slice", "", "print only a slice of the vector (e.g. 7:0, 0:7 or ::2)")
	showCmd.Flags().String("match", "", "report every position where a given pattern occurs (e.g. 3'b101)")
}
