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

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/consensys/go-bitvec/pkg/frame"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [flags]",
	Short: "generate and check a stream of frames.",
	Long: `Generate a stream of 64-bit frames, each carrying a scrambled sequence
	number and address protected by a 32-bit CRC, and then check them.  Frames can
	be deliberately corrupted or dropped along the way, to exercise the checker.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			config = frame.DefaultConfig()
			err    error
		)
		// Read configuration (if given)
		if filename := GetString(cmd, "config"); filename != "" {
			config, err = frame.LoadConfig(filename)
			exitOnError(err)
		}
		//
		log.WithFields(log.Fields{
			"key":     fmt.Sprintf("%08x", config.Key),
			"seed":    fmt.Sprintf("%08x", config.Seed),
			"address": config.Address,
		}).Debug("configured frame source")
		//
		summary := runDemo(config, demoOptions{
			frames:       GetUint(cmd, "frames"),
			start:        uint64(GetUint(cmd, "start")),
			corruptEvery: GetUint(cmd, "corrupt-every"),
			skipEvery:    GetUint(cmd, "skip-every"),
		}, printResult)
		//
		fmt.Printf("%d frames: %d good, %d failed crc, %d invalid address, %d drops detected\n",
			summary.frames, summary.good, summary.crcFailures, summary.badAddress, summary.drops)
	},
}

type demoOptions struct {
	// Number of frames to generate.
	frames uint
	// Sequence number of the first frame.
	start uint64
	// Corrupt every nᵗʰ frame (when non-zero).
	corruptEvery uint
	// Drop every nᵗʰ frame (when non-zero).
	skipEvery uint
}

type demoSummary struct {
	frames      uint
	good        uint
	crcFailures uint
	badAddress  uint
	drops       uint
}

// Run a generator into a checker, applying the given faults, and report each
// checked frame to a given callback.
func runDemo(config frame.Config, opts demoOptions, report func(uint, *bitvec.BitVector, frame.Result)) demoSummary {
	var (
		summary demoSummary
		gen     = frame.NewGenerator(config)
		checker = frame.NewChecker(config)
	)
	//
	gen.Seek(opts.start)
	//
	for i := uint(1); i <= opts.frames; i++ {
		f := gen.Next()
		//
		if opts.skipEvery != 0 && i%opts.skipEvery == 0 {
			log.Debugf("skipping frame %d", i)
			continue
		} else if opts.corruptEvery != 0 && i%opts.corruptEvery == 0 {
			corrupt(f)
		}
		//
		result, err := checker.Check(f)
		// Frames are always well formed
		if err != nil {
			panic(err)
		}
		//
		summary.frames++
		//
		switch {
		case !result.CRCPass:
			summary.crcFailures++
		case !result.ValidAddress:
			summary.badAddress++
		case result.Good:
			summary.good++
		}
		//
		if result.Drop {
			summary.drops++
		}
		//
		report(i, f, result)
	}
	//
	return summary
}

// Flip the least significant bit of the payload's most significant byte.
func corrupt(f *bitvec.BitVector) {
	bit, err := f.Bit(8)
	if err == nil {
		err = f.SetBit(8, bit.Not())
	}
	//
	if err != nil {
		panic(err)
	}
}

var (
	goodColour = color.New(color.FgGreen).SprintFunc()
	dropColour = color.New(color.FgYellow).SprintFunc()
	failColour = color.New(color.FgHiRed).SprintFunc()
)

func printResult(index uint, f *bitvec.BitVector, result frame.Result) {
	var status string
	//
	switch {
	case !result.CRCPass:
		status = failColour("crc fail")
	case !result.ValidAddress:
		status = failColour("bad address")
	case result.Drop:
		status = dropColour(fmt.Sprintf("drop (%d => %d)", result.PrevSeqn, result.PresentSeqn))
	default:
		status = goodColour("ok")
	}
	//
	fmt.Printf("%4d %s seqn=%-9d %s\n", index, f.Hex(), result.PresentSeqn, status)
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Uint("frames", 16, "number of frames to generate")
	demoCmd.Flags().Uint("start", 0, "sequence number of the first frame")
	demoCmd.Flags().Uint("corrupt-every", 0, "corrupt every nth frame")
	demoCmd.Flags().Uint("skip-every", 0, "drop every nth frame")
	demoCmd.Flags().String("config", "", "read frame source configuration from a TOML file")
}
