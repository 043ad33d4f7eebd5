// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pixconv converts one pixel value between pixel types, saturating
// out-of-range components to the destination's limits.
//
// Usage:
//
//	pixconv --from float64 --to uint8 300.5
//	pixconv --from []int32 --to []complex64 --lowest -100 --highest 100 -- 5 -300 7
//	pixconv --from complex128 --to [4]int16 1+2i
//	pixconv cpu
//
// Type names are the Go numeric types plus float16, bfloat16, fixed26_6,
// fixed52_12 and cint8 to cint64 (integer complex pairs), optionally
// prefixed by [] or [N] for composites. Values are parsed with
// strconv.ParseComplex, so complex components are written as 1+2i.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixconv/hwy"
)

func newRootCmd(stdout io.Writer) *cobra.Command {
	job := &Job{}
	var lowest, highest float64

	cmd := &cobra.Command{
		Use:   "pixconv --from TYPE --to TYPE VALUE...",
		Short: "Convert a pixel value between pixel types with saturation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Values = args
			if cmd.Flags().Changed("lowest") {
				job.Lowest = &lowest
			}
			if cmd.Flags().Changed("highest") {
				job.Highest = &highest
			}
			out, err := job.Run()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, strings.Join(out, " "))
			return nil
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&job.From, "from", "", "Source pixel type (required)")
	flags.StringVar(&job.To, "to", "", "Destination pixel type (required)")
	flags.IntVarP(&job.Count, "count", "n", 0, "Source component count (default: number of values)")
	flags.Float64Var(&lowest, "lowest", 0, "Lowest destination value (default: destination type limit)")
	flags.Float64Var(&highest, "highest", 0, "Highest destination value (default: destination type limit)")
	flags.StringVar(&job.NaN, "nan", "propagate", "NaN handling: propagate or reject")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	cmd.AddCommand(&cobra.Command{
		Use:   "cpu",
		Short: "Print the SIMD target used for clamping",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "SIMD Level: %s, Width: %d bytes, F16C: %v\n",
				hwy.CurrentName(), hwy.CurrentWidth(), hwy.HasF16C())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "types",
		Short: "List the accepted leaf type names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, strings.Join(TypeNames(), "\n"))
		},
	})
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
