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

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-kpack/pkg/kpack"
)

// tablesCmd prints the packing tables derived for a given exponent type,
// either in summary form (one line per packable size) or in full for a single
// component width.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the packing tables for a given exponent type.",
	Long: `Print the packing tables for a given exponent type.  Without --width, a
	summary line is printed for each packable vector size.  With --width, the
	deltas, coding vector and component limits of that width are printed in
	full.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, typeRunners{
			i32: runTables[int32],
			i64: runTables[int64],
			u32: runTables[uint32],
			u64: runTables[uint64],
		})
	},
}

func runTables[T kpack.Exponent](cmd *cobra.Command, args []string) {
	width := getUint(cmd, "width")
	//
	if width == 0 {
		printTableSummary[T]()
		return
	}
	//
	if width < kpack.MinWidth || width >= kpack.NumBits[T]() {
		fmt.Printf("width %d out of range %d..%d\n", width, kpack.MinWidth, kpack.NumBits[T]()-1)
		os.Exit(2)
	}
	//
	printWidthTables[T](width)
}

// Print one line per packable size, giving the component width and the
// encoded limits at that size.
func printTableSummary[T kpack.Exponent]() {
	fmt.Printf("%d usable bits, sizes 1..%d\n", kpack.NumBits[T](), kpack.MaxSize[T]())
	//
	for size := uint(1); size <= kpack.MaxSize[T](); size++ {
		if size == 1 {
			// Size one is stored verbatim, hence admits the full range of T.
			fmt.Printf("size %2d: %2d bits/component, encoded [%d, %d]\n",
				size, kpack.NumBits[T](), kpack.MinValue[T](), kpack.MaxValue[T]())
			continue
		}
		//
		elim := kpack.EncodedLimits[T](size)
		fmt.Printf("size %2d: %2d bits/component, encoded [%d, %d]\n",
			size, kpack.SizeBits[T](size), elim.Min, elim.Max)
	}
}

// Print the full tables of a single component width.
func printWidthTables[T kpack.Exponent](width uint) {
	var (
		deltas = kpack.Deltas[T](width)
		cv     = kpack.CodingVector[T](width)
		items  = make([]string, len(cv))
	)
	//
	for i, d := range deltas {
		items[i] = fmt.Sprintf("%d", d)
	}
	//
	printWrapped(fmt.Sprintf("deltas[%d]:", width), items[:len(deltas)])
	//
	for i, c := range cv {
		items[i] = fmt.Sprintf("%d", c)
	}
	//
	printWrapped(fmt.Sprintf("coding[%d]:", width), items)
	//
	lims := kpack.ComponentLimitsAt[T](width)
	//
	for i, lim := range lims {
		items[i] = fmt.Sprintf("[%d, %d]", lim.Min, lim.Max)
	}
	//
	printWrapped(fmt.Sprintf("limits[%d]:", width), items[:len(lims)])
}

// Print a labelled sequence of items, wrapping at the terminal width.
func printWrapped(label string, items []string) {
	var (
		width = termWidth()
		col   = uint(len(label))
	)
	//
	fmt.Print(label)
	//
	for _, item := range items {
		n := uint(len(item)) + 1
		// Wrap, unless the item alone would never fit.
		if col+n > width && col > uint(len(label)) {
			fmt.Printf("\n%*s", len(label), "")
			col = uint(len(label))
		}
		//
		fmt.Printf(" %s", item)
		col += n
	}
	//
	fmt.Println()
}

// Determine the width of the terminal, falling back to a sensible default
// when stdin is not a terminal (e.g. when output is piped).
func termWidth() uint {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 0 {
			return uint(w)
		}
	}
	//
	return 80
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().Uint("width", 0, "print full tables for one component width")
}
