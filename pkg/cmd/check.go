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
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/monomial"
	"github.com/consensys/go-kpack/pkg/symbol"
)

// checkCmd reads two files of whitespace-separated packed values and reports
// whether every pairwise product across them is guaranteed not to overflow.
var checkCmd = &cobra.Command{
	Use:   "check [flags] file1 file2",
	Short: "Check that two term lists can be multiplied without overflow.",
	Long: `Check that two term lists can be multiplied without overflow.  Each file
	holds one whitespace-separated packed value per term.  The check is exact
	on the componentwise bounds of each list: when it reports safe, no pairwise
	product can leave the legal encoded range.  Exits with status 1 when the
	product is unsafe.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, typeRunners{
			i32: runCheck[int32],
			i64: runCheck[int64],
			u32: runCheck[uint32],
			u64: runCheck[uint64],
		})
	},
}

func runCheck[T kpack.Exponent](cmd *cobra.Command, args []string) {
	size := getUint(cmd, "size")
	//
	if size == 0 || size > kpack.MaxSize[T]() {
		fmt.Printf("size %d out of range 1..%d\n", size, kpack.MaxSize[T]())
		os.Exit(2)
	}
	// Symbol names are irrelevant to the check, only their number matters.
	names := make([]string, size)
	//
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	//
	ss, err := symbol.NewSet(names...)
	//
	if err != nil {
		panic("internal failure")
	}
	//
	r1 := readTerms[T](args[0], ss)
	r2 := readTerms[T](args[1], ss)
	//
	if !monomial.OverflowCheck(r1, r2, ss) {
		fmt.Println("unsafe")
		os.Exit(1)
	}
	//
	fmt.Println("safe")
}

// Read one term list, exiting if the file is unreadable or any value is
// malformed or incompatible with the symbol set.
func readTerms[T kpack.Exponent](filename string, ss *symbol.Set) []monomial.Packed[T] {
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fields := strings.Fields(string(data))
	terms := make([]monomial.Packed[T], len(fields))
	//
	for i, field := range fields {
		terms[i] = monomial.FromValue(parseValue[T](field))
		//
		if !monomial.IsCompatible(terms[i], ss) {
			fmt.Printf("%s: value %s incompatible with %d symbols\n", filename, field, ss.Len())
			os.Exit(1)
		}
	}
	//
	return terms
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("size", 1, "size of the packed exponent vectors")
}
