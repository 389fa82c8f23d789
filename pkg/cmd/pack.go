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

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/monomial"
)

// packCmd packs a vector of exponents given on the command line into a single
// value, reporting an error if the vector is too long or any exponent lies
// outside its component limits.
var packCmd = &cobra.Command{
	Use:   "pack [flags] exponent...",
	Short: "Pack a vector of exponents into a single value.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, typeRunners{
			i32: runPack[int32],
			i64: runPack[int64],
			u32: runPack[uint32],
			u64: runPack[uint64],
		})
	},
}

func runPack[T kpack.Exponent](cmd *cobra.Command, args []string) {
	exps := make([]T, len(args))
	//
	for i, arg := range args {
		exps[i] = parseValue[T](arg)
	}
	//
	p, err := monomial.FromExponents(exps)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	fmt.Println(p.Value())
}

func init() {
	rootCmd.AddCommand(packCmd)
}
