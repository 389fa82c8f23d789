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
)

// unpackCmd decodes a packed value back into its exponent vector, given the
// vector size it was packed with.
var unpackCmd = &cobra.Command{
	Use:   "unpack [flags] value",
	Short: "Unpack a packed value into its exponent vector.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, typeRunners{
			i32: runUnpack[int32],
			i64: runUnpack[int64],
			u32: runUnpack[uint32],
			u64: runUnpack[uint64],
		})
	},
}

func runUnpack[T kpack.Exponent](cmd *cobra.Command, args []string) {
	var (
		size  = getUint(cmd, "size")
		value = parseValue[T](args[0])
	)
	//
	unpacker, err := kpack.NewUnpacker(value, size)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	for i := uint(0); i < size; i++ {
		e, err := unpacker.Pop()
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if i != 0 {
			fmt.Print(" ")
		}
		//
		fmt.Print(e)
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(unpackCmd)
	unpackCmd.Flags().Uint("size", 1, "size of the packed exponent vector")
}
