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
	"math/big"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-kpack/pkg/kpack"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// typeRunners pairs one generic command instantiation per supported exponent
// type.
type typeRunners struct {
	i32 func(*cobra.Command, []string)
	i64 func(*cobra.Command, []string)
	u32 func(*cobra.Command, []string)
	u64 func(*cobra.Command, []string)
}

// Dispatch a command to the instantiation selected by the --type flag,
// configuring the log level first.
func dispatch(cmd *cobra.Command, args []string, runners typeRunners) {
	// Configure log level
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	switch name := getString(cmd, "type"); name {
	case "int32":
		runners.i32(cmd, args)
	case "int64":
		runners.i64(cmd, args)
	case "uint32":
		runners.u32(cmd, args)
	case "uint64":
		runners.u64(cmd, args)
	default:
		fmt.Printf("unknown exponent type %q\n", name)
		os.Exit(2)
	}
}

// Parse a command-line exponent or packed value, exiting if it is malformed
// or not representable in T.
func parseValue[T kpack.Exponent](arg string) T {
	value, ok := new(big.Int).SetString(arg, 10)
	//
	if !ok {
		fmt.Printf("malformed value %q\n", arg)
		os.Exit(2)
	}
	//
	n, err := kpack.FromBig[T](value)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return n
}
