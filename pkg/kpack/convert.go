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
package kpack

import (
	"fmt"
	"math/big"
)

// ToBig converts a value of T into an arbitrary precision integer.
func ToBig[T Exponent](n T) *big.Int {
	if IsSigned[T]() {
		return big.NewInt(int64(n))
	}
	//
	return new(big.Int).SetUint64(uint64(n))
}

// FromBig converts an arbitrary precision integer back into a value of T.
// Unlike a plain conversion, this fails rather than silently truncating when
// the value is not representable in T.
func FromBig[T Exponent](x *big.Int) (T, error) {
	if IsSigned[T]() {
		if x.IsInt64() {
			n := x.Int64()
			//
			if int64(MinValue[T]()) <= n && n <= int64(MaxValue[T]()) {
				return T(n), nil
			}
		}
	} else if x.IsUint64() {
		n := x.Uint64()
		//
		if n <= uint64(MaxValue[T]()) {
			return T(n), nil
		}
	}
	//
	return 0, fmt.Errorf("%w: %s not representable as exponent", ErrOverflow, x.String())
}
