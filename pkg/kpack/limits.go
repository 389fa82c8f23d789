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

// Exponent captures the set of admissible exponent (and packed
// representation) types.  Only full machine words are allowed: short
// integral types are deliberately excluded, since their arithmetic promotes
// through wider types and would silently change the packing semantics.
type Exponent interface {
	int32 | int64 | uint32 | uint64
}

// IsSigned determines whether T is a signed type.
func IsSigned[T Exponent]() bool {
	// Relies on conversion wrap-around for unsigned types.
	return ^T(0) < T(0)
}

// NumBits returns the number of value bits of T, excluding the sign bit for
// signed types.  This is the quantity every packing table is keyed on: an
// int64 offers 63 usable bits, a uint64 all 64.
func NumBits[T Exponent]() uint {
	var n T
	//
	switch any(n).(type) {
	case int32:
		return 31
	case int64:
		return 63
	case uint32:
		return 32
	default:
		return 64
	}
}

// MinValue returns the smallest value representable in T.
func MinValue[T Exponent]() T {
	if !IsSigned[T]() {
		return 0
	}
	// Arithmetic wrap gives the two's complement minimum.
	return MaxValue[T]() + 1
}

// MaxValue returns the largest value representable in T.
func MaxValue[T Exponent]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}
	//
	return ^(T(1) << NumBits[T]())
}
