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

import "errors"

// ErrOverflow signals a value which cannot be represented by the packing in
// effect: a component outside its limits, an encoded value outside the legal
// range for its size, a vector size beyond the maximum packable size, or an
// increment/decrement past a representation boundary.
var ErrOverflow = errors.New("overflow")

// ErrRange signals misuse of a packer or unpacker cursor, i.e. pushing or
// popping more components than the cursor was sized for.
var ErrRange = errors.New("out of range")

// ErrInvalidArgument signals a structurally invalid argument, such as a
// nonzero packed value for a zero-size vector.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDomain signals an operation which is algebraically undefined for its
// input, such as integrating an exponent of -1.
var ErrDomain = errors.New("domain error")
