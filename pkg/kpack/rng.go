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

import "math/bits"

// Fixed seeds for delta generation.  These are arbitrary constants (hex
// digits of pi); the only requirement is that every build of the tables uses
// the same stream.  The resulting bit layout is self-consistent within one
// build but is not a stable serialization format.
const (
	deltaSeedLo = 0x243f6a8885a308d3
	deltaSeedHi = 0x13198a2e03707344
)

// xoroshiro is a xoroshiro128+ generator.  It is used solely to derive the
// packing deltas, so reproducibility matters and statistical quality barely
// does.
type xoroshiro struct {
	s0, s1 uint64
}

func newDeltaRng() xoroshiro {
	return xoroshiro{deltaSeedLo, deltaSeedHi}
}

// Next returns the next value in the stream.
func (p *xoroshiro) Next() uint64 {
	s0, s1 := p.s0, p.s1
	r := s0 + s1
	//
	s1 ^= s0
	p.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	p.s1 = bits.RotateLeft64(s1, 36)
	//
	return r
}
