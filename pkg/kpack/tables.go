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
	"math"
	"math/bits"
)

// MinWidth is the smallest per-component bit width for which packing tables
// are generated.  Below this, deltas degenerate and nothing useful can be
// packed.
const MinWidth uint = 3

// Range describes an inclusive interval of T values.
type Range[T Exponent] struct {
	Min T
	Max T
}

// Contains checks whether a given value lies within this range.
func (p Range[T]) Contains(n T) bool {
	return p.Min <= n && n <= p.Max
}

// tableSet holds, for one exponent type, every table the packing machinery
// consults: per-width deltas, coding vectors and component limits, plus
// per-size encoded limits and the size-to-width lookup.  All slices are
// materialized once during package initialisation and never mutated.
type tableSet[T Exponent] struct {
	// deltas[w] holds one radix per component slot at width w.
	deltas [][]T
	// cvs[w] holds the prefix products of deltas[w], including the full
	// product as its final entry.
	cvs [][]T
	// climits[w] holds the legal value range of each component at width w.
	climits [][]Range[T]
	// elimits[s] holds the legal range of a fully packed value of size s.
	elimits []Range[T]
	// sizeBits[s] holds the component width used when packing s values.
	sizeBits []uint
}

var (
	tablesInt32  = buildTables[int32]()
	tablesInt64  = buildTables[int64]()
	tablesUint32 = buildTables[uint32]()
	tablesUint64 = buildTables[uint64]()
)

// Fetch the table set for a given exponent type.
func tables[T Exponent]() *tableSet[T] {
	var n T
	//
	switch any(n).(type) {
	case int32:
		return any(&tablesInt32).(*tableSet[T])
	case int64:
		return any(&tablesInt64).(*tableSet[T])
	case uint32:
		return any(&tablesUint32).(*tableSet[T])
	default:
		return any(&tablesUint64).(*tableSet[T])
	}
}

// buildTables constructs the complete table set for a given exponent type.
// The construction is a pure function of T: deltas are drawn from a fixed
// seed stream, in ascending width order, so every call yields identical
// tables.
func buildTables[T Exponent]() tableSet[T] {
	var (
		nbits   = NumBits[T]()
		signed  = IsSigned[T]()
		maxSize = nbits / MinWidth
		rng     = newDeltaRng()
		ts      tableSet[T]
	)
	//
	ts.deltas = make([][]T, nbits)
	ts.cvs = make([][]T, nbits)
	ts.climits = make([][]Range[T], nbits)
	// Per-width tables
	for w := MinWidth; w < nbits; w++ {
		n := nbits / w
		deltas := make([]uint64, n)
		// Draw one delta per component slot, forcing the two most
		// significant bits of the width to one so no delta is ever close to
		// zero.
		for i := range deltas {
			deltas[i] = (rng.Next() & (1<<w - 1)) | (3 << (w - 2))
		}
		// Coding vector, i.e. prefix products of the deltas.
		cv := make([]uint64, n+1)
		cv[0] = 1
		//
		for i := uint(0); i < n; i++ {
			hi, lo := bits.Mul64(cv[i], deltas[i])
			// The product of n deltas of w bits each stays below 2^(n*w) <=
			// 2^nbits, so this cannot fire for a supported T.
			if hi != 0 || (signed && lo > math.MaxInt64) {
				panic("internal failure")
			}
			//
			cv[i+1] = lo
		}
		// Component limits
		lims := make([]Range[T], n)
		//
		for i, d := range deltas {
			switch {
			case !signed:
				lims[i] = Range[T]{0, T(d - 1)}
			case d%2 == 0:
				lims[i] = Range[T]{T(-int64(d / 2)), T(int64(d/2) - 1)}
			default:
				lims[i] = Range[T]{T(-int64((d - 1) / 2)), T(int64((d - 1) / 2))}
			}
		}
		//
		ts.deltas[w] = convertSlice[T](deltas)
		ts.cvs[w] = convertSlice[T](cv)
		ts.climits[w] = lims
	}
	// Size-to-width lookup
	ts.sizeBits = make([]uint, maxSize+1)
	//
	for s := uint(1); s <= maxSize; s++ {
		ts.sizeBits[s] = nbits / s
	}
	// Per-size encoded limits
	ts.elimits = make([]Range[T], maxSize+1)
	//
	for s := uint(2); s <= maxSize; s++ {
		var (
			w    = ts.sizeBits[s]
			cv   = ts.cvs[w]
			lims = ts.climits[w]
		)
		//
		if signed {
			var emin, emax int64
			//
			for i := uint(0); i < s; i++ {
				emin += int64(cv[i]) * int64(lims[i].Min)
				emax += int64(cv[i]) * int64(lims[i].Max)
			}
			//
			ts.elimits[s] = Range[T]{T(emin), T(emax)}
		} else {
			var emax uint64
			//
			for i := uint(0); i < s; i++ {
				emax += uint64(cv[i]) * uint64(lims[i].Max)
			}
			//
			ts.elimits[s] = Range[T]{0, T(emax)}
		}
	}
	// Done
	return ts
}

func convertSlice[T Exponent](items []uint64) []T {
	res := make([]T, len(items))
	//
	for i, item := range items {
		res[i] = T(item)
	}
	//
	return res
}

// MaxSize returns the largest exponent vector size which can be packed into
// a single value of type T.
func MaxSize[T Exponent]() uint {
	return NumBits[T]() / MinWidth
}

// SizeBits returns the per-component bit width used when packing a vector of
// the given size.  The size must lie within 1..MaxSize.
func SizeBits[T Exponent](size uint) uint {
	if size == 0 || size > MaxSize[T]() {
		panic("invalid vector size")
	}
	//
	return tables[T]().sizeBits[size]
}

// Deltas returns the per-component radices used at a given bit width.  The
// width must lie within MinWidth..NumBits(T)-1.  The returned slice is
// shared and must not be mutated.
func Deltas[T Exponent](width uint) []T {
	checkWidth[T](width)
	return tables[T]().deltas[width]
}

// CodingVector returns the place values used at a given bit width, i.e. the
// prefix products of the deltas.  The returned slice is shared and must not
// be mutated.
func CodingVector[T Exponent](width uint) []T {
	checkWidth[T](width)
	return tables[T]().cvs[width]
}

// ComponentLimits returns the legal range of each component when packing a
// vector of the given size.  The size must lie within 2..MaxSize; size 1 is
// unpacked and admits the full range of T.  The returned slice is shared and
// must not be mutated.
func ComponentLimits[T Exponent](size uint) []Range[T] {
	if size < 2 || size > MaxSize[T]() {
		panic("invalid vector size")
	}
	//
	ts := tables[T]()
	//
	return ts.climits[ts.sizeBits[size]][:size]
}

// ComponentLimitsAt returns the legal value range of each component slot at a
// given bit width.  Unlike ComponentLimits, every slot of the width is
// reported, whether or not a packable size uses it.  The returned slice is
// shared and must not be mutated.
func ComponentLimitsAt[T Exponent](width uint) []Range[T] {
	checkWidth[T](width)
	return tables[T]().climits[width]
}

// EncodedLimits returns the legal range of a fully packed value for a vector
// of the given size.  The size must lie within 2..MaxSize: size 0 admits
// only the value 0, whilst size 1 admits the full range of T.
func EncodedLimits[T Exponent](size uint) Range[T] {
	if size < 2 || size > MaxSize[T]() {
		panic("invalid vector size")
	}
	//
	return tables[T]().elimits[size]
}

func checkWidth[T Exponent](width uint) {
	if width < MinWidth || width >= NumBits[T]() {
		panic("invalid component width")
	}
}
