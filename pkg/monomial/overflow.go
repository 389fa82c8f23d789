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
package monomial

import (
	"math/big"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
	"github.com/consensys/go-kpack/pkg/util"
)

// ParallelThreshold determines the range length above which the per-range
// exponent bounds are accumulated with a fork-join reduction rather than a
// linear scan.  Both paths share the same combine function and therefore
// produce identical results; the threshold only trades scheduling overhead
// against scan time, and is exposed for tuning.
var ParallelThreshold uint = 5000

// OverflowCheck determines whether every monomial of r1 can be multiplied by
// every monomial of r2 without any packed sum leaving the legal encoded
// range.  It reduces each range to componentwise exponent bounds, then sums
// the two bounds vectors in arbitrary precision and compares against the
// component limits of the packing.  All monomials are assumed compatible
// with the given symbol set.  An empty symbol set or an empty range is
// trivially safe.
func OverflowCheck[T kpack.Exponent](r1 []Packed[T], r2 []Packed[T], ss *symbol.Set) bool {
	n := ss.Len()
	//
	if n == 0 || len(r1) == 0 || len(r2) == 0 {
		return true
	}
	// Reduce the two ranges concurrently.
	var (
		b1, b2 bounds[T]
		wg     sync.WaitGroup
	)
	//
	wg.Add(2)
	//
	go func() {
		defer wg.Done()
		b1 = rangeBounds(r1, n)
	}()
	//
	go func() {
		defer wg.Done()
		b2 = rangeBounds(r2, n)
	}()
	//
	wg.Wait()
	// Determine the limits every componentwise sum must respect.
	var limits []kpack.Range[T]
	//
	if n == 1 {
		limits = []kpack.Range[T]{{Min: kpack.MinValue[T](), Max: kpack.MaxValue[T]()}}
	} else {
		limits = kpack.ComponentLimits[T](n)
	}
	// Componentwise comparison in arbitrary precision, so the sums
	// themselves cannot overflow.
	sum := new(big.Int)
	//
	for i := uint(0); i < n; i++ {
		sum.Add(kpack.ToBig(b1.max[i]), kpack.ToBig(b2.max[i]))
		//
		if sum.Cmp(kpack.ToBig(limits[i].Max)) > 0 {
			return false
		}
		//
		if kpack.IsSigned[T]() {
			sum.Add(kpack.ToBig(b1.min[i]), kpack.ToBig(b2.min[i]))
			//
			if sum.Cmp(kpack.ToBig(limits[i].Min)) < 0 {
				return false
			}
		}
	}
	// Done
	return true
}

// Componentwise exponent bounds across a range of monomials.  For unsigned T
// the minima are identically zero and only the maxima matter.
type bounds[T kpack.Exponent] struct {
	min []T
	max []T
}

// Reduce a non-empty range of monomials to its componentwise exponent
// bounds, forking into a parallel reduction when the range is long enough.
func rangeBounds[T kpack.Exponent](r []Packed[T], n uint) bounds[T] {
	scan := func(items []Packed[T]) bounds[T] {
		return scanBounds(items, n)
	}
	//
	if uint(len(r)) <= ParallelThreshold {
		return scan(r)
	}
	//
	chunks := uint(runtime.GOMAXPROCS(0))
	log.Debugf("overflow check: parallel bounds reduction over %d monomials (%d chunks)", len(r), chunks)
	//
	return util.ParReduce(r, chunks, scan, joinBounds)
}

// Linear scan over a non-empty chunk, seeded with the first element's own
// exponents.
func scanBounds[T kpack.Exponent](items []Packed[T], n uint) bounds[T] {
	acc := bounds[T]{mustExponents(items[0], n), mustExponents(items[0], n)}
	//
	for _, p := range items[1:] {
		for i, e := range mustExponents(p, n) {
			acc.min[i] = min(acc.min[i], e)
			acc.max[i] = max(acc.max[i], e)
		}
	}
	//
	return acc
}

// The monoid combine shared by the serial and parallel paths.
func joinBounds[T kpack.Exponent](a bounds[T], b bounds[T]) bounds[T] {
	for i := range a.min {
		a.min[i] = min(a.min[i], b.min[i])
		a.max[i] = max(a.max[i], b.max[i])
	}
	//
	return a
}
