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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
)

func Test_Overflow_00(t *testing.T) {
	// Empty symbol set or empty ranges are trivially safe.
	empty, _ := symbol.NewSet()
	pair, _ := symbol.NewSet("x", "y")
	r := []Packed[int64]{FromValue[int64](0)}
	//
	if !OverflowCheck(r, r, empty) {
		t.Error("empty symbol set must be safe")
	}
	//
	if !OverflowCheck(nil, r, pair) || !OverflowCheck(r, nil, pair) {
		t.Error("empty ranges must be safe")
	}
}

func Test_Overflow_01(t *testing.T) {
	check_Overflow_Soundness[int32](t)
	check_Overflow_Soundness[int64](t)
	check_Overflow_Soundness[uint32](t)
	check_Overflow_Soundness[uint64](t)
}

func Test_Overflow_02(t *testing.T) {
	// Signed underflow on the minimum side must also be caught.
	ss, _ := symbol.NewSet("x", "y", "z")
	lims := kpack.ComponentLimits[int64](3)
	//
	a := mustFromExponents(t, []int64{0, lims[1].Min, 0})
	b := mustFromExponents(t, []int64{0, -1, 0})
	//
	if OverflowCheck([]Packed[int64]{a}, []Packed[int64]{b}, ss) {
		t.Error("underflowing sum must be unsafe")
	}
}

func Test_Overflow_03(t *testing.T) {
	// Single symbol: the limits are the full range of T.
	ss, _ := symbol.NewSet("x")
	//
	a := []Packed[uint64]{FromValue(kpack.MaxValue[uint64]())}
	b := []Packed[uint64]{FromValue[uint64](1)}
	zero := []Packed[uint64]{FromValue[uint64](0)}
	//
	if OverflowCheck(a, b, ss) {
		t.Error("wrapping sum must be unsafe")
	}
	//
	if !OverflowCheck(a, zero, ss) {
		t.Error("identity product must be safe")
	}
}

func Test_Overflow_04(t *testing.T) {
	check_Overflow_Parallel[int64](t)
	check_Overflow_Parallel[uint32](t)
}

// ===================================================================
// Test Helpers
// ===================================================================

// For single-element ranges, the check must return false exactly when some
// componentwise sum leaves the component limits.
func check_Overflow_Soundness[T kpack.Exponent](t *testing.T) {
	var (
		ss    = newSet(t, "x", "y", "z", "w")
		lims  = kpack.ComponentLimits[T](4)
		rng   = rand.New(rand.NewPCG(17, 19))
		zero  = Zero[T](ss)
		zeros = []Packed[T]{zero}
	)
	//
	for i := 0; i < 4; i++ {
		// A monomial saturating component i cannot be multiplied by anything
		// with a positive exponent there...
		exps := make([]T, 4)
		exps[i] = lims[i].Max
		sat := mustFromExponents(t, exps)
		//
		exps = make([]T, 4)
		exps[i] = 1
		bump := mustFromExponents(t, exps)
		//
		if OverflowCheck([]Packed[T]{sat}, []Packed[T]{bump}, ss) {
			t.Errorf("component %d: saturated sum must be unsafe", i)
		}
		// ...but multiplying by the unit monomial is fine.
		if !OverflowCheck([]Packed[T]{sat}, zeros, ss) {
			t.Errorf("component %d: identity product must be safe", i)
		}
	}
	// Random in-range pairs must be safe.
	for k := 0; k < 32; k++ {
		a := []Packed[T]{randomMonomial[T](rng, 4)}
		b := []Packed[T]{randomMonomial[T](rng, 4)}
		//
		if !OverflowCheck(a, b, ss) {
			t.Errorf("halved monomials must be safe: %v vs %v", Exponents(a[0], ss), Exponents(b[0], ss))
		}
	}
}

// The serial and parallel paths must agree on every input.  The threshold is
// lowered so that modest ranges exercise the fork-join reduction.
func check_Overflow_Parallel[T kpack.Exponent](t *testing.T) {
	var (
		ss   = newSet(t, "x", "y", "z")
		lims = kpack.ComponentLimits[T](3)
		rng  = rand.New(rand.NewPCG(23, 29))
	)
	//
	for k := 0; k < 10; k++ {
		r1 := randomRange[T](rng, 997)
		r2 := randomRange[T](rng, 1013)
		// Make half the cases unsafe by saturating one component somewhere
		// in the middle of each range.
		if k%2 == 0 {
			exps := make([]T, 3)
			exps[k%3] = lims[k%3].Max
			r1[len(r1)/2] = mustFromExponents(t, exps)
			//
			exps = make([]T, 3)
			exps[k%3] = 1
			r2[len(r2)/3] = mustFromExponents(t, exps)
		}
		//
		serial := OverflowCheck(r1, r2, ss)
		// Force the parallel path.
		saved := ParallelThreshold
		ParallelThreshold = 16
		parallel := OverflowCheck(r1, r2, ss)
		ParallelThreshold = saved
		//
		if serial != parallel {
			t.Fatalf("serial (%v) and parallel (%v) paths disagree", serial, parallel)
		}
		//
		if k%2 == 0 && serial {
			t.Error("saturated ranges must be unsafe")
		}
	}
}

func randomRange[T kpack.Exponent](rng *rand.Rand, n uint) []Packed[T] {
	r := make([]Packed[T], n)
	//
	for i := range r {
		r[i] = randomMonomial[T](rng, 3)
	}
	//
	return r
}
