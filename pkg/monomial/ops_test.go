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
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Degree_00(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	p := mustFromExponents(t, []int64{1, -2, 3})
	//
	assert.Equal(t, int64(2), Degree(p, ss))
	assert.Equal(t, int64(0), Degree(Zero[int64](ss), ss))
}

func Test_Degree_01(t *testing.T) {
	// Degree is the sum of the unpacked exponents, for random monomials of
	// every packable size.
	check_Degree[int32](t)
	check_Degree[int64](t)
	check_Degree[uint32](t)
	check_Degree[uint64](t)
}

func Test_PDegree_00(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	p := mustFromExponents(t, []int64{1, -2, 3})
	//
	idxs := bitset.New(3)
	idxs.Set(0).Set(2)
	//
	degree, err := PDegree(p, idxs, ss)
	require.NoError(t, err)
	assert.Equal(t, int64(4), degree)
	// Empty index set
	degree, err = PDegree(p, bitset.New(3), ss)
	require.NoError(t, err)
	assert.Equal(t, int64(0), degree)
	// Out of bounds position
	_, err = PDegree(p, bitset.New(8).Set(5), ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
}

func Test_Pow_00(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	p := mustFromExponents(t, []int64{1, -2, 3})
	//
	q, err := Pow(p, big.NewInt(3), ss)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -6, 9}, Exponents(q, ss))
	// Raising to zero yields the unit monomial.
	q, err = Pow(p, big.NewInt(0), ss)
	require.NoError(t, err)
	assert.True(t, q.IsOne())
	// Negative powers negate.
	q, err = Pow(p, big.NewInt(-1), ss)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 2, -3}, Exponents(q, ss))
}

func Test_Pow_01(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	lim := kpack.ComponentLimits[int64](3)[0]
	p := mustFromExponents(t, []int64{lim.Max, 0, 0})
	// Scaling the first exponent past its component limit must fail, even
	// though the intermediate product is representable.
	_, err := Pow(p, big.NewInt(2), ss)
	assert.ErrorIs(t, err, kpack.ErrOverflow)
}

func Test_Pow_02(t *testing.T) {
	// Scaling past the range of T itself must fail in the conversion.
	ss := newSet(t, "x")
	p := mustFromExponents(t, []int64{kpack.MaxValue[int64]()})
	//
	_, err := Pow(p, big.NewInt(2), ss)
	assert.ErrorIs(t, err, kpack.ErrOverflow)
}

func Test_Evaluate_00(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{2, 3})
	//
	values := symbol.NewMap[*big.Rat]()
	values.Insert(0, big.NewRat(2, 1))
	values.Insert(1, big.NewRat(1, 3))
	// 2^2 * (1/3)^3 == 4/27
	result, err := Evaluate(p, values, ss)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Cmp(big.NewRat(4, 27)))
}

func Test_Evaluate_01(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{-2, 1})
	//
	values := symbol.NewMap[*big.Rat]()
	values.Insert(0, big.NewRat(3, 2))
	values.Insert(1, big.NewRat(5, 1))
	// (3/2)^-2 * 5 == 20/9
	result, err := Evaluate(p, values, ss)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Cmp(big.NewRat(20, 9)))
}

func Test_Evaluate_02(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{-1, 0})
	// Zero raised to a negative exponent is undefined.
	values := symbol.NewMap[*big.Rat]()
	values.Insert(0, big.NewRat(0, 1))
	values.Insert(1, big.NewRat(1, 1))
	//
	_, err := Evaluate(p, values, ss)
	assert.ErrorIs(t, err, kpack.ErrDomain)
}

func Test_Evaluate_03(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{1, 1})
	// Every symbol must be assigned a value.
	values := symbol.NewMap[*big.Rat]()
	values.Insert(0, big.NewRat(1, 1))
	//
	_, err := Evaluate(p, values, ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
}

func Test_Subs_00(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	p := mustFromExponents(t, []int64{2, 5, 1})
	// Substitute x == 5, leaving y and z alone.
	values := symbol.NewMap[*big.Rat]()
	values.Insert(0, big.NewRat(5, 1))
	//
	product, q, err := Subs(p, values, ss)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Cmp(big.NewRat(25, 1)))
	assert.Equal(t, []int64{0, 5, 1}, Exponents(q, ss))
}

func Test_Subs_01(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{3, 4})
	// An empty substitution yields the monomial unchanged and a product of
	// one.
	product, q, err := Subs(p, symbol.NewMap[*big.Rat](), ss)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Cmp(big.NewRat(1, 1)))
	assert.Equal(t, p, q)
	// Out of bounds position
	values := symbol.NewMap[*big.Rat]()
	values.Insert(7, big.NewRat(1, 1))
	//
	_, _, err = Subs(p, values, ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
}

func Test_MergeSymbols_00(t *testing.T) {
	ss := newSet(t, "x", "z")
	p := mustFromExponents(t, []int64{1, 2})
	// Insert y before z, and w at the end.
	ins := symbol.NewMap[[]string]()
	ins.Insert(1, []string{"y"})
	ins.Insert(2, []string{"w"})
	//
	q, err := MergeSymbols(p, ins, ss)
	require.NoError(t, err)
	//
	merged, err := ss.Extend(ins)
	require.NoError(t, err)
	require.Equal(t, uint(4), merged.Len())
	assert.Equal(t, []int64{1, 0, 2, 0}, Exponents(q, merged))
}

func Test_MergeSymbols_01(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{1, 2})
	// Empty map, empty block and out-of-bounds position are all rejected.
	_, err := MergeSymbols(p, symbol.NewMap[[]string](), ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
	//
	ins := symbol.NewMap[[]string]()
	ins.Insert(0, nil)
	_, err = MergeSymbols(p, ins, ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
	//
	ins = symbol.NewMap[[]string]()
	ins.Insert(5, []string{"w"})
	_, err = MergeSymbols(p, ins, ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
}

func Test_MergeSymbols_02(t *testing.T) {
	// Growing past the maximum packable size must fail.
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{1, 2})
	//
	var names []string
	//
	for i := uint(0); i < kpack.MaxSize[int64](); i++ {
		names = append(names, string(rune('A'+i)))
	}
	//
	ins := symbol.NewMap[[]string]()
	ins.Insert(0, names)
	//
	_, err := MergeSymbols(p, ins, ss)
	assert.ErrorIs(t, err, kpack.ErrOverflow)
}

func Test_Trim_00(t *testing.T) {
	ss := newSet(t, "x", "y", "z")
	p := mustFromExponents(t, []int64{1, 0, 3})
	// Identify which positions must be kept.
	keep := bitset.New(3)
	require.NoError(t, TrimIdentify(keep, p, ss))
	assert.True(t, keep.Test(0))
	assert.False(t, keep.Test(1))
	assert.True(t, keep.Test(2))
	// Trim away everything unused.
	trim := keep.Clone()
	trim.FlipRange(0, 3)
	//
	q, err := Trim(p, trim, ss)
	require.NoError(t, err)
	//
	trimmed := newSet(t, "x", "z")
	assert.Equal(t, []int64{1, 3}, Exponents(q, trimmed))
}

func Test_Trim_01(t *testing.T) {
	ss := newSet(t, "x", "y")
	p := mustFromExponents(t, []int64{1, 2})
	//
	assert.ErrorIs(t, TrimIdentify[int64](nil, p, ss), kpack.ErrInvalidArgument)
	//
	_, err := Trim(p, bitset.New(8).Set(4), ss)
	assert.ErrorIs(t, err, kpack.ErrInvalidArgument)
}

// ===================================================================
// Test Helpers
// ===================================================================

func mustFromExponents[T kpack.Exponent](t *testing.T, exps []T) Packed[T] {
	t.Helper()
	//
	p, err := FromExponents(exps)
	require.NoError(t, err)
	//
	return p
}

func check_Degree[T kpack.Exponent](t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	//
	for size := uint(1); size <= kpack.MaxSize[T](); size++ {
		names := make([]string, size)
		//
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		//
		ss := newSet(t, names...)
		//
		for k := 0; k < 8; k++ {
			var (
				p        = randomMonomial[T](rng, size)
				expected T
			)
			//
			for _, e := range Exponents(p, ss) {
				expected += e
			}
			//
			assert.Equal(t, expected, Degree(p, ss))
		}
	}
}
