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
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
)

// Degree returns the total degree of a monomial, i.e. the sum of its
// exponents.  For packed sizes the component limits bound each exponent well
// below the range of T, so the sum cannot overflow.
func Degree[T kpack.Exponent](p Packed[T], ss *symbol.Set) T {
	var degree T
	//
	for _, e := range mustExponents(p, ss.Len()) {
		degree += e
	}
	//
	return degree
}

// PDegree returns the partial degree of a monomial, i.e. the sum of its
// exponents restricted to a given set of positions.  This fails if any
// position lies outside the symbol set.
func PDegree[T kpack.Exponent](p Packed[T], idxs *bitset.BitSet, ss *symbol.Set) (T, error) {
	var (
		degree T
		exps   = mustExponents(p, ss.Len())
	)
	//
	for i, ok := idxs.NextSet(0); ok; i, ok = idxs.NextSet(i + 1) {
		if i >= ss.Len() {
			return 0, fmt.Errorf("%w: position %d outside symbol set %s", kpack.ErrInvalidArgument, i, ss)
		}
		//
		degree += exps[i]
	}
	//
	return degree, nil
}

// Pow raises a monomial to a given power by scaling every exponent.  The
// scaling is done in arbitrary precision so it cannot overflow
// mid-computation; converting the results back to T fails if any scaled
// exponent is unrepresentable or outside its component limits.
func Pow[T kpack.Exponent](p Packed[T], n *big.Int, ss *symbol.Set) (Packed[T], error) {
	var (
		exps   = mustExponents(p, ss.Len())
		scaled = new(big.Int)
		err    error
	)
	//
	for i, e := range exps {
		scaled.Mul(kpack.ToBig(e), n)
		//
		if exps[i], err = kpack.FromBig[T](scaled); err != nil {
			return Packed[T]{}, err
		}
	}
	//
	return repack(exps)
}

// Evaluate substitutes a value for every symbol and returns the resulting
// product.  The value map must assign exactly one value to every position of
// the symbol set.  Exponentiation is exact rational arithmetic: negative
// exponents invert, and raising zero to a negative exponent is a domain
// error.
func Evaluate[T kpack.Exponent](p Packed[T], values *symbol.Map[*big.Rat], ss *symbol.Set) (*big.Rat, error) {
	if values.Len() != ss.Len() {
		return nil, fmt.Errorf("%w: %d values supplied for %d symbols", kpack.ErrInvalidArgument,
			values.Len(), ss.Len())
	}
	//
	var (
		exps = mustExponents(p, ss.Len())
		acc  = big.NewRat(1, 1)
	)
	//
	for i, e := range exps {
		value, ok := values.Get(uint(i))
		//
		if !ok {
			return nil, fmt.Errorf("%w: no value for symbol %q", kpack.ErrInvalidArgument, ss.Nth(uint(i)))
		}
		//
		pow, err := ratPow(value, kpack.ToBig(e))
		if err != nil {
			return nil, err
		}
		//
		acc.Mul(acc, pow)
	}
	//
	return acc, nil
}

// Subs substitutes values for a subset of the symbols, returning the
// accumulated product together with the monomial whose substituted exponents
// have been zeroed.
func Subs[T kpack.Exponent](p Packed[T], values *symbol.Map[*big.Rat], ss *symbol.Set) (*big.Rat, Packed[T], error) {
	var (
		exps = mustExponents(p, ss.Len())
		acc  = big.NewRat(1, 1)
	)
	//
	for _, e := range values.Entries() {
		if e.Index >= ss.Len() {
			return nil, Packed[T]{}, fmt.Errorf("%w: position %d outside symbol set %s",
				kpack.ErrInvalidArgument, e.Index, ss)
		}
		//
		pow, err := ratPow(e.Value, kpack.ToBig(exps[e.Index]))
		if err != nil {
			return nil, Packed[T]{}, err
		}
		//
		acc.Mul(acc, pow)
		exps[e.Index] = 0
	}
	//
	out, err := repack(exps)
	//
	return acc, out, err
}

// MergeSymbols widens a monomial to a larger symbol set by interleaving zero
// exponents.  The insertion map sends each position of the old set to a
// block of symbols inserted before it, with position ss.Len() appending
// after the last; this mirrors symbol.Set.Extend, which produces the
// corresponding widened set.
func MergeSymbols[T kpack.Exponent](p Packed[T], insertions *symbol.Map[[]string], ss *symbol.Set) (Packed[T], error) {
	if insertions.Len() == 0 {
		return Packed[T]{}, fmt.Errorf("%w: empty insertion map", kpack.ErrInvalidArgument)
	}
	//
	var (
		exps   = mustExponents(p, ss.Len())
		merged []T
		next   uint
	)
	//
	for _, e := range insertions.Entries() {
		if e.Index > ss.Len() {
			return Packed[T]{}, fmt.Errorf("%w: insertion position %d outside symbol set %s",
				kpack.ErrInvalidArgument, e.Index, ss)
		} else if len(e.Value) == 0 {
			return Packed[T]{}, fmt.Errorf("%w: empty insertion block at position %d",
				kpack.ErrInvalidArgument, e.Index)
		}
		//
		merged = append(merged, exps[next:e.Index]...)
		merged = append(merged, make([]T, len(e.Value))...)
		next = e.Index
	}
	//
	merged = append(merged, exps[next:]...)
	// Repack at the larger size; this is where growth past the maximum
	// packable size surfaces as an overflow error.
	return repack(merged)
}

// TrimIdentify flags, in an externally owned bit vector, every position
// whose exponent is nonzero and which therefore cannot be trimmed away.
func TrimIdentify[T kpack.Exponent](keep *bitset.BitSet, p Packed[T], ss *symbol.Set) error {
	if keep == nil {
		return fmt.Errorf("%w: nil flag vector", kpack.ErrInvalidArgument)
	}
	//
	for i, e := range mustExponents(p, ss.Len()) {
		if e != 0 {
			keep.Set(uint(i))
		}
	}
	//
	return nil
}

// Trim removes the exponents at the given positions and repacks the monomial
// at the reduced size.  This fails if any position lies outside the symbol
// set.
func Trim[T kpack.Exponent](p Packed[T], trim *bitset.BitSet, ss *symbol.Set) (Packed[T], error) {
	var (
		exps    = mustExponents(p, ss.Len())
		trimmed = make([]T, 0, len(exps))
	)
	//
	if i, ok := trim.NextSet(ss.Len()); ok {
		return Packed[T]{}, fmt.Errorf("%w: position %d outside symbol set %s", kpack.ErrInvalidArgument, i, ss)
	}
	//
	for i, e := range exps {
		if !trim.Test(uint(i)) {
			trimmed = append(trimmed, e)
		}
	}
	//
	return repack(trimmed)
}

// Compute base^exp in exact rational arithmetic, where the exponent may be
// negative.
func ratPow(base *big.Rat, exp *big.Int) (*big.Rat, error) {
	var (
		abs = new(big.Int).Abs(exp)
		num = new(big.Int).Exp(base.Num(), abs, nil)
		den = new(big.Int).Exp(base.Denom(), abs, nil)
	)
	//
	if exp.Sign() >= 0 {
		return new(big.Rat).SetFrac(num, den), nil
	} else if base.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero raised to negative exponent %s", kpack.ErrDomain, exp)
	}
	// Negative exponent inverts.
	return new(big.Rat).SetFrac(den, num), nil
}
