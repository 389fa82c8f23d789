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

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
)

// Diff differentiates a monomial with respect to the symbol at a given
// position.  The returned coefficient is the original exponent at that
// position; when nonzero, the exponent of the returned monomial is
// decremented in place.  Differentiating past the minimum representable
// exponent fails with an overflow error.
func Diff[T kpack.Exponent](p Packed[T], idx uint, ss *symbol.Set) (T, Packed[T], error) {
	if idx >= ss.Len() {
		return 0, Packed[T]{}, fmt.Errorf("%w: position %d outside symbol set %s", kpack.ErrInvalidArgument, idx, ss)
	}
	//
	exps := mustExponents(p, ss.Len())
	coeff := exps[idx]
	// Differentiating a constant factor yields a zero coefficient and leaves
	// the monomial unchanged.
	if coeff == 0 {
		return 0, p, nil
	}
	//
	if coeff == kpack.MinValue[T]() {
		return 0, Packed[T]{}, fmt.Errorf("%w: cannot decrement exponent %v at position %d",
			kpack.ErrOverflow, coeff, idx)
	}
	//
	exps[idx] = coeff - 1
	// Repacking also rejects a decrement past the component minimum of a
	// packed size.
	out, err := repack(exps)
	//
	if err != nil {
		return 0, Packed[T]{}, err
	}
	//
	return coeff, out, nil
}

// Integrate integrates a monomial with respect to the symbol at a given
// position, incrementing its exponent; the returned coefficient is the
// incremented exponent.  An exponent of exactly -1 fails with a domain error
// (the antiderivative would be logarithmic), and incrementing past the
// maximum representable exponent fails with an overflow error.
func Integrate[T kpack.Exponent](p Packed[T], idx uint, ss *symbol.Set) (T, Packed[T], error) {
	if idx >= ss.Len() {
		return 0, Packed[T]{}, fmt.Errorf("%w: position %d outside symbol set %s", kpack.ErrInvalidArgument, idx, ss)
	}
	//
	exps := mustExponents(p, ss.Len())
	e := exps[idx]
	//
	if kpack.IsSigned[T]() && e+1 == 0 {
		return 0, Packed[T]{}, fmt.Errorf("%w: cannot integrate exponent -1 at position %d", kpack.ErrDomain, idx)
	}
	//
	if e == kpack.MaxValue[T]() {
		return 0, Packed[T]{}, fmt.Errorf("%w: cannot increment exponent %v at position %d",
			kpack.ErrOverflow, e, idx)
	}
	//
	exps[idx] = e + 1
	//
	out, err := repack(exps)
	//
	if err != nil {
		return 0, Packed[T]{}, err
	}
	//
	return e + 1, out, nil
}
