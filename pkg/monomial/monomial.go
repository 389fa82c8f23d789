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

// Package monomial implements monomials whose exponent vectors are Kronecker
// packed into a single machine word.  A packed monomial does not store its
// own length: every operation takes the reference symbol set which gives
// meaning to its positions.  Operations split into two tiers.  Constructors
// and size-changing operations validate their inputs and return errors;
// hot-path operations (Mul, Degree, Hash, formatting) assume an
// already-established compatibility with the symbol set, which callers are
// expected to have checked via IsCompatible or OverflowCheck, and panic if
// that precondition is violated.
package monomial

import (
	"fmt"
	"iter"

	"github.com/consensys/go-kpack/pkg/kpack"
	"github.com/consensys/go-kpack/pkg/symbol"
)

// Packed is a monomial whose exponent vector is packed into a single value
// of type T.  The zero value is the unit monomial (all exponents zero),
// compatible with every symbol set of packable size.  Packed values are
// trivially copyable and compare with ==.
type Packed[T kpack.Exponent] struct {
	value T
}

// Zero constructs the unit monomial (all exponents zero) over a given symbol
// set.  Since the length is never stored, the set only documents intent
// here; the result is the same for every set of packable size.
func Zero[T kpack.Exponent](ss *symbol.Set) Packed[T] {
	return Packed[T]{}
}

// FromValue constructs a monomial directly from a packed value.  No
// validation is performed: the caller is responsible for supplying a value
// compatible with its intended symbol set.
func FromValue[T kpack.Exponent](value T) Packed[T] {
	return Packed[T]{value}
}

// FromExponents constructs a monomial by packing the given exponent vector.
// This fails if the vector is too long to pack, or if any component lies
// outside its limits.
func FromExponents[T kpack.Exponent](exps []T) (Packed[T], error) {
	packer, err := kpack.NewPacker[T](uint(len(exps)))
	//
	if err != nil {
		return Packed[T]{}, err
	}
	//
	for _, e := range exps {
		if err := packer.Push(e); err != nil {
			return Packed[T]{}, err
		}
	}
	//
	return Packed[T]{packer.Get()}, nil
}

// FromSeq constructs a monomial by packing exactly size exponents drawn from
// the given sequence.  This fails if the sequence yields a different number
// of exponents, or as per FromExponents.
func FromSeq[T kpack.Exponent](seq iter.Seq[T], size uint) (Packed[T], error) {
	packer, err := kpack.NewPacker[T](size)
	//
	if err != nil {
		return Packed[T]{}, err
	}
	//
	count := uint(0)
	//
	for e := range seq {
		if err := packer.Push(e); err != nil {
			return Packed[T]{}, err
		}
		//
		count++
	}
	//
	if count != size {
		return Packed[T]{}, fmt.Errorf("%w: sequence yielded %d exponents, expected %d",
			kpack.ErrInvalidArgument, count, size)
	}
	//
	return Packed[T]{packer.Get()}, nil
}

// Value returns the packed representation of this monomial.
func (p Packed[T]) Value() T {
	return p.value
}

// SetValue overwrites the packed representation of this monomial.  No
// validation is performed.
func (p *Packed[T]) SetValue(value T) {
	p.value = value
}

// IsZero reports whether this monomial is the zero element of the algebra.
// A monomial never is, so this is always false; the method exists to satisfy
// the key contract of the surrounding series layer.
func (p Packed[T]) IsZero() bool {
	return false
}

// IsOne reports whether this monomial is the multiplicative identity, i.e.
// whether every exponent is zero.
func (p Packed[T]) IsOne() bool {
	return p.value == 0
}

// Hash returns the hash of this monomial, which is simply its packed value.
// Because Mul adds packed values, the hash of a product is the sum of the
// hashes of its factors; the series layer relies on this homomorphic
// property when scheduling multiplications.
func (p Packed[T]) Hash() uint64 {
	return uint64(p.value)
}

// IsCompatible reports whether this monomial is usable with a given symbol
// set: the set must be of packable size and the packed value must lie within
// the encoded limits for that size.
func IsCompatible[T kpack.Exponent](p Packed[T], ss *symbol.Set) bool {
	switch n := ss.Len(); {
	case n == 0:
		return p.value == 0
	case n == 1:
		return true
	case n > kpack.MaxSize[T]():
		return false
	default:
		return kpack.EncodedLimits[T](n).Contains(p.value)
	}
}

// Mul multiplies two monomials, i.e. adds their exponent vectors.  In packed
// form this is a single addition, which is the entire point of the
// representation.  The caller must have established, via OverflowCheck, that
// the sum cannot leave the legal encoded range; no validation is performed
// here.
func Mul[T kpack.Exponent](a Packed[T], b Packed[T]) Packed[T] {
	return Packed[T]{a.value + b.value}
}

// Exponents decodes the exponent vector of a monomial against its reference
// symbol set.
func Exponents[T kpack.Exponent](p Packed[T], ss *symbol.Set) []T {
	return mustExponents(p, ss.Len())
}

// Decode a packed monomial which is assumed, as a precondition, to be
// compatible with the given size.  Violating the precondition panics.
func mustExponents[T kpack.Exponent](p Packed[T], size uint) []T {
	unpacker, err := kpack.NewUnpacker(p.value, size)
	//
	if err != nil {
		panic(fmt.Sprintf("incompatible monomial: %v", err))
	}
	//
	exps := make([]T, size)
	//
	for i := range exps {
		if exps[i], err = unpacker.Pop(); err != nil {
			panic("internal failure")
		}
	}
	//
	return exps
}

// Repack an exponent vector, surfacing any packing error.
func repack[T kpack.Exponent](exps []T) (Packed[T], error) {
	return FromExponents(exps)
}
