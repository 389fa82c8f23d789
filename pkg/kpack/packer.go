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

import "fmt"

// Packer is a cursor which sequentially encodes a bounded list of exponents
// into a single value of type T.  A packer is cheap local state: each
// goroutine should own its own instance.
type Packer[T Exponent] struct {
	value T
	index uint
	size  uint
	bits  uint
}

// NewPacker constructs a packer for an exponent vector of the given size.
// This fails if the size exceeds the maximum packable vector size for T.
func NewPacker[T Exponent](size uint) (*Packer[T], error) {
	if size > MaxSize[T]() {
		return nil, fmt.Errorf("%w: vector size %d exceeds maximum %d", ErrOverflow, size, MaxSize[T]())
	}
	//
	var bits uint
	// Vector sizes below two are not packed and consult no tables.
	if size >= 2 {
		bits = tables[T]().sizeBits[size]
	}
	//
	return &Packer[T]{0, 0, size, bits}, nil
}

// Push encodes the next component of the exponent vector.  This fails if all
// components were already pushed, or if n lies outside the component limits
// in effect for this vector size.
func (p *Packer[T]) Push(n T) error {
	if p.index == p.size {
		return fmt.Errorf("%w: pushed more than %d components", ErrRange, p.size)
	}
	// A single component occupies the full range of T, verbatim.
	if p.size == 1 {
		p.value = n
		p.index = 1
		//
		return nil
	}
	//
	ts := tables[T]()
	lim := ts.climits[p.bits][p.index]
	//
	if !lim.Contains(n) {
		return fmt.Errorf("%w: component %d value %v outside [%v, %v]", ErrOverflow, p.index, n, lim.Min, lim.Max)
	}
	//
	p.value += n * ts.cvs[p.bits][p.index]
	p.index++
	// Done
	return nil
}

// Get returns the packed value so far.  Components not yet pushed behave as
// zero, so this may be called at any time.
func (p *Packer[T]) Get() T {
	return p.value
}

// Unpacker is a cursor which sequentially decodes a packed value back into
// its exponent components.  Like the packer, each goroutine should own its
// own instance.
type Unpacker[T Exponent] struct {
	value T
	// Encoded minimum for this vector size; always zero for unsigned T.
	emin  T
	index uint
	size  uint
	bits  uint
}

// NewUnpacker constructs an unpacker over a packed value holding an exponent
// vector of the given size.  This fails if the size exceeds the maximum
// packable vector size for T, if the value lies outside the encoded limits
// for the size, or if a nonzero value is supplied for size zero.
func NewUnpacker[T Exponent](value T, size uint) (*Unpacker[T], error) {
	switch {
	case size == 0:
		if value != 0 {
			return nil, fmt.Errorf("%w: nonzero value %v for empty exponent vector", ErrInvalidArgument, value)
		}
		//
		return &Unpacker[T]{}, nil
	case size == 1:
		return &Unpacker[T]{value: value, size: 1}, nil
	case size > MaxSize[T]():
		return nil, fmt.Errorf("%w: vector size %d exceeds maximum %d", ErrOverflow, size, MaxSize[T]())
	}
	//
	lim := EncodedLimits[T](size)
	//
	if !lim.Contains(value) {
		return nil, fmt.Errorf("%w: value %v outside encoded limits [%v, %v] for size %d", ErrOverflow, value,
			lim.Min, lim.Max, size)
	}
	//
	return &Unpacker[T]{value: value, emin: lim.Min, size: size, bits: tables[T]().sizeBits[size]}, nil
}

// Pop decodes the next component of the exponent vector.  This fails if all
// components were already popped.
func (p *Unpacker[T]) Pop() (T, error) {
	if p.index == p.size {
		return 0, fmt.Errorf("%w: popped more than %d components", ErrRange, p.size)
	}
	//
	i := p.index
	p.index++
	// A single component is stored verbatim.
	if p.size == 1 {
		return p.value, nil
	}
	//
	ts := tables[T]()
	cv := ts.cvs[p.bits]
	//
	if !IsSigned[T]() {
		return (p.value % cv[i+1]) / cv[i], nil
	}
	// For signed T the computation is pinned to exact two's-complement
	// semantics by working on the (always non-negative) offset from the
	// encoded minimum in the unsigned 64-bit domain.  The offset is bounded
	// by emax-emin < 2^63, so the wrapping subtraction is exact.
	offset := uint64(p.value) - uint64(p.emin)
	q := (offset % uint64(cv[i+1])) / uint64(cv[i])
	// Shift back into the component's own range.
	return T(int64(q) + int64(ts.climits[p.bits][i].Min)), nil
}
