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
package symbol

import (
	"fmt"
	"strings"
)

// Set is an ordered collection of unique symbol names.  It gives meaning to
// the positions of an exponent vector: the ith exponent of a monomial refers
// to the ith symbol of its reference set.  A set is immutable once
// constructed, hence safe for concurrent readers.
type Set struct {
	symbols []string
	indices map[string]uint
}

// NewSet constructs a symbol set from the given names, in the given order.
// This fails if any name is duplicated.
func NewSet(names ...string) (*Set, error) {
	var (
		symbols = make([]string, len(names))
		indices = make(map[string]uint, len(names))
	)
	//
	for i, name := range names {
		if _, ok := indices[name]; ok {
			return nil, fmt.Errorf("duplicate symbol %q", name)
		}
		//
		symbols[i] = name
		indices[name] = uint(i)
	}
	//
	return &Set{symbols, indices}, nil
}

// Len returns the number of symbols in this set.
func (p *Set) Len() uint {
	return uint(len(p.symbols))
}

// Nth returns the name of the symbol at a given position.
func (p *Set) Nth(index uint) string {
	return p.symbols[index]
}

// IndexOf returns the position of a given symbol, or false if the symbol is
// not in this set.
func (p *Set) IndexOf(name string) (uint, bool) {
	index, ok := p.indices[name]
	return index, ok
}

// Extend constructs a new set with the given names inserted before the given
// positions.  Position Len() appends after the last symbol.  Insertions are
// supplied as an ordered position map; the receiver is unchanged.
func (p *Set) Extend(insertions *Map[[]string]) (*Set, error) {
	var names []string
	//
	next := uint(0)
	//
	for _, e := range insertions.Entries() {
		if e.Index > p.Len() {
			return nil, fmt.Errorf("insertion index %d out of bounds", e.Index)
		}
		//
		names = append(names, p.symbols[next:e.Index]...)
		names = append(names, e.Value...)
		next = e.Index
	}
	//
	names = append(names, p.symbols[next:]...)
	// Reconstruct, checking uniqueness.
	return NewSet(names...)
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, s := range p.symbols {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(s)
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
