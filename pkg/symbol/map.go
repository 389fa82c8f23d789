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

import "sort"

// Entry pairs a symbol position with an associated value.
type Entry[V any] struct {
	Index uint
	Value V
}

// Map is an ordered map from symbol positions to values, kept sorted in
// ascending position order.  It is the positional counterpart of Set, used
// to supply per-symbol arguments (substitution values, insertion blocks) to
// monomial operations.
type Map[V any] struct {
	entries []Entry[V]
}

// NewMap constructs an empty position map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of entries in this map.
func (p *Map[V]) Len() uint {
	return uint(len(p.entries))
}

// Insert maps a given position to a given value, replacing any existing
// mapping for that position.
func (p *Map[V]) Insert(index uint, value V) {
	data := p.entries
	// Find insertion point.
	i := sort.Search(len(data), func(i int) bool {
		return index <= data[i].Index
	})
	// Check whether position already mapped.
	if i < len(data) && data[i].Index == index {
		data[i].Value = value
		return
	}
	//
	ndata := make([]Entry[V], len(data)+1)
	copy(ndata, data[0:i])
	ndata[i] = Entry[V]{index, value}
	copy(ndata[i+1:], data[i:])
	//
	p.entries = ndata
}

// Get returns the value mapped at a given position, or false if the position
// is unmapped.
func (p *Map[V]) Get(index uint) (V, bool) {
	data := p.entries
	//
	i := sort.Search(len(data), func(i int) bool {
		return index <= data[i].Index
	})
	//
	if i < len(data) && data[i].Index == index {
		return data[i].Value, true
	}
	//
	var empty V
	//
	return empty, false
}

// Entries returns the entries of this map in ascending position order.  The
// returned slice is shared and must not be mutated.
func (p *Map[V]) Entries() []Entry[V] {
	return p.entries
}
