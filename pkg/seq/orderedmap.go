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
package seq

import orderedmap "github.com/wk8/go-ordered-map/v2"

// MapSequence exposes the values of an insertion-ordered map as a
// bidirectionally indexed sequence.  Positions are the map's own pair
// entries, with nil standing for one past the last entry; this is the one
// base in this package whose index type is not an integer, which is what
// keeps the index model honest.
type mapSequence[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V]
}

// NewOrderedMapSequence constructs a bidirectionally indexed sequence over
// the values of an ordered map, in insertion order.  The map is not copied,
// and must not be mutated whilst traversals are in flight.
func NewOrderedMapSequence[K comparable, V any](entries *orderedmap.OrderedMap[K, V]) BiIndexed[*orderedmap.Pair[K, V], V] {
	return &mapSequence[K, V]{entries}
}

// Iterate begins a fresh traversal of this sequence.
//
//nolint:revive
func (p *mapSequence[K, V]) Iterate() Enumerator[V] {
	return &mapEnumerator[K, V]{p.entries.Oldest()}
}

// First returns the index of the first entry.
//
//nolint:revive
func (p *mapSequence[K, V]) First() *orderedmap.Pair[K, V] {
	return p.entries.Oldest()
}

// End returns the index one past the last entry.
//
//nolint:revive
func (p *mapSequence[K, V]) End() *orderedmap.Pair[K, V] {
	return nil
}

// Next returns the index following a given index.
//
//nolint:revive
func (p *mapSequence[K, V]) Next(index *orderedmap.Pair[K, V]) *orderedmap.Pair[K, V] {
	if index == nil {
		panic("index out-of-bounds")
	}

	return index.Next()
}

// At returns the value at a given index.
//
//nolint:revive
func (p *mapSequence[K, V]) At(index *orderedmap.Pair[K, V]) V {
	if index == nil {
		panic("index out-of-bounds")
	}

	return index.Value
}

// Prev returns the index preceding a given index.
//
//nolint:revive
func (p *mapSequence[K, V]) Prev(index *orderedmap.Pair[K, V]) *orderedmap.Pair[K, V] {
	if index == nil {
		// One past the last entry, whose predecessor is the newest entry.
		if last := p.entries.Newest(); last != nil {
			return last
		}

		panic("index out-of-bounds")
	}
	//
	if prev := index.Prev(); prev != nil {
		return prev
	}

	panic("index out-of-bounds")
}

// ===============================================================
// Enumerator
// ===============================================================

type mapEnumerator[K comparable, V any] struct {
	cursor *orderedmap.Pair[K, V]
}

// HasNext checks whether or not there are any entries remaining to visit.
//
//nolint:revive
func (p *mapEnumerator[K, V]) HasNext() bool {
	return p.cursor != nil
}

// Next returns the next value, and advance the iterator.
//
//nolint:revive
func (p *mapEnumerator[K, V]) Next() V {
	next := p.cursor.Value
	p.cursor = p.cursor.Next()

	return next
}
