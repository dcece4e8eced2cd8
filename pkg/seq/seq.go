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

// Predicate abstracts the notion of a function which identifies something.
// Predicates handed to lazy adapters must be pure: evaluating one on the same
// element any number of times must yield the same answer without observable
// side effects, since lazy traversal re-evaluates as needed.
type Predicate[T any] func(T) bool

// Enumerator abstracts the process of iterating over a sequence of elements.
// An enumerator is a single-pass cursor: it supports exactly one forward
// traversal, and carries mutable state which must be exclusively owned by one
// traversal at a time.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.  Calling this on an
	// exhausted enumerator is a contract violation.
	Next() T
}

// Sequence abstracts a source of elements which can be traversed from the
// start any number of times.  Each call to Iterate starts an independent
// traversal; traversals do not interfere with each other.
type Sequence[T any] interface {
	// Iterate begins a fresh traversal of this sequence.
	Iterate() Enumerator[T]
}

// Indexed abstracts a sequence whose elements occupy stable positions
// identified by some comparable index type.  Indices between First and End
// (exclusive) denote elements; End denotes one past the last element and is
// never dereferenceable.
type Indexed[I comparable, T any] interface {
	Sequence[T]

	// First returns the index of the first element.  For an empty sequence
	// this equals End.
	First() I

	// End returns the index one past the last element.
	End() I

	// Next returns the index following a given index, which must not be End.
	Next(I) I

	// At returns the element at a given index, which must not be End.
	At(I) T
}

// BiIndexed extends Indexed with backward index movement.
type BiIndexed[I comparable, T any] interface {
	Indexed[I, T]

	// Prev returns the index preceding a given index, which must not be
	// First.  Prev of End yields the index of the last element.
	Prev(I) I
}

// ===============================================================
// Default implementations
// ===============================================================

// Find returns the index of the first match for a given predicate, or return
// false if no match is found.  This will mutate the enumerator.
//
//nolint:revive
func Find[T any, S Enumerator[T]](iter S, predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Count the number of items remaining in an enumerator.  This drains the
// enumerator.
//
//nolint:revive
func Count[T any, S Enumerator[T]](iter S) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}
	//
	return count
}

// Collect allocates a new array containing all items of this enumerator.
// This drains the enumerator.
//
//nolint:revive
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}
