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
package view

import "github.com/consensys/go-seqview/pkg/seq"

// PrefixView is a forward-indexed lazy view containing only the longest
// leading run of base elements satisfying a predicate.
type prefixView[I comparable, T any] struct {
	base      seq.Indexed[I, T]
	predicate seq.Predicate[T]
}

// NewPrefixView constructs a forward-indexed lazy view containing only the
// longest leading run of base elements satisfying the predicate.  Nothing is
// precomputed: index operations evaluate the predicate against base elements
// on demand.
func NewPrefixView[I comparable, T any](base seq.Indexed[I, T], predicate seq.Predicate[T]) View[I, T] {
	return &prefixView[I, T]{base, predicate}
}

// Iterate begins a fresh traversal of this view, independent of index-based
// access.
//
//nolint:revive
func (p *prefixView[I, T]) Iterate() seq.Enumerator[T] {
	return seq.NewPrefixIterator(p.base.Iterate(), p.predicate)
}

// First returns the index of the first element of the view.
//
//nolint:revive
func (p *prefixView[I, T]) First() Index[I] {
	return first(p.base)
}

// End returns the index one past the last element of the view.
//
//nolint:revive
func (p *prefixView[I, T]) End() Index[I] {
	return end(p.base, p.predicate)
}

// Next returns the index following a given index.
//
//nolint:revive
func (p *prefixView[I, T]) Next(index Index[I]) Index[I] {
	return next(p.base, p.predicate, index)
}

// At returns the element at a given index.
//
//nolint:revive
func (p *prefixView[I, T]) At(index Index[I]) T {
	return at(p.base, index)
}

// ===============================================================
// Default implementations
// ===============================================================

func first[I comparable, T any](base seq.Indexed[I, T]) Index[I] {
	return Position(base.First())
}

// end determines the end index of a truncated view.  This touches at most the
// first element of the base: when that element exists and satisfies the
// predicate the view is non-empty and ends at the synthetic sentinel;
// otherwise the view is empty and its end coincides with its start.
func end[I comparable, T any](base seq.Indexed[I, T], predicate seq.Predicate[T]) Index[I] {
	start := base.First()
	//
	if start == base.End() || !predicate(base.At(start)) {
		return Position(start)
	}
	//
	return PastEnd[I]()
}

// next steps a view index forward.  The given index must denote an element
// inside the prefix; in particular, stepping the sentinel or the end index of
// an empty view is a contract violation.
func next[I comparable, T any](base seq.Indexed[I, T], predicate seq.Predicate[T], index Index[I]) Index[I] {
	if index.pastEnd {
		panic("cannot advance past-the-end index")
	}
	// Check index actually denotes an element inside the prefix.
	if index.base == base.End() || !predicate(base.At(index.base)) {
		panic("cannot advance end index")
	}
	//
	following := base.Next(index.base)
	// The prefix ends where the base does, or where the predicate first
	// fails, whichever comes first.
	if following == base.End() || !predicate(base.At(following)) {
		return PastEnd[I]()
	}
	//
	return Position(following)
}

func at[I comparable, T any](base seq.Indexed[I, T], index Index[I]) T {
	if index.pastEnd {
		panic("index out-of-bounds")
	}

	return base.At(index.base)
}
