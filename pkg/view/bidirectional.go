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

// BiPrefixView is the bidirectional variant of PrefixView, for bases which
// support backward index movement.
type biPrefixView[I comparable, T any] struct {
	base      seq.BiIndexed[I, T]
	predicate seq.Predicate[T]
}

// NewBiPrefixView constructs a bidirectionally indexed lazy view containing
// only the longest leading run of base elements satisfying the predicate.
func NewBiPrefixView[I comparable, T any](base seq.BiIndexed[I, T], predicate seq.Predicate[T]) BiView[I, T] {
	return &biPrefixView[I, T]{base, predicate}
}

// Iterate begins a fresh traversal of this view, independent of index-based
// access.
//
//nolint:revive
func (p *biPrefixView[I, T]) Iterate() seq.Enumerator[T] {
	return seq.NewPrefixIterator(p.base.Iterate(), p.predicate)
}

// First returns the index of the first element of the view.
//
//nolint:revive
func (p *biPrefixView[I, T]) First() Index[I] {
	return first[I, T](p.base)
}

// End returns the index one past the last element of the view.
//
//nolint:revive
func (p *biPrefixView[I, T]) End() Index[I] {
	return end[I, T](p.base, p.predicate)
}

// Next returns the index following a given index.
//
//nolint:revive
func (p *biPrefixView[I, T]) Next(index Index[I]) Index[I] {
	return next[I, T](p.base, p.predicate, index)
}

// At returns the element at a given index.
//
//nolint:revive
func (p *biPrefixView[I, T]) At(index Index[I]) T {
	return at[I, T](p.base, index)
}

// Prev returns the index preceding a given index.  For a position this is a
// single base step; for the sentinel the predecessor is not known
// structurally (the view's logical end is data dependent) and must be
// recovered by scanning forward from the front of the base, which costs time
// linear in the length of the view.  Stepping back from the sentinel of an
// empty view is a contract violation.
//
//nolint:revive
func (p *biPrefixView[I, T]) Prev(index Index[I]) Index[I] {
	if !index.pastEnd {
		if index.base == p.base.First() {
			panic("cannot retreat before first index")
		}

		return Position(p.base.Prev(index.base))
	}
	// Scan forward from the front, tracking the last index still inside the
	// prefix.
	last := p.base.First()
	//
	for {
		following := p.base.Next(last)
		//
		if following == p.base.End() || !p.predicate(p.base.At(following)) {
			return Position(last)
		}
		//
		last = following
	}
}
