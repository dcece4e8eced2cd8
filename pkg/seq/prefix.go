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

// PrefixIterator wraps a base enumerator such that only the longest leading
// run of elements satisfying a given predicate is produced.  The first failing
// element terminates the traversal permanently: it is consumed from the base
// but never produced, and the base is not touched again afterwards.  Base
// exhaustion also terminates the traversal, but without pinning the failed
// flag; permanence on that path is inherited from the base enumerator's own
// single-pass contract.
type prefixIterator[T any] struct {
	base      Enumerator[T]
	predicate Predicate[T]
	// next holds an element read from the base but not yet produced.  Only
	// meaningful whilst ready is set.
	next   T
	ready  bool
	failed bool
}

// NewPrefixIterator constructs a single-pass enumerator producing the longest
// leading run of base elements satisfying the predicate.  The base enumerator
// is owned by the returned adapter and must not be used elsewhere.
func NewPrefixIterator[T any](base Enumerator[T], predicate Predicate[T]) Enumerator[T] {
	return &prefixIterator[T]{base: base, predicate: predicate}
}

// HasNext checks whether or not there are any items remaining to visit.  This
// reads (at most) one element ahead from the base, since deciding whether an
// element is inside the prefix requires evaluating the predicate on it.
//
//nolint:revive
func (p *prefixIterator[T]) HasNext() bool {
	if p.failed {
		return false
	}

	if p.ready {
		return true
	}

	if !p.base.HasNext() {
		return false
	}
	//
	item := p.base.Next()
	//
	if !p.predicate(item) {
		p.failed = true
		return false
	}
	//
	p.next = item
	p.ready = true

	return true
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *prefixIterator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	p.ready = false

	return p.next
}

// ===============================================================
// Sequence adapter
// ===============================================================

type prefixSequence[T any] struct {
	base      Sequence[T]
	predicate Predicate[T]
}

// NewPrefixSequence constructs a lazy view of a sequence containing only the
// longest leading run of elements satisfying the predicate.  The view holds no
// mutable state; each call to Iterate starts a fresh, independent traversal of
// the base.  Nothing is computed until a traversal demands it.
func NewPrefixSequence[T any](base Sequence[T], predicate Predicate[T]) Sequence[T] {
	return &prefixSequence[T]{base, predicate}
}

// Iterate begins a fresh traversal of the prefix.
//
//nolint:revive
func (p *prefixSequence[T]) Iterate() Enumerator[T] {
	return NewPrefixIterator(p.base.Iterate(), p.predicate)
}
