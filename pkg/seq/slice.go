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

// SliceSequence exposes a slice as a bidirectionally indexed sequence, with
// positions being offsets into the slice.
type sliceSequence[T any] struct {
	items []T
}

// NewSliceSequence constructs a bidirectionally indexed sequence over a slice
// of items.  The slice is not copied.
func NewSliceSequence[T any](items []T) BiIndexed[uint, T] {
	return &sliceSequence[T]{items}
}

// Iterate begins a fresh traversal of this sequence.
//
//nolint:revive
func (p *sliceSequence[T]) Iterate() Enumerator[T] {
	return &sliceEnumerator[T]{p.items, 0}
}

// First returns the index of the first element.
//
//nolint:revive
func (p *sliceSequence[T]) First() uint {
	return 0
}

// End returns the index one past the last element.
//
//nolint:revive
func (p *sliceSequence[T]) End() uint {
	return uint(len(p.items))
}

// Next returns the index following a given index.
//
//nolint:revive
func (p *sliceSequence[T]) Next(index uint) uint {
	if index >= uint(len(p.items)) {
		panic("index out-of-bounds")
	}

	return index + 1
}

// At returns the element at a given index.
//
//nolint:revive
func (p *sliceSequence[T]) At(index uint) T {
	return p.items[index]
}

// Prev returns the index preceding a given index.
//
//nolint:revive
func (p *sliceSequence[T]) Prev(index uint) uint {
	if index == 0 || index > uint(len(p.items)) {
		panic("index out-of-bounds")
	}

	return index - 1
}

// ===============================================================
// Enumerator
// ===============================================================

type sliceEnumerator[T any] struct {
	items []T
	index uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *sliceEnumerator[T]) HasNext() bool {
	return p.index < uint(len(p.items))
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *sliceEnumerator[T]) Next() T {
	next := p.items[p.index]
	p.index++

	return next
}
