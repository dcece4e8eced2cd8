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

import "github.com/bits-and-blooms/bitset"

// BitSequence exposes a bitset as a bidirectionally indexed sequence of
// booleans, with positions being bit offsets.  Useful, for example, for
// viewing the leading run of set bits lazily.
type bitSequence struct {
	bits *bitset.BitSet
}

// NewBitSequence constructs a bidirectionally indexed sequence over the bits
// of a bitset.  The bitset is not copied, and must not be mutated whilst
// traversals are in flight.
func NewBitSequence(bits *bitset.BitSet) BiIndexed[uint, bool] {
	return &bitSequence{bits}
}

// Iterate begins a fresh traversal of this sequence.
//
//nolint:revive
func (p *bitSequence) Iterate() Enumerator[bool] {
	return &bitEnumerator{p.bits, 0}
}

// First returns the index of the first bit.
//
//nolint:revive
func (p *bitSequence) First() uint {
	return 0
}

// End returns the index one past the last bit.
//
//nolint:revive
func (p *bitSequence) End() uint {
	return p.bits.Len()
}

// Next returns the index following a given index.
//
//nolint:revive
func (p *bitSequence) Next(index uint) uint {
	if index >= p.bits.Len() {
		panic("index out-of-bounds")
	}

	return index + 1
}

// At returns the bit at a given index.
//
//nolint:revive
func (p *bitSequence) At(index uint) bool {
	if index >= p.bits.Len() {
		panic("index out-of-bounds")
	}

	return p.bits.Test(index)
}

// Prev returns the index preceding a given index.
//
//nolint:revive
func (p *bitSequence) Prev(index uint) uint {
	if index == 0 || index > p.bits.Len() {
		panic("index out-of-bounds")
	}

	return index - 1
}

// ===============================================================
// Enumerator
// ===============================================================

type bitEnumerator struct {
	bits  *bitset.BitSet
	index uint
}

// HasNext checks whether or not there are any bits remaining to visit.
//
//nolint:revive
func (p *bitEnumerator) HasNext() bool {
	return p.index < p.bits.Len()
}

// Next returns the next bit, and advance the iterator.
//
//nolint:revive
func (p *bitEnumerator) Next() bool {
	next := p.bits.Test(p.index)
	p.index++

	return next
}
