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

import (
	"testing"

	"github.com/consensys/go-seqview/pkg/seq"
	"gotest.tools/v3/assert"
)

func Test_View_1(t *testing.T) {
	checkView(t, []int{2, 4, 6, 7, 8}, isEven, []int{2, 4, 6})
}

func Test_View_2(t *testing.T) {
	checkView(t, []int{1, 2, 3}, isEven, []int{})
}

func Test_View_3(t *testing.T) {
	checkView(t, []int{}, isEven, []int{})
}

func Test_View_4(t *testing.T) {
	checkView(t, []int{5, 5, 5}, isFive, []int{5, 5, 5})
}

func Test_View_EmptyEnd(t *testing.T) {
	// End coincides with First exactly when the base is empty or its first
	// element fails the predicate.
	empty := NewPrefixView[uint, int](seq.NewSliceSequence([]int{1, 2, 3}), isEven)
	assert.Equal(t, empty.First(), empty.End())
	//
	empty = NewPrefixView[uint, int](seq.NewSliceSequence([]int{}), isEven)
	assert.Equal(t, empty.First(), empty.End())
	//
	nonEmpty := NewPrefixView[uint, int](seq.NewSliceSequence([]int{2, 3}), isEven)
	assert.Equal(t, PastEnd[uint](), nonEmpty.End())
	assert.Assert(t, nonEmpty.First() != nonEmpty.End())
}

func Test_View_At(t *testing.T) {
	v := NewPrefixView[uint, int](seq.NewSliceSequence([]int{2, 4, 6, 7}), isEven)
	// Every position reachable from First dereferences to the base element.
	assert.Equal(t, 2, v.At(v.First()))
	assert.Equal(t, 4, v.At(v.Next(v.First())))
	assert.Equal(t, 6, v.At(Position(uint(2))))
}

func Test_View_AdvanceToEnd(t *testing.T) {
	v := NewPrefixView[uint, int](seq.NewSliceSequence([]int{2, 4, 7}), isEven)
	//
	index := v.Next(v.First())
	assert.Equal(t, Position(uint(1)), index)
	// Advancing past the last in-prefix element yields the sentinel, even
	// though the base continues.
	assert.Equal(t, PastEnd[uint](), v.Next(index))
}

func Test_View_Preconditions(t *testing.T) {
	v := NewPrefixView[uint, int](seq.NewSliceSequence([]int{2, 3}), isEven)
	// Sentinel is never dereferenceable.
	assertPanics(t, func() { v.At(PastEnd[uint]()) })
	// Advancing from the sentinel is always invalid.
	assertPanics(t, func() { v.Next(PastEnd[uint]()) })
	// Advancing from a position outside the prefix is invalid too.
	assertPanics(t, func() { v.Next(Position(uint(1))) })
}

func Test_View_EmptyPreconditions(t *testing.T) {
	v := NewPrefixView[uint, int](seq.NewSliceSequence([]int{1, 2}), isEven)
	// The view is empty, so its end index is a position; advancing from it
	// is still invalid.
	assertPanics(t, func() { v.Next(v.End()) })
}

func Test_View_Iterate(t *testing.T) {
	v := NewPrefixView[uint, int](seq.NewSliceSequence([]int{2, 4, 7, 8}), isEven)
	// Traversal is independent of index-based access, and repeatable.
	assert.DeepEqual(t, []int{2, 4}, seq.Collect[int](v.Iterate()))
	assert.DeepEqual(t, []int{2, 4}, seq.Collect[int](v.Iterate()))
}

// ===================================================================
// Test Helpers
// ===================================================================

func isEven(n int) bool {
	return n%2 == 0
}

func isFive(n int) bool {
	return n == 5
}

// collectByIndex walks a view from First up to (excluding) End, gathering the
// element at every position visited.
func collectByIndex[I comparable, T any](v View[I, T]) []T {
	items := make([]T, 0)
	//
	for i := v.First(); i != v.End(); i = v.Next(i) {
		items = append(items, v.At(i))
	}
	//
	return items
}

func checkView(t *testing.T, items []int, predicate seq.Predicate[int], expected []int) {
	t.Helper()
	//
	v := NewPrefixView[uint, int](seq.NewSliceSequence(items), predicate)
	// Index walk and plain traversal agree with each other and with the
	// expected prefix.
	assert.DeepEqual(t, expected, collectByIndex[uint, int](v))
	assert.DeepEqual(t, expected, seq.Collect[int](v.Iterate()))
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	fn()
}
