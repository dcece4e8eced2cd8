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

// View is a forward-indexed lazy view over some base.  A view holds no
// mutable state: every operation re-derives its answer from the base and the
// predicate, which is also why some operations are not constant time.
type View[I comparable, T any] interface {
	seq.Sequence[T]

	// First returns the index of the first element of the view.  For an
	// empty view this equals End.
	First() Index[I]

	// End returns the index one past the last element of the view.  Whether
	// this is the synthetic sentinel or the first index is data dependent.
	End() Index[I]

	// Next returns the index following a given index, which must denote an
	// element of the view (in particular, it must not equal End).
	Next(Index[I]) Index[I]

	// At returns the element at a given index, which must not be the
	// sentinel.
	At(Index[I]) T
}

// BiView extends View with backward index movement.
type BiView[I comparable, T any] interface {
	View[I, T]

	// Prev returns the index preceding a given index, which must not equal
	// First.  Stepping back from the sentinel is linear in the length of the
	// view, since the boundary must be rediscovered by scanning.
	Prev(Index[I]) Index[I]
}
