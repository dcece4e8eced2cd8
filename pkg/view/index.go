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
	"cmp"
	"fmt"
)

// Index identifies a position within a lazily truncated view.  It has exactly
// two cases: a position of the underlying base, or a synthetic past-the-end
// sentinel.  The sentinel is distinct from the base's own end index because a
// lazy prefix can end before its base does, at a boundary which is only
// discoverable by evaluating the predicate.
//
// Two indices are equal exactly when both are positions over equal base
// indices, or both are the sentinel.  Since the sentinel always carries the
// zero base index, Go equality over Index implements this directly.
//
// An index is only meaningful relative to the view which produced it; using
// it with another view is a contract violation which is not detected.
type Index[I comparable] struct {
	base    I
	pastEnd bool
}

// Position wraps a base index as a view index.
func Position[I comparable](base I) Index[I] {
	return Index[I]{base, false}
}

// PastEnd returns the synthetic sentinel denoting one past the last element
// of a view.
func PastEnd[I comparable]() Index[I] {
	var empty I
	return Index[I]{empty, true}
}

// IsEnd checks whether this index is the past-the-end sentinel.
//
//nolint:revive
func (p Index[I]) IsEnd() bool {
	return p.pastEnd
}

// Base returns the wrapped base index.  The sentinel wraps no base index, not
// even one to read, so this fails for it.
//
//nolint:revive
func (p Index[I]) Base() I {
	if p.pastEnd {
		panic("index out-of-bounds")
	}

	return p.base
}

//nolint:revive
func (p Index[I]) String() string {
	if p.pastEnd {
		return "end"
	}

	return fmt.Sprintf("%v", p.base)
}

// Compare orders two view indices over an ordered base index type: any
// position orders before the sentinel, and two positions order as their base
// indices do.
func Compare[I cmp.Ordered](lhs Index[I], rhs Index[I]) int {
	switch {
	case lhs.pastEnd && rhs.pastEnd:
		return 0
	case lhs.pastEnd:
		return 1
	case rhs.pastEnd:
		return -1
	default:
		return cmp.Compare(lhs.base, rhs.base)
	}
}
