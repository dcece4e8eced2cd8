package seq

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"
)

func Test_Values(t *testing.T) {
	prefix := NewPrefixSequence[int](NewSliceSequence([]int{2, 4, 5, 6}), isEven)
	//
	assert.DeepEqual(t, []int{2, 4}, slices.Collect(Values(prefix)))
}

func Test_Values_EarlyExit(t *testing.T) {
	prefix := NewPrefixSequence[int](NewSliceSequence([]int{2, 4, 6}), isEven)
	//
	for range Values(prefix) {
		break
	}
}

func Test_FromSeq_Stateless(t *testing.T) {
	sequence := FromSeq(slices.Values([]int{2, 4, 6, 7, 8}))
	prefix := NewPrefixSequence[int](sequence, isEven)
	// Both traversals see the whole prefix.
	assert.DeepEqual(t, []int{2, 4, 6}, Collect[int](prefix.Iterate()))
	assert.DeepEqual(t, []int{2, 4, 6}, Collect[int](prefix.Iterate()))
}

func Test_FromSeq_Exhaustion(t *testing.T) {
	iter := FromSeq(slices.Values([]int{1})).Iterate()
	//
	assert.Equal(t, 1, iter.Next())
	assert.Assert(t, !iter.HasNext())
	assert.Assert(t, !iter.HasNext())
	assertPanics(t, func() { iter.Next() })
}
