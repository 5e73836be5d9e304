// Package fibheap_test contains behavioral unit tests for the Fibonacci
// heap: operation contracts, error taxonomy, handle guarding, sorted
// extraction and merge semantics. Structural invariant tests live in
// invariants_test.go (white-box).
package fibheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/priorityforest/fibheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain pops every key out of the heap and returns them in extraction order.
func drain(t *testing.T, h *fibheap.Heap[int, string]) []int {
	t.Helper()
	out := make([]int, 0, h.Len())
	for !h.IsEmpty() {
		k, _, err := h.ExtractMin()
		require.NoError(t, err)
		out = append(out, k)
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Construction: comparator is mandatory, NewOrdered covers cmp.Ordered.
// ------------------------------------------------------------------------

func TestNew_NilComparatorPanics(t *testing.T) {
	// A heap without an ordering is a configuration bug: New must panic.
	assert.Panics(t, func() { fibheap.New[int, string](nil) })
}

func TestNew_CustomOrdering(t *testing.T) {
	// A reversed comparator turns the structure into a max-heap.
	h := fibheap.New[int, string](func(a, b int) bool { return a > b })
	for _, k := range []int{3, 9, 1} {
		h.Insert(k, "")
	}
	k, _, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 9, k) // "min" under reversed order is the largest key
}

// ------------------------------------------------------------------------
// 2. Empty-heap contract: Min and ExtractMin fail with ErrEmptyHeap.
// ------------------------------------------------------------------------

func TestEmptyHeap_MinAndExtractFail(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())

	_, _, err := h.Min()
	assert.ErrorIs(t, err, fibheap.ErrEmptyHeap)

	_, _, err = h.ExtractMin()
	assert.ErrorIs(t, err, fibheap.ErrEmptyHeap)
}

// ------------------------------------------------------------------------
// 3. Sorted extraction, duplicates, find-min idempotence.
// ------------------------------------------------------------------------

func TestInsertExtract_SortedOrder(t *testing.T) {
	// Insert [5,3,8,1,9,2]; six extractions must yield 1,2,3,5,8,9.
	h := fibheap.NewOrdered[int, string]()
	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		h.Insert(k, "")
	}
	assert.Equal(t, 6, h.Len())
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drain(t, h))
	assert.True(t, h.IsEmpty())
}

func TestInsertExtract_DuplicateKeys(t *testing.T) {
	// Insert [4,4,4]: three extractions each return 4, then the heap is
	// empty and Min reports ErrEmptyHeap.
	h := fibheap.NewOrdered[int, string]()
	for _, v := range []string{"a", "b", "c"} {
		h.Insert(4, v)
	}
	seen := make(map[string]bool, 3)
	for i := 0; i < 3; i++ {
		k, v, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, 4, k)
		seen[v] = true
	}
	assert.Len(t, seen, 3) // each payload came out exactly once

	_, _, err := h.Min()
	assert.ErrorIs(t, err, fibheap.ErrEmptyHeap)
}

func TestMin_IdempotentWithoutMutation(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	for _, k := range []int{7, 2, 5} {
		h.Insert(k, "")
	}
	k1, _, err1 := h.Min()
	k2, _, err2 := h.Min()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, k1, k2)
	assert.Equal(t, 3, h.Len()) // Min never mutates
}

func TestInsertExtract_RandomAgainstSort(t *testing.T) {
	// 1000 random keys under a fixed seed must drain in sorted order.
	r := rand.New(rand.NewSource(7))
	h := fibheap.NewOrdered[int, string]()
	want := make([]int, 0, 1000)
	for i := 0; i < 1000; i++ {
		k := r.Intn(5000) // collisions intended
		want = append(want, k)
		h.Insert(k, "")
	}
	sort.Ints(want)
	assert.Equal(t, want, drain(t, h))
}

// ------------------------------------------------------------------------
// 4. DecreaseKey: contract, new minimum, rejection of increases.
// ------------------------------------------------------------------------

func TestDecreaseKey_BecomesNewMin(t *testing.T) {
	// Insert [10,20,30], decrease 30 → 1: Min and the next ExtractMin
	// must both report 1.
	h := fibheap.NewOrdered[int, string]()
	h.Insert(10, "ten")
	h.Insert(20, "twenty")
	hd := h.Insert(30, "thirty")

	require.NoError(t, h.DecreaseKey(hd, 1))

	k, v, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, "thirty", v) // payload follows its node

	k, _, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}

func TestDecreaseKey_EqualKeyAccepted(t *testing.T) {
	// Decreasing to the same key is a permitted no-op, not an error.
	h := fibheap.NewOrdered[int, string]()
	hd := h.Insert(5, "")
	assert.NoError(t, h.DecreaseKey(hd, 5))
}

func TestDecreaseKey_IncreaseRejected(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	h.Insert(1, "")
	hd := h.Insert(8, "")

	err := h.DecreaseKey(hd, 9)
	assert.ErrorIs(t, err, fibheap.ErrKeyIncrease)

	// The rejected call must not have disturbed anything observable.
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []int{1, 8}, drain(t, h))
}

func TestDecreaseKey_AfterConsolidation(t *testing.T) {
	// Decrease a key buried inside a consolidated tree; it must surface.
	h := fibheap.NewOrdered[int, string]()
	handles := make([]*fibheap.Node[int, string], 0, 10)
	for k := 10; k < 20; k++ {
		handles = append(handles, h.Insert(k, ""))
	}
	_, _, err := h.ExtractMin() // consolidate: survivors 11..19 form trees
	require.NoError(t, err)

	require.NoError(t, h.DecreaseKey(handles[9], 0)) // 19 → 0
	k, _, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, []int{0, 11, 12, 13, 14, 15, 16, 17, 18}, drain(t, h))
}

// ------------------------------------------------------------------------
// 5. Delete: by-handle removal from any position.
// ------------------------------------------------------------------------

func TestDelete_RemovesOnlyThatNode(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	var victims []*fibheap.Node[int, string]
	for k := 1; k <= 8; k++ {
		n := h.Insert(k, "")
		if k == 4 || k == 7 {
			victims = append(victims, n)
		}
	}
	_, _, err := h.ExtractMin() // pops 1, consolidates the rest
	require.NoError(t, err)

	for _, v := range victims {
		require.NoError(t, h.Delete(v))
	}
	assert.Equal(t, []int{2, 3, 5, 6, 8}, drain(t, h))
}

func TestDelete_MinNode(t *testing.T) {
	// Deleting the current minimum behaves like ExtractMin without a return.
	h := fibheap.NewOrdered[int, string]()
	mn := h.Insert(1, "")
	h.Insert(2, "")

	require.NoError(t, h.Delete(mn))
	k, _, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, 1, h.Len())
}

// ------------------------------------------------------------------------
// 6. Handle guarding: nil, stale and foreign handles fail fast.
// ------------------------------------------------------------------------

func TestHandles_NilRejected(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	h.Insert(1, "")
	assert.ErrorIs(t, h.DecreaseKey(nil, 0), fibheap.ErrNilHandle)
	assert.ErrorIs(t, h.Delete(nil), fibheap.ErrNilHandle)
}

func TestHandles_StaleAfterConsumption(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	hd := h.Insert(1, "")
	h.Insert(2, "")

	_, _, err := h.ExtractMin() // consumes the node behind hd
	require.NoError(t, err)

	assert.ErrorIs(t, h.DecreaseKey(hd, 0), fibheap.ErrStaleHandle)
	assert.ErrorIs(t, h.Delete(hd), fibheap.ErrStaleHandle)
	assert.Equal(t, 1, h.Len()) // guarded calls never mutate
}

func TestHandles_StaleAfterDelete(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	hd := h.Insert(1, "")
	require.NoError(t, h.Delete(hd))
	assert.ErrorIs(t, h.Delete(hd), fibheap.ErrStaleHandle)
}

func TestHandles_ForeignRejected(t *testing.T) {
	a := fibheap.NewOrdered[int, string]()
	b := fibheap.NewOrdered[int, string]()
	ha := a.Insert(1, "")
	b.Insert(5, "")

	// A handle minted by a must not operate on b — and b stays untouched.
	assert.ErrorIs(t, b.DecreaseKey(ha, 0), fibheap.ErrForeignHandle)
	assert.ErrorIs(t, b.Delete(ha), fibheap.ErrForeignHandle)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

// ------------------------------------------------------------------------
// 7. Merge: O(1) union, consumed heap, surviving handles.
// ------------------------------------------------------------------------

func TestMerge_SortedUnion(t *testing.T) {
	// A=[1,2,3], B=[4,5,6]; after Merge(A,B) six extractions yield 1..6.
	a := fibheap.NewOrdered[int, string]()
	b := fibheap.NewOrdered[int, string]()
	for _, k := range []int{1, 2, 3} {
		a.Insert(k, "")
	}
	for _, k := range []int{4, 5, 6} {
		b.Insert(k, "")
	}

	a.Merge(b)
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, drain(t, a))
}

func TestMerge_MinComesFromOther(t *testing.T) {
	a := fibheap.NewOrdered[int, string]()
	b := fibheap.NewOrdered[int, string]()
	a.Insert(10, "")
	b.Insert(1, "")

	a.Merge(b)
	k, _, err := a.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}

func TestMerge_EmptyAndSelfAndNil(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	h.Insert(3, "")

	h.Merge(nil)                               // nil: no-op
	h.Merge(h)                                 // self: no-op
	h.Merge(fibheap.NewOrdered[int, string]()) // empty: no-op
	assert.Equal(t, 1, h.Len())

	// Merging into an empty heap adopts the other forest wholesale.
	e := fibheap.NewOrdered[int, string]()
	e.Merge(h)
	assert.Equal(t, 1, e.Len())
	k, _, err := e.Min()
	require.NoError(t, err)
	assert.Equal(t, 3, k)
}

func TestMerge_HandlesSurviveIntoMergedHeap(t *testing.T) {
	// Handles minted before a merge keep working: the node moved, the
	// handle follows it.
	a := fibheap.NewOrdered[int, string]()
	b := fibheap.NewOrdered[int, string]()
	a.Insert(10, "")
	hb := b.Insert(20, "")

	a.Merge(b)
	require.NoError(t, a.DecreaseKey(hb, 1))
	k, _, err := a.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}

func TestMerge_InterleavedKeys(t *testing.T) {
	// Merge correctness over arbitrary multisets: the drained sequence
	// equals the sorted union of both key multisets.
	r := rand.New(rand.NewSource(11))
	a := fibheap.NewOrdered[int, string]()
	b := fibheap.NewOrdered[int, string]()
	want := make([]int, 0, 200)
	for i := 0; i < 100; i++ {
		ka, kb := r.Intn(1000), r.Intn(1000)
		a.Insert(ka, "")
		b.Insert(kb, "")
		want = append(want, ka, kb)
	}
	sort.Ints(want)

	a.Merge(b)
	assert.Equal(t, want, drain(t, a))
}

// ------------------------------------------------------------------------
// 8. Payloads: values ride along and can be replaced in place.
// ------------------------------------------------------------------------

func TestNode_SetValue(t *testing.T) {
	h := fibheap.NewOrdered[int, string]()
	hd := h.Insert(1, "old")
	hd.SetValue("new")

	_, v, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, hd.Key()) // key readable even after consumption
}
