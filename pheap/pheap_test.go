package pheap_test

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivral/induct/pheap"
)

// drain pops every element of h in order.
func drain[T any](t *testing.T, h pheap.Heap[T]) []T {
	t.Helper()
	out := make([]T, 0, h.Len())
	for !h.IsEmpty() {
		v, rest, err := h.PopMin()
		require.NoError(t, err)
		out = append(out, v)
		h = rest
	}
	return out
}

// TestAddPop_Sorted inserts a fixed sequence and expects fully sorted
// extraction.
func TestAddPop_Sorted(t *testing.T) {
	h := pheap.FromSlice(cmp.Compare[int], []int{5, 3, 8, 1, 9, 2})
	assert.Equal(t, 6, h.Len())
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drain(t, h))
}

// TestMin covers the empty-heap absence signal and peeking after one
// insertion.
func TestMin(t *testing.T) {
	h := pheap.New(cmp.Compare[int])
	_, err := h.Min()
	assert.ErrorIs(t, err, pheap.ErrEmptyHeap)
	_, _, err = h.PopMin()
	assert.ErrorIs(t, err, pheap.ErrEmptyHeap)

	h = h.Add(42)
	v, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, h.Len(), "Min must not modify the heap")
}

// TestMerge_Interleaves melds {1,4,7} with {2,3,9} and drains the fully
// sorted interleave.
func TestMerge_Interleaves(t *testing.T) {
	a := pheap.FromSlice(cmp.Compare[int], []int{1, 4, 7})
	b := pheap.FromSlice(cmp.Compare[int], []int{2, 3, 9})

	m := pheap.Merge(a, b)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 7, 9}, drain(t, m))

	// operands survive the merge untouched
	assert.Equal(t, []int{1, 4, 7}, drain(t, a))
	assert.Equal(t, []int{2, 3, 9}, drain(t, b))
}

// TestMerge_TiesFavorFirst verifies equal roots resolve to the first
// operand in both meld directions: the comparator sees only the key, so
// the payload tells us which side won.
func TestMerge_TiesFavorFirst(t *testing.T) {
	type entry struct {
		key int
		tag string
	}
	byKey := func(a, b entry) int { return cmp.Compare(a.key, b.key) }

	a := pheap.New(byKey).Add(entry{1, "first"})
	b := pheap.New(byKey).Add(entry{1, "second"})

	got, err := pheap.Merge(a, b).Min()
	require.NoError(t, err)
	assert.Equal(t, "first", got.tag)

	got, err = pheap.Merge(b, a).Min()
	require.NoError(t, err)
	assert.Equal(t, "second", got.tag)
}

// TestPersistence verifies structural sharing never leaks: popping from a
// derived heap leaves the original observable state intact.
func TestPersistence(t *testing.T) {
	h1 := pheap.FromSlice(cmp.Compare[int], []int{4, 2, 6})
	_, h2, err := h1.PopMin()
	require.NoError(t, err)
	h3 := h2.Add(1)

	assert.Equal(t, []int{2, 4, 6}, drain(t, h1))
	assert.Equal(t, []int{4, 6}, drain(t, h2))
	assert.Equal(t, []int{1, 4, 6}, drain(t, h3))
}

// TestCustomComparator drains in descending order with an inverted
// comparator.
func TestCustomComparator(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	h := pheap.FromSlice(desc, []int{5, 3, 8, 1})
	assert.Equal(t, []int{8, 5, 3, 1}, drain(t, h))
}

// TestRandomDrain cross-checks the heap against sort on a deterministic
// random workload, with interleaved pops.
func TestRandomDrain(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := pheap.New(cmp.Compare[int])
	reference := make([]int, 0, 512)

	for i := 0; i < 512; i++ {
		v := r.Intn(1000)
		h = h.Add(v)
		reference = append(reference, v)
		// occasionally pop to exercise meldAll mid-stream
		if i%7 == 0 && !h.IsEmpty() {
			min, rest, err := h.PopMin()
			require.NoError(t, err)
			sort.Ints(reference)
			require.Equal(t, reference[0], min)
			reference = reference[1:]
			h = rest
		}
	}

	sort.Ints(reference)
	assert.Equal(t, reference, drain(t, h))
}

// TestMerge_WithEmpty verifies empty operands return the other heap's
// contents unchanged, in both positions.
func TestMerge_WithEmpty(t *testing.T) {
	empty := pheap.New(cmp.Compare[int])
	h := pheap.FromSlice(cmp.Compare[int], []int{3, 1, 2})

	assert.Equal(t, []int{1, 2, 3}, drain(t, pheap.Merge(empty, h)))
	assert.Equal(t, []int{1, 2, 3}, drain(t, pheap.Merge(h, empty)))
	assert.True(t, pheap.Merge(empty, empty).IsEmpty())
}
