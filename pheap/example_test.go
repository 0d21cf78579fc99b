package pheap_test

import (
	"cmp"
	"fmt"

	"github.com/nivral/induct/pheap"
)

// ExampleHeap_PopMin drains a small heap in priority order.
func ExampleHeap_PopMin() {
	h := pheap.FromSlice(cmp.Compare[int], []int{5, 3, 8, 1, 9, 2})
	for !h.IsEmpty() {
		v, rest, err := h.PopMin()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Print(v, " ")
		h = rest
	}
	fmt.Println()
	// Output:
	// 1 2 3 5 8 9
}

// ExampleMerge melds two independently built heaps in O(1) and drains the
// combined result.
func ExampleMerge() {
	a := pheap.FromSlice(cmp.Compare[int], []int{1, 4, 7})
	b := pheap.FromSlice(cmp.Compare[int], []int{2, 3, 9})

	m := pheap.Merge(a, b)
	for !m.IsEmpty() {
		v, rest, _ := m.PopMin()
		fmt.Print(v, " ")
		m = rest
	}
	fmt.Println()
	// Output:
	// 1 2 3 4 7 9
}

// ExampleNew shows a custom comparator: a max-heap over task priorities.
func ExampleNew() {
	type task struct {
		name     string
		priority int
	}
	byPriorityDesc := func(a, b task) int { return cmp.Compare(b.priority, a.priority) }

	h := pheap.New(byPriorityDesc)
	h = h.Add(task{"compact", 1})
	h = h.Add(task{"serve", 9})
	h = h.Add(task{"flush", 5})

	top, _ := h.Min()
	fmt.Println(top.name)
	// Output:
	// serve
}
