// Package pheap: the pairing heap implementation. A heap value is a
// comparator plus an optional root node; nodes own an immutable,
// prepend-only sibling list, so melding two heaps allocates one node and
// one list cell and never copies existing structure.
package pheap

import "errors"

// ErrEmptyHeap indicates Min or PopMin was called on an empty heap.
var ErrEmptyHeap = errors.New("pheap: heap is empty")

// Heap is a persistent, meldable min-priority queue. A heap is either
// empty or a root element paired with a list of sub-heaps, each of which
// satisfies the heap property under the heap's comparator.
//
// The comparator is fixed at construction (New) and must be a consistent
// total preorder over every element the heap will ever hold. The zero
// Heap value has no comparator and must not be used; construct with New.
// All operations are pure: they return new Heap values and never modify
// existing ones, so any retained Heap stays valid and concurrent readers
// of one value need no synchronization.
type Heap[T any] struct {
	cmp  func(a, b T) int
	root *node[T]
	size int
}

// node is one element of the heap tree: a value plus the list of sub-heap
// roots hanging under it. Nodes are never mutated after creation.
type node[T any] struct {
	value T
	subs  *siblings[T]
}

// siblings is an immutable singly linked list of sub-heap roots, most
// recently attached first. Prepending shares the tail wholesale.
type siblings[T any] struct {
	head *node[T]
	next *siblings[T]
}

// New creates an empty heap bound to cmp, which must return a negative
// number when a orders before b, zero when they are equivalent, and a
// positive number otherwise (the cmp.Compare convention).
// Complexity: O(1).
func New[T any](cmp func(a, b T) int) Heap[T] {
	return Heap[T]{cmp: cmp}
}

// FromSlice creates a heap bound to cmp holding every element of items.
// Complexity: O(len(items)).
func FromSlice[T any](cmp func(a, b T) int, items []T) Heap[T] {
	h := New(cmp)
	for _, v := range items {
		h = h.Add(v)
	}
	return h
}

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h Heap[T]) IsEmpty() bool { return h.root == nil }

// Len returns the number of elements in the heap. Complexity: O(1).
func (h Heap[T]) Len() int { return h.size }

// Add inserts item by melding a singleton heap into h.
// Complexity: O(1) worst case.
func (h Heap[T]) Add(item T) Heap[T] {
	return Heap[T]{
		cmp:  h.cmp,
		root: meld(h.cmp, &node[T]{value: item}, h.root),
		size: h.size + 1,
	}
}

// Min returns the least element without modifying the heap. Returns
// ErrEmptyHeap on an empty heap. Complexity: O(1).
func (h Heap[T]) Min() (T, error) {
	if h.root == nil {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.root.value, nil
}

// PopMin returns the least element and a new heap formed by melding all
// of the root's sub-heaps pairwise. Returns ErrEmptyHeap, with the
// receiver as the new heap, on an empty heap.
// Complexity: amortized O(log n).
func (h Heap[T]) PopMin() (T, Heap[T], error) {
	if h.root == nil {
		var zero T
		return zero, h, ErrEmptyHeap
	}
	rest := Heap[T]{
		cmp:  h.cmp,
		root: meldAll(h.cmp, h.root.subs),
		size: h.size - 1,
	}
	return h.root.value, rest, nil
}

// Merge melds two whole heaps into one. Both operands must have been
// built with comparators implementing the same ordering; the result keeps
// a's comparator (b's when a was constructed without one). When the roots
// compare equal, a's root wins. Complexity: O(1) worst case.
func Merge[T any](a, b Heap[T]) Heap[T] {
	cmp := a.cmp
	if cmp == nil {
		cmp = b.cmp
	}
	return Heap[T]{
		cmp:  cmp,
		root: meld(cmp, a.root, b.root),
		size: a.size + b.size,
	}
}

// meld combines two heap trees: the lesser-or-equal root (ties favor a)
// becomes the new root, and the other tree is prepended whole to the
// winner's sibling list. Empty operands return the other unchanged.
func meld[T any](cmp func(a, b T) int, a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if cmp(a.value, b.value) <= 0 {
		return &node[T]{value: a.value, subs: &siblings[T]{head: b, next: a.subs}}
	}
	return &node[T]{value: b.value, subs: &siblings[T]{head: a, next: b.subs}}
}

// meldAll reduces a sibling list to a single tree with the standard
// pairing-heap two-pass shape: meld the first two siblings, meld the
// rest recursively, then meld those two results. The pairwise structure
// is what gives deletion its amortized O(log n) bound; a naive
// left-to-right fold would degrade it to O(n).
func meldAll[T any](cmp func(a, b T) int, list *siblings[T]) *node[T] {
	if list == nil {
		return nil
	}
	if list.next == nil {
		return list.head
	}
	return meld(cmp, meld(cmp, list.head, list.next.head), meldAll(cmp, list.next.next))
}
