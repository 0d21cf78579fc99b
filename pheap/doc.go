// Package pheap provides a persistent pairing heap: a meldable
// min-priority queue with O(1) insertion and merge and amortized
// O(log n) deletion.
//
// A heap is either empty or a root element paired with a list of sibling
// sub-heaps, each itself a valid heap under the same comparator. Melding
// two heaps compares their roots, keeps the lesser-or-equal one (ties
// favor the first operand), and prepends the other heap whole to the
// winner's sibling list — no rebalancing, no copying. Deletion pays the
// deferred cost: PopMin reduces the root's sibling list with the
// classic pairwise two-pass meld.
//
// Heaps are immutable values with structural sharing: Add, PopMin, and
// Merge return new heaps and leave their operands intact, so a heap can
// be branched freely and read concurrently without synchronization.
//
// Operations:
//
//	New(cmp)            // empty heap bound to a comparator   O(1)
//	FromSlice(cmp, xs)  // bulk construction                  O(n)
//	Add(item)           // insert by melding a singleton      O(1)
//	Merge(a, b)         // meld two whole heaps               O(1)
//	Min()               // peek least element                 O(1)
//	PopMin()            // remove least element               amortized O(log n)
//	Len(), IsEmpty()    //                                    O(1)
//
// The comparator follows the cmp.Compare convention (negative / zero /
// positive) and must implement a strict total preorder consistent across
// every element ever inserted.
//
// Errors:
//
//	ErrEmptyHeap – Min or PopMin on an empty heap.
package pheap
