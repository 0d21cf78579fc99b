// Package bfs provides breadth-first traversal over the inductive graph
// in package graph, built purely out of repeated decomposition plus a
// FIFO frontier.
//
// Instead of marking nodes in a visited set, BFS removes each visited
// node from its working copy of the graph (graph.View). When a dequeued
// id fails to decompose, it was already visited — the failure is the
// membership test. Because graphs are values, the caller's graph is
// never affected by the shrinking working copy.
//
// Behavior:
//
//   - Each node reachable from the start is visited exactly once, in
//     distance-nondecreasing order.
//   - Successors are enqueued in ascending id order, making the full
//     visit order deterministic.
//   - A start id absent from the graph yields an empty Result.
//
// Options:
//
//   - WithOnVisit(fn)          hook on every visit; error aborts
//   - WithMaxDepth(d)          stop exploring beyond depth d (0 = no limit)
//   - WithFilterSuccessor(fn)  skip edges by returning false
//
// Complexity: O(V·(V+E)) time — each decomposition copies the working
// graph's node table — and O(V) frontier memory.
package bfs
