// Package bfs implements breadth-first traversal over an inductive
// graph, returning visit order, unweighted distances, and parent links.
//
// The traversal keeps no visited set: visiting a node decomposes it out
// of the working graph, and a dequeued id whose decomposition fails has
// necessarily been visited already. State is data, not a side table.
package bfs

import (
	"fmt"
	"sort"

	"github.com/nivral/induct/graph"
)

// queueItem pairs a node id with its BFS depth and the id that first
// enqueued it.
type queueItem struct {
	id     int64
	depth  int
	parent int64
	isRoot bool // the start node has no parent
}

// walker encapsulates mutable BFS state: the FIFO frontier, the shrinking
// working graph, and the result under construction.
type walker[D graph.Direction, N, L any] struct {
	graph graph.Graph[D, N, L]
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first traversal on g starting from start, applying any
// number of functional Options.
//
// Each node reachable from start is visited exactly once, in
// distance-nondecreasing order; successors of a visited node are enqueued
// in ascending id order, so traversal order is deterministic. A start id
// absent from the graph yields an empty Result, not an error: absence is
// a normal outcome throughout this library.
//
// Returns ErrOptionViolation for invalid options, or any error a
// user-supplied OnVisit hook produced. Complexity: O(V·(V + E)) — each
// visit decomposes the working graph, which copies the node table.
func BFS[D graph.Direction, N, L any](g graph.Graph[D, N, L], start int64, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &walker[D, N, L]{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}

	// An absent start yields an empty result; the main loop would also
	// handle it, but the intent deserves to be explicit.
	if !g.HasNode(start) {
		return w.res, nil
	}

	// Seed the frontier with the start node (no parent)
	w.queue = append(w.queue, queueItem{id: start, depth: 0, isRoot: true})
	return w.res, w.loop()
}

// loop processes the frontier until it is empty, the working graph is
// exhausted, or a hook aborts.
func (w *walker[D, N, L]) loop() error {
	for len(w.queue) > 0 && !w.graph.IsEmpty() {
		item := w.queue[0]
		w.queue = w.queue[1:]

		// Visiting = decomposing. Failure means the id was decomposed by
		// an earlier visit: discard and keep going with the same graph.
		ctx, rest, err := w.graph.View(item.id)
		if err != nil {
			continue
		}
		w.graph = rest

		if err = w.visit(item); err != nil {
			return err
		}
		w.enqueueSuccessors(item, ctx)
	}
	return nil
}

// visit records the node in the result and fires the OnVisit hook.
func (w *walker[D, N, L]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if !item.isRoot {
		w.res.Parent[item.id] = item.parent
	}
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueSuccessors appends every successor from the visited node's
// Context to the back of the frontier, in ascending id order, applying
// filtering and MaxDepth. Ids already visited are enqueued anyway and
// weeded out later by decomposition failure.
func (w *walker[D, N, L]) enqueueSuccessors(item queueItem, ctx graph.Context[N, L]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	succs := make([]int64, 0, len(ctx.Outgoing))
	for id := range ctx.Outgoing {
		succs = append(succs, id)
	}
	sort.Slice(succs, func(i, j int) bool { return succs[i] < succs[j] })

	for _, next := range succs {
		if !w.opts.FilterSuccessor(item.id, next) {
			continue
		}
		w.queue = append(w.queue, queueItem{id: next, depth: nextDepth, parent: item.id})
	}
}
