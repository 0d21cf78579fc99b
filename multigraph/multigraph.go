// Package multigraph: node lifecycle and queries. Semantics match
// package graph except where parallel edges change the contract, which
// each affected operation calls out.
package multigraph

import "sort"

// InsertNode unconditionally (re)creates node id with the given value and
// empty adjacency maps. If id already existed, its Context is discarded
// wholesale; references other nodes hold to it dangle until those nodes
// are touched. Insertion never fails. Complexity: O(V).
func (g Graph[D, N, L]) InsertNode(id int64, value N) Graph[D, N, L] {
	nodes := cloneNodes(g.nodes)
	nodes[id] = Context[N, L]{
		Incoming: EdgeMap[L]{},
		Value:    value,
		Outgoing: EdgeMap[L]{},
	}
	return Graph[D, N, L]{nodes: nodes}
}

// InsertContext re-attaches a node decomposed by View: it creates node id
// with ctx.Value and re-records every adjacency bundle, preserving label
// order. Bundles whose other endpoint is absent drop the absent half.
// Complexity: O(V + deg).
func (g Graph[D, N, L]) InsertContext(id int64, ctx Context[N, L]) Graph[D, N, L] {
	nodes := cloneNodes(g.nodes)
	nodes[id] = Context[N, L]{
		Incoming: EdgeMap[L]{},
		Value:    ctx.Value,
		Outgoing: EdgeMap[L]{},
	}
	for m, labels := range ctx.Incoming {
		addArcAll(nodes, m, id, labels)
	}
	for m, labels := range ctx.Outgoing {
		addArcAll(nodes, id, m, labels)
	}
	return Graph[D, N, L]{nodes: nodes}
}

// RemoveNode deletes node id and scrubs it from every other node's
// adjacency maps; a no-op on absence. Complexity: O(V + E).
func (g Graph[D, N, L]) RemoveNode(id int64) Graph[D, N, L] {
	if _, ok := g.nodes[id]; !ok {
		return g
	}
	return Graph[D, N, L]{nodes: scrubbed(g.nodes, id)}
}

// HasNode reports whether node id is present. Complexity: O(1).
func (g Graph[D, N, L]) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Value returns the payload attached to node id, or ErrNodeNotFound.
// Complexity: O(1).
func (g Graph[D, N, L]) Value(id int64) (N, error) {
	ctx, ok := g.nodes[id]
	if !ok {
		var zero N
		return zero, ErrNodeNotFound
	}
	return ctx.Value, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g Graph[D, N, L]) HasEdge(from, to int64) bool {
	ctx, ok := g.nodes[from]
	if !ok {
		return false
	}
	return len(ctx.Outgoing[to]) > 0
}

// Label returns the most recently inserted label of the from→to bundle.
// Returns ErrNodeNotFound if from is absent, ErrEdgeNotFound if no edge
// exists. Complexity: O(1).
func (g Graph[D, N, L]) Label(from, to int64) (L, error) {
	var zero L
	ctx, ok := g.nodes[from]
	if !ok {
		return zero, ErrNodeNotFound
	}
	labels := ctx.Outgoing[to]
	if len(labels) == 0 {
		return zero, ErrEdgeNotFound
	}
	return labels[0], nil
}

// Labels returns all parallel labels of the from→to bundle, newest first.
// The returned slice must be treated as read-only. Same errors as Label.
// Complexity: O(1).
func (g Graph[D, N, L]) Labels(from, to int64) ([]L, error) {
	ctx, ok := g.nodes[from]
	if !ok {
		return nil, ErrNodeNotFound
	}
	labels := ctx.Outgoing[to]
	if len(labels) == 0 {
		return nil, ErrEdgeNotFound
	}
	return labels, nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g Graph[D, N, L]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored arcs, counting each parallel
// label separately. Undirected edges between distinct nodes are mirrored
// and count twice; self-loops once. Complexity: O(V + E).
func (g Graph[D, N, L]) EdgeCount() int {
	var n int
	for _, ctx := range g.nodes {
		for _, labels := range ctx.Outgoing {
			n += len(labels)
		}
	}
	return n
}

// IsEmpty reports whether the graph has no nodes. Complexity: O(1).
func (g Graph[D, N, L]) IsEmpty() bool {
	return len(g.nodes) == 0
}

// Nodes returns all node ids in ascending order. Complexity: O(V log V).
func (g Graph[D, N, L]) Nodes() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Successors returns the distinct ids reachable from node id along its
// outgoing bundles, ascending. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d).
func (g Graph[D, N, L]) Successors(id int64) ([]int64, error) {
	ctx, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return sortedKeys(ctx.Outgoing), nil
}

// Predecessors returns the distinct ids with an edge into node id,
// ascending. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d).
func (g Graph[D, N, L]) Predecessors(id int64) ([]int64, error) {
	ctx, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return sortedKeys(ctx.Incoming), nil
}
