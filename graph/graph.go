// Package graph: node lifecycle and read-only queries on the immutable
// Graph value. Every mutating operation copies the node table and the
// touched Contexts, so older Graph values keep observing their own state.
package graph

import "sort"

// InsertNode unconditionally (re)creates node id with the given value and
// empty adjacency maps, returning the new graph.
//
// If id already existed, its previous Context is discarded wholesale.
// Edges other nodes held pointing at the old Context become dangling until
// those neighbours are themselves touched; this quirk is deliberate and is
// not auto-repaired. Insertion never fails.
// Complexity: O(V).
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
// with ctx.Value and materializes every adjacency entry of ctx as an edge.
// Entries whose other endpoint is absent drop the absent half, exactly as
// edge insertion does. Complexity: O(V + deg).
func (g Graph[D, N, L]) InsertContext(id int64, ctx Context[N, L]) Graph[D, N, L] {
	nodes := cloneNodes(g.nodes)
	nodes[id] = Context[N, L]{
		Incoming: EdgeMap[L]{},
		Value:    ctx.Value,
		Outgoing: EdgeMap[L]{},
	}
	for m, label := range ctx.Incoming {
		addArc(nodes, m, id, label)
	}
	for m, label := range ctx.Outgoing {
		addArc(nodes, id, m, label)
	}
	return Graph[D, N, L]{nodes: nodes}
}

// RemoveNode deletes node id and scrubs it from every other node's
// adjacency maps. Removing an absent id is a no-op and returns the
// receiver unchanged. Complexity: O(V + E).
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

// HasEdge reports whether an edge from→to is recorded on from's outgoing
// side. In undirected graphs edges are mirrored, so HasEdge is symmetric.
// Complexity: O(1).
func (g Graph[D, N, L]) HasEdge(from, to int64) bool {
	ctx, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, present := ctx.Outgoing[to]
	return present
}

// Label returns the label of the edge from→to. Returns ErrNodeNotFound if
// from is absent, ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g Graph[D, N, L]) Label(from, to int64) (L, error) {
	var zero L
	ctx, ok := g.nodes[from]
	if !ok {
		return zero, ErrNodeNotFound
	}
	label, present := ctx.Outgoing[to]
	if !present {
		return zero, ErrEdgeNotFound
	}
	return label, nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g Graph[D, N, L]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored arcs (outgoing entries). In
// undirected graphs each edge between distinct nodes is mirrored and
// therefore counts twice; self-loops count once. Complexity: O(V).
func (g Graph[D, N, L]) EdgeCount() int {
	var n int
	for _, ctx := range g.nodes {
		n += len(ctx.Outgoing)
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

// Successors returns the ids reachable from node id along its outgoing
// edges, in ascending order. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d).
func (g Graph[D, N, L]) Successors(id int64) ([]int64, error) {
	ctx, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return sortedKeys(ctx.Outgoing), nil
}

// Predecessors returns the ids with an edge into node id, in ascending
// order. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d).
func (g Graph[D, N, L]) Predecessors(id int64) ([]int64, error) {
	ctx, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return sortedKeys(ctx.Incoming), nil
}
