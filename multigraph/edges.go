// Package multigraph: direction-specific edge operations, pinned to one
// Direction marker each so cross-direction misuse cannot compile.
package multigraph

// InsertEdge prepends label to the directed from→to bundle: inserting a
// duplicate pair accumulates a parallel edge rather than replacing, and
// Label reports the newest one. Halves with absent endpoints are silently
// dropped. Complexity: O(V).
func InsertEdge[N, L any](g Graph[Directed, N, L], from, to int64, label L) Graph[Directed, N, L] {
	nodes := cloneNodes(g.nodes)
	addArc(nodes, from, to, label)
	return Graph[Directed, N, L]{nodes: nodes}
}

// RemoveEdge deletes the entire directed from→to bundle, parallel edges
// included. Absent endpoints or a missing bundle are no-ops.
// Complexity: O(V).
func RemoveEdge[N, L any](g Graph[Directed, N, L], from, to int64) Graph[Directed, N, L] {
	nodes := cloneNodes(g.nodes)
	removeArc(nodes, from, to)
	return Graph[Directed, N, L]{nodes: nodes}
}

// InsertUndirectedEdge prepends label to the a↔b bundles of both
// endpoints symmetrically in one call. A self-loop is recorded once.
// Complexity: O(V).
func InsertUndirectedEdge[N, L any](g Graph[Undirected, N, L], a, b int64, label L) Graph[Undirected, N, L] {
	nodes := cloneNodes(g.nodes)
	addArc(nodes, a, b, label)
	if a != b {
		addArc(nodes, b, a, label)
	}
	return Graph[Undirected, N, L]{nodes: nodes}
}

// RemoveUndirectedEdge deletes the a↔b bundles from both endpoints,
// parallel edges included. Absent endpoints or bundles are no-ops.
// Complexity: O(V).
func RemoveUndirectedEdge[N, L any](g Graph[Undirected, N, L], a, b int64) Graph[Undirected, N, L] {
	nodes := cloneNodes(g.nodes)
	removeArc(nodes, a, b)
	if a != b {
		removeArc(nodes, b, a)
	}
	return Graph[Undirected, N, L]{nodes: nodes}
}
