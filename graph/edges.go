// Package graph: direction-specific edge operations.
//
// These are package-level functions rather than methods so that the
// Direction phantom parameter can be pinned to one marker: calling
// InsertUndirectedEdge on a Graph[Directed, ...] (or vice versa) is a
// compile error, with no runtime tag or check anywhere.
package graph

// InsertEdge records the directed edge from→to with the given label,
// touching exactly one outgoing slot (on from) and one incoming slot
// (on to). A half whose endpoint is absent is silently dropped rather
// than reported: edges attach only to existing nodes. Inserting over an
// existing from→to edge replaces its label. Complexity: O(V).
func InsertEdge[N, L any](g Graph[Directed, N, L], from, to int64, label L) Graph[Directed, N, L] {
	nodes := cloneNodes(g.nodes)
	addArc(nodes, from, to, label)
	return Graph[Directed, N, L]{nodes: nodes}
}

// RemoveEdge deletes the directed edge from→to. Absent endpoints or a
// missing edge make the corresponding half a no-op. Complexity: O(V).
func RemoveEdge[N, L any](g Graph[Directed, N, L], from, to int64) Graph[Directed, N, L] {
	nodes := cloneNodes(g.nodes)
	removeArc(nodes, from, to)
	return Graph[Directed, N, L]{nodes: nodes}
}

// InsertUndirectedEdge records the edge a↔b with the given label, touching
// both endpoints symmetrically in one call: the arc a→b and its mirror
// b→a. Halves with absent endpoints are silently dropped. A self-loop
// (a == b) is recorded once. Complexity: O(V).
func InsertUndirectedEdge[N, L any](g Graph[Undirected, N, L], a, b int64, label L) Graph[Undirected, N, L] {
	nodes := cloneNodes(g.nodes)
	addArc(nodes, a, b, label)
	if a != b {
		addArc(nodes, b, a, label)
	}
	return Graph[Undirected, N, L]{nodes: nodes}
}

// RemoveUndirectedEdge deletes the edge a↔b, removing the arc a→b and its
// mirror b→a. Absent endpoints or edges are no-ops. Complexity: O(V).
func RemoveUndirectedEdge[N, L any](g Graph[Undirected, N, L], a, b int64) Graph[Undirected, N, L] {
	nodes := cloneNodes(g.nodes)
	removeArc(nodes, a, b)
	if a != b {
		removeArc(nodes, b, a)
	}
	return Graph[Undirected, N, L]{nodes: nodes}
}
