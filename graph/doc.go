// Package graph provides an immutable, inductive graph: an id-keyed
// mapping from node to Context that can be repeatedly decomposed one node
// at a time while always yielding a well-formed remaining graph.
//
// The representation G = (id → Context) supports:
//
//   - Value semantics — every operation is a total function returning a
//     new Graph; no operation mutates the receiver. Retained old values
//     stay valid forever, and concurrent readers of one value need no
//     locks.
//   - Phantom-typed direction — Graph[Directed, N, L] and
//     Graph[Undirected, N, L] are distinct types. Directed-only operations
//     (InsertEdge, RemoveEdge) and undirected-only operations
//     (InsertUndirectedEdge, RemoveUndirectedEdge) are pinned to their
//     marker, so misuse is a compile error with zero runtime cost.
//   - Decomposition — View(id) extracts a node's Context (incoming edges,
//     value, outgoing edges, self-entries stripped) together with the
//     graph-without-that-node; ViewAny picks an arbitrary node. This is
//     the mechanism traversal algorithms are built on.
//   - Single-label adjacency — each neighbour id maps to exactly one
//     label; re-insertion replaces. Package multigraph holds the
//     parallel-edge variant.
//
// Documented quirks, preserved on purpose:
//
//   - InsertNode over an existing id replaces the Context wholesale;
//     inbound edges recorded on other nodes dangle until those nodes are
//     touched.
//   - Edge insertion against a missing endpoint silently drops that half
//     of the edge instead of failing.
//
// Node lifecycle:
//
//	New / NewDirected / NewUndirected        // O(1)
//	InsertNode(id, value) Graph              // O(V), replaces wholesale
//	InsertContext(id, ctx) Graph             // O(V + deg), inverse of View
//	RemoveNode(id) Graph                     // O(V + E), no-op on absence
//
// Edges (direction pinned by the type system):
//
//	InsertEdge(g, from, to, label)           // Directed only
//	RemoveEdge(g, from, to)                  // Directed only
//	InsertUndirectedEdge(g, a, b, label)     // Undirected only
//	RemoveUndirectedEdge(g, a, b)            // Undirected only
//
// Decomposition:
//
//	View(id) (Context, Graph, error)         // ErrNodeNotFound on absence
//	ViewAny() (id, Context, Graph, error)    // ErrEmptyGraph when empty
//
// Queries:
//
//	HasNode, HasEdge, Value, Label, NodeCount, EdgeCount, IsEmpty,
//	Nodes, Successors, Predecessors          // sorted, deterministic
//
// Errors:
//
//	ErrNodeNotFound – missing node
//	ErrEdgeNotFound – missing edge
//	ErrEmptyGraph   – ViewAny on an empty graph
package graph
