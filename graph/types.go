// Package graph defines the inductive Graph, Context, and EdgeMap types
// together with the phantom Direction markers and sentinel errors.
//
// A Graph is an immutable value: every operation returns a new Graph and
// leaves the receiver observably unchanged. Internally the new value may
// share unchanged Contexts with the old one; sharing is safe because no
// operation ever writes into a map reachable from an existing value.
//
// Errors:
//
//	ErrNodeNotFound - requested node id is not present.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrEmptyGraph   - decomposition was attempted on an empty graph.
package graph

import "errors"

// Sentinel errors for graph operations. Absence is always a normal,
// caller-handled outcome; no operation fails any other way.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEmptyGraph indicates ViewAny was called on a graph with no nodes.
	ErrEmptyGraph = errors.New("graph: graph is empty")
)

// Direction is the phantom type parameter constraint for Graph.
// Exactly two markers satisfy it: Directed and Undirected. The parameter
// has no runtime representation; it only makes direction-specific edge
// operations (InsertEdge vs. InsertUndirectedEdge) a compile-time choice.
type Direction interface {
	Directed | Undirected
}

// Directed marks a graph whose edges are one-way arcs from source to
// destination.
type Directed struct{}

// Undirected marks a graph whose edges are mirrored into both endpoints
// symmetrically in a single call.
type Undirected struct{}

// EdgeMap records the labels of edges between one node and its adjacent
// nodes, keyed by the adjacent node id. Each adjacent id carries exactly
// one label; inserting over an existing id replaces it (last wins).
// For a variant that accumulates parallel edges, see package multigraph.
type EdgeMap[L any] map[int64]L

// Context is the per-node record of an inductive graph: everything the
// graph knows about one node.
//
// Incoming maps predecessor id → label for edges pointing into the node,
// Outgoing maps successor id → label for edges leaving it, and Value is
// the caller's opaque payload.
type Context[N, L any] struct {
	// Incoming maps predecessor node id to the label of the edge
	// predecessor→node.
	Incoming EdgeMap[L]

	// Value is the caller-supplied payload attached to the node.
	Value N

	// Outgoing maps successor node id to the label of the edge
	// node→successor.
	Outgoing EdgeMap[L]
}

// Graph is an immutable mapping from node id to Context.
//
// The zero value is a usable empty graph. Node ids are caller-supplied
// int64 values, unique within one graph. For every stored edge (n, m,
// label) with both endpoints present, n's Outgoing and m's Incoming agree;
// the only sanctioned exception is the dangling references left behind by
// InsertNode over an existing id (see InsertNode).
type Graph[D Direction, N, L any] struct {
	nodes map[int64]Context[N, L]
}

// New creates an empty graph with the given direction marker and node
// value / edge label types. Complexity: O(1).
func New[D Direction, N, L any]() Graph[D, N, L] {
	return Graph[D, N, L]{}
}

// NewDirected creates an empty directed graph. Complexity: O(1).
func NewDirected[N, L any]() Graph[Directed, N, L] {
	return New[Directed, N, L]()
}

// NewUndirected creates an empty undirected graph. Complexity: O(1).
func NewUndirected[N, L any]() Graph[Undirected, N, L] {
	return New[Undirected, N, L]()
}
