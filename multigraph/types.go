// Package multigraph defines the multi-label inductive graph types:
// the same id→Context representation as package graph, except that each
// adjacent id carries an ordered list of labels, so parallel edges
// between the same pair of nodes accumulate instead of replacing.
//
// Errors:
//
//	ErrNodeNotFound - requested node id is not present.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrEmptyGraph   - decomposition was attempted on an empty graph.
package multigraph

import "errors"

// Sentinel errors for multigraph operations. Absence is always a normal,
// caller-handled outcome; no operation fails any other way.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("multigraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("multigraph: edge not found")

	// ErrEmptyGraph indicates ViewAny was called on a graph with no nodes.
	ErrEmptyGraph = errors.New("multigraph: graph is empty")
)

// Direction is the phantom type parameter constraint for Graph, with the
// same two markers as package graph: direction-specific edge operations
// are pinned to one marker at compile time, with no runtime tag.
type Direction interface {
	Directed | Undirected
}

// Directed marks a graph whose edges are one-way arcs.
type Directed struct{}

// Undirected marks a graph whose edges mirror both ways symmetrically.
type Undirected struct{}

// EdgeMap records the labels of all parallel edges between one node and
// its adjacent nodes, keyed by adjacent node id. Each list is ordered
// most-recently-inserted first and is never empty while the key exists.
type EdgeMap[L any] map[int64][]L

// Context is the per-node record: incoming edges, the node's value, and
// outgoing edges, with parallel edges kept per adjacent id.
type Context[N, L any] struct {
	// Incoming maps predecessor node id to the labels of all edges
	// predecessor→node, newest first.
	Incoming EdgeMap[L]

	// Value is the caller-supplied payload attached to the node.
	Value N

	// Outgoing maps successor node id to the labels of all edges
	// node→successor, newest first.
	Outgoing EdgeMap[L]
}

// Graph is an immutable mapping from node id to Context with multi-label
// adjacency. The zero value is a usable empty graph; all operations are
// total functions returning new values.
type Graph[D Direction, N, L any] struct {
	nodes map[int64]Context[N, L]
}

// New creates an empty multigraph. Complexity: O(1).
func New[D Direction, N, L any]() Graph[D, N, L] {
	return Graph[D, N, L]{}
}

// NewDirected creates an empty directed multigraph. Complexity: O(1).
func NewDirected[N, L any]() Graph[Directed, N, L] {
	return New[Directed, N, L]()
}

// NewUndirected creates an empty undirected multigraph. Complexity: O(1).
func NewUndirected[N, L any]() Graph[Undirected, N, L] {
	return New[Undirected, N, L]()
}
