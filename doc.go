// Package induct is a collection of immutable, value-semantic graph
// building blocks: an inductive graph that can be pulled apart one node
// at a time, traversal built on that decomposition, and a persistent
// meldable priority queue.
//
// What lives where:
//
//	graph/      — inductive Graph with phantom-typed direction, node
//	              Contexts, and decomposition (View / ViewAny)
//	multigraph/ — the same representation with parallel-edge support
//	              (each neighbour carries an ordered label list)
//	bfs/        — breadth-first traversal driven purely by decomposition
//	pheap/      — persistent pairing heap with O(1) meld
//	builder/    — deterministic fixture constructors (paths, cycles,
//	              cliques, stars) for tests and examples
//
// Why value semantics?
//
//   - Every operation is a total function from old structure to new
//     structure; retained old values are never affected.
//   - Concurrent readers of one value need no synchronization.
//   - Traversal state is data: visiting a node removes it from the
//     remaining graph instead of marking it in a side table.
//
// Pure Go, no runtime dependencies.
package induct
