// Package multigraph provides the multi-label variant of the inductive
// graph in package graph: each adjacent node id maps to an ordered list
// of labels (newest first), so parallel edges between the same pair of
// nodes accumulate instead of replacing one another.
//
// Everything else matches package graph:
//
//   - Value semantics — operations return new Graph values; retained old
//     values are never affected.
//   - Phantom-typed direction — Directed / Undirected markers pin the
//     direction-specific edge operations at compile time.
//   - Decomposition — View / ViewAny extract one node's Context and the
//     scrubbed remaining graph; self-loop bundles never leak into a
//     node's own view.
//   - Quirks preserved — InsertNode replaces wholesale (inbound edges
//     dangle); edge insertion against a missing endpoint drops that half.
//
// Differences from package graph:
//
//	InsertEdge / InsertUndirectedEdge   prepend to the label bundle
//	Label(from, to)                     returns only the newest label
//	Labels(from, to)                    returns the whole bundle, newest first
//	RemoveEdge / RemoveUndirectedEdge   delete the whole bundle at once
//	EdgeCount                           counts every parallel label
package multigraph
