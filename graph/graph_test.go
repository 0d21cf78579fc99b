package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivral/induct/graph"
)

// TestInsertNode_ReadBack verifies that an inserted node is visible and
// its value reads back unchanged.
func TestInsertNode_ReadBack(t *testing.T) {
	g := graph.NewDirected[string, int]()
	g = g.InsertNode(7, "seven")

	assert.True(t, g.HasNode(7))
	v, err := g.Value(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", v)

	// absent ids stay absent
	assert.False(t, g.HasNode(8))
	_, err = g.Value(8)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

// TestInsertNode_Replace verifies wholesale replacement: re-inserting an
// existing id discards its edges, leaving neighbours with dangling
// references (the documented, not-repaired quirk).
func TestInsertNode_Replace(t *testing.T) {
	g := graph.NewDirected[string, string]()
	g = g.InsertNode(1, "a").InsertNode(2, "b")
	g = graph.InsertEdge(g, 1, 2, "x")
	require.True(t, g.HasEdge(1, 2))

	// replace node 2: its incoming side is gone, node 1 still points at it
	g = g.InsertNode(2, "b2")
	v, err := g.Value(2)
	require.NoError(t, err)
	assert.Equal(t, "b2", v)
	preds, err := g.Predecessors(2)
	require.NoError(t, err)
	assert.Empty(t, preds, "replaced node must start with empty adjacency")
	assert.True(t, g.HasEdge(1, 2), "dangling outgoing reference is preserved")
}

// TestInsertRemove_SizeNeutral checks that insert-then-remove of a
// previously absent id restores the original node count.
func TestInsertRemove_SizeNeutral(t *testing.T) {
	g := graph.NewDirected[int, int]()
	g = g.InsertNode(1, 10).InsertNode(2, 20)
	before := g.NodeCount()

	grown := g.InsertNode(3, 30)
	assert.Equal(t, before+1, grown.NodeCount())
	assert.Equal(t, before, grown.RemoveNode(3).NodeCount())
}

// TestInsertEdge_MissingEndpoint verifies the partial-effect contract:
// each half of an edge attaches only when its endpoint exists.
func TestInsertEdge_MissingEndpoint(t *testing.T) {
	g := graph.NewDirected[int, string]()
	g = g.InsertNode(1, 0)

	// destination missing: outgoing half recorded on 1, incoming half dropped
	g = graph.InsertEdge(g, 1, 2, "dangling")
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasNode(2))

	// source missing: its outgoing half is dropped, but the incoming
	// half on the present destination is still recorded
	g = graph.InsertEdge(g, 9, 1, "lost")
	preds, err := g.Predecessors(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, preds)
	assert.False(t, g.HasEdge(9, 1))
}

// TestRemoveNode_Scrubs verifies that removing a node cleans it out of
// every other node's adjacency maps.
func TestRemoveNode_Scrubs(t *testing.T) {
	g := graph.NewDirected[int, int]()
	g = g.InsertNode(1, 0).InsertNode(2, 0).InsertNode(3, 0)
	g = graph.InsertEdge(g, 1, 2, 12)
	g = graph.InsertEdge(g, 3, 2, 32)
	g = graph.InsertEdge(g, 2, 1, 21)

	g = g.RemoveNode(2)
	assert.False(t, g.HasNode(2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(3, 2))
	succs, err := g.Successors(1)
	require.NoError(t, err)
	assert.Empty(t, succs)
	preds, err := g.Predecessors(1)
	require.NoError(t, err)
	assert.Empty(t, preds)

	// removing an absent id is a no-op
	assert.Equal(t, g.NodeCount(), g.RemoveNode(99).NodeCount())
}

// TestRemoveEdge_NoOpOnAbsence covers edge removal against missing edges
// and endpoints.
func TestRemoveEdge_NoOpOnAbsence(t *testing.T) {
	g := graph.NewDirected[int, int]()
	g = g.InsertNode(1, 0).InsertNode(2, 0)
	g = graph.InsertEdge(g, 1, 2, 1)

	g = graph.RemoveEdge(g, 2, 1) // reverse direction was never inserted
	assert.True(t, g.HasEdge(1, 2))

	g = graph.RemoveEdge(g, 1, 2)
	assert.False(t, g.HasEdge(1, 2))

	// absent endpoints: no panic, no effect
	g = graph.RemoveEdge(g, 5, 6)
	assert.Equal(t, 2, g.NodeCount())
}

// TestUndirected_Symmetric verifies that undirected insertion and removal
// touch both endpoints in one call.
func TestUndirected_Symmetric(t *testing.T) {
	g := graph.NewUndirected[int, string]()
	g = g.InsertNode(1, 0).InsertNode(2, 0)
	g = graph.InsertUndirectedEdge(g, 1, 2, "ab")

	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	l12, err := g.Label(1, 2)
	require.NoError(t, err)
	l21, err := g.Label(2, 1)
	require.NoError(t, err)
	assert.Equal(t, l12, l21)

	g = graph.RemoveUndirectedEdge(g, 2, 1)
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
}

// TestSingleLabel_LastWins verifies replace-on-reinsert for the
// single-label representation.
func TestSingleLabel_LastWins(t *testing.T) {
	g := graph.NewDirected[int, string]()
	g = g.InsertNode(1, 0).InsertNode(2, 0)
	g = graph.InsertEdge(g, 1, 2, "first")
	g = graph.InsertEdge(g, 1, 2, "second")

	label, err := g.Label(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "second", label)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestValueSemantics verifies that producing a new graph never disturbs a
// retained older value.
func TestValueSemantics(t *testing.T) {
	g0 := graph.NewDirected[string, int]()
	g1 := g0.InsertNode(1, "one")
	g2 := graph.InsertEdge(g1.InsertNode(2, "two"), 1, 2, 12)
	g3 := g2.RemoveNode(1)

	assert.Equal(t, 0, g0.NodeCount())
	assert.True(t, g1.HasNode(1))
	assert.False(t, g1.HasNode(2))
	assert.True(t, g2.HasEdge(1, 2))
	assert.False(t, g3.HasNode(1))
	assert.True(t, g2.HasNode(1), "older value must survive RemoveNode on a newer one")
}

// TestQueries_SortedOrder verifies deterministic ascending iteration for
// Nodes, Successors, and Predecessors.
func TestQueries_SortedOrder(t *testing.T) {
	g := graph.NewDirected[int, int]()
	for _, id := range []int64{42, 7, 19, 3} {
		g = g.InsertNode(id, 0)
	}
	for _, to := range []int64{42, 19, 3} {
		g = graph.InsertEdge(g, 7, to, 0)
	}

	assert.Equal(t, []int64{3, 7, 19, 42}, g.Nodes())
	succs, err := g.Successors(7)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 19, 42}, succs)
	preds, err := g.Predecessors(42)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, preds)

	_, err = g.Successors(99)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

// TestLabel_Errors distinguishes missing nodes from missing edges.
func TestLabel_Errors(t *testing.T) {
	g := graph.NewDirected[int, int]()
	g = g.InsertNode(1, 0).InsertNode(2, 0)

	_, err := g.Label(9, 1)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	_, err = g.Label(1, 2)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

// TestZeroValue verifies the zero Graph behaves as an empty graph.
func TestZeroValue(t *testing.T) {
	var g graph.Graph[graph.Directed, string, int]
	assert.True(t, g.IsEmpty())
	assert.Empty(t, g.Nodes())
	assert.False(t, g.HasNode(0))

	g = g.InsertNode(0, "root")
	assert.Equal(t, 1, g.NodeCount())
}
