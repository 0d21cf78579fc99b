// Package graph: inductive decomposition.
//
// View is the representation's defining operation: it pulls one node out
// of the graph, yielding that node's Context and a well-formed remaining
// graph. Traversal algorithms peel nodes off one at a time this way
// instead of keeping a separate visited set — the remaining graph IS the
// traversal state.
package graph

// View decomposes the graph at node id: it returns id's Context and a new
// graph equal to the receiver with id deleted and scrubbed from every
// other node's adjacency maps.
//
// Self-loop entries (id listed in its own Incoming or Outgoing) are
// stripped from the returned Context, so no node lists itself as its own
// neighbour in the view it receives. Returns ErrNodeNotFound, with the
// receiver as the remaining graph, when id is absent.
// Complexity: O(V + E).
func (g Graph[D, N, L]) View(id int64) (Context[N, L], Graph[D, N, L], error) {
	ctx, ok := g.nodes[id]
	if !ok {
		return Context[N, L]{}, g, ErrNodeNotFound
	}
	if _, loop := ctx.Incoming[id]; loop {
		ctx.Incoming = edgeMapWithout(ctx.Incoming, id)
	}
	if _, loop := ctx.Outgoing[id]; loop {
		ctx.Outgoing = edgeMapWithout(ctx.Outgoing, id)
	}
	return ctx, Graph[D, N, L]{nodes: scrubbed(g.nodes, id)}, nil
}

// ViewAny decomposes the graph at an arbitrary present node and returns
// its id alongside the Context and remaining graph. Which node is picked
// is implementation-defined (map iteration order); callers must not
// depend on it. Returns ErrEmptyGraph when the graph has no nodes.
// Complexity: O(V + E).
func (g Graph[D, N, L]) ViewAny() (int64, Context[N, L], Graph[D, N, L], error) {
	for id := range g.nodes {
		ctx, rest, err := g.View(id)
		return id, ctx, rest, err
	}
	return 0, Context[N, L]{}, g, ErrEmptyGraph
}
