// Package multigraph: inductive decomposition, identical in contract to
// graph.View / graph.ViewAny with parallel edges carried in the bundles.
package multigraph

// View decomposes the graph at node id, returning id's Context (self-loop
// bundles stripped from the Context's own maps) and a new graph with id
// deleted and scrubbed from every other node's adjacency maps. Returns
// ErrNodeNotFound, with the receiver as the remaining graph, when id is
// absent. Complexity: O(V + E).
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

// ViewAny decomposes the graph at an arbitrary present node; which node
// is picked is implementation-defined and callers must not depend on it.
// Returns ErrEmptyGraph when the graph has no nodes.
// Complexity: O(V + E).
func (g Graph[D, N, L]) ViewAny() (int64, Context[N, L], Graph[D, N, L], error) {
	for id := range g.nodes {
		ctx, rest, err := g.View(id)
		return id, ctx, rest, err
	}
	return 0, Context[N, L]{}, g, ErrEmptyGraph
}
