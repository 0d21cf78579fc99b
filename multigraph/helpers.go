package multigraph

import "sort"

// cloneNodes returns a shallow copy of the node table; Contexts and their
// EdgeMaps are shared with src and must be replaced, never written
// through, by the caller.
func cloneNodes[N, L any](src map[int64]Context[N, L]) map[int64]Context[N, L] {
	dst := make(map[int64]Context[N, L], len(src)+1)
	for id, ctx := range src {
		dst[id] = ctx
	}
	return dst
}

// cloneEdgeMap returns a fresh copy of m; label slices stay shared and
// are only ever replaced by freshly built slices.
func cloneEdgeMap[L any](m EdgeMap[L]) EdgeMap[L] {
	out := make(EdgeMap[L], len(m)+1)
	for id, labels := range m {
		out[id] = labels
	}
	return out
}

// edgeMapWithout returns a fresh copy of m lacking id.
func edgeMapWithout[L any](m EdgeMap[L], id int64) EdgeMap[L] {
	out := make(EdgeMap[L], len(m))
	for nid, labels := range m {
		if nid == id {
			continue
		}
		out[nid] = labels
	}
	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[L any](m EdgeMap[L]) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// prepend builds a new label list with label in front of existing; the
// existing slice is never mutated, so older graph values keep their view.
func prepend[L any](label L, existing []L) []L {
	out := make([]L, 0, len(existing)+1)
	out = append(out, label)
	return append(out, existing...)
}

// addArc prepends label to the from→to bundle, touching from's Outgoing
// and to's Incoming. Either half is silently dropped when its endpoint is
// absent. nodes must be a private copy.
func addArc[N, L any](nodes map[int64]Context[N, L], from, to int64, label L) {
	if ctx, ok := nodes[from]; ok {
		out := cloneEdgeMap(ctx.Outgoing)
		out[to] = prepend(label, out[to])
		ctx.Outgoing = out
		nodes[from] = ctx
	}
	if ctx, ok := nodes[to]; ok {
		in := cloneEdgeMap(ctx.Incoming)
		in[from] = prepend(label, in[from])
		ctx.Incoming = in
		nodes[to] = ctx
	}
}

// addArcAll prepends a whole label bundle, preserving its order; used by
// InsertContext to re-attach decomposed adjacency in one step.
func addArcAll[N, L any](nodes map[int64]Context[N, L], from, to int64, labels []L) {
	for i := len(labels) - 1; i >= 0; i-- {
		addArc(nodes, from, to, labels[i])
	}
}

// removeArc deletes the entire from→to bundle (all parallel labels); each
// half is a no-op when its endpoint or entry is absent.
func removeArc[N, L any](nodes map[int64]Context[N, L], from, to int64) {
	if ctx, ok := nodes[from]; ok {
		if _, present := ctx.Outgoing[to]; present {
			ctx.Outgoing = edgeMapWithout(ctx.Outgoing, to)
			nodes[from] = ctx
		}
	}
	if ctx, ok := nodes[to]; ok {
		if _, present := ctx.Incoming[from]; present {
			ctx.Incoming = edgeMapWithout(ctx.Incoming, from)
			nodes[to] = ctx
		}
	}
}

// scrubbed returns a copy of src with id deleted and every reference to id
// removed from the remaining nodes' adjacency maps.
func scrubbed[N, L any](src map[int64]Context[N, L], id int64) map[int64]Context[N, L] {
	dst := make(map[int64]Context[N, L], len(src))
	for nid, ctx := range src {
		if nid == id {
			continue
		}
		if _, ok := ctx.Incoming[id]; ok {
			ctx.Incoming = edgeMapWithout(ctx.Incoming, id)
		}
		if _, ok := ctx.Outgoing[id]; ok {
			ctx.Outgoing = edgeMapWithout(ctx.Outgoing, id)
		}
		dst[nid] = ctx
	}
	return dst
}
