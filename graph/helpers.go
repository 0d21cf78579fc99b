package graph

import "sort"

// cloneNodes returns a shallow copy of the node table: Contexts (and the
// EdgeMaps inside them) are shared with src and must be replaced, never
// written through, by the caller.
func cloneNodes[N, L any](src map[int64]Context[N, L]) map[int64]Context[N, L] {
	dst := make(map[int64]Context[N, L], len(src)+1)
	for id, ctx := range src {
		dst[id] = ctx
	}
	return dst
}

// cloneEdgeMap returns a fresh copy of m.
func cloneEdgeMap[L any](m EdgeMap[L]) EdgeMap[L] {
	out := make(EdgeMap[L], len(m)+1)
	for id, label := range m {
		out[id] = label
	}
	return out
}

// edgeMapWithout returns a fresh copy of m lacking id.
func edgeMapWithout[L any](m EdgeMap[L], id int64) EdgeMap[L] {
	out := make(EdgeMap[L], len(m))
	for nid, label := range m {
		if nid == id {
			continue
		}
		out[nid] = label
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

// addArc records the arc from→to with the given label on nodes, touching
// from's Outgoing and to's Incoming. Either half is silently dropped when
// its endpoint is absent: edges attach only to nodes that already exist.
// nodes must be a private copy; the touched Contexts are replaced with
// copies before writing.
func addArc[N, L any](nodes map[int64]Context[N, L], from, to int64, label L) {
	if ctx, ok := nodes[from]; ok {
		out := cloneEdgeMap(ctx.Outgoing)
		out[to] = label
		ctx.Outgoing = out
		nodes[from] = ctx
	}
	if ctx, ok := nodes[to]; ok {
		in := cloneEdgeMap(ctx.Incoming)
		in[from] = label
		ctx.Incoming = in
		nodes[to] = ctx
	}
}

// removeArc deletes the arc from→to on nodes; each half is a no-op when
// its endpoint or entry is absent. Same copy discipline as addArc.
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
