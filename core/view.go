// File: view.go
// Role: Non-mutating graph views (deep copies and filtered rebuilds).
// Determinism:
//   - Clone preserves every vertex and edge index. InducedSubgraph
//     re-interns, so its indexes are fresh and dense.
// Concurrency:
//   - Views read the source graph only; results are fresh instances.

package core

// Clone returns a deep copy of the graph: canonical storage and both
// adjacency indexes. Every index valid on the source is valid on the
// copy and names the same entity; the two graphs share no state
// afterwards.
//
// Complexity: O(V + E).
func (g *Multidigraph[V, E]) Clone() *Multidigraph[V, E] {
	out := &Multidigraph[V, E]{
		vertexToIndex: make(map[V]VertexIndex, len(g.vertexToIndex)),
		vertices:      make([]Vertex[V], len(g.vertices)),
		edgeToIndex:   make(map[Edge[E]]EdgeIndex, len(g.edgeToIndex)),
		edges:         make([]Edge[E], len(g.edges)),
		edgesFrom:     make(map[VertexIndex]*indexSet, len(g.edgesFrom)),
		edgesBetween:  make(map[[2]VertexIndex]*indexSet, len(g.edgesBetween)),
	}
	copy(out.vertices, g.vertices)
	copy(out.edges, g.edges)
	for label, vi := range g.vertexToIndex {
		out.vertexToIndex[label] = vi
	}
	for e, ei := range g.edgeToIndex {
		out.edgeToIndex[e] = ei
	}
	// Bitmap buckets are cloned, not shared: later inserts on either
	// graph must not leak into the other.
	for vi, set := range g.edgesFrom {
		out.edgesFrom[vi] = set.clone()
	}
	for pair, set := range g.edgesBetween {
		out.edgesBetween[pair] = set.clone()
	}

	return out
}

// InducedSubgraph returns a new graph induced by the vertices for
// which keep reports true: the result contains exactly those vertices
// and every edge whose endpoints are both kept. The input graph is not
// mutated.
//
// The result is built through ordinary insertion, so its indexes are
// fresh, dense, and ordered by the source graph's insertion order; use
// ContainsVertex/ContainsEdge on the result to translate handles.
//
// Complexity: O(V + E).
func InducedSubgraph[V comparable, E comparable](g *Multidigraph[V, E], keep func(VertexIndex) bool) *Multidigraph[V, E] {
	out := NewMultidigraph[V, E]()

	// Re-intern kept vertices in index order; remap translates source
	// indexes to result indexes for the edge pass.
	remap := make(map[VertexIndex]VertexIndex, len(g.vertices))
	for vi, v := range g.vertices {
		if keep(vi) {
			remap[vi] = out.AddVertex(v.Label)
		}
	}

	// Keep only edges with both endpoints surviving.
	for _, e := range g.edges {
		src, okSrc := remap[e.Source]
		tgt, okTgt := remap[e.Target]
		if okSrc && okTgt {
			out.AddEdge(src, e.Label, tgt)
		}
	}

	return out
}
