// Package core: vertex lifecycle and vertex enumeration.
//
// Vertices are interned by label value: the forward map vertexToIndex
// performs dedup, the vertices arena answers retrieval by index. Both
// are updated together inside AddVertex, the only vertex mutation.

package core

import "iter"

// AddVertex interns a vertex with the given label and returns its
// index. If a vertex with an equal label is already present, the
// existing index is returned and nothing is mutated (idempotent).
// Labels are always acceptable; AddVertex cannot fail.
// Complexity: O(1) amortized.
func (g *Multidigraph[V, E]) AddVertex(label V) VertexIndex {
	if vi, ok := g.vertexToIndex[label]; ok {
		return vi // dedup: same label, same vertex
	}
	// Next dense index is the current arena length.
	vi := VertexIndex(len(g.vertices))
	g.vertexToIndex[label] = vi
	g.vertices = append(g.vertices, Vertex[V]{Label: label})

	return vi
}

// ContainsVertex reports whether a vertex with an equal label exists,
// returning its index when it does. Absence is an ordinary outcome,
// not an error. Does not mutate.
// Complexity: O(1).
func (g *Multidigraph[V, E]) ContainsVertex(label V) (VertexIndex, bool) {
	vi, ok := g.vertexToIndex[label]

	return vi, ok
}

// Vertex returns the vertex entity stored at the given index.
//
// The index must have been issued by this graph's AddVertex; anything
// else is a caller bug and panics with ErrVertexIndexOutOfRange.
// Complexity: O(1).
func (g *Multidigraph[V, E]) Vertex(vi VertexIndex) Vertex[V] {
	g.mustVertex(vi)

	return g.vertices[vi]
}

// VertexCount returns the number of interned vertices.
// Complexity: O(1).
func (g *Multidigraph[V, E]) VertexCount() int {
	return len(g.vertices)
}

// Vertices returns a restartable sequence of every vertex index in
// the graph. Valid indexes are exactly [0, VertexCount), so the
// enumeration walks that range lazily.
// Complexity: O(V) to drain.
func (g *Multidigraph[V, E]) Vertices() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for vi := range len(g.vertices) {
			if !yield(vi) {
				return
			}
		}
	}
}

// mustVertex panics unless vi was issued by this graph.
func (g *Multidigraph[V, E]) mustVertex(vi VertexIndex) {
	if vi < 0 || vi >= len(g.vertices) {
		panic(ErrVertexIndexOutOfRange)
	}
}
