// Package core: edge lifecycle and edge enumeration.
//
// Edges are interned by their full (Source, Label, Target) triple, so
// the container is a true multigraph: parallel edges between the same
// ordered pair coexist when their labels differ. AddEdge is the only
// operation that touches the adjacency indexes, keeping them in
// lockstep with canonical edge storage.

package core

import "iter"

// AddEdge interns a directed edge from source to target carrying the
// given label and returns its index. If an edge with an equal triple
// is already present, the existing index is returned and nothing is
// mutated (idempotent).
//
// Both endpoints must be indexes issued by this graph's AddVertex;
// anything else is a caller bug and panics with
// ErrVertexIndexOutOfRange before any state changes.
// Complexity: O(1) amortized.
func (g *Multidigraph[V, E]) AddEdge(source VertexIndex, label E, target VertexIndex) EdgeIndex {
	// 1) Endpoint bounds checks come first: the edge key embeds both
	//    indexes, so an unissued endpoint must never reach storage.
	g.mustVertex(source)
	g.mustVertex(target)

	// 2) Dedup on the full triple.
	e := Edge[E]{Source: source, Label: label, Target: target}
	if ei, ok := g.edgeToIndex[e]; ok {
		return ei
	}

	// 3) Intern into canonical storage.
	ei := EdgeIndex(len(g.edges))
	g.edgeToIndex[e] = ei
	g.edges = append(g.edges, e)

	// 4) Maintain both adjacency indexes; buckets allocate on first use.
	from, ok := g.edgesFrom[source]
	if !ok {
		from = newIndexSet()
		g.edgesFrom[source] = from
	}
	from.add(ei)

	pair := [2]VertexIndex{source, target}
	between, ok := g.edgesBetween[pair]
	if !ok {
		between = newIndexSet()
		g.edgesBetween[pair] = between
	}
	between.add(ei)

	return ei
}

// ContainsEdge reports whether an edge with an equal (source, label,
// target) triple exists, returning its index when it does. Absence is
// an ordinary outcome, not an error. Does not mutate and performs no
// bounds checks: a triple naming unissued vertices simply is not found.
// Complexity: O(1).
func (g *Multidigraph[V, E]) ContainsEdge(source VertexIndex, label E, target VertexIndex) (EdgeIndex, bool) {
	ei, ok := g.edgeToIndex[Edge[E]{Source: source, Label: label, Target: target}]

	return ei, ok
}

// Edge returns the edge entity stored at the given index.
//
// The index must have been issued by this graph's AddEdge; anything
// else is a caller bug and panics with ErrEdgeIndexOutOfRange.
// Complexity: O(1).
func (g *Multidigraph[V, E]) Edge(ei EdgeIndex) Edge[E] {
	g.mustEdge(ei)

	return g.edges[ei]
}

// EdgeCount returns the number of interned edges.
// Complexity: O(1).
func (g *Multidigraph[V, E]) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a restartable sequence of every edge index in the
// graph. Valid indexes are exactly [0, EdgeCount).
// Complexity: O(E) to drain.
func (g *Multidigraph[V, E]) Edges() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		for ei := range len(g.edges) {
			if !yield(ei) {
				return
			}
		}
	}
}

// mustEdge panics unless ei was issued by this graph.
func (g *Multidigraph[V, E]) mustEdge(ei EdgeIndex) {
	if ei < 0 || ei >= len(g.edges) {
		panic(ErrEdgeIndexOutOfRange)
	}
}
