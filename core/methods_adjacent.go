// Package core: adjacency queries.
//
// All queries here read the derived adjacency indexes, never rescan
// edge storage, and return lazy restartable sequences over the
// underlying bitmap buckets. A vertex with no bucket yet (no outgoing
// edges) yields the empty sequence, never an error.

package core

import "iter"

// Neighbors returns the target index of every edge leaving the given
// vertex, one per edge: parallel edges to the same target repeat it.
// The sequence is finite, restartable, and unordered; a vertex with no
// outgoing edges yields nothing.
//
// Panics with ErrVertexIndexOutOfRange if vi was never issued.
// Complexity: O(deg(vi)) to drain.
func (g *Multidigraph[V, E]) Neighbors(vi VertexIndex) iter.Seq[VertexIndex] {
	g.mustVertex(vi)
	from, ok := g.edgesFrom[vi]
	if !ok {
		return emptySeq[VertexIndex]()
	}

	return func(yield func(VertexIndex) bool) {
		for ei := range from.all() {
			if !yield(g.edges[ei].Target) {
				return
			}
		}
	}
}

// EdgesFrom returns the index of every edge whose source is the given
// vertex. Same sequence contract and panic rule as Neighbors.
// Complexity: O(deg(vi)) to drain.
func (g *Multidigraph[V, E]) EdgesFrom(vi VertexIndex) iter.Seq[EdgeIndex] {
	g.mustVertex(vi)
	from, ok := g.edgesFrom[vi]
	if !ok {
		return emptySeq[EdgeIndex]()
	}

	return from.all()
}

// EdgesBetween returns the index of every edge whose source is the
// first argument and whose target is the second. The sequence is
// finite, restartable, and unordered; an unconnected pair yields
// nothing.
//
// Panics with ErrVertexIndexOutOfRange if either index was never
// issued.
// Complexity: O(k) to drain, k = number of connecting edges.
func (g *Multidigraph[V, E]) EdgesBetween(source, target VertexIndex) iter.Seq[EdgeIndex] {
	g.mustVertex(source)
	g.mustVertex(target)
	between, ok := g.edgesBetween[[2]VertexIndex{source, target}]
	if !ok {
		return emptySeq[EdgeIndex]()
	}

	return between.all()
}

// OutDegree returns the number of edges leaving the given vertex.
//
// Panics with ErrVertexIndexOutOfRange if vi was never issued.
// Complexity: O(1).
func (g *Multidigraph[V, E]) OutDegree(vi VertexIndex) int {
	g.mustVertex(vi)
	from, ok := g.edgesFrom[vi]
	if !ok {
		return 0
	}

	return from.len()
}
