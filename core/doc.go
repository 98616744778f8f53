// Package core provides a generic in-memory labeled directed multigraph
// with interned vertices and edges and dense integer handles.
//
// The Multidigraph M = (V, E) keeps:
//
//   - Canonical storage: label→index dedup maps plus index→entity
//     arenas for both vertices and edges
//   - Derived adjacency indexes: edgesFrom[v] and edgesBetween[(u,w)]
//     roaring-bitmap sets of edge indexes, updated on every AddEdge so
//     they always equal a full rescan of edge storage
//   - Stable identity: VertexIndex and EdgeIndex are assigned densely
//     in [0, count), in insertion order, and never reused
//
// Why use core.Multidigraph?
//
//   - Value identity — two vertices are one vertex iff their labels are
//     equal; two edges are one edge iff their (Source, Label, Target)
//     triples are equal. Re-adding an equal entity is a no-op that
//     returns the original index.
//   - Multigraph semantics — any number of edges between the same
//     ordered vertex pair, as long as their labels differ.
//   - Lazy queries — Neighbors, EdgesFrom, EdgesBetween, Vertices and
//     Edges return restartable iter.Seq sequences; no copying, no
//     defined order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label V) VertexIndex                  // O(1) amortized, idempotent
//	ContainsVertex(label V) (VertexIndex, bool)     // O(1)
//	Vertex(vi VertexIndex) Vertex[V]                // O(1), panics on bad index
//
//	// Edge lifecycle
//	AddEdge(src VertexIndex, label E, tgt VertexIndex) EdgeIndex // O(1) amortized
//	ContainsEdge(src VertexIndex, label E, tgt VertexIndex) (EdgeIndex, bool)
//	Edge(ei EdgeIndex) Edge[E]                      // O(1), panics on bad index
//
//	// Query
//	Neighbors(vi VertexIndex) iter.Seq[VertexIndex] // one target per outgoing edge
//	EdgesFrom(vi VertexIndex) iter.Seq[EdgeIndex]
//	EdgesBetween(src, tgt VertexIndex) iter.Seq[EdgeIndex]
//	Vertices() iter.Seq[VertexIndex]
//	Edges() iter.Seq[EdgeIndex]
//
//	// Counts
//	VertexCount() int                               // O(1)
//	EdgeCount() int                                 // O(1)
//	OutDegree(vi VertexIndex) int                   // O(1)
//
//	// Views
//	Clone() *Multidigraph[V, E]                     // O(V+E) deep copy
//	InducedSubgraph(g, keep) *Multidigraph[V, E]    // O(V+E), fresh indexes
//
// Error contract:
//
// The container is insert-only and inserts cannot fail, so there are no
// error returns. Passing an index this graph never issued is a caller
// bug, not a runtime condition: the offending call panics with
// ErrVertexIndexOutOfRange or ErrEdgeIndexOutOfRange rather than
// returning degraded data. Expected absence is ordinary data:
// ContainsVertex and ContainsEdge report it through their second
// return value.
//
// Concurrency contract:
//
// Multidigraph carries no internal locks. Callers must serialize all
// mutating access; concurrent read-only queries are safe only while no
// AddVertex/AddEdge is in flight.
package core
