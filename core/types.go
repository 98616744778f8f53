// Package core: central Multidigraph, Vertex, and Edge declarations.
//
// This file declares the index handle types, the generic entity types,
// the sentinel panic values, and the NewMultidigraph constructor.
// Method implementations live in methods_vertices.go, methods_edges.go
// and methods_adjacent.go; non-mutating views live in view.go.

package core

import "errors"

// VertexIndex is the stable public handle for a vertex: a dense,
// zero-based integer assigned at insertion time, in insertion order,
// and never reused for the lifetime of its graph.
type VertexIndex = int

// EdgeIndex is the stable public handle for an edge, assigned under
// the same rules as VertexIndex.
type EdgeIndex = int

// Sentinel panic values for caller-contract violations.
var (
	// ErrVertexIndexOutOfRange is the panic value raised when an
	// operation receives a vertex index this graph never issued.
	ErrVertexIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeIndexOutOfRange is the panic value raised when an
	// operation receives an edge index this graph never issued.
	ErrEdgeIndexOutOfRange = errors.New("core: edge index out of range")
)

// Vertex is a node in the graph. Its Label is its identity: two
// vertices with equal labels are the same vertex.
type Vertex[V comparable] struct {
	// Label is the caller-supplied payload and sole identity of this vertex.
	Label V
}

// Edge is a directed connection between two vertices. Its identity is
// the full (Source, Label, Target) triple, so parallel edges between
// the same ordered pair coexist as long as their labels differ.
type Edge[E comparable] struct {
	// Source is the index of the vertex this edge leaves.
	Source VertexIndex

	// Label is the caller-supplied payload distinguishing parallel edges.
	Label E

	// Target is the index of the vertex this edge enters.
	Target VertexIndex
}

// Multidigraph is the core in-memory labeled directed multigraph.
//
// Canonical truth is the dedup maps plus the index arenas; edgesFrom
// and edgesBetween are derived adjacency indexes maintained on every
// AddEdge. Inserts are the only mutation, so the five structures can
// never drift apart across a normally returning call.
type Multidigraph[V comparable, E comparable] struct {
	// Canonical vertex storage: forward map for dedup, arena for
	// retrieval by index (position == VertexIndex).
	vertexToIndex map[V]VertexIndex
	vertices      []Vertex[V]

	// Canonical edge storage, same dual layout.
	edgeToIndex map[Edge[E]]EdgeIndex
	edges       []Edge[E]

	// Derived adjacency indexes; buckets are allocated on first use.
	// edgesFrom[v] holds every edge index whose Source is v;
	// edgesBetween[{u,w}] holds every edge index with Source u, Target w.
	edgesFrom    map[VertexIndex]*indexSet
	edgesBetween map[[2]VertexIndex]*indexSet
}

// NewMultidigraph creates an empty graph: zero vertices, zero edges.
// Complexity: O(1)
func NewMultidigraph[V comparable, E comparable]() *Multidigraph[V, E] {
	return &Multidigraph[V, E]{
		vertexToIndex: make(map[V]VertexIndex),
		edgeToIndex:   make(map[Edge[E]]EdgeIndex),
		edgesFrom:     make(map[VertexIndex]*indexSet),
		edgesBetween:  make(map[[2]VertexIndex]*indexSet),
	}
}
