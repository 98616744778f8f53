// Package directedgraph is a generic, in-memory labeled directed
// multigraph container: a reusable building block for higher-level
// graph tooling.
//
// 🚀 What is it?
//
//	A small, embeddable library that brings together:
//		• Interned vertices & edges: value equality defines identity
//		• Stable handles: dense, insertion-ordered integer indexes
//		• Adjacency indexes: edges-from and edges-between, kept in
//		  lockstep with canonical storage on every insert
//		• Lazy queries: restartable iter.Seq sequences over internal sets
//
// ✨ Why choose it?
//
//   - Index handles, not pointers — callers never hold references into
//     internal storage
//   - Dedup by construction — re-adding an equal vertex or edge returns
//     the original index and mutates nothing
//   - True multigraph — parallel edges between the same ordered pair,
//     distinguished by label
//   - Generic — any comparable vertex-label and edge-label types
//
// Everything lives in one subpackage:
//
//	core/ — the Multidigraph type, its entities, and all queries
//
// Quick ASCII example:
//
//	    X1 ──a──▶ X2
//	    X1 ──b──▶ X2   (parallel edge, different label)
//	    X1 ──a──▶ X3
//
// See examples/ for narrative usage and core/example_test.go for
// runnable documentation.
//
//	go get github.com/RobertDurfee/DirectedGraph/core
package directedgraph
