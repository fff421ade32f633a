// Package core provides the directed-graph container consumed by the
// push-relabel engine and the augmenting-path baselines.
//
// Nodes and arcs are dense integer identifiers: a Graph with N nodes and M
// arcs uses Node values 0..N-1 and Arc values 0..M-1, assigned in insertion
// order and never reused. This lets every per-node and per-arc quantity live
// in a contiguous slice (NodeMap, ArcMap) instead of a hash map.
//
// The solvers never depend on *Graph directly. They consume the Digraph
// capability set:
//
//	NodeCount() int
//	ArcCount() int
//	OutArcs(n Node) []Arc
//	InArcs(n Node) []Arc
//	Source(a Arc) Node
//	Target(a Arc) Node
//
// so any container exposing stable dense IDs can be plugged in. Reverse
// wraps a Digraph and flips every arc without copying.
//
// Configuration Options (GraphOption):
//
//	– WithNodeCapacity(n)  pre-sizes node storage.
//	– WithArcCapacity(m)   pre-sizes arc storage.
//
// Core Methods:
//
//	AddNode() Node                   // O(1) amortized
//	AddNodes(n int) []Node           // O(n)
//	AddArc(u, v Node) (Arc, error)   // O(1) amortized
//	OutArcs(n) / InArcs(n) []Arc     // O(1), shared read-only slices
//	Source(a) / Target(a) Node       // O(1)
//	Clone() *Graph                   // O(V+E)
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Once built, any number of
//	goroutines may read it concurrently; the parallel engine relies on that.
//
// Errors:
//
//	ErrNodeNotFound – arc endpoint or query outside 0..N-1
//	ErrArcNotFound  – arc query outside 0..M-1
package core
