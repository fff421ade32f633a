// Package bfs provides breadth-first marking over a core.Digraph where the
// caller decides, arc by arc, whether the search may cross it.
//
// A search from root visits out-arcs (u→v, reaching v) and in-arcs (v→u,
// reaching v) of every dequeued node u, in insertion order, and crosses an
// arc when the Step predicate allows it. That covers residual-graph
// reachability, where an arc is open forwards while it has spare capacity
// and backwards while it carries flow:
//
//	sourceSide := bfs.Reach(g, s, func(a core.Arc, out bool) bool {
//		if out {
//			return capacity.At(a) > flow.At(a)
//		}
//		return flow.At(a) > 0
//	})
//
// Mark is the allocation-free form for callers that search repeatedly.
//
// Complexity:
//
//   - Time:   O(V + E) plus one Step call per inspected arc
//   - Memory: O(V) for the queue and marks
package bfs
