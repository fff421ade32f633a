// Package flow implements augmenting-path maximum-flow algorithms on any
// core.Digraph with a generic capacity type. They serve as the reference
// baseline the push-relabel engine in package preflow is validated
// against, and as simple solvers in their own right.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the flow value (integral networks).
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
// # Residual moves
//
// Arcs are never materialized in reverse. Every arc a = u→v offers two
// residual moves: forward from u with capacity(a) - flow(a), and backward
// from v with flow(a). Parallel arcs stay separate; self-loops are ignored.
//
// # API
//
// All entry points share the same signature:
//
//	func EdmondsKarp[V tolerance.Value](
//	    ctx context.Context,
//	    g core.Digraph,
//	    capacity core.ArcReader[V],
//	    source, sink core.Node,
//	    opts *FlowOptions,
//	) (*Result[V], error)
//
// A nil opts means DefaultOptions(). The Result carries the flow value, the
// per-arc flow and the two extreme minimum cuts: SourceSide (reachable from
// the source in the residual graph) and SinkSide (reaching the sink).
//
// Numeric comparisons use tolerance.Tolerance[V]; capacities equal to
// tolerance.Infinity are unbounded and an all-infinite augmenting path is
// reported as ErrUnboundedFlow.
//
// # Errors
//
//	ErrSourceNotFound - source is not a node of g.
//	ErrSinkNotFound   - sink is not a node of g.
//	ErrSourceIsSink   - source == sink.
//	ErrUnboundedFlow  - an augmenting path of infinite capacity exists.
//	EdgeError         - a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if ctx is done.
package flow
