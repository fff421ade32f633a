package flow

import (
	"context"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford–Fulkerson method (DFS-based augmenting paths).
//
// Results and errors are those of EdmondsKarp.
//
// Steps:
//  1. Validate input via newNetwork (O(E)).
//  2. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iterative DFS for any source→sink path of residual moves,
//     carrying the bottleneck along.
//     c. If none found, break.
//     d. Augment along the path.
//  3. Compute the cut sides.
//
// Complexity:
//
//	Time:   O(E · F) where F is the flow value on integral networks.
//	Memory: O(V + E) for parents and the DFS stack.
//
// Suitable for small integral networks; prefer EdmondsKarp or Dinic for
// stronger guarantees.
func FordFulkerson[V tolerance.Value](
	ctx context.Context,
	g core.Digraph,
	capacity core.ArcReader[V],
	source, sink core.Node,
	opts *FlowOptions,
) (*Result[V], error) {
	// 1) Validate and build the zero flow
	nw, o, err := newNetwork(ctx, g, capacity, source, sink, opts)
	if err != nil {
		return nil, err
	}
	tol := nw.tol

	n := g.NodeCount()
	parent := make([]step, n)
	bottleneck := make([]V, n)
	visited := make([]bool, n)
	stack := make([]core.Node, 0, n)
	var buf []step
	augmentations := 0

	for {
		// 2a) Cancellation check before each search
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 2b) Iterative DFS
		for i := range visited {
			visited[i] = false
		}
		visited[source] = true
		bottleneck[source] = tol.Infinity()
		stack = append(stack[:0], source)
		for len(stack) > 0 && !visited[sink] {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			buf = nw.moves(u, buf)
			for _, s := range buf {
				v := nw.head(s)
				rem := nw.residual(s)
				if visited[v] || !tol.Positive(rem) {
					continue
				}
				visited[v] = true
				parent[v] = s
				bottleneck[v] = tol.Min(bottleneck[u], rem)
				if v == sink {
					break
				}
				stack = append(stack, v)
			}
		}

		// 2c) No augmenting path left
		if !visited[sink] {
			break
		}
		delta := bottleneck[sink]
		if tol.IsInfinite(delta) {
			return nil, ErrUnboundedFlow
		}

		// 2d) Augment
		for v := sink; v != source; v = nw.tail(parent[v]) {
			nw.augment(parent[v], delta)
		}
		nw.value = tol.Add(nw.value, delta)
		augmentations++
		o.Logger.Trace().Float64("pushed", float64(delta)).Float64("total", float64(nw.value)).Msg("ford-fulkerson augment")
	}

	o.Logger.Debug().Int("augmentations", augmentations).Float64("value", float64(nw.value)).Msg("ford-fulkerson done")

	// 3) Cut sides
	return nw.result(), nil
}
