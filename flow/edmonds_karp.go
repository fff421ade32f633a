package flow

import (
	"context"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// EdmondsKarp computes the maximum flow from source to sink using
// breadth-first search for shortest augmenting paths.
//
// It returns a Result holding the flow value, the per-arc flow and both
// residual cut sides, or one of ErrSourceNotFound, ErrSinkNotFound,
// ErrSourceIsSink, EdgeError, ErrUnboundedFlow or the context's error.
//
// Steps:
//  1. Validate input via newNetwork (O(E)).
//  2. Repeat until the sink is unreachable:
//     a. Check ctx for cancellation.
//     b. BFS from source over residual moves, recording the move that
//     discovered each node (O(V + E)).
//     c. Walk back from sink to get the bottleneck; an infinite bottleneck
//     means the flow is unbounded.
//     d. Augment along the path.
//  3. Compute the cut sides.
//
// Complexity:
//
//	Time:   O(V · E²).
//	Memory: O(V + E).
func EdmondsKarp[V tolerance.Value](
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

	parent := make([]step, g.NodeCount())
	seen := make([]bool, g.NodeCount())
	queue := make([]core.Node, 0, g.NodeCount())
	var buf []step
	augmentations := 0

	for {
		// 2a) Cancellation check before each search
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 2b) BFS over residual moves
		for i := range seen {
			seen[i] = false
		}
		seen[source] = true
		queue = append(queue[:0], source)
		for i := 0; i < len(queue) && !seen[sink]; i++ {
			u := queue[i]
			buf = nw.moves(u, buf)
			for _, s := range buf {
				v := nw.head(s)
				if seen[v] || !tol.Positive(nw.residual(s)) {
					continue
				}
				seen[v] = true
				parent[v] = s
				queue = append(queue, v)
			}
		}
		if !seen[sink] {
			break
		}

		// 2c) Bottleneck along the discovered path
		bottleneck := tol.Infinity()
		for v := sink; v != source; v = nw.tail(parent[v]) {
			bottleneck = tol.Min(bottleneck, nw.residual(parent[v]))
		}
		if tol.IsInfinite(bottleneck) {
			return nil, ErrUnboundedFlow
		}

		// 2d) Augment
		for v := sink; v != source; v = nw.tail(parent[v]) {
			nw.augment(parent[v], bottleneck)
		}
		nw.value = tol.Add(nw.value, bottleneck)
		augmentations++
		o.Logger.Trace().Float64("pushed", float64(bottleneck)).Float64("total", float64(nw.value)).Msg("edmonds-karp augment")
	}

	o.Logger.Debug().Int("augmentations", augmentations).Float64("value", float64(nw.value)).Msg("edmonds-karp done")

	// 3) Cut sides
	return nw.result(), nil
}
