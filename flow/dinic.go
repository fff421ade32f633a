package flow

import (
	"context"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// Results and errors are those of EdmondsKarp.
//
// Steps:
//  1. Validate input via newNetwork (O(E)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS to assign each node its residual distance from source.
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow along moves that go one level up,
//     optionally rebuilding levels every LevelRebuildInterval
//     augmentations.
//  3. Compute the cut sides.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E) for levels, move lists and iterators.
func Dinic[V tolerance.Value](
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
	d := &dinicState[V]{
		nw:    nw,
		ctx:   ctx,
		level: make([]int, n),
		moves: make([][]step, n),
		iter:  make([]int, n),
	}
	for u := 0; u < n; u++ {
		d.moves[u] = nw.moves(core.Node(u), nil)
	}

	augmentations := 0
	queue := make([]core.Node, 0, n)
	for {
		// 2a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// 2b) BFS levels
		for i := range d.level {
			d.level[i] = -1
		}
		d.level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, s := range d.moves[u] {
				v := nw.head(s)
				if d.level[v] < 0 && tol.Positive(nw.residual(s)) {
					d.level[v] = d.level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 2c) Sink unreachable: done
		if d.level[sink] < 0 {
			break
		}

		// 2d) Blocking flow
		for i := range d.iter {
			d.iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			pushed := d.push(source, tol.Infinity())
			if !tol.Positive(pushed) {
				break
			}
			if tol.IsInfinite(pushed) {
				return nil, ErrUnboundedFlow
			}
			nw.value = tol.Add(nw.value, pushed)
			augmentations++
			o.Logger.Trace().Float64("pushed", float64(pushed)).Float64("total", float64(nw.value)).Msg("dinic augment")
			if o.LevelRebuildInterval > 0 && augmentations%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	o.Logger.Debug().Int("augmentations", augmentations).Float64("value", float64(nw.value)).Msg("dinic done")

	// 3) Cut sides
	return nw.result(), nil
}

type dinicState[V tolerance.Value] struct {
	nw    *network[V]
	ctx   context.Context
	level []int
	moves [][]step
	iter  []int
}

// push sends up to available units from u to the sink along the level
// graph, updating the flow in place, and returns the amount sent.
func (d *dinicState[V]) push(u core.Node, available V) V {
	nw := d.nw
	if u == nw.sink {
		return available
	}
	if d.ctx.Err() != nil {
		return 0
	}
	for ; d.iter[u] < len(d.moves[u]); d.iter[u]++ {
		s := d.moves[u][d.iter[u]]
		v := nw.head(s)
		if d.level[v] != d.level[u]+1 {
			continue
		}
		rem := nw.residual(s)
		if !nw.tol.Positive(rem) {
			continue
		}
		pushed := d.push(v, nw.tol.Min(available, rem))
		if nw.tol.Positive(pushed) {
			if !nw.tol.IsInfinite(pushed) {
				nw.augment(s, pushed)
			}

			return pushed
		}
	}

	return 0
}
