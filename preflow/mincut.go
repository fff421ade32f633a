package preflow

import (
	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// MinCut reports whether n lies on the source side of the minimum cut
// formed by the complement of the sink side: the nodes that can reach the
// target in the residual graph.
//
// Valid after StartFirstPhase or StartSecondPhase. The sink side is computed
// by BFS on the first query and cached until the next Init, Reinit or phase,
// so repeated queries cost O(1).
func (e *Engine[V]) MinCut(n core.Node) bool {
	if e.state < FirstPhaseDone {
		return false
	}
	if !e.sinkValid {
		e.computeSinkSide()
	}

	return !e.sinkSide[n]
}

// MinCutSource reports whether n is reachable from the source in the
// residual graph, i.e. lies on the source side of the minimum cut closest
// to the source. Valid after StartSecondPhase; cached like MinCut.
func (e *Engine[V]) MinCutSource(n core.Node) bool {
	if e.state < FirstPhaseDone {
		return false
	}
	if !e.sourceValid {
		e.computeSourceSide()
	}

	return e.sourceSide[n]
}

// computeSinkSide marks every node with a residual path to the target.
func (e *Engine[V]) computeSinkSide() {
	e.queue = residualReach(e.g, e.capacity, e.flow, e.tol, e.target, e.sinkSide, e.queue, true)
	e.sinkValid = true
}

// computeSourceSide marks every node reachable from the source.
func (e *Engine[V]) computeSourceSide() {
	e.queue = residualReach(e.g, e.capacity, e.flow, e.tol, e.source, e.sourceSide, e.queue, false)
	e.sourceValid = true
}

// residualReach floods mark from root over residual arcs and returns the
// queue buffer for reuse. With reverse set it follows residual arcs
// backwards (u is added when u→n is residual), otherwise forwards.
func residualReach[V tolerance.Value](
	g core.Digraph,
	capacity core.ArcReader[V],
	flow *core.ArcMap[V],
	tol tolerance.Tolerance[V],
	root core.Node,
	mark []bool,
	queue []core.Node,
	reverse bool,
) []core.Node {
	// Forward: an out-arc is open with spare capacity, an in-arc with flow
	// to cancel. Reverse swaps the two.
	return bfs.Mark(g, root, mark, queue, func(a core.Arc, out bool) bool {
		if out != reverse {
			return tol.Positive(tol.Sub(capacity.At(a), flow.At(a)))
		}
		return tol.Positive(flow.At(a))
	})
}
