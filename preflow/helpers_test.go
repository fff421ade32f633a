package preflow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/preflow"
	"github.com/katalvlaran/preflow/tolerance"
)

// arcSpec is one arc of a hand-written test network.
type arcSpec[V tolerance.Value] struct {
	from, to int
	cap      V
}

// network builds a graph with n nodes and the given arcs, in order.
func network[V tolerance.Value](n int, arcs ...arcSpec[V]) (*core.Graph, *core.ArcMap[V]) {
	g := core.NewGraph(core.WithNodeCapacity(n), core.WithArcCapacity(len(arcs)))
	g.AddNodes(n)
	caps := make([]V, 0, len(arcs))
	for _, a := range arcs {
		g.MustAddArc(core.Node(a.from), core.Node(a.to))
		caps = append(caps, a.cap)
	}

	return g, core.ArcMapOf(caps)
}

// wiki is the classic six-node instance, source n0, target n5. Its maximum
// flow is 14 and its only minimum cut is {n0, n1, n2}.
func wiki[V tolerance.Value]() (*core.Graph, *core.ArcMap[V]) {
	return network(6,
		arcSpec[V]{0, 1, 15},
		arcSpec[V]{1, 2, 12},
		arcSpec[V]{0, 3, 4},
		arcSpec[V]{3, 4, 10},
		arcSpec[V]{2, 5, 7},
		arcSpec[V]{4, 5, 10},
		arcSpec[V]{2, 3, 3},
		arcSpec[V]{4, 1, 5},
	)
}

// randomNetwork builds a directed graph with n nodes where each ordered
// pair u≠v gets an arc with probability p and capacity in [1, maxCap].
func randomNetwork(n int, p float64, maxCap int64, seed int64) (*core.Graph, *core.ArcMap[int64]) {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithNodeCapacity(n))
	g.AddNodes(n)
	var caps []int64
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			g.MustAddArc(core.Node(u), core.Node(v))
			caps = append(caps, r.Int63n(maxCap)+1)
		}
	}

	return g, core.ArcMapOf(caps)
}

// copyFlow snapshots a flow view into a new map.
func copyFlow[V tolerance.Value](g core.Digraph, f core.ArcReader[V]) *core.ArcMap[V] {
	m := core.NewArcMap[V](g)
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		m.Set(a, f.At(a))
	}

	return m
}

// requireFlow checks that e holds a feasible maximum flow after the second
// phase: capacity bounds on every arc and no excess left on inner nodes.
func requireFlow[V tolerance.Value](
	t *testing.T,
	g core.Digraph,
	capacity core.ArcReader[V],
	e *preflow.Engine[V],
	source, target core.Node,
) {
	t.Helper()
	tol := e.Tolerance()
	fm := e.FlowMap()
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		require.False(t, tol.Negative(fm.At(a)), "arc %d carries negative flow", a)
		require.False(t, tol.Less(capacity.At(a), fm.At(a)), "arc %d exceeds capacity", a)
	}
	for n := core.Node(0); int(n) < g.NodeCount(); n++ {
		if n == source || n == target {
			continue
		}
		require.False(t, tol.NonZero(e.Excess(n)), "node %d keeps excess %v", n, e.Excess(n))
	}
}

// requireSinkCut compares MinCut with the complement of the baseline's
// sink side on every node.
func requireSinkCut[V tolerance.Value](t *testing.T, e *preflow.Engine[V], base *flow.Result[V]) {
	t.Helper()
	for i, sink := range base.SinkSide {
		require.Equal(t, !sink, e.MinCut(core.Node(i)), "MinCut(%d)", i)
	}
}

// requireSourceCut compares MinCutSource with the baseline's source side.
func requireSourceCut[V tolerance.Value](t *testing.T, e *preflow.Engine[V], base *flow.Result[V]) {
	t.Helper()
	for i, src := range base.SourceSide {
		require.Equal(t, src, e.MinCutSource(core.Node(i)), "MinCutSource(%d)", i)
	}
}
