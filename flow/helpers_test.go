package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
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

// wiki is the classic six-node instance; its maximum flow is 14.
func wiki() (*core.Graph, *core.ArcMap[float64]) {
	return network(6,
		arcSpec[float64]{0, 1, 15},
		arcSpec[float64]{1, 2, 12},
		arcSpec[float64]{0, 3, 4},
		arcSpec[float64]{3, 4, 10},
		arcSpec[float64]{2, 5, 7},
		arcSpec[float64]{4, 5, 10},
		arcSpec[float64]{2, 3, 3},
		arcSpec[float64]{4, 1, 5},
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

// assertFlowIntegrity checks capacity bounds, conservation at inner nodes,
// that the net outflow of source equals the reported value, and that the
// source side of the cut excludes the sink.
func assertFlowIntegrity[V tolerance.Value](
	t *testing.T,
	g core.Digraph,
	capacity core.ArcReader[V],
	res *flow.Result[V],
	source, sink core.Node,
) {
	t.Helper()
	tol := tolerance.Default[V]()
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		f := res.Flow.At(a)
		require.False(t, tol.Negative(f), "arc %d carries negative flow", a)
		require.False(t, tol.Less(capacity.At(a), f), "arc %d exceeds capacity", a)
	}
	for n := core.Node(0); int(n) < g.NodeCount(); n++ {
		var in, out V
		for _, a := range g.InArcs(n) {
			in += res.Flow.At(a)
		}
		for _, a := range g.OutArcs(n) {
			out += res.Flow.At(a)
		}
		switch n {
		case source:
			require.False(t, tol.Different(out-in, res.Value), "source net outflow")
		case sink:
			require.False(t, tol.Different(in-out, res.Value), "sink net inflow")
		default:
			require.False(t, tol.Different(in, out), "conservation at node %d", n)
		}
	}
	require.True(t, res.SourceSide[source])
	require.False(t, res.SourceSide[sink])
	require.True(t, res.SinkSide[sink])
	require.False(t, res.SinkSide[source])
}
