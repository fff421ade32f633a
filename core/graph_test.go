package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
)

func TestGraph_AddNodesAndArcs(t *testing.T) {
	g := core.NewGraph(core.WithNodeCapacity(3), core.WithArcCapacity(3))
	nodes := g.AddNodes(3)
	require.Equal(t, []core.Node{0, 1, 2}, nodes)

	a0, err := g.AddArc(0, 1)
	require.NoError(t, err)
	a1, err := g.AddArc(1, 2)
	require.NoError(t, err)
	a2, err := g.AddArc(0, 2)
	require.NoError(t, err)
	require.Equal(t, []core.Arc{0, 1, 2}, []core.Arc{a0, a1, a2})

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.ArcCount())
	require.Equal(t, []core.Arc{a0, a2}, g.OutArcs(0))
	require.Equal(t, []core.Arc{a1, a2}, g.InArcs(2))
	require.Equal(t, core.Node(1), g.Source(a1))
	require.Equal(t, core.Node(2), g.Target(a1))

	in, out, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
}

func TestGraph_UnknownEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddNode()

	_, err := g.AddArc(0, 5)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddArc(-1, 0)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, _, err = g.Endpoints(3)
	require.ErrorIs(t, err, core.ErrArcNotFound)
	_, _, err = g.Degree(7)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	require.Panics(t, func() { g.MustAddArc(0, 9) })
}

func TestGraph_SelfLoopsAndParallelArcs(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(2)
	g.MustAddArc(0, 0)
	g.MustAddArc(0, 1)
	g.MustAddArc(0, 1)

	require.Len(t, g.OutArcs(0), 3)
	require.Len(t, g.InArcs(0), 1)
	require.Len(t, g.InArcs(1), 2)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(2)
	g.MustAddArc(0, 1)

	c := g.Clone()
	c.AddNode()
	c.MustAddArc(1, 2)

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.ArcCount())
	require.Len(t, g.OutArcs(1), 0)
	require.Equal(t, 3, c.NodeCount())
	require.Len(t, c.OutArcs(1), 1)
}

func TestReverse(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(3)
	a := g.MustAddArc(0, 1)
	b := g.MustAddArc(1, 2)

	r := core.Reverse(g)
	require.Equal(t, g.NodeCount(), r.NodeCount())
	require.Equal(t, g.ArcCount(), r.ArcCount())
	require.Equal(t, core.Node(1), r.Source(a))
	require.Equal(t, core.Node(0), r.Target(a))
	require.Equal(t, []core.Arc{b}, r.InArcs(1))
	require.Equal(t, []core.Arc{a}, r.OutArcs(1))

	// Reversing twice yields the original graph.
	require.Equal(t, core.Digraph(g), core.Reverse(r))
}

func TestLayered(t *testing.T) {
	g, s, tt := core.Layered(3, 2)
	require.Equal(t, core.Node(0), s)
	require.Equal(t, core.Node(g.NodeCount()-1), tt)
	require.Equal(t, 8, g.NodeCount())
	require.Equal(t, 2+2+2*4, g.ArcCount())

	for a := 0; a < g.ArcCount(); a++ {
		require.Less(t, g.Source(core.Arc(a)), g.Target(core.Arc(a)))
	}
}

func TestMaps(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(2)
	g.MustAddArc(0, 1)
	g.MustAddArc(1, 0)

	am := core.NewArcMap[int](g)
	require.Equal(t, 2, am.Len())
	am.Set(1, 7)
	require.Equal(t, 7, am.At(1))

	c := am.Clone()
	c.Fill(3)
	require.Equal(t, []int{0, 7}, am.Values())
	require.Equal(t, []int{3, 3}, c.Values())

	nm := core.NewNodeMap[bool](g)
	nm.Set(0, true)
	require.True(t, nm.At(0))
	require.False(t, nm.At(1))
	nm.Fill(true)
	require.Equal(t, []bool{true, true}, nm.Clone().Values())

	wrapped := core.ArcMapOf([]float64{1.5, 2.5})
	require.Equal(t, 2.5, wrapped.At(1))
}
