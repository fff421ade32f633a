package preflow_test

import (
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/lgf"
	"github.com/katalvlaran/preflow/preflow"
)

// TestFixture solves the shared LGF fixture and compares value and both
// cuts with the augmenting-path baseline.
func (s *EngineSuite) TestFixture() {
	t := s.T()
	doc, err := lgf.ReadFile("../lgf/testdata/test.lgf")
	require.NoError(t, err)
	caps, err := lgf.ArcMap[int](doc, "capacity")
	require.NoError(t, err)
	src, err := doc.Node("source")
	require.NoError(t, err)
	dst, err := doc.Node("target")
	require.NoError(t, err)

	base, err := flow.EdmondsKarp(s.ctx, doc.Graph, caps, src, dst, nil)
	require.NoError(t, err)
	require.Equal(t, 22, base.Value)

	e, err := preflow.New[int](doc.Graph, caps, src, dst, s.options()...)
	require.NoError(t, err)
	require.NoError(t, e.Init())
	require.NoError(t, e.StartFirstPhase())
	require.Equal(t, base.Value, e.FlowValue())
	requireSinkCut(t, e, base)

	require.NoError(t, e.StartSecondPhase(false))
	requireFlow[int](t, doc.Graph, caps, e, src, dst)
	requireSourceCut(t, e, base)
	for n := core.Node(0); int(n) < doc.Graph.NodeCount(); n++ {
		require.Equal(t, n <= 1, e.MinCut(n), "MinCut(%s)", doc.Label(n))
	}
}
