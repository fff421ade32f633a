package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

func forwardOnly(core.Arc, bool) bool { return true }

// chain builds 0→1→2→3 plus an isolated node 4.
func chain() *core.Graph {
	g := core.NewGraph()
	g.AddNodes(5)
	g.MustAddArc(0, 1)
	g.MustAddArc(1, 2)
	g.MustAddArc(2, 3)

	return g
}

func TestReachBothDirections(t *testing.T) {
	g := chain()
	mark := bfs.Reach(g, 2, forwardOnly)
	assert.Equal(t, []bool{true, true, true, true, false}, mark)
}

func TestReachOutArcsOnly(t *testing.T) {
	g := chain()
	mark := bfs.Reach(g, 1, func(_ core.Arc, out bool) bool { return out })
	assert.Equal(t, []bool{false, true, true, true, false}, mark)

	mark = bfs.Reach(g, 1, func(_ core.Arc, out bool) bool { return !out })
	assert.Equal(t, []bool{true, true, false, false, false}, mark)
}

func TestReachBlockedArc(t *testing.T) {
	g := chain()
	mark := bfs.Reach(g, 0, func(a core.Arc, out bool) bool { return out && a != 1 })
	assert.Equal(t, []bool{true, true, false, false, false}, mark)
}

func TestOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(4)
	g.MustAddArc(0, 2)
	g.MustAddArc(0, 1)
	g.MustAddArc(1, 3)
	g.MustAddArc(2, 3)

	order := bfs.Order(g, 0, func(_ core.Arc, out bool) bool { return out })
	assert.Equal(t, []core.Node{0, 2, 1, 3}, order)
}

func TestMarkReusesBuffers(t *testing.T) {
	g := chain()
	mark := make([]bool, g.NodeCount())
	queue := make([]core.Node, 0, g.NodeCount())

	queue = bfs.Mark(g, 0, mark, queue, forwardOnly)
	require.Len(t, queue, 4)
	assert.True(t, mark[3])

	// A second search clears the previous marks.
	queue = bfs.Mark(g, 4, mark, queue, forwardOnly)
	assert.Equal(t, []core.Node{4}, queue)
	assert.Equal(t, []bool{false, false, false, false, true}, mark)
}
