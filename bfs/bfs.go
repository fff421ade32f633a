package bfs

import "github.com/katalvlaran/preflow/core"

// Step reports whether the search may cross arc a. out is true when a
// leaves the node being expanded and false when it enters it.
type Step func(a core.Arc, out bool) bool

// Reach returns the nodes reachable from root through arcs allowed by step.
func Reach(g core.Digraph, root core.Node, step Step) []bool {
	mark := make([]bool, g.NodeCount())
	Mark(g, root, mark, nil, step)

	return mark
}

// Mark clears mark, floods it from root through arcs allowed by step and
// returns queue, grown as needed, for reuse by the next call. mark must
// have one entry per node.
func Mark(g core.Digraph, root core.Node, mark []bool, queue []core.Node, step Step) []core.Node {
	for i := range mark {
		mark[i] = false
	}
	mark[root] = true
	queue = append(queue[:0], root)

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range g.OutArcs(u) {
			if v := g.Target(a); !mark[v] && step(a, true) {
				mark[v] = true
				queue = append(queue, v)
			}
		}
		for _, a := range g.InArcs(u) {
			if v := g.Source(a); !mark[v] && step(a, false) {
				mark[v] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Order returns the nodes reachable from root in visit order, root first.
func Order(g core.Digraph, root core.Node, step Step) []core.Node {
	mark := make([]bool, g.NodeCount())

	return Mark(g, root, mark, nil, step)
}
