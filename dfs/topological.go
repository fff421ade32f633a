package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph core.Digraph
	opts  topoOptions
	state []int       // White, Gray or Black per node
	order []core.Node // post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes of g.
// Roots are tried in ascending ID order and out-arcs in insertion order, so
// the result is deterministic; a graph already in topological ID order
// comes back as 0..N-1.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected (wrapped with the closing arc) if g has a cycle.
//   - the context error if cancelled via WithCancelContext.
func TopologicalSort(g core.Digraph, options ...TopoOption) ([]core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]core.Node, 0, n),
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(core.Node(v)); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order is a topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-arcs.
func (t *topoSorter) visit(id core.Node) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[id] = Gray

	for _, a := range t.graph.OutArcs(id) {
		next := t.graph.Target(a)
		switch t.state[next] {
		case Gray:
			return fmt.Errorf("%w: arc %d (%d→%d) closes a cycle", ErrCycleDetected, a, id, next)
		case White:
			if err := t.visit(next); err != nil {
				return err
			}
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// Renumber builds a copy of g in which node order[i] becomes node i.
// Arcs are added in their original ID order, so arc a of the copy is arc a
// of g and every arc map of g applies unchanged. The returned index maps an
// old node ID to its new one.
//
// order must be a permutation of g's nodes.
func Renumber(g core.Digraph, order []core.Node) (*core.Graph, []core.Node, error) {
	n := g.NodeCount()
	if len(order) != n {
		return nil, nil, fmt.Errorf("dfs: order has %d nodes, graph has %d", len(order), n)
	}
	index := make([]core.Node, n)
	for i := range index {
		index[i] = core.InvalidNode
	}
	for i, v := range order {
		if v < 0 || int(v) >= n || index[v] != core.InvalidNode {
			return nil, nil, fmt.Errorf("dfs: order is not a permutation at position %d (node %d)", i, v)
		}
		index[v] = core.Node(i)
	}

	out := core.NewGraph(core.WithNodeCapacity(n), core.WithArcCapacity(g.ArcCount()))
	out.AddNodes(n)
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		out.MustAddArc(index[g.Source(a)], index[g.Target(a)])
	}

	return out, index, nil
}
