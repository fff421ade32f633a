package flow

import (
	"context"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// network is the residual view shared by the augmenting-path algorithms.
// Every arc a offers two residual moves: forward along a with
// capacity-flow, and backward against a with flow.
type network[V tolerance.Value] struct {
	g            core.Digraph
	capacity     core.ArcReader[V]
	flow         *core.ArcMap[V]
	tol          tolerance.Tolerance[V]
	source, sink core.Node
	value        V
}

// step is one residual move on a path: arc plus direction.
type step struct {
	arc      core.Arc
	backward bool
}

// newNetwork validates the input and returns a zero-flow network.
//
// Steps:
//  1. Normalize options (nil → DefaultOptions).
//  2. Check context, source, sink.
//  3. Reject negative capacities (EdgeError).
func newNetwork[V tolerance.Value](
	ctx context.Context,
	g core.Digraph,
	capacity core.ArcReader[V],
	source, sink core.Node,
	opts *FlowOptions,
) (*network[V], FlowOptions, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := ctx.Err(); err != nil {
		return nil, o, err
	}

	n := core.Node(g.NodeCount())
	if source < 0 || source >= n {
		return nil, o, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return nil, o, ErrSinkNotFound
	}
	if source == sink {
		return nil, o, ErrSourceIsSink
	}

	tol := tolerance.Default[V]()
	if o.Epsilon > 0 {
		tol = tolerance.New[V](o.Epsilon)
	}
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		if c := capacity.At(a); tol.Negative(c) {
			return nil, o, EdgeError{Arc: a, From: g.Source(a), To: g.Target(a), Cap: float64(c)}
		}
	}

	return &network[V]{
		g:        g,
		capacity: capacity,
		flow:     core.NewArcMap[V](g),
		tol:      tol,
		source:   source,
		sink:     sink,
	}, o, nil
}

// forward is the spare capacity of a.
func (nw *network[V]) forward(a core.Arc) V {
	c := nw.capacity.At(a)
	if !nw.tol.Positive(c) {
		return 0
	}

	return nw.tol.Sub(c, nw.flow.At(a))
}

// residual is the capacity of move s.
func (nw *network[V]) residual(s step) V {
	if s.backward {
		return nw.flow.At(s.arc)
	}

	return nw.forward(s.arc)
}

// head is the node a move from u arrives at.
func (nw *network[V]) head(s step) core.Node {
	if s.backward {
		return nw.g.Source(s.arc)
	}

	return nw.g.Target(s.arc)
}

// tail is the node move s departs from.
func (nw *network[V]) tail(s step) core.Node {
	if s.backward {
		return nw.g.Target(s.arc)
	}

	return nw.g.Source(s.arc)
}

// moves lists the residual moves leaving u: out-arcs forward, then
// in-arcs backward. Self-loops are skipped.
func (nw *network[V]) moves(u core.Node, buf []step) []step {
	buf = buf[:0]
	for _, a := range nw.g.OutArcs(u) {
		if nw.g.Target(a) != u {
			buf = append(buf, step{arc: a})
		}
	}
	for _, a := range nw.g.InArcs(u) {
		if nw.g.Source(a) != u {
			buf = append(buf, step{arc: a, backward: true})
		}
	}

	return buf
}

// augment moves amt units along s.
func (nw *network[V]) augment(s step, amt V) {
	if s.backward {
		nw.flow.Set(s.arc, nw.tol.Sub(nw.flow.At(s.arc), amt))
		return
	}
	nw.flow.Set(s.arc, nw.tol.Add(nw.flow.At(s.arc), amt))
}

// result packages the final flow together with both cut sides.
func (nw *network[V]) result() *Result[V] {
	return &Result[V]{
		Value:      nw.value,
		Flow:       nw.flow,
		SourceSide: nw.reach(nw.source, false),
		SinkSide:   nw.reach(nw.sink, true),
	}
}

// reach marks the nodes reachable from root over residual moves, or with
// toward set, the nodes from which root is reachable.
func (nw *network[V]) reach(root core.Node, toward bool) []bool {
	return bfs.Reach(nw.g, root, func(a core.Arc, out bool) bool {
		if out != toward {
			return nw.tol.Positive(nw.forward(a))
		}
		return nw.tol.Positive(nw.flow.At(a))
	})
}
