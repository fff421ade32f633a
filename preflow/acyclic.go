package preflow

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

// Acyclic is the relabel-free fast path for DAGs whose node IDs are a
// topological order (every arc goes from a lower to a higher ID).
//
// The first phase visits nodes once in increasing ID order and pushes their
// excess forward, arcs into the target first. The second phase visits them
// once in decreasing order and returns leftover excess backwards, arcs from
// the source first. There are no levels and no elevator.
//
// The ID order is a caller obligation: it is not checked unless the caller
// runs ValidateOrder. On a graph that violates it the result is silently
// wrong. The single greedy sweep is also not an exact maximum-flow
// algorithm on every DAG: excess committed early to an arc that later
// dead-ends is only returned, never rerouted. Use Engine when an exact
// maximum is required on arbitrary DAGs.
type Acyclic[V tolerance.Value] struct {
	g        core.Digraph
	capacity core.ArcReader[V]
	source   core.Node
	target   core.Node

	opts Options
	tol  tolerance.Tolerance[V]
	log  zerolog.Logger
	done <-chan struct{}

	flow     *core.ArcMap[V]
	excess   []V
	sinkSide []bool
	queue    []core.Node
	cutValid bool

	state State
	stats Stats
}

// NewAcyclic returns an uninitialized acyclic solver. Strategy and Workers
// options are ignored.
func NewAcyclic[V tolerance.Value](
	g core.Digraph,
	capacity core.ArcReader[V],
	source, target core.Node,
	opts ...Option,
) (*Acyclic[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if target < 0 || int(target) >= n {
		return nil, fmt.Errorf("%w: %d", ErrTargetNotFound, target)
	}
	if source == target {
		return nil, fmt.Errorf("%w: %d", ErrSourceEqualsTarget, source)
	}

	tol := tolerance.Default[V]()
	if o.epsilonSet {
		tol = tolerance.New[V](o.Epsilon)
	}

	return &Acyclic[V]{
		g:        g,
		capacity: capacity,
		source:   source,
		target:   target,
		opts:     o,
		tol:      tol,
		log:      o.Logger.With().Str("strategy", "acyclic").Logger(),
		done:     o.Ctx.Done(),
	}, nil
}

// ValidateOrder checks that every arc goes from a lower to a higher node
// ID. It is optional and costs O(E).
func (s *Acyclic[V]) ValidateOrder() error {
	for i := 0; i < s.g.ArcCount(); i++ {
		a := core.Arc(i)
		if u, v := s.g.Source(a), s.g.Target(a); u >= v {
			return fmt.Errorf("%w: arc %d goes %d→%d", ErrNotTopological, a, u, v)
		}
	}

	return nil
}

// State returns the lifecycle position.
func (s *Acyclic[V]) State() State { return s.state }

// Stats returns the push counters since the last Init.
func (s *Acyclic[V]) Stats() Stats { return s.stats }

// FlowValue returns the excess at the target.
func (s *Acyclic[V]) FlowValue() V {
	if s.excess == nil {
		return 0
	}

	return s.excess[s.target]
}

// FlowMap returns a read-only view of the per-arc flow, or nil before Init.
func (s *Acyclic[V]) FlowMap() core.ArcReader[V] {
	if s.flow == nil {
		return nil
	}

	return s.flow
}

func (s *Acyclic[V]) ensureStructures() {
	if s.flow != nil {
		return
	}
	n := s.g.NodeCount()
	s.flow = core.NewArcMap[V](s.g)
	s.excess = make([]V, n)
	s.sinkSide = make([]bool, n)
	s.queue = make([]core.Node, 0, n)
}

// Init zeroes the flow and saturates every source arc.
func (s *Acyclic[V]) Init() error {
	s.ensureStructures()
	s.flow.Fill(0)
	for i := range s.excess {
		s.excess[i] = 0
	}
	s.stats = Stats{}
	s.cutValid = false

	for _, a := range s.g.OutArcs(s.source) {
		v := s.g.Target(a)
		c := s.capacity.At(a)
		if v == s.source || !s.tol.Positive(c) {
			continue
		}
		s.flow.Set(a, c)
		s.excess[v] = s.tol.Add(s.excess[v], c)
		s.excess[s.source] = s.tol.Debit(s.excess[s.source], c)
	}
	s.state = Initialized

	return nil
}

// InitFlow seeds the solver with an existing flow. Excess is recomputed by
// conservation; a non-source node with negative excess yields
// ErrInfeasibleFlow. Source arcs are then saturated and flow entering the
// source is returned to its tails.
func (s *Acyclic[V]) InitFlow(seed core.ArcReader[V]) error {
	s.ensureStructures()
	for i := 0; i < s.g.ArcCount(); i++ {
		s.flow.Set(core.Arc(i), seed.At(core.Arc(i)))
	}
	for i := 0; i < s.g.NodeCount(); i++ {
		n := core.Node(i)
		var in, out V
		for _, a := range s.g.InArcs(n) {
			in = s.tol.Add(in, s.flow.At(a))
		}
		for _, a := range s.g.OutArcs(n) {
			out = s.tol.Add(out, s.flow.At(a))
		}
		if n != s.source && in < out && s.tol.Different(in, out) {
			s.state = Uninitialized
			return fmt.Errorf("%w: node %d has inflow %v, outflow %v", ErrInfeasibleFlow, n, in, out)
		}
		s.excess[n] = s.tol.Sub(in, out)
	}
	s.stats = Stats{}
	s.cutValid = false

	for _, a := range s.g.OutArcs(s.source) {
		v := s.g.Target(a)
		if v == s.source {
			continue
		}
		if rem := s.tol.Sub(s.capacity.At(a), s.flow.At(a)); s.tol.Positive(rem) {
			s.flow.Set(a, s.capacity.At(a))
			s.excess[v] = s.tol.Add(s.excess[v], rem)
			s.excess[s.source] = s.tol.Debit(s.excess[s.source], rem)
		}
	}
	for _, a := range s.g.InArcs(s.source) {
		u := s.g.Source(a)
		if u == s.source {
			continue
		}
		if f := s.flow.At(a); s.tol.Positive(f) {
			s.flow.Set(a, 0)
			s.excess[u] = s.tol.Add(s.excess[u], f)
			s.excess[s.source] = s.tol.Debit(s.excess[s.source], f)
		}
	}
	s.state = Initialized

	return nil
}

// Reinit reconciles the flow with edited capacities on arcs into the target
// (overflow returns to the tail) and out of the source (new spare capacity
// is saturated). Run both phases again afterwards. An arc out of the source
// must not be cut below its current flow; reseed with InitFlow for that.
func (s *Acyclic[V]) Reinit() error {
	if s.state == Uninitialized {
		return ErrNotInitialized
	}
	for _, a := range s.g.InArcs(s.target) {
		u := s.g.Source(a)
		c, f := s.capacity.At(a), s.flow.At(a)
		if u == s.target || !s.tol.Less(c, f) {
			continue
		}
		over := f - c
		s.flow.Set(a, c)
		s.excess[u] = s.tol.Add(s.excess[u], over)
		s.excess[s.target] = s.tol.Sub(s.excess[s.target], over)
	}
	for _, a := range s.g.OutArcs(s.source) {
		v := s.g.Target(a)
		if v == s.source {
			continue
		}
		if rem := s.tol.Sub(s.capacity.At(a), s.flow.At(a)); s.tol.Positive(rem) {
			s.flow.Set(a, s.capacity.At(a))
			s.excess[v] = s.tol.Add(s.excess[v], rem)
			s.excess[s.source] = s.tol.Debit(s.excess[s.source], rem)
		}
	}
	s.cutValid = false
	s.state = Initialized

	return nil
}

// StartFirstPhase pushes excess forward, one visit per node in ID order.
func (s *Acyclic[V]) StartFirstPhase() error {
	if s.state == Uninitialized {
		return ErrNotInitialized
	}
	s.cutValid = false
	for i := 0; i < s.g.NodeCount(); i++ {
		n := core.Node(i)
		if n == s.source || n == s.target || !s.tol.Positive(s.excess[n]) {
			continue
		}
		if err := s.drainForward(n); err != nil {
			return err
		}
	}
	s.state = FirstPhaseDone
	s.log.Debug().Float64("flow_value", float64(s.FlowValue())).Msg("first phase done")

	return nil
}

// drainForward pushes the excess of n along its out-arcs, arcs into the
// target first.
func (s *Acyclic[V]) drainForward(n core.Node) error {
	for pass := 0; pass < 2; pass++ {
		for _, a := range s.g.OutArcs(n) {
			v := s.g.Target(a)
			if (v == s.target) != (pass == 0) || v == n {
				continue
			}
			if err := s.push(n, v, a); err != nil {
				return err
			}
			if !s.tol.Positive(s.excess[n]) {
				return nil
			}
		}
	}

	return nil
}

// StartSecondPhase returns leftover excess backwards, one visit per node in
// decreasing ID order, then computes the sink side of the cut.
func (s *Acyclic[V]) StartSecondPhase() error {
	if s.state == Uninitialized {
		return ErrNotInitialized
	}
	for i := s.g.NodeCount() - 1; i >= 0; i-- {
		n := core.Node(i)
		if n == s.source || n == s.target || !s.tol.Positive(s.excess[n]) {
			continue
		}
		if err := s.drainBackward(n); err != nil {
			return err
		}
	}
	s.computeSinkSide()
	s.state = SecondPhaseDone
	s.log.Debug().Float64("flow_value", float64(s.FlowValue())).Msg("second phase done")

	return nil
}

// drainBackward returns the excess of n along its in-arcs, arcs from the
// source first.
func (s *Acyclic[V]) drainBackward(n core.Node) error {
	for pass := 0; pass < 2; pass++ {
		for _, a := range s.g.InArcs(n) {
			u := s.g.Source(a)
			if (u == s.source) != (pass == 0) || u == n {
				continue
			}
			if err := s.pushBack(n, u, a); err != nil {
				return err
			}
			if !s.tol.Positive(s.excess[n]) {
				return nil
			}
		}
	}

	return nil
}

// Run executes Init and both phases.
func (s *Acyclic[V]) Run() error {
	if err := s.Init(); err != nil {
		return err
	}
	if err := s.StartFirstPhase(); err != nil {
		return err
	}

	return s.StartSecondPhase()
}

// RunMinCut executes Init and the first phase only.
func (s *Acyclic[V]) RunMinCut() error {
	if err := s.Init(); err != nil {
		return err
	}

	return s.StartFirstPhase()
}

// MinCut reports whether n lies outside the sink side of the cut, i.e.
// cannot reach the target in the residual graph. The sink side is computed
// once per phase and cached.
func (s *Acyclic[V]) MinCut(n core.Node) bool {
	if s.state < FirstPhaseDone {
		return false
	}
	if !s.cutValid {
		s.computeSinkSide()
	}

	return !s.sinkSide[n]
}

func (s *Acyclic[V]) computeSinkSide() {
	s.queue = residualReach(s.g, s.capacity, s.flow, s.tol, s.target, s.sinkSide, s.queue, true)
	s.cutValid = true
}

func (s *Acyclic[V]) push(u, v core.Node, a core.Arc) error {
	if err := s.canceled(); err != nil {
		return err
	}
	rem := s.tol.Sub(s.capacity.At(a), s.flow.At(a))
	if !s.tol.Positive(rem) {
		return nil
	}
	ex := s.excess[u]
	if s.tol.Less(rem, ex) {
		s.excess[u] = s.tol.Sub(ex, rem)
		s.excess[v] = s.tol.Add(s.excess[v], rem)
		s.flow.Set(a, s.capacity.At(a))
	} else {
		s.excess[u] = 0
		s.excess[v] = s.tol.Add(s.excess[v], ex)
		s.flow.Set(a, s.tol.Add(s.flow.At(a), ex))
	}
	s.stats.Pushes++

	return nil
}

func (s *Acyclic[V]) pushBack(u, v core.Node, a core.Arc) error {
	if err := s.canceled(); err != nil {
		return err
	}
	rem := s.flow.At(a)
	if !s.tol.Positive(rem) {
		return nil
	}
	ex := s.excess[u]
	if s.tol.Less(rem, ex) {
		s.excess[u] = s.tol.Sub(ex, rem)
		s.excess[v] = s.tol.Add(s.excess[v], rem)
		s.flow.Set(a, 0)
	} else {
		s.excess[u] = 0
		s.excess[v] = s.tol.Add(s.excess[v], ex)
		s.flow.Set(a, s.tol.Sub(rem, ex))
	}
	s.stats.PushBacks++

	return nil
}

func (s *Acyclic[V]) canceled() error {
	if s.done == nil {
		return nil
	}
	select {
	case <-s.done:
		return fmt.Errorf("%w: %w", ErrCanceled, s.opts.Ctx.Err())
	default:
		return nil
	}
}
