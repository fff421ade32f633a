package preflow

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/elevator"
	"github.com/katalvlaran/preflow/tolerance"
)

// driver is the outer discharge loop of one strategy.
type driver interface {
	pushRelabel(limit bool) error
}

// Engine computes a maximum flow and minimum cut with push-relabel.
//
// The graph and capacity map are borrowed and must not change during a
// phase; capacities may change between phases when followed by Reinit.
// Flow, excess and elevator storage is allocated on the first Init.
//
// An Engine is not safe for concurrent use.
type Engine[V tolerance.Value] struct {
	g        core.Digraph
	capacity core.ArcReader[V]
	source   core.Node
	target   core.Node

	opts Options
	tol  tolerance.Tolerance[V]
	log  zerolog.Logger
	done <-chan struct{}

	flow   *core.ArcMap[V]
	excess []V
	elev   handle
	drv    driver

	queue, next []core.Node
	reached     []bool
	sinkSide    []bool
	sourceSide  []bool
	sinkValid   bool
	sourceValid bool

	state State
	stats Stats
}

// New validates its arguments and returns an uninitialized engine.
//
// Errors:
//   - ErrOptionViolation if an option is invalid.
//   - ErrSourceNotFound / ErrTargetNotFound if an endpoint is out of range.
//   - ErrSourceEqualsTarget if source == target.
func New[V tolerance.Value](
	g core.Digraph,
	capacity core.ArcReader[V],
	source, target core.Node,
	opts ...Option,
) (*Engine[V], error) {
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

	return &Engine[V]{
		g:        g,
		capacity: capacity,
		source:   source,
		target:   target,
		opts:     o,
		tol:      tol,
		log:      o.Logger.With().Str("strategy", o.Strategy.String()).Logger(),
		done:     o.Ctx.Done(),
	}, nil
}

// Strategy returns the configured strategy.
func (e *Engine[V]) Strategy() Strategy { return e.opts.Strategy }

// State returns the lifecycle position.
func (e *Engine[V]) State() State { return e.state }

// Stats returns the operation counters since the last Init.
func (e *Engine[V]) Stats() Stats { return e.stats }

// Tolerance returns the comparison policy in use.
func (e *Engine[V]) Tolerance() tolerance.Tolerance[V] { return e.tol }

// FlowValue returns the excess at the target, which after the first phase
// equals the maximum flow value.
func (e *Engine[V]) FlowValue() V {
	if e.excess == nil {
		return 0
	}

	return e.excess[e.target]
}

// FlowMap returns a read-only view of the current per-arc flow, or nil
// before Init.
func (e *Engine[V]) FlowMap() core.ArcReader[V] {
	if e.flow == nil {
		return nil
	}

	return e.flow
}

// Excess returns the current excess of n.
func (e *Engine[V]) Excess(n core.Node) V { return e.excess[n] }

// Elevator returns the engine's elevator: a copy if the engine owns it, the
// injected instance itself if it was borrowed through InitFlowWith. It is
// nil before Init.
func (e *Engine[V]) Elevator() elevator.Elevator { return e.elev.share() }

// Run computes a maximum flow and the sink-side minimum cut.
func (e *Engine[V]) Run() error {
	if err := e.Init(); err != nil {
		return err
	}
	if err := e.StartFirstPhase(); err != nil {
		return err
	}

	return e.StartSecondPhase(false)
}

// RunMinCut computes the flow value and minimum cut only; the flow map
// holds a maximum preflow afterwards.
func (e *Engine[V]) RunMinCut() error {
	if err := e.Init(); err != nil {
		return err
	}

	return e.StartFirstPhase()
}

// StartFirstPhase discharges active nodes below MaxLevel until none is
// left, producing a maximum preflow.
func (e *Engine[V]) StartFirstPhase() error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	e.invalidateCuts()
	if err := e.drv.pushRelabel(true); err != nil {
		return err
	}
	e.state = FirstPhaseDone
	e.log.Debug().
		Float64("flow_value", float64(e.FlowValue())).
		Int("pushes", e.stats.Pushes+e.stats.PushBacks).
		Int("relabels", e.stats.Relabels).
		Msg("first phase done")

	return nil
}

// StartSecondPhase drains the remaining excess back to the source, turning
// the preflow into a flow, then computes the source-side cut when
// sourceSide is set and the sink-side cut otherwise. The other side is
// computed lazily on first query.
//
// Calling it right after Init or Reinit is allowed: the unrestricted loop
// reaches a maximum flow on its own.
func (e *Engine[V]) StartSecondPhase(sourceSide bool) error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}
	e.invalidateCuts()
	if err := e.drv.pushRelabel(false); err != nil {
		return err
	}
	e.state = SecondPhaseDone
	if sourceSide {
		e.computeSourceSide()
	} else {
		e.computeSinkSide()
	}
	e.log.Debug().
		Float64("flow_value", float64(e.FlowValue())).
		Bool("source_side", sourceSide).
		Msg("second phase done")

	return nil
}

// canceled is the cooperative cancellation point checked before each push.
func (e *Engine[V]) canceled() error {
	if e.done == nil {
		return nil
	}
	select {
	case <-e.done:
		return fmt.Errorf("%w: %w", ErrCanceled, e.opts.Ctx.Err())
	default:
		return nil
	}
}

// ensureStructures allocates per-arc and per-node storage and, unless an
// elevator is already bound, an owned elevator for the strategy.
func (e *Engine[V]) ensureStructures() error {
	n := e.g.NodeCount()
	if e.flow == nil {
		e.flow = core.NewArcMap[V](e.g)
		e.excess = make([]V, n)
		e.reached = make([]bool, n)
		e.sinkSide = make([]bool, n)
		e.sourceSide = make([]bool, n)
		e.queue = make([]core.Node, 0, n)
		e.next = make([]core.Node, 0, n)
	}
	if e.elev.elev == nil {
		return e.bind(ownedHandle(e.newElevator()))
	}

	return nil
}

func (e *Engine[V]) newElevator() elevator.Elevator {
	n := e.g.NodeCount()
	switch e.opts.Strategy {
	case FIFO:
		return elevator.NewFIFO(e.g, n)
	case HighestLabel:
		return elevator.NewHighestLabel(e.g, n)
	case Parallel:
		return elevator.NewParallel(e.g, n, e.opts.Workers)
	default:
		return elevator.NewRelabelToFront(e.g, n)
	}
}

// bind installs h and the matching driver after checking that the
// elevator's variant and size fit the engine.
func (e *Engine[V]) bind(h handle) error {
	n := e.g.NodeCount()
	if h.elev.NodeCount() != n || h.elev.MaxLevel() != n {
		return fmt.Errorf("%w: sized for %d nodes (max level %d), graph has %d",
			ErrElevatorMismatch, h.elev.NodeCount(), h.elev.MaxLevel(), n)
	}

	var d driver
	switch e.opts.Strategy {
	case FIFO:
		if x, ok := h.elev.(*elevator.FIFO); ok {
			d = &fifoDriver[V]{e: e, elev: x}
		}
	case HighestLabel:
		if x, ok := h.elev.(*elevator.HighestLabel); ok {
			d = &highestLabelDriver[V]{e: e, elev: x}
		}
	case RelabelToFront:
		if x, ok := h.elev.(*elevator.RelabelToFront); ok {
			d = &relabelToFrontDriver[V]{e: e, elev: x}
		}
	case Parallel:
		if x, ok := h.elev.(*elevator.Parallel); ok {
			d = newParallelDriver(e, x)
		}
	}
	if d == nil {
		return fmt.Errorf("%w: %T cannot drive strategy %s", ErrElevatorMismatch, h.elev, e.opts.Strategy)
	}
	e.elev, e.drv = h, d

	return nil
}

// level is a shorthand for the bound elevator's label of n.
func (e *Engine[V]) level(n core.Node) int { return e.elev.elev.Level(n) }

// activate schedules n unless it is a terminal or already active.
func (e *Engine[V]) activate(n core.Node) {
	if n == e.source || n == e.target {
		return
	}
	if ev := e.elev.elev; !ev.Active(n) {
		ev.Activate(n)
	}
}

// residual returns the spare forward capacity of a.
func (e *Engine[V]) residual(a core.Arc) V {
	return e.tol.Sub(e.capacity.At(a), e.flow.At(a))
}

func (e *Engine[V]) invalidateCuts() {
	e.sinkValid = false
	e.sourceValid = false
}
