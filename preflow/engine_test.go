package preflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/elevator"
	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/preflow"
	"github.com/katalvlaran/preflow/tolerance"
)

// EngineSuite runs every scenario under one strategy.
type EngineSuite struct {
	suite.Suite
	strategy preflow.Strategy
	workers  int
	ctx      context.Context
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
}

// options returns the suite's strategy options followed by extra.
func (s *EngineSuite) options(extra ...preflow.Option) []preflow.Option {
	opts := []preflow.Option{preflow.WithStrategy(s.strategy), preflow.WithWorkers(s.workers)}
	return append(opts, extra...)
}

// TestWiki checks value and cut on the six-node instance after each phase.
func (s *EngineSuite) TestWiki() {
	t := s.T()
	g, caps := wiki[float64]()
	base, err := flow.EdmondsKarp(s.ctx, g, caps, 0, 5, nil)
	require.NoError(t, err)

	e, err := preflow.New[float64](g, caps, 0, 5, s.options()...)
	require.NoError(t, err)
	require.Equal(t, preflow.Uninitialized, e.State())
	require.NoError(t, e.Init())
	require.Equal(t, preflow.Initialized, e.State())

	require.NoError(t, e.StartFirstPhase())
	require.Equal(t, preflow.FirstPhaseDone, e.State())
	require.Equal(t, 14.0, e.FlowValue())
	requireSinkCut(t, e, base)

	require.NoError(t, e.StartSecondPhase(false))
	require.Equal(t, preflow.SecondPhaseDone, e.State())
	require.Equal(t, 14.0, e.FlowValue())
	requireSinkCut(t, e, base)
	requireSourceCut(t, e, base)
	requireFlow(t, g, caps, e, 0, 5)
	for n := 0; n < 6; n++ {
		require.Equal(t, n <= 2, e.MinCut(core.Node(n)), "node %d", n)
	}
}

// TestRunMinCut stops after the first phase.
func (s *EngineSuite) TestRunMinCut() {
	g, caps := wiki[int]()
	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(s.T(), err)

	require.NoError(s.T(), e.RunMinCut())
	require.Equal(s.T(), preflow.FirstPhaseDone, e.State())
	require.Equal(s.T(), 14, e.FlowValue())
	require.True(s.T(), e.MinCut(2))
	require.False(s.T(), e.MinCut(3))
	// Queries are cached and repeatable.
	require.True(s.T(), e.MinCut(2))
	require.False(s.T(), e.MinCut(3))
}

// TestInfinity bounds an unbounded arc by the finite ones before it.
func (s *EngineSuite) TestInfinity() {
	inf := tolerance.Infinity[float64]()
	g, caps := network(4,
		arcSpec[float64]{0, 1, 1},
		arcSpec[float64]{0, 2, 1},
		arcSpec[float64]{1, 2, 1},
		arcSpec[float64]{2, 3, inf},
	)
	e, err := preflow.New[float64](g, caps, 0, 3, s.options()...)
	require.NoError(s.T(), err)

	require.NoError(s.T(), e.Init())
	require.NoError(s.T(), e.StartFirstPhase())
	require.Equal(s.T(), 2.0, e.FlowValue())
	require.NoError(s.T(), e.StartSecondPhase(false))
	require.True(s.T(), e.MinCut(0))
	require.True(s.T(), e.MinCut(1))
	require.False(s.T(), e.MinCut(2))
	require.False(s.T(), e.MinCut(3))
}

// TestSourceExcess tracks the net outflow of the source, pinned to the
// negative infinity once an unbounded arc leaves it.
func (s *EngineSuite) TestSourceExcess() {
	g, caps := network(3,
		arcSpec[int64]{0, 1, 5},
		arcSpec[int64]{1, 2, 3},
	)
	e, err := preflow.New[int64](g, caps, 0, 2, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Run())
	require.Equal(s.T(), int64(3), e.FlowValue())
	require.Equal(s.T(), int64(-3), e.Excess(0))

	inf := tolerance.Infinity[int64]()
	g, caps = network(4,
		arcSpec[int64]{0, 1, inf},
		arcSpec[int64]{0, 2, inf},
		arcSpec[int64]{1, 3, 3},
		arcSpec[int64]{2, 3, 4},
	)
	e, err = preflow.New[int64](g, caps, 0, 3, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Init())
	require.Equal(s.T(), -inf, e.Excess(0))
	require.NoError(s.T(), e.Run())
	require.Equal(s.T(), int64(7), e.FlowValue())
	require.Equal(s.T(), -inf, e.Excess(0))
}

// TestZeroCapacityChain has no flow and a cut right before the target.
func (s *EngineSuite) TestZeroCapacityChain() {
	g, caps := network(3,
		arcSpec[int]{0, 1, 0},
		arcSpec[int]{1, 2, 0},
	)
	base, err := flow.EdmondsKarp(s.ctx, g, caps, 0, 2, nil)
	require.NoError(s.T(), err)

	e, err := preflow.New[int](g, caps, 0, 2, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Init())
	require.NoError(s.T(), e.StartFirstPhase())
	require.Equal(s.T(), base.Value, e.FlowValue())
	require.NoError(s.T(), e.StartSecondPhase(false))
	requireSinkCut(s.T(), e, base)
	require.Equal(s.T(), 0, e.FlowValue())
}

// TestTolerance treats a capacity below epsilon as zero.
func (s *EngineSuite) TestTolerance() {
	g, caps := network(4,
		arcSpec[float64]{0, 1, 1e-11},
		arcSpec[float64]{1, 3, 1},
		arcSpec[float64]{0, 2, 1},
		arcSpec[float64]{2, 3, 1},
	)
	base, err := flow.EdmondsKarp(s.ctx, g, caps, 0, 3, nil)
	require.NoError(s.T(), err)

	e, err := preflow.New[float64](g, caps, 0, 3, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Init())
	require.Zero(s.T(), e.FlowMap().At(0), "sub-epsilon arc must not be saturated")
	require.NoError(s.T(), e.StartFirstPhase())
	require.Equal(s.T(), base.Value, e.FlowValue())
	require.NoError(s.T(), e.StartSecondPhase(true))
	requireSourceCut(s.T(), e, base)
	requireSinkCut(s.T(), e, base)
}

// TestCustomEpsilon hides every arc below a large tolerance.
func (s *EngineSuite) TestCustomEpsilon() {
	g, caps := wiki[float64]()
	e, err := preflow.New[float64](g, caps, 0, 5, s.options(preflow.WithEpsilon(20))...)
	require.NoError(s.T(), err)

	require.NoError(s.T(), e.Run())
	require.Equal(s.T(), 0.0, e.FlowValue())
	require.Equal(s.T(), 20.0, e.Tolerance().Epsilon())
}

// TestRandomAgainstBaseline cross-validates value, flow and both cuts.
func (s *EngineSuite) TestRandomAgainstBaseline() {
	t := s.T()
	for seed := int64(1); seed <= 25; seed++ {
		n := 8 + int(seed)%17
		g, caps := randomNetwork(n, 0.25, 30, seed)
		src, dst := core.Node(0), core.Node(n-1)
		base, err := flow.Dinic(s.ctx, g, caps, src, dst, nil)
		require.NoError(t, err)

		e, err := preflow.New[int64](g, caps, src, dst, s.options()...)
		require.NoError(t, err)
		require.NoError(t, e.Init())
		require.NoError(t, e.StartFirstPhase())
		require.Equal(t, base.Value, e.FlowValue(), "seed %d: first phase", seed)
		requireSinkCut(t, e, base)

		require.NoError(t, e.StartSecondPhase(true))
		require.Equal(t, base.Value, e.FlowValue(), "seed %d: second phase", seed)
		requireFlow(t, g, caps, e, src, dst)
		requireSourceCut(t, e, base)
		requireSinkCut(t, e, base)

		st := e.Stats()
		if base.Value > 0 {
			require.Positive(t, st.Pushes, "seed %d", seed)
			require.Positive(t, st.Discharges, "seed %d", seed)
		}
		if s.strategy == preflow.Parallel {
			require.Positive(t, st.Rounds, "seed %d", seed)
		} else {
			require.Zero(t, st.Rounds, "seed %d", seed)
		}
	}
}

// TestLayered runs a layered network whose minimum cut is one layer.
func (s *EngineSuite) TestLayered() {
	g, src, dst := core.Layered(6, 5)
	caps := core.NewArcMap[int](g)
	caps.Fill(3)

	base, err := flow.Dinic(s.ctx, g, caps, src, dst, nil)
	require.NoError(s.T(), err)
	e, err := preflow.New[int](g, caps, src, dst, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Run())
	require.Equal(s.T(), base.Value, e.FlowValue())
	requireFlow(s.T(), g, caps, e, src, dst)
	requireSinkCut(s.T(), e, base)
}

// TestReverse solves the transposed instance from target to source.
func (s *EngineSuite) TestReverse() {
	g, caps := wiki[int]()
	r := core.Reverse(g)

	e, err := preflow.New[int](r, caps, 5, 0, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.Run())
	require.Equal(s.T(), 14, e.FlowValue())
	requireFlow(s.T(), r, caps, e, 5, 0)
	// The transposed cut is the same arc set seen from the other side.
	for n := 0; n < 6; n++ {
		require.Equal(s.T(), n > 2, e.MinCut(core.Node(n)), "node %d", n)
	}
}

// TestWarmStart changes one capacity and restarts from the old flow with
// the old solve's elevator.
func (s *EngineSuite) TestWarmStart() {
	t := s.T()
	g, caps := wiki[int]()
	first, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(t, err)
	require.NoError(t, first.Run())
	require.Equal(t, 14, first.FlowValue())

	elev := first.Elevator()
	require.NotNil(t, elev)
	require.NotSame(t, elev, first.Elevator(), "an owned elevator is handed out as a copy")

	caps.Set(4, 6) // n2→n5: 7 → 6
	seed := copyFlow(g, first.FlowMap())
	if seed.At(4) > caps.At(4) {
		seed.Set(4, caps.At(4))
	}

	second, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(t, err)
	require.NoError(t, second.InitFlowWith(seed, elev))
	require.Same(t, elev, second.Elevator(), "a borrowed elevator is handed back as is")
	require.NoError(t, second.StartFirstPhase())
	require.NoError(t, second.StartSecondPhase(false))
	require.Equal(t, 13, second.FlowValue())
	requireFlow(t, g, caps, second, 0, 5)
	require.Same(t, elev, second.Elevator())
}

// TestInitFlow accepts a feasible seed without an elevator.
func (s *EngineSuite) TestInitFlow() {
	g, caps := wiki[int]()
	seed := core.NewArcMap[int](g)
	// One unit along n0→n3→n4→n5.
	seed.Set(2, 1)
	seed.Set(3, 1)
	seed.Set(5, 1)

	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(s.T(), err)
	require.NoError(s.T(), e.InitFlow(seed))
	require.NoError(s.T(), e.StartFirstPhase())
	require.NoError(s.T(), e.StartSecondPhase(false))
	require.Equal(s.T(), 14, e.FlowValue())
	requireFlow(s.T(), g, caps, e, 0, 5)
}

// TestInfeasibleSeed rejects flow leaving a node that never received it.
func (s *EngineSuite) TestInfeasibleSeed() {
	g, caps := wiki[int]()
	seed := core.NewArcMap[int](g)
	seed.Set(1, 5) // n1→n2 without inflow into n1

	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(s.T(), err)
	err = e.InitFlow(seed)
	require.ErrorIs(s.T(), err, preflow.ErrInfeasibleFlow)
	require.Equal(s.T(), preflow.Uninitialized, e.State())
	require.ErrorIs(s.T(), e.StartFirstPhase(), preflow.ErrNotInitialized)
}

// TestParametric grows source arcs and shrinks target arcs step by step and
// compares each warm re-solve with a cold one.
func (s *EngineSuite) TestParametric() {
	t := s.T()
	g, caps := wiki[int]()
	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(t, err)
	require.NoError(t, e.Run())

	for step := 1; step <= 4; step++ {
		caps.Set(0, caps.At(0)+1) // n0→n1
		caps.Set(2, caps.At(2)+1) // n0→n3
		caps.Set(4, caps.At(4)-1) // n2→n5
		caps.Set(5, caps.At(5)-1) // n4→n5

		require.NoError(t, e.Reinit())
		require.Equal(t, preflow.Initialized, e.State())
		require.NoError(t, e.StartSecondPhase(false))

		cold, err := preflow.New[int](g, caps, 0, 5, s.options()...)
		require.NoError(t, err)
		require.NoError(t, cold.Run())
		base, err := flow.EdmondsKarp(s.ctx, g, caps, 0, 5, nil)
		require.NoError(t, err)

		require.Equal(t, cold.FlowValue(), e.FlowValue(), "step %d", step)
		require.Equal(t, base.Value, e.FlowValue(), "step %d", step)
		requireFlow(t, g, caps, e, 0, 5)
		requireSinkCut(t, e, base)
	}
}

// TestCanceled aborts at the first push and keeps a valid preflow.
func (s *EngineSuite) TestCanceled() {
	t := s.T()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	g, caps := wiki[int]()
	e, err := preflow.New[int](g, caps, 0, 5, s.options(preflow.WithContext(ctx))...)
	require.NoError(t, err)
	require.NoError(t, e.Init())

	err = e.StartFirstPhase()
	require.ErrorIs(t, err, preflow.ErrCanceled)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, preflow.Initialized, e.State())
	require.Zero(t, e.FlowValue())
	fm := e.FlowMap()
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		require.GreaterOrEqual(t, fm.At(a), 0)
		require.LessOrEqual(t, fm.At(a), caps.At(a))
	}
	require.Equal(t, 15, e.Excess(1))
	require.Equal(t, 4, e.Excess(3))

	// The context is bound at New, so the engine stays canceled; a fresh
	// engine seeded with its preflow finishes the solve.
	require.ErrorIs(t, e.StartSecondPhase(false), preflow.ErrCanceled)
	resumed, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(t, err)
	require.NoError(t, resumed.InitFlow(copyFlow[int](g, e.FlowMap())))
	require.NoError(t, resumed.StartSecondPhase(false))
	require.Equal(t, 14, resumed.FlowValue())
	requireFlow(t, g, caps, resumed, 0, 5)
}

// TestElevatorMismatch rejects elevators of the wrong variant or size.
func (s *EngineSuite) TestElevatorMismatch() {
	g, caps := wiki[int]()
	seed := core.NewArcMap[int](g)
	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(s.T(), err)

	var wrong elevator.Elevator = elevator.NewFIFO(g, g.NodeCount())
	if s.strategy == preflow.FIFO {
		wrong = elevator.NewHighestLabel(g, g.NodeCount())
	}
	require.ErrorIs(s.T(), e.InitFlowWith(seed, wrong), preflow.ErrElevatorMismatch)
	require.ErrorIs(s.T(), e.InitFlowWith(seed, nil), preflow.ErrElevatorMismatch)

	require.NoError(s.T(), e.Init())
	right := e.Elevator()
	small, _, _ := core.Layered(1, 1)
	other, err := preflow.New[int](small, core.NewArcMap[int](small), 0, 2, s.options()...)
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), other.InitFlowWith(core.NewArcMap[int](small), right), preflow.ErrElevatorMismatch)
}

// TestNotInitialized guards every phase entry point.
func (s *EngineSuite) TestNotInitialized() {
	g, caps := wiki[int]()
	e, err := preflow.New[int](g, caps, 0, 5, s.options()...)
	require.NoError(s.T(), err)

	require.ErrorIs(s.T(), e.StartFirstPhase(), preflow.ErrNotInitialized)
	require.ErrorIs(s.T(), e.StartSecondPhase(false), preflow.ErrNotInitialized)
	require.ErrorIs(s.T(), e.Reinit(), preflow.ErrNotInitialized)
	require.False(s.T(), e.MinCut(0))
	require.Zero(s.T(), e.FlowValue())
	require.Nil(s.T(), e.FlowMap())
	require.Nil(s.T(), e.Elevator())
}

func TestEngine(t *testing.T) {
	for _, st := range preflow.Strategies() {
		workers := 1
		if st == preflow.Parallel {
			workers = 4
		}
		t.Run(st.String(), func(t *testing.T) {
			suite.Run(t, &EngineSuite{strategy: st, workers: workers})
		})
	}
	t.Run("parallel-single-worker", func(t *testing.T) {
		suite.Run(t, &EngineSuite{strategy: preflow.Parallel, workers: 1})
	})
}

func TestNewValidation(t *testing.T) {
	g, caps := wiki[int]()

	_, err := preflow.New[int](g, caps, -1, 5)
	require.ErrorIs(t, err, preflow.ErrSourceNotFound)
	_, err = preflow.New[int](g, caps, 0, 6)
	require.ErrorIs(t, err, preflow.ErrTargetNotFound)
	_, err = preflow.New[int](g, caps, 3, 3)
	require.ErrorIs(t, err, preflow.ErrSourceEqualsTarget)
	_, err = preflow.New[int](g, caps, 0, 5, preflow.WithWorkers(0))
	require.ErrorIs(t, err, preflow.ErrOptionViolation)
	_, err = preflow.New[int](g, caps, 0, 5, preflow.WithEpsilon(-1))
	require.ErrorIs(t, err, preflow.ErrOptionViolation)
	_, err = preflow.New[int](g, caps, 0, 5, preflow.WithStrategy(preflow.Strategy(42)))
	require.ErrorIs(t, err, preflow.ErrOptionViolation)

	e, err := preflow.New[int](g, caps, 0, 5)
	require.NoError(t, err)
	require.Equal(t, preflow.RelabelToFront, e.Strategy())
}

func TestParseStrategy(t *testing.T) {
	for _, st := range preflow.Strategies() {
		got, err := preflow.ParseStrategy(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	got, err := preflow.ParseStrategy("HL")
	require.NoError(t, err)
	require.Equal(t, preflow.HighestLabel, got)

	_, err = preflow.ParseStrategy("dinic")
	require.ErrorIs(t, err, preflow.ErrOptionViolation)
	require.Equal(t, "Strategy(9)", preflow.Strategy(9).String())
	require.Equal(t, "second-phase-done", preflow.SecondPhaseDone.String())
}
