package preflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrSourceNotFound is returned when the source is not a node of the graph.
	ErrSourceNotFound = errors.New("preflow: source node not found")

	// ErrTargetNotFound is returned when the target is not a node of the graph.
	ErrTargetNotFound = errors.New("preflow: target node not found")

	// ErrSourceEqualsTarget is returned when source and target coincide.
	ErrSourceEqualsTarget = errors.New("preflow: source equals target")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("preflow: invalid option supplied")

	// ErrInfeasibleFlow is returned by InitFlow when the seed flow leaves a
	// non-source node with negative excess.
	ErrInfeasibleFlow = errors.New("preflow: seed flow violates conservation")

	// ErrElevatorMismatch is returned when an injected elevator does not fit
	// the engine's strategy or graph.
	ErrElevatorMismatch = errors.New("preflow: elevator does not match engine")

	// ErrNotInitialized is returned by operations that need a prior Init.
	ErrNotInitialized = errors.New("preflow: engine not initialized")

	// ErrCanceled is returned when the context is done during a push.
	// The returned error also wraps the context's own error.
	ErrCanceled = errors.New("preflow: canceled")

	// ErrNotTopological is returned by Acyclic.ValidateOrder when an arc
	// does not go from a lower to a higher node ID.
	ErrNotTopological = errors.New("preflow: node IDs are not a topological order")
)

// Strategy selects the active-node scheduling discipline.
type Strategy int

const (
	// RelabelToFront sweeps an ordered list of all nodes.
	RelabelToFront Strategy = iota
	// FIFO discharges active nodes in arrival order.
	FIFO
	// HighestLabel discharges the highest active node first.
	HighestLabel
	// Parallel discharges whole frontiers in synchronous rounds.
	Parallel
)

var strategyNames = [...]string{
	RelabelToFront: "rtf",
	FIFO:           "fifo",
	HighestLabel:   "hl",
	Parallel:       "parallel",
}

// String returns the short name used on the command line.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{RelabelToFront, FIFO, HighestLabel, Parallel}
}

// ParseStrategy maps a short name ("rtf", "fifo", "hl", "parallel") to a
// Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// State is the engine lifecycle position.
type State int

const (
	Uninitialized State = iota
	Initialized
	FirstPhaseDone
	SecondPhaseDone
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case FirstPhaseDone:
		return "first-phase-done"
	case SecondPhaseDone:
		return "second-phase-done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts the elementary operations of the current solve.
// Counters reset on every Init and accumulate across phases and Reinit.
type Stats struct {
	Pushes     int
	PushBacks  int
	Relabels   int
	Discharges int
	// Rounds counts synchronous rounds; only the Parallel strategy uses it.
	Rounds int
}

func (s *Stats) add(o Stats) {
	s.Pushes += o.Pushes
	s.PushBacks += o.PushBacks
	s.Relabels += o.Relabels
	s.Discharges += o.Discharges
	s.Rounds += o.Rounds
}

// Option configures an engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds engine configuration.
type Options struct {
	// Ctx is checked at the top of every push; a done context aborts the
	// solve with ErrCanceled.
	Ctx context.Context

	// Strategy picks the elevator and driver. Default RelabelToFront.
	Strategy Strategy

	// Epsilon overrides the default tolerance of the value type.
	Epsilon float64

	// Workers bounds the goroutines of the Parallel strategy. Default 1.
	Workers int

	// Logger receives phase-level debug events. Default is a no-op logger.
	Logger zerolog.Logger

	epsilonSet bool
	err        error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - RelabelToFront strategy
//   - the value type's default epsilon
//   - one worker
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: RelabelToFront,
		Workers:  1,
		Logger:   zerolog.Nop(),
	}
}

// WithStrategy selects the scheduling strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < 0 || int(s) >= len(strategyNames) {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithContext sets a context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the comparison tolerance.
//
//	eps >= 0: use eps (integers truncate it)
//	eps < 0:  invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: epsilon cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
		o.epsilonSet = true
	}
}

// WithWorkers sets the goroutine count of the Parallel strategy.
// Values below 1 are rejected with ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger attaches a zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
