package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/tolerance"
)

var (
	// ErrSourceNotFound is returned when the source node is not in the graph.
	ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
	errSourceNotFound = errors.New("source node not found")

	// ErrSinkNotFound is returned when the sink node is not in the graph.
	ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
	errSinkNotFound = errors.New("sink node not found")

	// ErrSourceIsSink is returned when source and sink are the same node.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrUnboundedFlow is returned when an augmenting path consists of
	// infinite-capacity arcs only.
	ErrUnboundedFlow = errors.New("flow: unbounded flow")
)

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	Arc      core.Arc
	From, To core.Node
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d (%d→%d): %g", e.Arc, e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Epsilon: comparison tolerance; zero selects tolerance.Default for the
//     capacity type.
//   - Logger: receives a trace event per augmentation and a debug summary.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N
//     augmentations (0 = only when blocked).
type FlowOptions struct {
	Epsilon              float64
	Logger               zerolog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns silent options with the default tolerance.
func DefaultOptions() FlowOptions {
	return FlowOptions{Logger: zerolog.Nop()}
}

// Result holds a maximum flow and both extreme minimum cuts.
//
// SourceSide marks the nodes reachable from the source in the residual
// graph; SinkSide marks the nodes that reach the sink.
type Result[V tolerance.Value] struct {
	Value      V
	Flow       *core.ArcMap[V]
	SourceSide []bool
	SinkSide   []bool
}
