package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/dfs"
	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/lgf"
	"github.com/katalvlaran/preflow/metrics"
	"github.com/katalvlaran/preflow/preflow"
	"github.com/katalvlaran/preflow/tolerance"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// outcome is what every method reports back.
type outcome[V tolerance.Value] struct {
	value V
	flow  core.ArcReader[V]
	cut   func(core.Node) bool
	stats preflow.Stats
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger := newLogger(stderr, cfg)

	doc, err := load(cfg)
	if err != nil {
		logger.Error().Err(err).Str("file", cfg.filename).Msg("read network")
		return exitFail
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if cfg.float {
		err = compute[float64](ctx, doc, cfg, logger, rec, stdout)
	} else {
		err = compute[int64](ctx, doc, cfg, logger, rec, stdout)
	}
	if cfg.metrics {
		if werr := metrics.WriteText(stderr, reg); werr != nil {
			logger.Warn().Err(werr).Msg("write metrics")
		}
	}
	if err != nil {
		logger.Error().Err(err).Str("method", cfg.method).Msg("compute")
		return exitFail
	}

	return exitOK
}

func newLogger(w io.Writer, cfg config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.debug == 1:
		level = zerolog.DebugLevel
	case cfg.debug >= 2:
		level = zerolog.TraceLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: cfg.noColour}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func load(cfg config) (*lgf.Document, error) {
	if cfg.format == "lgf" {
		return lgf.ReadFile(cfg.filename)
	}
	f, err := os.Open(cfg.filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return lgf.ReadDIMACS(f)
}

func compute[V tolerance.Value](
	ctx context.Context,
	doc *lgf.Document,
	cfg config,
	logger zerolog.Logger,
	rec *metrics.Recorder,
	stdout io.Writer,
) error {
	caps, err := lgf.ArcMap[V](doc, cfg.capacity)
	if err != nil {
		return err
	}
	s, err := doc.Node("source")
	if err != nil {
		return err
	}
	t, err := doc.Node("target")
	if err != nil {
		return err
	}
	logger.Info().
		Int("nodes", doc.Graph.NodeCount()).
		Int("arcs", doc.Graph.ArcCount()).
		Str("method", cfg.method).
		Msg("network loaded")

	start := time.Now()
	out, err := solve(ctx, doc.Graph, caps, s, t, cfg, logger)
	elapsed := time.Since(start)
	rec.Record(cfg.method, out.stats, elapsed, err)
	if err != nil {
		return err
	}
	logger.Info().
		Dur("elapsed", elapsed).
		Int("pushes", out.stats.Pushes+out.stats.PushBacks).
		Int("relabels", out.stats.Relabels).
		Msg("solved")

	fmt.Fprintf(stdout, "flow value: %s\n", lgf.FormatValue(out.value))
	if cfg.output == "" {
		return nil
	}

	return writeResult(doc, out, cfg.output)
}

func solve[V tolerance.Value](
	ctx context.Context,
	g *core.Graph,
	caps core.ArcReader[V],
	s, t core.Node,
	cfg config,
	logger zerolog.Logger,
) (outcome[V], error) {
	var out outcome[V]
	opts := []preflow.Option{preflow.WithContext(ctx), preflow.WithLogger(logger)}
	if cfg.epsilon >= 0 {
		opts = append(opts, preflow.WithEpsilon(cfg.epsilon))
	}

	switch cfg.method {
	case methodDinic, methodEdmondsKarp:
		fo := flow.DefaultOptions()
		fo.Logger = logger
		if cfg.epsilon > 0 {
			fo.Epsilon = cfg.epsilon
		}
		algo := flow.Dinic[V]
		if cfg.method == methodEdmondsKarp {
			algo = flow.EdmondsKarp[V]
		}
		res, err := algo(ctx, g, caps, s, t, &fo)
		if err != nil {
			return out, err
		}
		out.value, out.flow = res.Value, res.Flow
		if cfg.sourceSide {
			out.cut = func(n core.Node) bool { return res.SourceSide[n] }
		} else {
			out.cut = func(n core.Node) bool { return !res.SinkSide[n] }
		}

		return out, nil

	case methodAcyclic:
		a, err := preflow.NewAcyclic[V](g, caps, s, t, opts...)
		if err != nil {
			return out, err
		}
		index := identity(g.NodeCount())
		if err = a.ValidateOrder(); err != nil {
			if !errors.Is(err, preflow.ErrNotTopological) {
				return out, err
			}
			// Arc IDs survive renumbering, so caps and the flow map still apply.
			order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
			if err != nil {
				return out, err
			}
			r, idx, err := dfs.Renumber(g, order)
			if err != nil {
				return out, err
			}
			logger.Debug().Msg("node IDs renumbered to topological order")
			index = idx
			if a, err = preflow.NewAcyclic[V](r, caps, index[s], index[t], opts...); err != nil {
				return out, err
			}
		}
		if cfg.minCutOnly {
			err = a.RunMinCut()
		} else {
			err = a.Run()
		}
		out.stats = a.Stats()
		if err != nil {
			return out, err
		}
		out.value, out.flow = a.FlowValue(), a.FlowMap()
		out.cut = func(n core.Node) bool { return a.MinCut(index[n]) }

		return out, nil
	}

	strategy, err := preflow.ParseStrategy(cfg.method)
	if err != nil {
		return out, err
	}
	opts = append(opts, preflow.WithStrategy(strategy), preflow.WithWorkers(cfg.workers))
	e, err := preflow.New[V](g, caps, s, t, opts...)
	if err != nil {
		return out, err
	}
	if cfg.minCutOnly {
		err = e.RunMinCut()
	} else {
		err = e.Init()
		if err == nil {
			err = e.StartFirstPhase()
		}
		if err == nil {
			err = e.StartSecondPhase(cfg.sourceSide)
		}
	}
	out.stats = e.Stats()
	if err != nil {
		return out, err
	}
	out.value, out.flow, out.cut = e.FlowValue(), e.FlowMap(), e.MinCut
	if cfg.sourceSide && !cfg.minCutOnly {
		out.cut = e.MinCutSource
	}

	return out, nil
}

func identity(n int) []core.Node {
	index := make([]core.Node, n)
	for i := range index {
		index[i] = core.Node(i)
	}

	return index
}

// writeResult stores the flow as arc map "flow" and the cut as node map
// "cut" (1 on the cut side) next to the input maps.
func writeResult[V tolerance.Value](doc *lgf.Document, out outcome[V], path string) error {
	if err := lgf.SetArcMap(doc, "flow", out.flow); err != nil {
		return err
	}
	cut := make([]string, doc.Graph.NodeCount())
	for n := range cut {
		cut[n] = "0"
		if out.cut(core.Node(n)) {
			cut[n] = "1"
		}
	}
	if err := doc.SetNodeMap("cut", cut); err != nil {
		return err
	}

	return lgf.WriteFile(path, doc)
}
