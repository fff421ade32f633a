package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/preflow/preflow"
)

// Baseline and DAG methods accepted by -method besides the push-relabel
// strategies.
const (
	methodAcyclic     = "acyclic"
	methodDinic       = "dinic"
	methodEdmondsKarp = "edmonds-karp"
)

type config struct {
	method     string
	filename   string
	format     string
	capacity   string
	output     string
	float      bool
	sourceSide bool
	minCutOnly bool
	metrics    bool
	noColour   bool
	workers    int
	debug      int
	epsilon    float64
	timeout    time.Duration
}

func methods() []string {
	var names []string
	for _, s := range preflow.Strategies() {
		names = append(names, s.String())
	}

	return append(names, methodAcyclic, methodDinic, methodEdmondsKarp)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lgf-compute", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.method, "method", "hl", "Algorithm: "+strings.Join(methods(), ", ")+".")
	fs.StringVar(&cfg.filename, "filename", "", "Network file to read.")
	fs.StringVar(&cfg.format, "format", "lgf", "Input format: lgf or dimacs.")
	fs.StringVar(&cfg.capacity, "capacity", "capacity", "Name of the capacity arc map.")
	fs.StringVar(&cfg.output, "o", "", "If set, write the network with \"flow\" and \"cut\" maps to this LGF file.")
	fs.BoolVar(&cfg.float, "float", false, "Parse capacities as float64 instead of int64.")
	fs.BoolVar(&cfg.sourceSide, "source-side", false, "Report the source-side cut (nodes reachable from the source) instead of the sink-side one.")
	fs.BoolVar(&cfg.minCutOnly, "mincut", false, "Stop after the first phase; the flow map is then a preflow.")
	fs.BoolVar(&cfg.metrics, "metrics", false, "Print Prometheus metrics to stderr when done.")
	fs.BoolVar(&cfg.noColour, "nc", false, "Removes the colouring from the log output.")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "Goroutines for the parallel method.")
	fs.IntVar(&cfg.debug, "debug", 0, "Log level: 0 info, 1 debug, 2 trace.")
	fs.Float64Var(&cfg.epsilon, "epsilon", -1, "Comparison tolerance; negative keeps the default of the value type.")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "Abort the solve after this long; 0 disables.")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.filename == "" {
		return cfg, fmt.Errorf("-filename is required")
	}
	if cfg.format != "lgf" && cfg.format != "dimacs" {
		return cfg, fmt.Errorf("unknown -format %q", cfg.format)
	}
	known := false
	for _, m := range methods() {
		known = known || m == cfg.method
	}
	if !known {
		return cfg, fmt.Errorf("unknown -method %q (want one of %s)", cfg.method, strings.Join(methods(), ", "))
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg, nil
}
