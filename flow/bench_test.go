package flow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
)

// BenchmarkFlowAlgorithms measures Ford–Fulkerson, Edmonds–Karp and Dinic
// on random graphs of increasing size and decreasing density.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name    string
		nodes   int
		arcProb float64
		maxCap  int64
		seed    int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			// Build the test graph once per case to isolate algorithmic cost.
			g, caps := randomNetwork(tc.nodes, tc.arcProb, tc.maxCap, tc.seed)
			src, dst := core.Node(0), core.Node(tc.nodes-1)
			ctx := context.Background()

			b.Run("FordFulkerson", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = flow.FordFulkerson(ctx, g, caps, src, dst, nil)
				}
			})
			b.Run("EdmondsKarp", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = flow.EdmondsKarp(ctx, g, caps, src, dst, nil)
				}
			})
			b.Run("Dinic", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = flow.Dinic(ctx, g, caps, src, dst, nil)
				}
			})
		})
	}
}
