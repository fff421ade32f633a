// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed network: each ordered pair (i,j), i≠j, gets
//     an arc independently with probability p.
//   - Self-loops are never generated; they carry no flow.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Capacity of every arc is cfg.capacityFn(cfg.rng).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed gives a fixed network.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed network over n
// new nodes with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(nw *Network, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		nodes := nw.Graph.AddNodes(n)
		rng := cfg.rng

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// Deterministic edge set for p ∈ {0,1}.
				if rng == nil {
					if p < probMax {
						continue
					}
				} else if rng.Float64() >= p {
					continue
				}

				c := cfg.capacityFn(rng)
				if err := checkCapacity(methodRandomSparse, c); err != nil {
					return err
				}
				if err := nw.addArc(nodes[i], nodes[j], c); err != nil {
					return fmt.Errorf("%s: AddArc(%d→%d): %w", methodRandomSparse, nodes[i], nodes[j], err)
				}
			}
		}

		return nil
	}
}
