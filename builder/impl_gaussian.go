// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_gaussian.go - implementation of Gaussian(n) constructor.
//
// Canonical model:
//   - Sample n points from a standard 2-D normal distribution.
//   - For every pair i<j the affinity is exp(-gamma·‖xi−xj‖²) (RBF kernel).
//   - Emit arc i→j with capacity equal to the affinity when it exceeds the
//     configured threshold.
//
// The result is dense, real-valued and acyclic (arcs only go from lower to
// higher IDs), which makes it the standard float benchmark for every
// strategy including the acyclic solver.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - cfg.capacityFn is not used.
//
// Complexity:
//   - Time: O(n²).
//   - Space: O(n) for the sampled points.

package builder

import (
	"fmt"
	"math"
)

const (
	methodGaussian      = "Gaussian"
	minGaussianVertices = 2
)

// Gaussian returns a Constructor for the RBF-affinity benchmark network.
func Gaussian(n int) Constructor {
	return func(nw *Network, cfg builderConfig) error {
		if n < minGaussianVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodGaussian, n, minGaussianVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodGaussian, ErrNeedRandSource)
		}

		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range xs {
			xs[i] = cfg.rng.NormFloat64()
			ys[i] = cfg.rng.NormFloat64()
		}

		nodes := nw.Graph.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := xs[i]-xs[j], ys[i]-ys[j]
				w := math.Exp(-cfg.gamma * (dx*dx + dy*dy))
				if w <= cfg.threshold {
					continue
				}
				if err := nw.addArc(nodes[i], nodes[j], w); err != nil {
					return fmt.Errorf("%s: AddArc(%d→%d): %w", methodGaussian, nodes[i], nodes[j], err)
				}
			}
		}

		return nil
	}
}
