// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// config.go - resolved configuration shared by all constructors.

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig carries the resolved BuilderOption values.
type builderConfig struct {
	rng        *rand.Rand // nil unless WithSeed/WithRand was given
	capacityFn CapacityFn // capacity of generated arcs (Gaussian ignores it)
	gamma      float64    // RBF kernel width for Gaussian
	threshold  float64    // affinities at or below this are not emitted
}

const (
	defaultGamma     = 0.6   // kernel width used by the benchmark generator
	defaultThreshold = 1e-10 // drop numerically vanishing affinities
)

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		capacityFn: DefaultCapacityFn,
		gamma:      defaultGamma,
		threshold:  defaultThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
