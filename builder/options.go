// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// options.go - functional options for BuildNetwork.
//
// Option constructors validate their arguments eagerly and panic on
// programmer error, so a bad option never reaches a constructor.

package builder

import (
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand uses r for every stochastic decision. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn sets the capacity distribution. Panics if fn is nil.
func WithCapacityFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithGamma sets the RBF kernel width used by Gaussian. Panics if gamma <= 0.
func WithGamma(gamma float64) BuilderOption {
	if gamma <= 0 {
		panic("builder: WithGamma(gamma<=0)")
	}
	return func(c *builderConfig) {
		c.gamma = gamma
	}
}

// WithThreshold sets the smallest affinity Gaussian keeps as an arc.
// Panics if t < 0.
func WithThreshold(t float64) BuilderOption {
	if t < 0 {
		panic("builder: WithThreshold(t<0)")
	}
	return func(c *builderConfig) {
		c.threshold = t
	}
}
