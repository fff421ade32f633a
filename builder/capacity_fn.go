// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// capacity_fn.go - arc capacity distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultCapacity is the capacity of every generated arc when no
// CapacityFn is configured.
const DefaultCapacity float64 = 1

// CapacityFn produces one arc capacity. It must be deterministic for a given
// RNG state and must accept a nil RNG.
type CapacityFn func(rng *rand.Rand) float64

// DefaultCapacityFn always returns DefaultCapacity.
func DefaultCapacityFn(_ *rand.Rand) float64 {
	return DefaultCapacity
}

// ConstantCapacityFn always yields value. Panics if value < 0.
func ConstantCapacityFn(value float64) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCapacityFn samples uniformly in [min, max). With a nil RNG it
// yields DefaultCapacity. Panics if min < 0 or max < min.
func UniformCapacityFn(min, max float64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCapacity
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerCapacityFn samples an integer uniformly in [min, max], returned as
// float64 so integer networks round-trip through LGF unchanged.
// With a nil RNG it yields DefaultCapacity. Panics if min < 0 or max < min.
func IntegerCapacityFn(min, max int64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerCapacityFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultCapacity
		}

		return float64(min + rng.Int63n(max-min+1))
	}
}

// checkCapacity rejects negative and NaN capacities from user functions.
func checkCapacity(method string, c float64) error {
	if c < 0 || math.IsNaN(c) {
		return fmt.Errorf("%s: capacity %g: %w", method, c, ErrOptionViolation)
	}

	return nil
}
