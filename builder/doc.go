// Package builder generates flow networks for tests, benchmarks and the
// lgf-generate command.
//
// A network is assembled by BuildNetwork from one or more Constructor values
// configured with functional options:
//
//   - Constructors:
//     – RandomSparse(n, p): directed Erdős–Rényi network, no self-loops.
//     – Layered(layers, width): layered DAG in topological ID order.
//     – Gaussian(n): RBF affinities between random 2-D points, arcs i→j
//     for i<j, real capacities.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithCapacityFn: capacity distribution (ConstantCapacityFn,
//     UniformCapacityFn, IntegerCapacityFn).
//     – WithGamma / WithThreshold: kernel parameters for Gaussian.
//
// The resulting Network always has Source = 0 and Target = N-1. Errors are
// sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrOptionViolation) wrapped with the constructor name.
package builder
