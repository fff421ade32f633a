// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// errors.go - sentinel errors. Constructors wrap them with the method name
// and the offending parameter; callers match with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a capacity function produced an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
