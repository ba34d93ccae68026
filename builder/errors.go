// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices).
//   - Constructors never panic; validation panics are confined to WithX option constructors.
//
// Priority when several validations fail:
//   - ErrTooFewVertices     size checks first (n, rows, cols, clique size).
//   - ErrInvalidProbability then probability ranges.
//   - ErrNeedRandSource     then RNG presence for stochastic builders.
//   - ErrConstructFailed    core rejected an insertion, or a nil constructor/graph.
package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the graph could not be assembled.
var ErrConstructFailed = errors.New("builder: construction failed")
