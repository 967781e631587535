// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; option constructors (WithX) do on nil input.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexRange indicates that Connect referenced a vertex that was not
// built yet, or a self-loop.
var ErrVertexRange = errors.New("builder: vertex out of range")

// ErrConstructFailed indicates a nil constructor or a result that the graph
// package rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
