// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builders attach context with %w: "RandomGridGraph: n=-1 (must be ≥ 0): builder: parameter too small".
//   • Option constructors panic on meaningless input instead of returning these.

package builder

import "errors"

// ErrTooFewVertices indicates that the grid side n is below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a link probability outside [0,1].
// Only reachable through a zero-value config; WithEdgeProbability panics first.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic build (0 < p < 1) has neither
// a *rand.Rand nor a coin function configured.
var ErrNeedRandSource = errors.New("builder: rng is required")
