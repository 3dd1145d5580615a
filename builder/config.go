// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = nil   (a stochastic build must be seeded explicitly)
//   • coin    = nil   (derived from rng and p in flipper)
//   • p       = 0.5   (unbiased coin)
//   • revisit = false (one draw per unordered pair)

package builder

import "math/rand"

const (
	defaultEdgeProbability = 0.5
	probMin                = 0.0
	probMax                = 1.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng     *rand.Rand
	coin    func() bool
	p       float64
	revisit bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{p: defaultEdgeProbability}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// flipper resolves the effective link decision. Degenerate probabilities need
// no randomness, so p ∈ {0,1} works without an RNG.
func (cfg builderConfig) flipper(method string) (func() bool, error) {
	switch {
	case cfg.coin != nil:
		return cfg.coin, nil
	case cfg.p < probMin || cfg.p > probMax:
		return nil, builderErrorf(method, "p=%.6f not in [%.1f,%.1f]", ErrInvalidProbability, cfg.p, probMin, probMax)
	case cfg.p == probMin:
		return func() bool { return false }, nil
	case cfg.p == probMax:
		return func() bool { return true }, nil
	case cfg.rng == nil:
		return nil, builderErrorf(method, "no random source", ErrNeedRandSource)
	}
	rng, p := cfg.rng, cfg.p
	return func() bool { return rng.Float64() < p }, nil
}
