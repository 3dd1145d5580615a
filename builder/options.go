// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand,
//     or outcomes are scripted with WithCoin.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating a builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for the link coin flips.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCoin replaces the Bernoulli draw with flip: a link is added exactly
// when flip returns true. It overrides WithEdgeProbability and any RNG.
// Panics on nil.
func WithCoin(flip func() bool) BuilderOption {
	if flip == nil {
		panic("builder: WithCoin(nil)")
	}
	return func(c *builderConfig) {
		c.coin = flip
	}
}

// WithEdgeProbability sets the probability p that a candidate link is added.
// Panics unless 0 ≤ p ≤ 1. Default is 0.5.
func WithEdgeProbability(p float64) BuilderOption {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithEdgeProbability(%v) not in [%.1f,%.1f]", p, probMin, probMax))
	}
	return func(c *builderConfig) {
		c.p = p
	}
}

// WithRevisitPairs makes every unlinked pair be tried again from its second
// endpoint, so a link survives two independent draws: the effective link
// probability becomes 1-(1-p)². Off by default, where each unordered pair
// gets exactly one draw.
func WithRevisitPairs() BuilderOption {
	return func(c *builderConfig) {
		c.revisit = true
	}
}
