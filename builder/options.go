// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed, WithKeyedSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes Build and Shuffle by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The RNG is advanced by Build and must not
// be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithKeyedSeed seeds the RNG from key and round, so shuffle number round of
// the game identified by key is reproducible without storing a seed.
// Panics on an empty key.
func WithKeyedSeed(key string, round uint64) BuilderOption {
	if key == "" {
		panic("builder: WithKeyedSeed(\"\")")
	}
	seed := KeyedSeed(key, round)
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
