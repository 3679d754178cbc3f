// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • rng = nil (Build refuses to run without an explicit source).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by Build and Shuffle.
// It is passed by value.
type builderConfig struct {
	// RNG used to permute ring positions; nil means "not configured".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
