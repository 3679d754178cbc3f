// SPDX-License-Identifier: MIT
// Package: targetring/board
//
// options.go: functional options for New and Registry.Open.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil rng, nil logger, t < 1).
//   • Defaults: one target per entity, a time-seeded rng, no key, no-op logger.

package board

import (
	"math/rand"
	"time"
)

// DefaultTargetCount is the number of targets per entity when WithTargetCount
// is not given.
const DefaultTargetCount = 1

// Option customizes a Board.
type Option func(*config)

type config struct {
	targetCount int
	rng         *rand.Rand
	key         string
	logger      Logger
	observer    any // func(Event[E]), checked by New
}

func newConfig(opts ...Option) config {
	cfg := config{
		targetCount: DefaultTargetCount,
		logger:      NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil && cfg.key == "" {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithTargetCount sets the number of targets each entity receives per shuffle.
// Panics if t < 1.
func WithTargetCount(t int) Option {
	if t < 1 {
		panic("board: WithTargetCount(t < 1)")
	}
	return func(c *config) {
		c.targetCount = t
	}
}

// WithRand makes the Board draw shuffles from r. The Board serializes its own
// use of r; r must not be shared elsewhere. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("board: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithKey seeds every shuffle from the game key and the shuffle round, which
// takes precedence over WithRand and WithSeed. Panics on an empty key.
func WithKey(key string) Option {
	if key == "" {
		panic("board: WithKey(\"\")")
	}
	return func(c *config) {
		c.key = key
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("board: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithObserver registers fn to receive every Event after it is applied. fn
// runs on the mutating goroutine, outside the Board's lock. Its entity type
// must match the Board's or New fails with ErrObserverType. Panics on nil.
func WithObserver[E comparable](fn func(Event[E])) Option {
	if fn == nil {
		panic("board: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = fn
	}
}
