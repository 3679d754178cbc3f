// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and WithKeyedSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithSeed produces identical streams for equal seeds
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng.Int63() != b.rng.Int63() {
		t.Errorf("WithSeed(42): streams diverged")
	}

	// 3. WithRand installs the given RNG verbatim
	r := rand.New(rand.NewSource(7))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: expected provided rng")
	}

	// 4. Later options win
	if cfg := newBuilderConfig(WithRand(r), WithSeed(1)); cfg.rng == r {
		t.Errorf("WithSeed after WithRand: expected override")
	}

	// 5. WithKeyedSeed is reproducible per (key, round)
	k1 := newBuilderConfig(WithKeyedSeed("game-7", 3))
	k2 := newBuilderConfig(WithKeyedSeed("game-7", 3))
	if k1.rng.Int63() != k2.rng.Int63() {
		t.Errorf("WithKeyedSeed: streams diverged for equal inputs")
	}
}

// TestOptionPanics verifies option constructors fail fast on meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assertPanics(t, func() { WithRand(nil) }, "WithRand(nil)")
	assertPanics(t, func() { WithKeyedSeed("", 0) }, "WithKeyedSeed(\"\")")
}

// TestKeyedSeed checks the derivation is stable, round-sensitive and non-negative.
func TestKeyedSeed(t *testing.T) {
	t.Parallel()

	if KeyedSeed("g", 1) != KeyedSeed("g", 1) {
		t.Fatal("KeyedSeed not deterministic")
	}
	if KeyedSeed("g", 1) == KeyedSeed("g", 2) {
		t.Error("KeyedSeed ignores round")
	}
	if KeyedSeed("g", 1) == KeyedSeed("h", 1) {
		t.Error("KeyedSeed ignores key")
	}
	for round := uint64(0); round < 64; round++ {
		if s := KeyedSeed("game", round); s < 0 {
			t.Errorf("KeyedSeed(game,%d) = %d; want ≥ 0", round, s)
		}
	}
}

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}
