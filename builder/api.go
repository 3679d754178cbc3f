// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   • Build validates everything before emitting (no partial output).
//   • Shuffle = offsets.Select + Build; its errors keep both packages' sentinels.
//   • Determinism: same inputs and seed ⇒ identical edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/targetring/offsets"
	"github.com/katalvlaran/targetring/target"
)

const (
	methodBuild   = "Build"
	methodShuffle = "Shuffle"
)

// Assignment is a complete shuffle result.
type Assignment[E comparable] struct {
	// Offsets is the circulant offset set the edges were built from.
	Offsets offsets.Set

	// Optimality is the selector's diagnostic for (n, t); see offsets.Selection.
	Optimality float64

	// Edges holds n·len(Offsets) target edges.
	Edges []target.Edge[E]
}

// Build permutes entities uniformly at random with the configured RNG and
// emits the circulant edges for offs.
//
// Errors:
//   - ErrTooFewEntities:  fewer than two entities.
//   - ErrDuplicateEntity: an entity appears twice.
//   - ErrInvalidOffsets:  offs fails offsets.Set.Validate(len(entities)).
//   - ErrNeedRandSource:  no RNG option supplied.
func Build[E comparable](entities []E, offs offsets.Set, opts ...BuilderOption) ([]target.Edge[E], error) {
	if err := validateEntities(methodBuild, entities); err != nil {
		return nil, err
	}
	if err := offs.Validate(len(entities)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNeedRandSource)
	}

	// Work on a copy; the caller's order is theirs.
	ring := make([]E, len(entities))
	copy(ring, entities)
	shuffleInPlace(ring, cfg.rng)

	return circulant(ring, offs), nil
}

// Shuffle selects offsets for len(entities) entities and t targets each, then
// builds the graph. t is clamped to [1, n-1] by the selector.
//
// Errors: any error from Build, plus ErrNoValidAssignment when no offset set
// passes the selector's filters.
func Shuffle[E comparable](entities []E, t int, opts ...BuilderOption) (*Assignment[E], error) {
	if err := validateEntities(methodShuffle, entities); err != nil {
		return nil, err
	}
	sel, err := offsets.Select(len(entities), t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodShuffle, err)
	}
	edges, err := Build(entities, sel.Offsets, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodShuffle, err)
	}

	return &Assignment[E]{
		Offsets:    sel.Offsets,
		Optimality: sel.Optimality,
		Edges:      edges,
	}, nil
}
