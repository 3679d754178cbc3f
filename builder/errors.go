// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with `%w`.
//   • Algorithms do not panic; validation panics are confined to WithX options.

package builder

import (
	"errors"

	"github.com/katalvlaran/targetring/offsets"
)

// ErrTooFewEntities indicates that fewer than two entities were supplied;
// no ring (and therefore no assignment) exists.
var ErrTooFewEntities = errors.New("builder: at least two entities are required")

// ErrDuplicateEntity indicates the same entity appears twice in the input,
// which would break the per-entity degree guarantee.
var ErrDuplicateEntity = errors.New("builder: duplicate entity")

// ErrNeedRandSource indicates that no RNG was configured. Build needs one to
// anonymize ring positions; supply WithRand, WithSeed or WithKeyedSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidOffsets is offsets.ErrInvalidOffsets, re-exported so callers of
// Build can branch without importing offsets.
var ErrInvalidOffsets = offsets.ErrInvalidOffsets

// ErrNoValidAssignment is offsets.ErrNoValidAssignment, surfaced by Shuffle.
var ErrNoValidAssignment = offsets.ErrNoValidAssignment
