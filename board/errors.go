// SPDX-License-Identifier: MIT
// Package: targetring/board
//
// errors.go: sentinel errors for the board package.

package board

import "errors"

var (
	// ErrTooFewEntities indicates a shuffle with fewer than two alive entities.
	ErrTooFewEntities = errors.New("board: at least two alive entities are required")

	// ErrDuplicateEntity indicates the roster passed to New repeats an entity.
	ErrDuplicateEntity = errors.New("board: duplicate entity")

	// ErrUnknownEntity indicates an entity that is not on the roster.
	ErrUnknownEntity = errors.New("board: unknown entity")

	// ErrAlreadyEliminated indicates an operation on an eliminated entity.
	ErrAlreadyEliminated = errors.New("board: entity already eliminated")

	// ErrTargetCapReached indicates AddTarget on an entity already holding
	// the configured number of targets.
	ErrTargetCapReached = errors.New("board: target count reached")

	// ErrEdgeNotFound indicates RemoveTarget for an edge that does not exist.
	ErrEdgeNotFound = errors.New("board: edge not found")

	// ErrInvalidTargetCount indicates a target count below one.
	ErrInvalidTargetCount = errors.New("board: target count must be positive")

	// ErrObserverType indicates a WithObserver callback whose entity type
	// differs from the Board's.
	ErrObserverType = errors.New("board: observer entity type mismatch")

	// ErrEmptyKey indicates Registry.Open with an empty game key.
	ErrEmptyKey = errors.New("board: empty game key")

	// ErrGameExists indicates Registry.Open for a key that is already open.
	ErrGameExists = errors.New("board: game already open")
)
