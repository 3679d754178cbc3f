// Package: targetring/realloc
//
// errors.go: sentinel errors and limits for the realloc package.

package realloc

import "errors"

// MaxTargets bounds the number of orphaned targets Reallocate will search
// over; the permutation search is factorial in this count.
const MaxTargets = 8

// ErrTooManyTargets indicates more than MaxTargets orphaned targets.
var ErrTooManyTargets = errors.New("realloc: too many targets to search")
