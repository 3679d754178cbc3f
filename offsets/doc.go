// Package offsets selects the circulant "target numbers" used to build a
// balanced assignment graph over n entities.
//
// Imagine the n entities seated on a ring at positions 0..n-1. An offset k
// means every position i targets position (i+k) mod n. A Set of t distinct
// offsets, always containing 1, therefore gives every entity exactly t
// targets and exactly t targeters.
//
// Select(n, t) enumerates every candidate {1} ∪ C where C is a (t-1)-subset of
// [2, n-1], discards candidates that fail the validity filters, scores the rest
// with a breadth-first walk on Z/n and returns the lowest-scoring Set:
//
//   - Reachable:   some non-empty subset sum is coprime with n, so the offsets
//     span the whole ring instead of splitting it into sub-cycles.
//   - Independent: (t ≥ 3 only) the non-1 offsets are pairwise coprime.
//   - Score:       ⌊D / D0⌋, where D is the sum of hop distances from 0 to
//     every other position and D0 is the shortest return to 0. Lower is tighter.
//
// The Selection also carries an Optimality diagnostic: how far, in percent,
// the chosen score sits below the average of the near-optimal alternatives.
// It depends only on (n, t).
//
// Errors:
//
//	ErrTooFewEntities    - n < 2.
//	ErrNoValidAssignment - no candidate passes both filters.
//	ErrInvalidOffsets    - Set.Validate rejected a caller-supplied set.
//
// Complexity: Select is O(C(n-2, t-1) · (2^t + n·t)) time and O(n) space.
package offsets
