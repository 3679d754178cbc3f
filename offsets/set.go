package offsets

import (
	"fmt"

	"github.com/katalvlaran/targetring/combinatorics"
)

// Set is an ascending list of distinct ring offsets in [1, n-1] that always
// contains 1. The zero value is not a valid Set.
type Set []int

// Len returns the number of offsets, i.e. the per-entity target count.
func (s Set) Len() int { return len(s) }

// Contains reports whether k is one of the offsets.
func (s Set) Contains(k int) bool {
	for _, v := range s {
		if v == k {
			return true
		}
	}
	return false
}

// Validate checks s against a ring of n positions.
// Returns ErrInvalidOffsets (wrapped with the first violation) when s is empty,
// does not start with 1, is not strictly ascending, or holds an offset ≥ n.
func (s Set) Validate(n int) error {
	if len(s) == 0 {
		return fmt.Errorf("%s: empty set: %w", methodValidate, ErrInvalidOffsets)
	}
	if s[0] != 1 {
		return fmt.Errorf("%s: first offset must be 1, got %d: %w", methodValidate, s[0], ErrInvalidOffsets)
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return fmt.Errorf("%s: offsets must be strictly ascending at index %d (%v): %w",
				methodValidate, i, []int(s), ErrInvalidOffsets)
		}
	}
	if last := s[len(s)-1]; last >= n {
		return fmt.Errorf("%s: offset %d out of range [1,%d]: %w", methodValidate, last, n-1, ErrInvalidOffsets)
	}

	return nil
}

// ClampTargets bounds a requested target count to [1, n-1].
func ClampTargets(n, t int) int {
	if t > n-1 {
		t = n - 1
	}
	if t < 1 {
		t = 1
	}
	return t
}

// Reachable reports whether the circulant graph generated by s on Z/n reaches
// every position: some non-empty subset of s must have a sum coprime with n.
//
// Subset sums are tracked modulo n, so the check costs O(n·len(s)) and has no
// limit on len(s).
func Reachable(n int, s Set) bool {
	if n < 1 {
		return false
	}
	// sums[r]: some non-empty subset of the offsets seen so far sums to r mod n
	sums := make([]bool, n)
	next := make([]bool, n)
	for _, v := range s {
		k := ((v % n) + n) % n
		copy(next, sums)
		next[k] = true
		for r, ok := range sums {
			if ok {
				next[(r+k)%n] = true
			}
		}
		sums, next = next, sums
	}
	for r, ok := range sums {
		if ok && combinatorics.Coprime(n, r) {
			return true
		}
	}

	return false
}

// Independent reports whether every pair of non-1 offsets in s is coprime.
// Sets with fewer than two non-1 offsets are trivially independent.
func Independent(s Set) bool {
	rest := make([]int, 0, len(s))
	for _, v := range s {
		if v != 1 {
			rest = append(rest, v)
		}
	}
	ok := true
	combinatorics.EachCombination(rest, 2, func(pair []int) bool {
		if !combinatorics.Coprime(pair[0], pair[1]) {
			ok = false
		}
		return ok
	})

	return ok
}
