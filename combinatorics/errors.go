package combinatorics

import "errors"

// ErrTooLarge is returned by the materializing generators when the input
// exceeds the documented size guard (MaxPowerSetSize, MaxPermutationSize).
// Use the Each* variants to stream larger families.
var ErrTooLarge = errors.New("combinatorics: input too large to materialize")

const (
	// MaxPowerSetSize bounds len(set) for PowerSet (2^20 subsets).
	MaxPowerSetSize = 20

	// MaxPermutationSize bounds len(items) for Permutations (10! orderings).
	MaxPermutationSize = 10
)
