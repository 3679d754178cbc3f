// Package combinatorics provides the small discrete-math toolkit used by the
// target-number selector and the elimination reallocator.
//
// Contents:
//
//   - GCD:              Euclid's algorithm, GCD(a, 0) = |a|.
//   - PowerSet:         every subset of a set (guarded by MaxPowerSetSize).
//   - Combinations:     every k-element subset, lexicographic index order.
//   - Permutations:     every ordering, lexicographic index order, identity first
//     (guarded by MaxPermutationSize).
//   - EachSubset / EachCombination / EachPermutation: streaming variants that
//     never materialize the full family and stop when the callback returns false.
//
// All generators are iterative. Slices passed to callbacks are reused between
// invocations; copy them if you need to retain one.
//
// Determinism: for the same input slice every generator yields the same
// sequence. Order is defined by element positions, not element values.
//
// Complexity:
//
//   - PowerSet:     O(2^n · n)
//   - Combinations: O(C(n,k) · k)
//   - Permutations: O(n! · n)
package combinatorics
