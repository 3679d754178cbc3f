package combinatorics

import "fmt"

// EachPermutation calls fn for every ordering of items in lexicographic order
// of positions, beginning with items as given. An empty input yields the
// single empty ordering. Iteration stops early when fn returns false.
//
// The generator walks index permutations with the classic next-permutation
// step, so repeated values in items still produce len(items)! orderings.
func EachPermutation[T any](items []T, fn func(perm []T) bool) {
	n := len(items)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]T, n)

	for {
		for i, p := range idx {
			buf[i] = items[p]
		}
		if !fn(buf) {
			return
		}
		if !nextPermutation(idx) {
			return
		}
	}
}

// Permutations returns every ordering of items in EachPermutation order.
// For an empty list the result is one empty ordering.
// Returns ErrTooLarge when len(items) > MaxPermutationSize.
func Permutations[T any](items []T) ([][]T, error) {
	if len(items) > MaxPermutationSize {
		return nil, fmt.Errorf("Permutations: %d items > max %d: %w", len(items), MaxPermutationSize, ErrTooLarge)
	}
	out := make([][]T, 0, Factorial(len(items)))
	EachPermutation(items, func(p []T) bool {
		out = append(out, append(make([]T, 0, len(p)), p...))
		return true
	})

	return out, nil
}

// Factorial returns n! for n ≥ 0 and 1 for negative n.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// nextPermutation rearranges idx into the lexicographically next ordering.
// It reports false once idx is the last (descending) ordering.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}

	return true
}
