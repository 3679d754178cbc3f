package combinatorics

import "fmt"

// EachSubset calls fn for every subset of set, starting with the empty subset
// and ending with the full set. Subset i contains set[j] iff bit j of i is set,
// so elements keep their input order. Iteration stops early when fn returns false.
//
// Sets longer than 62 elements cannot be enumerated and are ignored.
func EachSubset[T any](set []T, fn func(subset []T) bool) {
	n := len(set)
	if n > 62 {
		return
	}
	buf := make([]T, 0, n)
	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		buf = buf[:0]
		for j := 0; j < n; j++ {
			if mask&(uint64(1)<<uint(j)) != 0 {
				buf = append(buf, set[j])
			}
		}
		if !fn(buf) {
			return
		}
	}
}

// PowerSet returns every subset of set, including the empty set and set itself,
// in the order produced by EachSubset. The result has 2^len(set) entries.
// Returns ErrTooLarge when len(set) > MaxPowerSetSize.
func PowerSet[T any](set []T) ([][]T, error) {
	if len(set) > MaxPowerSetSize {
		return nil, fmt.Errorf("PowerSet: %d elements > max %d: %w", len(set), MaxPowerSetSize, ErrTooLarge)
	}
	out := make([][]T, 0, 1<<uint(len(set)))
	EachSubset(set, func(s []T) bool {
		out = append(out, append(make([]T, 0, len(s)), s...))
		return true
	})

	return out, nil
}
