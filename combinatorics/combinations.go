package combinatorics

// EachCombination calls fn for every k-element subset of set, in lexicographic
// order of element positions: {0,1,..,k-1}, {0,1,..,k}, ... . Iteration stops
// early when fn returns false.
//
// k == 0 yields the empty subset once; k < 0 or k > len(set) yields nothing.
func EachCombination[T any](set []T, k int, fn func(combo []T) bool) {
	n := len(set)
	if k < 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]T, k)

	for {
		for i, p := range idx {
			buf[i] = set[p]
		}
		if !fn(buf) {
			return
		}

		// advance: rightmost index that can still move right
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Combinations returns all k-element subsets of set, unordered within the
// family semantics but emitted in EachCombination order. No duplicates are
// produced as long as set itself holds distinct elements.
func Combinations[T any](set []T, k int) [][]T {
	var out [][]T
	EachCombination(set, k, func(c []T) bool {
		out = append(out, append(make([]T, 0, len(c)), c...))
		return true
	})

	return out
}
