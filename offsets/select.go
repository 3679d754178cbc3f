package offsets

import (
	"fmt"
	"math"

	"github.com/katalvlaran/targetring/combinatorics"
)

// outlierFactor excludes candidates whose score is at least this multiple of
// the best score from the Optimality average.
const outlierFactor = 100

// percentage scales Optimality to percent.
const percentage = 100

// Selection is the outcome of Select.
type Selection struct {
	// Offsets is the chosen Set, ascending, starting with 1.
	Offsets Set

	// Score is the BFS score of Offsets (0 for the t = 1 fast path).
	Score float64

	// Optimality is (avg − min)·100 / avg over the near-optimal valid
	// candidates other than the chosen one; 0 when there is nothing to compare.
	Optimality float64

	// Candidates counts the candidates that passed both validity filters.
	Candidates int
}

// Select chooses the offset Set for n entities with t targets each.
//
// t is clamped to [1, n-1]. For t = 1 the single ring {1} is returned without
// scoring. Otherwise every candidate {1} ∪ C, C a (t-1)-subset of [2, n-1], is
// filtered (Reachable; Independent when t ≥ 3), scored with Score, and the
// first minimum in lexicographic candidate order wins.
//
// Errors: ErrTooFewEntities when n < 2; ErrNoValidAssignment when no candidate
// survives the filters.
func Select(n, t int) (Selection, error) {
	if n < 2 {
		return Selection{}, fmt.Errorf("%s: n=%d: %w", methodSelect, n, ErrTooFewEntities)
	}
	t = ClampTargets(n, t)
	if t == 1 {
		return Selection{Offsets: Set{1}, Candidates: 1}, nil
	}

	pool := make([]int, 0, n-2)
	for k := 2; k < n; k++ {
		pool = append(pool, k)
	}

	var (
		w      = newRingWalker(n)
		cand   = make(Set, t)
		best   Set
		lowest = math.Inf(1)
		scores []float64
	)
	cand[0] = 1

	// candidates are {1} ∪ rest, rest streamed in lexicographic order
	combinatorics.EachCombination(pool, t-1, func(rest []int) bool {
		copy(cand[1:], rest)
		if t >= 3 && !Independent(cand) {
			return true
		}
		s := w.score(cand)
		if math.IsInf(s, 1) {
			return true
		}
		if s < lowest {
			lowest = s
			best = append(Set(nil), cand...)
		}
		scores = append(scores, s)
		return true
	})

	if best == nil {
		return Selection{}, fmt.Errorf("%s: n=%d, t=%d: %w", methodSelect, n, t, ErrNoValidAssignment)
	}

	return Selection{
		Offsets:    best,
		Score:      lowest,
		Optimality: optimality(scores, lowest),
		Candidates: len(scores),
	}, nil
}

// optimality compares lowest with the average of the other near-optimal
// scores. One occurrence of lowest is taken out of the average; scores at or
// above outlierFactor·lowest are ignored.
func optimality(scores []float64, lowest float64) float64 {
	var (
		total float64
		count int
	)
	for _, s := range scores {
		if s < lowest*outlierFactor {
			total += s
			count++
		}
	}
	if count < 2 {
		return 0
	}
	avg := (total - lowest) / float64(count-1)
	if avg == 0 {
		return 0
	}

	return (avg - lowest) * percentage / avg
}
