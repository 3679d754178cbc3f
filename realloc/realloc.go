package realloc

import (
	"fmt"

	"github.com/katalvlaran/targetring/combinatorics"
	"github.com/katalvlaran/targetring/target"
)

// Reallocate returns the edges that hand eliminated's targets to its targeters.
//
// eliminated is dropped from both lists first. If either list is then empty the
// result is nil: there is nothing to hand over, or nobody to hand it to. A nil
// current is treated as "no existing targets".
//
// Errors: ErrTooManyTargets when more than MaxTargets targets remain.
func Reallocate[E comparable](eliminated E, targets, targeters []E, current Lookup[E]) ([]target.Edge[E], error) {
	chosen, _, err := Choose(eliminated, targets, targeters, current)
	if err != nil || chosen == nil {
		return nil, err
	}
	targeters = without(targeters, eliminated)

	edges := make([]target.Edge[E], 0, len(targeters))
	for i, from := range targeters {
		to := chosen[i%len(chosen)]
		if to == from {
			continue
		}
		edges = append(edges, target.Edge[E]{From: from, To: to})
	}

	return edges, nil
}

// Choose returns the ordering of targets Reallocate would apply, together with
// its fitness. Among orderings of equal fitness the one pairing the fewest
// targeters with themselves wins, then the earliest. It returns a nil ordering
// when there is nothing to reallocate.
func Choose[E comparable](eliminated E, targets, targeters []E, current Lookup[E]) ([]E, int, error) {
	targets = without(targets, eliminated)
	targeters = without(targeters, eliminated)
	if len(targets) == 0 || len(targeters) == 0 {
		return nil, 0, nil
	}
	if len(targets) > MaxTargets {
		return nil, 0, fmt.Errorf("Reallocate: %d targets > max %d: %w", len(targets), MaxTargets, ErrTooManyTargets)
	}

	sc := newScorer(eliminated, targeters, current)
	var (
		best     []E
		bestFit  = -1
		bestSelf int
	)
	combinatorics.EachPermutation(targets, func(perm []E) bool {
		fit := sc.fitness(perm)
		self := sc.selfPairs(perm)
		// equal fitness: fewer dropped self-pairs means more edges handed over
		if fit > bestFit || (fit == bestFit && self < bestSelf) {
			bestFit, bestSelf = fit, self
			best = append(best[:0], perm...)
		}
		return bestFit < sc.ceiling || bestSelf > 0
	})

	return best, bestFit, nil
}

// Fitness returns the fewest distinct targets any targeter would hold after
// targeters[i] inherits assignment[i mod len(assignment)]. Eliminated is
// dropped from both lists first. Returns 0 when either list is empty.
func Fitness[E comparable](eliminated E, assignment, targeters []E, current Lookup[E]) int {
	assignment = without(assignment, eliminated)
	targeters = without(targeters, eliminated)
	if len(assignment) == 0 || len(targeters) == 0 {
		return 0
	}
	return newScorer(eliminated, targeters, current).fitness(assignment)
}

// scorer caches each targeter's existing distinct target set.
type scorer[E comparable] struct {
	targeters []E
	existing  []map[E]struct{}
	ceiling   int
}

func newScorer[E comparable](eliminated E, targeters []E, current Lookup[E]) *scorer[E] {
	s := &scorer[E]{
		targeters: targeters,
		existing:  make([]map[E]struct{}, len(targeters)),
	}
	s.ceiling = -1
	for i, from := range targeters {
		var have []E
		if current != nil {
			have = current.TargetsOf(from)
		}
		set := make(map[E]struct{}, len(have))
		for _, x := range have {
			if x == from || x == eliminated {
				continue
			}
			set[x] = struct{}{}
		}
		s.existing[i] = set
		if s.ceiling < 0 || len(set)+1 < s.ceiling {
			s.ceiling = len(set) + 1
		}
	}

	return s
}

// selfPairs counts targeters that perm would pair with themselves.
func (s *scorer[E]) selfPairs(perm []E) int {
	n := 0
	for i, from := range s.targeters {
		if perm[i%len(perm)] == from {
			n++
		}
	}
	return n
}

// fitness is the minimum, over targeters, of distinct targets after pairing.
func (s *scorer[E]) fitness(perm []E) int {
	low := -1
	for i, from := range s.targeters {
		count := len(s.existing[i])
		if to := perm[i%len(perm)]; to != from {
			if _, dup := s.existing[i][to]; !dup {
				count++
			}
		}
		if low < 0 || count < low {
			low = count
		}
	}

	return low
}

// without returns xs minus every occurrence of x, reusing nothing from xs.
func without[E comparable](xs []E, x E) []E {
	out := make([]E, 0, len(xs))
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}
