// Package realloc redistributes an eliminated entity's targets among the
// entities that were targeting it.
//
// When E drops out, every targeter of E loses one target slot and every target
// of E loses one targeter. Reallocate pairs targeters[i] with the i-th target
// of some ordering of E's targets (wrapping round-robin when there are more
// targeters than targets) and picks the ordering that maximizes the fewest
// distinct targets any targeter ends up with. Distinct counts ignore the
// targeter itself and E.
//
// The search is exhaustive over orderings, O(m!·k) for m targets and k
// targeters, which is why m is capped by MaxTargets. Orderings are visited in
// lexicographic position order starting with the input order. Among orderings
// of the best fitness, the one pairing the fewest targeters with themselves
// wins, then the earliest, so results are deterministic for a fixed input
// order.
//
// Reallocate never returns an edge touching E, and never a self-edge: a
// targeter paired with itself simply does not inherit that slot.
package realloc
