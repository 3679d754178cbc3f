package realloc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/targetring/builder"
	"github.com/katalvlaran/targetring/combinatorics"
	"github.com/katalvlaran/targetring/realloc"
	"github.com/katalvlaran/targetring/target"
)

// eliminate removes every edge touching x and returns what Reallocate needs.
func eliminate(edges []target.Edge[string], x string) (targets, targeters []string, rest []target.Edge[string]) {
	for _, e := range edges {
		switch {
		case e.From == x:
			targets = append(targets, e.To)
		case e.To == x:
			targeters = append(targeters, e.From)
		default:
			rest = append(rest, e)
		}
	}
	return targets, targeters, rest
}

func lookupOf(edges []target.Edge[string]) realloc.Lookup[string] {
	return realloc.LookupFunc[string](func(e string) []string {
		return target.TargetsOf(edges, e)
	})
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("e%02d", i)
	}
	return out
}

func TestReallocate_ThreeCycle(t *testing.T) {
	t.Parallel()

	edges := []target.Edge[string]{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}}
	targets, targeters, rest := eliminate(edges, "B")

	got, err := realloc.Reallocate("B", targets, targeters, lookupOf(rest))
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{{From: "A", To: "C"}}, got)
}

func TestReallocate_Empty(t *testing.T) {
	t.Parallel()

	got, err := realloc.Reallocate("X", nil, []string{"A"}, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = realloc.Reallocate("X", []string{"A"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	// only the eliminated entity itself on either side
	got, err = realloc.Reallocate("X", []string{"X", "X"}, []string{"A"}, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = realloc.Reallocate("X", []string{"A"}, []string{"X"}, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReallocate_TwoEntitiesLeaveNothing(t *testing.T) {
	t.Parallel()

	// A and B target each other; removing B hands A its own name.
	got, err := realloc.Reallocate("B", []string{"A"}, []string{"A"}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReallocate_PrefersNewTargets(t *testing.T) {
	t.Parallel()

	// X already holds P, so the input order (X→P, Y→Q) leaves X with one
	// target while the swap gives both two.
	current := realloc.MapLookup[string]{"X": {"P"}, "Y": {"R"}}
	got, err := realloc.Reallocate("E", []string{"P", "Q"}, []string{"X", "Y"}, current)
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{{From: "X", To: "Q"}, {From: "Y", To: "P"}}, got)

	assert.Equal(t, 1, realloc.Fitness("E", []string{"P", "Q"}, []string{"X", "Y"}, current))
	assert.Equal(t, 2, realloc.Fitness("E", []string{"Q", "P"}, []string{"X", "Y"}, current))
}

func TestReallocate_TieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	got, err := realloc.Reallocate("E", []string{"P", "Q", "R"}, []string{"X", "Y", "Z"}, nil)
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{
		{From: "X", To: "P"}, {From: "Y", To: "Q"}, {From: "Z", To: "R"},
	}, got)
}

func TestReallocate_RoundRobin(t *testing.T) {
	t.Parallel()

	// more targeters than targets: positions wrap modulo the target count
	got, err := realloc.Reallocate("E", []string{"P", "Q"}, []string{"W", "X", "Y"}, nil)
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{
		{From: "W", To: "P"}, {From: "X", To: "Q"}, {From: "Y", To: "P"},
	}, got)
}

func TestReallocate_SkipsSelfPair(t *testing.T) {
	t.Parallel()

	// Y is both a target and a targeter of E; Y must never inherit itself
	// when another ordering avoids it.
	got, err := realloc.Reallocate("E", []string{"Y", "Z"}, []string{"Y", "Z"}, nil)
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{{From: "Y", To: "Z"}, {From: "Z", To: "Y"}}, got)
	for _, e := range got {
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestReallocate_TiePrefersFewerSelfPairs(t *testing.T) {
	t.Parallel()

	// complete graph on A, B, C with two targets each; after A leaves, the
	// input order would pair B and C with themselves at the same fitness
	edges := []target.Edge[string]{
		{From: "A", To: "B"}, {From: "A", To: "C"},
		{From: "B", To: "A"}, {From: "B", To: "C"},
		{From: "C", To: "A"}, {From: "C", To: "B"},
	}
	targets, targeters, rest := eliminate(edges, "A")
	require.Equal(t, []string{"B", "C"}, targets)
	require.Equal(t, []string{"B", "C"}, targeters)

	chosen, fit, err := realloc.Choose("A", targets, targeters, lookupOf(rest))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, chosen)
	assert.Equal(t, 1, fit)
	assert.Equal(t, fit, realloc.Fitness("A", []string{"B", "C"}, targeters, lookupOf(rest)))

	got, err := realloc.Reallocate("A", targets, targeters, lookupOf(rest))
	require.NoError(t, err)
	require.Equal(t, []target.Edge[string]{{From: "B", To: "C"}, {From: "C", To: "B"}}, got)
}

func TestReallocate_TooManyTargets(t *testing.T) {
	t.Parallel()

	targets := names(realloc.MaxTargets + 1)
	_, err := realloc.Reallocate("E", targets, []string{"X"}, nil)
	require.ErrorIs(t, err, realloc.ErrTooManyTargets)

	// exactly MaxTargets is fine once the eliminated entity is dropped
	targets = append(names(realloc.MaxTargets), "E")
	_, err = realloc.Reallocate("E", targets, []string{"X"}, nil)
	require.NoError(t, err)
}

// TestReallocate_NeverTouchesEliminated eliminates every entity of freshly
// shuffled games in turn.
func TestReallocate_NeverTouchesEliminated(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 12; n++ {
		ents := names(n)
		for tc := 1; tc <= 3 && tc < n; tc++ {
			a, err := builder.Shuffle(ents, tc, builder.WithSeed(int64(n*10+tc)))
			require.NoError(t, err)

			for _, x := range ents {
				targets, targeters, rest := eliminate(a.Edges, x)
				got, err := realloc.Reallocate(x, targets, targeters, lookupOf(rest))
				require.NoError(t, err)
				for _, e := range got {
					assert.False(t, e.Touches(x), "n=%d t=%d x=%s edge=%s", n, tc, x, e)
					assert.NotEqual(t, e.From, e.To)
				}
				assert.LessOrEqual(t, len(got), len(targeters))
			}
		}
	}
}

// TestChoose_MatchesBruteForce compares the chosen ordering against the
// fitness of every ordering.
func TestChoose_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	for n := 4; n <= 10; n++ {
		ents := names(n)
		for tc := 2; tc <= 4 && tc < n; tc++ {
			if n == 5 && tc == 4 {
				continue // no valid offset set exists
			}
			a, err := builder.Shuffle(ents, tc, builder.WithSeed(int64(n)))
			require.NoError(t, err)

			// a second elimination exercises uneven existing sets
			first := ents[0]
			targets, targeters, rest := eliminate(a.Edges, first)
			extra, err := realloc.Reallocate(first, targets, targeters, lookupOf(rest))
			require.NoError(t, err)
			rest = append(rest, extra...)

			x := ents[1]
			targets, targeters, rest = eliminate(rest, x)
			lk := lookupOf(rest)

			chosen, fit, err := realloc.Choose(x, targets, targeters, lk)
			require.NoError(t, err)
			if len(targets) == 0 || len(targeters) == 0 {
				require.Nil(t, chosen)
				continue
			}
			require.Equal(t, fit, realloc.Fitness(x, chosen, targeters, lk))

			perms, err := combinatorics.Permutations(targets)
			require.NoError(t, err)
			best := 0
			for _, p := range perms {
				if f := realloc.Fitness(x, p, targeters, lk); f > best {
					best = f
				}
			}
			require.Equal(t, best, fit, "n=%d t=%d", n, tc)
		}
	}
}

func TestFitness_Empty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, realloc.Fitness("E", nil, []string{"X"}, nil))
	assert.Zero(t, realloc.Fitness("E", []string{"P"}, nil, nil))
	// duplicates, the targeter itself and the eliminated entity are not counted
	current := realloc.MapLookup[string]{"X": {"P", "P", "X", "E"}}
	assert.Equal(t, 1, realloc.Fitness("E", []string{"P"}, []string{"X"}, current))
}
