// Package builder materializes a balanced target-assignment graph from an
// offset set and a list of entities, using the same functional-options style
// for randomness that the rest of the module uses.
//
// The package offers:
//
//   - Build:   shuffle the entities with the configured RNG, seat them on a
//     ring and emit (ring[i], ring[(i+k) mod n]) for every position i and
//     offset k. Output has n·|offsets| edges; every entity has out-degree and
//     in-degree |offsets|.
//   - Shuffle: offsets.Select followed by Build, returning the full Assignment
//     (offsets, optimality diagnostic, edges).
//   - Options:
//     – WithRand:       explicit *rand.Rand.
//     – WithSeed:       reproducible stream from a fixed seed.
//     – WithKeyedSeed:  reproducible stream derived from a caller key (e.g. a
//     game ID) and a shuffle round, hashed with XXH3.
//
// Guarantees:
//
//   - Determinism: same entities, offsets and seed ⇒ identical edge list.
//   - The caller's entity slice is never reordered.
//   - Fast-fail on invalid options via panics in option constructors; Build
//     and Shuffle themselves never panic and return sentinel errors.
//   - No partial output: validation happens before any edge is emitted.
//
// Complexity: Build is O(n·t) time and space; Shuffle adds the cost of
// offsets.Select.
package builder
