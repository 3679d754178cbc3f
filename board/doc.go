// Package board keeps the live target assignment of one game in memory and
// applies the engine's operations to it under a single lock.
//
// A Board owns the entity roster, the alive flags, the current edge list and
// the configured target count. It is the reference caller of the pure
// packages:
//
//   - Shuffle:        builder.Shuffle over the alive entities, replacing every edge.
//   - Eliminate:      removes every edge touching the entity and hands its
//     targets to its targeters through realloc.Reallocate.
//   - AddTarget:      manual override, capped by the target count; self-targets allowed.
//   - RemoveTarget:   drops one matching edge.
//   - SetTargetCount: changes T for the next shuffle.
//
// Reads (Edges, TargetsOf, TargetersOf, Alive, ...) return copies. TargetsOf
// and TargetersOf are the displayed view: distinct, without the entity itself.
//
// Every mutation is reported to an optional observer as an Event once the
// lock is released, so an observer may call back into the Board.
//
// Randomness: with WithKey the shuffle for round r is seeded from (key, r), so
// a game's shuffles can be replayed. Otherwise the Board draws from its own
// *rand.Rand (WithRand, WithSeed, or a time-seeded default).
//
// Registry maps game keys to Boards and is safe for concurrent use.
package board
