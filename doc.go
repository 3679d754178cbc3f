// Package targetring decides "who hunts whom" in elimination games and keeps
// that relation balanced as players drop out.
//
// 🎯 What does targetring do?
//
//	Given N entities and a target count T it:
//		• Picks circulant offsets {1, k₂, …, k_T} on the ring Z/N that spread
//		  targets as evenly as possible (offsets)
//		• Seats the entities on a randomly shuffled ring and emits N·T edges,
//		  every entity with exactly T targets and T targeters (builder)
//		• Hands an eliminated entity's targets to its targeters so the worst-off
//		  targeter keeps as many distinct targets as possible (realloc)
//		• Holds a live game in memory behind one lock, with events and a
//		  concurrent registry of games (board)
//
// Packages:
//
//	combinatorics/ gcd, power sets, k-combinations, permutations (eager + streaming)
//	offsets/       offset Set, reachability and independence filters, ring BFS score, Select
//	target/        generic Edge, degree counting, balance validation
//	builder/       Build and Shuffle with seeded, explicit or keyed randomness
//	realloc/       Reallocate and Fitness for eliminations
//	board/         Board, Registry, EventKind, Logger
//
// Quick ASCII example, N = 8, offsets {1, 3}:
//
//	    0 → 1, 3
//	    1 → 2, 4
//	    …
//	    7 → 0, 2
//
//	every seat targets the next seat and the seat three ahead.
//
// The pure packages do no I/O and hold no state; board is the only stateful
// one. Runnable demo: examples/game_round_simulation.go.
//
//	go get github.com/katalvlaran/targetring
package targetring
