// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// rng.go: seed derivation and in-place shuffling.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package builder

import (
	"encoding/binary"
	"math/rand"

	"github.com/zeebo/xxh3"
)

// KeyedSeed derives a 63-bit seed from key and round: the key is hashed with
// XXH3, then the little-endian round is hashed using that value as seed.
// Equal inputs always give equal seeds.
func KeyedSeed(key string, round uint64) int64 {
	h := xxh3.HashString(key)

	var rb [8]byte
	binary.LittleEndian.PutUint64(rb[:], round)
	h = xxh3.HashSeed(rb[:], h)

	return int64(h >> 1)
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[E any](a []E, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
