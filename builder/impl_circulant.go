// SPDX-License-Identifier: MIT
// Package: targetring/builder
//
// impl_circulant.go: circulant edge emission.
//
// Contract:
//   • ring is the already-permuted entity list, n = len(ring) ≥ 2.
//   • offs passed offsets.Set.Validate(n).
//   • Emits edges in stable order: i ascending, then k ascending within i.
//
// Complexity:
//   • Time:  O(n·t).
//   • Space: O(n·t) for the returned slice.

package builder

import (
	"github.com/katalvlaran/targetring/offsets"
	"github.com/katalvlaran/targetring/target"
)

// circulant seats ring on Z/n and connects i → (i+k) mod n for each k in offs.
// Because i ↦ i+k is a bijection on Z/n, every position is the source of one
// edge and the target of one edge per offset.
func circulant[E comparable](ring []E, offs offsets.Set) []target.Edge[E] {
	n := len(ring)
	edges := make([]target.Edge[E], 0, n*len(offs))
	for i := 0; i < n; i++ {
		for _, k := range offs {
			edges = append(edges, target.Edge[E]{From: ring[i], To: ring[(i+k)%n]})
		}
	}

	return edges
}
