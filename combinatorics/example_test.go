package combinatorics_test

import (
	"fmt"

	"github.com/katalvlaran/targetring/combinatorics"
)

// ExampleCombinations lists the 2-element offset candidates drawn from {2,3,4}.
func ExampleCombinations() {
	fmt.Println(combinatorics.Combinations([]int{2, 3, 4}, 2))
	// Output:
	// [[2 3] [2 4] [3 4]]
}

// ExamplePermutations shows the identity-first ordering.
func ExamplePermutations() {
	perms, _ := combinatorics.Permutations([]string{"B", "C"})
	fmt.Println(perms)
	// Output:
	// [[B C] [C B]]
}
