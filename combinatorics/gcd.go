package combinatorics

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(a, 0) = |a| and GCD(0, 0) = 0. The result is never negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// Coprime reports whether GCD(a, b) == 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}
