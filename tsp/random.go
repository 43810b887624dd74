package tsp

import "math/rand"

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng,
// the no-optimization baseline every other solver should beat.
// A nil rng falls back to NewRand(0).
//
// Errors: ErrDimensionMismatch for n < 1.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) ([]int, error) {
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// Inside-out Fisher–Yates: build and shuffle in one pass.
	tour := make([]int, n)
	for i := 1; i < n; i++ {
		j := rng.Intn(i + 1)
		tour[i] = tour[j]
		tour[j] = i
	}

	return tour, nil
}
