// Package tsp - nearest-neighbour construction heuristic.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/hopnet/matrix"
)

// NearestNeighbor builds a greedy tour from a start city drawn uniformly from
// rng (nil ⇒ default deterministic stream), then delegates to NearestNeighborFrom.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist matrix.Matrix, rng *rand.Rand) ([]int, error) {
	n, err := validateDist(dist, false, false)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	return nearestFrom(denseRows(dist, n), n, rng.Intn(n)), nil
}

// NearestNeighborFrom walks from start, always moving to the closest
// unvisited city. Ties go to the lowest city index, so the result is fully
// determined by (dist, start).
//
// Contract:
//   - dist is square, finite, non-negative, zero diagonal (asymmetry allowed).
//   - 0 ≤ start < n.
//
// Errors: validation sentinels from types.go, ErrStartOutOfRange.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighborFrom(dist matrix.Matrix, start int) ([]int, error) {
	n, err := validateDist(dist, false, false)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return nearestFrom(denseRows(dist, n), n, start), nil
}

// nearestFrom is the greedy kernel over a flat row-major matrix.
func nearestFrom(d []float64, n int, start int) []int {
	var (
		tour    = make([]int, n)
		visited = make([]bool, n)
		cur     = start
		next    int
		best    float64
		row     []float64
		i, j    int
	)
	tour[0] = start
	visited[start] = true

	for i = 1; i < n; i++ {
		row = d[cur*n : (cur+1)*n]
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// strict < keeps the lowest index on ties
			if next < 0 || row[j] < best {
				next, best = j, row[j]
			}
		}
		tour[i] = next
		visited[next] = true
		cur = next
	}

	return tour
}
