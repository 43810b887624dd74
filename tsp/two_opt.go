// Package tsp - 2-opt local search for symmetric instances.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open tour
// (the closing edge back to tour[0] is implied). A move reverses the segment
// [i..k] and is accepted when
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) < −eps,  a=T[i−1], b=T[i], c=T[k], d=T[k+1 mod n].
//
// tour[0] never moves, so the result starts where the input started.
//
// Complexity: O(n²) candidate checks per pass, O(n) per accepted move.
package tsp

import "github.com/katalvlaran/hopnet/matrix"

// twoOptEps is the improvement threshold below which moves are ignored.
const twoOptEps = 1e-12

// TwoOpt improves tour by 2-opt moves until a local optimum is reached or
// maxMoves moves were applied (maxMoves ≤ 0 ⇒ unlimited). The input is not
// modified. Returns the improved tour and its TourLength.
//
// Errors: validation sentinels from types.go for dist (symmetric, finite),
// ErrDimensionMismatch when tour is not a permutation of 0..n-1.
func TwoOpt(dist matrix.Matrix, tour []int, maxMoves int) ([]int, float64, error) {
	n, err := validateDist(dist, true, false)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return nil, 0, err
	}
	var (
		w        = denseRows(dist, n)
		cur      = append([]int(nil), tour...)
		accepted int
	)
	at := func(u, v int) float64 { return w[u*n+v] }

	for {
		improved := false
		var (
			a, b, c, d int
			i, k       int
			delta      float64
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[(k+1)%n]
				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -twoOptEps {
					continue
				}
				reverseInts(cur[i : k+1])
				accepted++
				improved = true
				break // first improvement: rescan from the start
			}
		}
		if !improved || (maxMoves > 0 && accepted >= maxMoves) {
			break
		}
	}

	cost, err := TourLength(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	return cur, cost, nil
}

func reverseInts(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
