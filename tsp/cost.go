// Package tsp: cost utilities shared by all solvers' callers.
//
// TourLength is the fitness function: the total cyclic length of an open tour.
// It is the one scalar every solver's output is compared on.
//
// Design:
//   - Fast path for *matrix.Dense and generic path for any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/katalvlaran/hopnet/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns Σ_{k=0}^{m-2} dist[t_k][t_{k+1}] + dist[t_{m-1}][t_0]
// for an open tour t of length m ≥ 1.
//
// The tour is not required to be a permutation (partial tours extracted from a
// non-converged network are scored too); only index ranges are checked.
// The value is invariant under cyclic rotation and, for symmetric matrices,
// under direction reversal.
//
// Errors:
//   - ErrDimensionMismatch: nil matrix, empty tour, index out of range, NaN weight.
//   - ErrNonSquare: dist is not square.
//   - ErrIncompleteGraph: an edge of the cycle is ±Inf.
//   - ErrNegativeWeight: an edge of the cycle is negative.
//
// Complexity: O(m).
func TourLength(dist matrix.Matrix, tour []int) (float64, error) {
	if matrix.ValidateNotNil(dist) != nil || len(tour) == 0 {
		return 0, ErrDimensionMismatch
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrNonSquare
	}
	var (
		n   = dist.Rows()
		m   = len(tour)
		sum float64
		k   int
		u   int
		v   int
		w   float64
		err error
	)
	for k = 0; k < m; k++ {
		if tour[k] < 0 || tour[k] >= n {
			return 0, ErrDimensionMismatch
		}
	}

	dense, isDense := dist.(*matrix.Dense)
	for k = 0; k < m; k++ {
		u = tour[k]
		v = tour[(k+1)%m] // wraps to tour[0] on the closing edge

		if isDense {
			w = dense.Row(u)[v]
		} else if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if err = checkWeight(w); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// checkWeight maps a single edge weight onto the sentinel set.
//
// Complexity: O(1).
func checkWeight(w float64) error {
	switch {
	case math.IsNaN(w):
		return ErrDimensionMismatch
	case math.IsInf(w, 0):
		return ErrIncompleteGraph
	case w < 0:
		return ErrNegativeWeight
	}

	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
