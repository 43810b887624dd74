// Package tsp - validation utilities shared by the exact and heuristic solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import (
	"math"

	"github.com/katalvlaran/hopnet/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// validateDist performs full matrix validation:
//   - non-nil, square, n≥1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative off-diagonal distances, NaN anywhere is invalid,
//   - if !allowInf: reject +Inf off-diagonal (ErrIncompleteGraph),
//   - if symmetric: |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDist(dist matrix.Matrix, symmetric bool, allowInf bool) (int, error) {
	if matrix.ValidateNotNil(dist) != nil {
		return 0, ErrDimensionMismatch
	}
	var (
		n        = dist.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	if n != dist.Cols() {
		return 0, ErrNonSquare
	}
	if n <= 0 {
		return 0, ErrDimensionMismatch
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if aij, err = dist.At(i, j); err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if i == j {
				if math.Abs(aij) > symTol {
					return 0, ErrNonZeroDiagonal
				}
				continue
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
			if math.IsInf(aij, 1) && !allowInf {
				return 0, ErrIncompleteGraph
			}
		}
	}

	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, _ = dist.At(i, j)
				aji, _ = dist.At(j, i)
				if math.IsInf(aij, 1) && math.IsInf(aji, 1) {
					continue
				}
				if math.Abs(aij-aji) > symTol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}

// denseRows copies a validated matrix into a flat row-major buffer so the
// solvers can index it without interface calls in their inner loops.
//
// Complexity: O(n²) time and space.
func denseRows(dist matrix.Matrix, n int) []float64 {
	if d, ok := dist.(*matrix.Dense); ok {
		return d.Data()
	}
	flat := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			flat[i*n+j], _ = dist.At(i, j)
		}
	}

	return flat
}
