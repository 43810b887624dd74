// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/hopnet/matrix"
)

// Point is a city location in the plane.
type Point = r2.Vec

// Generate samples n points independently and uniformly in the unit square
// [0,1)×[0,1). The RNG comes from WithSeed/WithRand; without either the
// package default seed is used, so two bare calls return the same instance.
//
// Errors: ErrTooFewPoints for n < 2.
//
// Complexity: O(n).
func Generate(n int, opts ...Option) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrTooFewPoints)
	}
	cfg := newConfig(opts)

	pts := make([]Point, n)
	for i := range pts {
		// X before Y keeps the draw order stable across releases
		pts[i].X = cfg.rng.Float64()
		pts[i].Y = cfg.rng.Float64()
	}

	return pts, nil
}

// DistanceMatrix returns the n×n Euclidean distance matrix of pts.
// Each distance is computed once and mirrored, so the result is exactly
// symmetric with an exact zero diagonal.
//
// Errors:
//   - ErrTooFewPoints for fewer than 2 points.
//   - matrix.ErrNaNInf (wrapped) if a coordinate is not finite.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(pts []Point) (*matrix.Dense, error) {
	var n = len(pts)
	if n < 2 {
		return nil, fmt.Errorf("DistanceMatrix: %d points: %w", n, ErrTooFewPoints)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = r2.Norm(r2.Sub(pts[i], pts[j]))
			if err = m.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("DistanceMatrix: points %d,%d: %w", i, j, err)
			}
			_ = m.Set(j, i, d) // same finite value, cannot fail
		}
	}

	return m, nil
}

// DistanceBounds returns the smallest and largest off-diagonal entries of m.
// Used for diagnostics and penalty scaling, never by the solvers themselves.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare (wrapped) on bad shape.
//   - ErrTooFewPoints for n < 2 (no off-diagonal entry exists).
//
// Complexity: O(n²).
func DistanceBounds(m matrix.Matrix) (lo, hi float64, err error) {
	if err = matrix.ValidateSquareNonNil(m); err != nil {
		return 0, 0, fmt.Errorf("DistanceBounds: %w", err)
	}
	var n = m.Rows()
	if n < 2 {
		return 0, 0, fmt.Errorf("DistanceBounds: %w", ErrTooFewPoints)
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	return lo, hi, nil
}
