// SPDX-License-Identifier: MIT

package hopfield

import (
	"fmt"

	"github.com/katalvlaran/hopnet/matrix"
)

// EnergyTerms are the four unweighted components of the Hopfield–Tank energy.
// Every term is non-negative for outputs in [0, 1].
type EnergyTerms struct {
	// RowConflict is Σ_x Σ_i Σ_{j≠i} V[x][i]·V[x][j]: a city in several positions.
	RowConflict float64 `json:"row_conflict"`
	// ColConflict is Σ_i Σ_x Σ_{y≠x} V[x][i]·V[y][i]: a position held by several cities.
	ColConflict float64 `json:"col_conflict"`
	// Count is (Σ V − n′)².
	Count float64 `json:"count"`
	// TourLength is Σ_{x≠y} Σ_{i≠x} D[x][y]·V[x][i]·(V[y][i+1] + V[y][i−1]),
	// positions taken modulo n.
	TourLength float64 `json:"tour_length"`
}

// Total weights the terms: (A/2)·row + (B/2)·col + (C/2)·count + (D/2)·tour.
func (t EnergyTerms) Total(o Options) float64 {
	return o.A/2*t.RowConflict + o.B/2*t.ColConflict + o.C/2*t.Count + o.D/2*t.TourLength
}

// EnergyOf evaluates the energy terms of an arbitrary output matrix v against
// the solver's distances and n′. v is not modified.
//
// Errors: ErrInvalidInput when v is nil or not n×n.
// Complexity: O(n³).
func (s *Solver) EnergyOf(v *matrix.Dense) (EnergyTerms, error) {
	if v == nil || v.Rows() != s.n || v.Cols() != s.n {
		return EnergyTerms{}, fmt.Errorf("EnergyOf: %w: want %dx%d outputs", ErrInvalidInput, s.n, s.n)
	}
	var (
		rowSum = make([]float64, s.n)
		colSum = make([]float64, s.n)
		nbr    = make([]float64, s.n*s.n)
	)
	refreshAggregates(s.d, s.n, v.Data(), rowSum, colSum, nbr)

	return energyTerms(s.n, s.cfg.opts.NPrime, v.Data(), rowSum, colSum, nbr), nil
}

// energyTerms assembles the terms from precomputed aggregates.
//
// Row and column conflicts use V[x][i]·(sum − V[x][i]), which equals the
// pairwise double sum and stays ≥ 0 under rounding since every sum includes
// the subtracted element. The i≠x restriction of the distance term is applied
// as in the classical formulation.
//
// Complexity: O(n²).
func energyTerms(n int, nPrime float64, v, rowSum, colSum, nbr []float64) EnergyTerms {
	var (
		t          EnergyTerms
		x, i       int
		ip, im     int
		vxi, total float64
	)
	for x = 0; x < n; x++ {
		for i = 0; i < n; i++ {
			vxi = v[x*n+i]
			total += vxi
			t.RowConflict += vxi * (rowSum[x] - vxi)
			t.ColConflict += vxi * (colSum[i] - vxi)
			if i == x {
				continue
			}
			ip = (i + 1) % n
			im = (i - 1 + n) % n
			t.TourLength += vxi * (nbr[x*n+ip] + nbr[x*n+im])
		}
	}
	t.Count = (total - nPrime) * (total - nPrime)

	return t
}
