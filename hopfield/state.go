// SPDX-License-Identifier: MIT

package hopfield

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hopnet/matrix"
)

// State is the mutable network of one attempt: internal potentials U, outputs
// V = g(U) and the energy history. Row x is a city, column i a tour position.
//
// A State belongs to exactly one attempt; Solve rebuilds it on every restart.
type State struct {
	U      *matrix.Dense
	V      *matrix.Dense
	Energy *EnergyTracker

	prev *matrix.Dense // V of the previous iteration (all zero before the first)

	// Per-step aggregates of V shared by the energy and the derivative.
	rowSum []float64 // Σ_i V[x][i]
	colSum []float64 // Σ_x V[x][i]
	nbr    []float64 // nbr[x][j] = Σ_y D[x][y]·V[y][j]
	total  float64   // Σ V
}

// newState allocates an n×n network. n ≥ 1 holds for every constructed Solver.
func newState(n int) *State {
	u, _ := matrix.NewDense(n, n)
	v, _ := matrix.NewDense(n, n)
	p, _ := matrix.NewDense(n, n)

	return &State{
		U:      u,
		V:      v,
		Energy: &EnergyTracker{},
		prev:   p,
		rowSum: make([]float64, n),
		colSum: make([]float64, n),
		nbr:    make([]float64, n*n),
	}
}

// initialize draws every potential uniformly from
// [u00 − band·|u0|, u00 + band·|u0|], zeroes V and its predecessor and clears
// the energy history.
//
// Complexity: O(n²).
func (s *Solver) initialize(st *State) {
	var (
		o     = s.cfg.opts
		half  = o.InitBand * abs(o.U0)
		lo    = o.U00 - half
		width = 2 * half
		u     = st.U.Data()
	)
	for k := range u {
		u[k] = lo + width*s.cfg.rng.Float64()
	}
	st.V.Fill(0)
	st.prev.Fill(0)
	st.Energy.Reset()
}

// refresh recomputes the per-step aggregates from V.
//
// Complexity: O(n³) for the distance-weighted neighbour sums, O(n²) otherwise.
func (s *Solver) refresh(st *State) {
	refreshAggregates(s.d, s.n, st.V.Data(), st.rowSum, st.colSum, st.nbr)
	st.total = floats.Sum(st.rowSum)
}

// refreshAggregates fills row, column and neighbour sums of v (flat n×n).
func refreshAggregates(d []float64, n int, v, rowSum, colSum, nbr []float64) {
	var (
		x, y, i int
		dxy     float64
		row     []float64
	)
	for i = 0; i < n; i++ {
		colSum[i] = 0
	}
	for x = 0; x < n; x++ {
		row = v[x*n : (x+1)*n]
		rowSum[x] = floats.Sum(row)
		floats.Add(colSum, row)
	}
	for k := range nbr {
		nbr[k] = 0
	}
	for x = 0; x < n; x++ {
		for y = 0; y < n; y++ {
			dxy = d[x*n+y]
			if dxy == 0 {
				continue
			}
			floats.AddScaled(nbr[x*n:(x+1)*n], dxy, v[y*n:(y+1)*n])
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
