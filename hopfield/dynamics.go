// SPDX-License-Identifier: MIT

package hopfield

import (
	"math"

	"github.com/katalvlaran/hopnet/matrix"
)

// derivative is du[x][i]/dt of the classical dynamics:
//
//	−U/τ − A·Σ_{j≠i}V[x][j] − B·Σ_{y≠x}V[y][i] − C·(ΣV − n′)
//	     − D·Σ_y D[x][y]·(V[y][i+1] + V[y][i−1])
//
// read from the aggregates of the current step.
//
// Complexity: O(1).
func (s *Solver) derivative(st *State, x, i int) float64 {
	var (
		o   = s.cfg.opts
		n   = s.n
		k   = x*n + i
		vxi = st.V.Data()[k]
		ip  = (i + 1) % n
		im  = (i - 1 + n) % n
	)

	return -st.U.Data()[k]/tau -
		o.A*(st.rowSum[x]-vxi) -
		o.B*(st.colSum[i]-vxi) -
		o.C*(st.total-o.NPrime) -
		o.D*(st.nbr[x*n+ip]+st.nbr[x*n+im])
}

// integrate advances every potential by one forward-Euler step of size δ.
// All derivatives read the V computed at the start of the step.
//
// Complexity: O(n²).
func (s *Solver) integrate(st *State) {
	var (
		delta = s.cfg.opts.Delta
		u     = st.U.Data()
		x, i  int
	)
	for x = 0; x < s.n; x++ {
		for i = 0; i < s.n; i++ {
			u[x*s.n+i] += delta * s.derivative(st, x, i)
		}
	}
}

// stepUntilConverged iterates V←g(U), record energy, integrate, until V stops
// moving or MaxIterations is reached. On return st.V holds the last outputs.
//
// Complexity: O(MaxIterations · n³).
func (s *Solver) stepUntilConverged(st *State) (iterations int, converged bool) {
	var o = s.cfg.opts
	for iterations < o.MaxIterations {
		computeOutputs(st.U.Data(), st.V.Data(), o.U0)
		s.refresh(st)
		st.Energy.Record(energyTerms(s.n, o.NPrime, st.V.Data(), st.rowSum, st.colSum, st.nbr).Total(o))
		s.integrate(st)
		iterations++

		if stable(st.prev.Data(), st.V.Data(), o.Tolerance) {
			return iterations, true
		}
		st.prev, st.V = st.V, st.prev
	}
	// Undo the trailing swap so V is the newest output.
	st.prev, st.V = st.V, st.prev

	return iterations, false
}

// Stable reports whether cur equals prev element-wise within tol and prev is
// not the untouched all-zero matrix. Mismatched shapes and nil inputs are
// never stable.
//
// Complexity: O(n²).
func Stable(prev, cur *matrix.Dense, tol float64) bool {
	if prev == nil || cur == nil || prev.Rows() != cur.Rows() || prev.Cols() != cur.Cols() {
		return false
	}

	return stable(prev.Data(), cur.Data(), tol)
}

func stable(prev, cur []float64, tol float64) bool {
	var zero = true
	for k := range prev {
		if math.Abs(prev[k]-cur[k]) > tol {
			return false
		}
		if math.Abs(prev[k]) > tol {
			zero = false
		}
	}

	return !zero
}
