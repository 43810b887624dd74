// SPDX-License-Identifier: MIT

package hopfield

import (
	"fmt"

	"github.com/katalvlaran/hopnet/matrix"
)

// symmetryTol is the tolerance for the symmetry and zero-diagonal checks.
const symmetryTol = 1e-9

// Solver runs Hopfield–Tank attempts on one distance matrix.
// It owns its RNG and is not safe for concurrent use; see SolveParallel.
type Solver struct {
	n    int
	dist *matrix.Dense // private copy, never mutated after New
	d    []float64     // dist.Data()
	cfg  config
	run  int // run index reported to the hook
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the extracted tour of the returned attempt. It is a permutation
	// of 0..n-1 iff Valid.
	Tour  []int `json:"tour"`
	Valid bool  `json:"valid"`
	// Energy is the per-iteration energy history of the returned attempt.
	Energy     []float64 `json:"energy,omitempty"`
	Attempts   int       `json:"attempts"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	// Run identifies the independent run under SolveParallel; 0 for Solve.
	Run int `json:"run"`
}

// Attempt summarizes one outer attempt for the hook.
type Attempt struct {
	Run         int     `json:"run"`
	Index       int     `json:"index"` // 1-based
	Iterations  int     `json:"iterations"`
	Converged   bool    `json:"converged"`
	Valid       bool    `json:"valid"`
	TourLen     int     `json:"tour_len"`
	FinalEnergy float64 `json:"final_energy"`
}

// New validates the configuration and the distance matrix and returns a
// solver holding a private copy of dist. No network state is allocated yet.
//
// Errors:
//   - ErrConfiguration for unusable options (u0 == 0, non-finite values, …).
//   - ErrInvalidInput for a nil, empty, non-square, negative, non-finite,
//     non-zero-diagonal or asymmetric matrix; the matrix sentinel is wrapped.
//
// Complexity: O(n²).
func New(dist matrix.Matrix, opts ...Option) (*Solver, error) {
	cfg := newConfig(opts)
	if err := validateOptions(cfg.opts); err != nil {
		return nil, fmt.Errorf("hopfield.New: %w", err)
	}
	if err := matrix.ValidateDistance(dist, symmetryTol); err != nil {
		return nil, fmt.Errorf("hopfield.New: %w: %w", ErrInvalidInput, err)
	}

	var (
		n     = dist.Rows()
		cp, _ = matrix.NewDense(n, n)
		data  = cp.Data()
		i, j  int
	)
	if src, ok := dist.(*matrix.Dense); ok {
		_ = cp.CopyFrom(src) // shapes match: both n×n after ValidateDistance
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				data[i*n+j], _ = dist.At(i, j)
			}
		}
	}
	// The diagonal is zero within tolerance; store it exactly.
	for i = 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Solver{n: n, dist: cp, d: data, cfg: cfg}, nil
}

// N returns the number of cities.
func (s *Solver) N() int { return s.n }

// Options returns the effective hyperparameters.
func (s *Solver) Options() Options { return s.cfg.opts }

// RunAttempt runs a single attempt from a freshly initialized network and
// returns its final state, consuming randomness from the solver's RNG.
//
// Complexity: O(MaxIterations · n³).
func (s *Solver) RunAttempt() *State {
	st := newState(s.n)
	s.initialize(st)
	s.stepUntilConverged(st)

	return st
}

// Solve restarts the network until an attempt yields a valid tour or
// MaxAttempts is exhausted. Exhaustion is not an error: the last attempt's
// invalid tour is returned with Valid == false.
// A single city is trivially solved without running the network.
//
// Complexity: O(MaxAttempts · MaxIterations · n³) worst case.
func (s *Solver) Solve() Result {
	if s.n == 1 {
		return Result{Tour: []int{0}, Valid: true, Run: s.run}
	}

	var (
		o  = s.cfg.opts
		st = newState(s.n)
	)
	for a := 1; ; a++ {
		s.initialize(st)
		iters, converged := s.stepUntilConverged(st)
		tour := ExtractTour(st.V)
		valid := ValidTour(tour, s.n)

		if s.cfg.hook != nil {
			last, _ := st.Energy.Last()
			s.cfg.hook(Attempt{
				Run:         s.run,
				Index:       a,
				Iterations:  iters,
				Converged:   converged,
				Valid:       valid,
				TourLen:     len(tour),
				FinalEnergy: last,
			})
		}

		if valid || a >= o.MaxAttempts {
			return Result{
				Tour:       tour,
				Valid:      valid,
				Energy:     st.Energy.Values(),
				Attempts:   a,
				Iterations: iters,
				Converged:  converged,
				Run:        s.run,
			}
		}
	}
}
