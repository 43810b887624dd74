// SPDX-License-Identifier: MIT

package hopfield

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/tsp"
)

// SolveParallel runs `runs` independent solvers on a pool of at most `workers`
// goroutines and returns the shortest valid tour (ties → lowest run index).
// When no run is valid, run 0's result is returned.
//
// Every run gets its own RNG stream derived, in run order, from the base RNG
// configured by opts, so the outcome for a fixed seed does not depend on
// scheduling. A hook installed with WithAttemptHook is invoked concurrently.
//
// Errors: ErrConfiguration for runs < 1 or workers < 1, plus those of New.
func SolveParallel(dist matrix.Matrix, runs, workers int, opts ...Option) (Result, error) {
	if runs < 1 || workers < 1 {
		return Result{}, fmt.Errorf("hopfield.SolveParallel: %w: runs=%d workers=%d", ErrConfiguration, runs, workers)
	}
	base, err := New(dist, opts...)
	if err != nil {
		return Result{}, err
	}

	solvers := make([]*Solver, runs)
	for i := range solvers {
		s := *base
		s.cfg.rng = tsp.DeriveRand(base.cfg.rng, uint64(i))
		s.run = i
		solvers[i] = &s
	}

	p := pool.NewWithResults[Result]().WithMaxGoroutines(workers)
	for _, s := range solvers {
		p.Go(s.Solve)
	}
	results := p.Wait()
	slices.SortFunc(results, func(a, b Result) int { return cmp.Compare(a.Run, b.Run) })

	var (
		best    = -1
		bestLen float64
	)
	for k, r := range results {
		if !r.Valid {
			continue
		}
		l, err := tsp.TourLength(base.dist, r.Tour)
		if err != nil {
			continue
		}
		if best < 0 || l < bestLen {
			best, bestLen = k, l
		}
	}
	if best < 0 {
		return results[0], nil
	}

	return results[best], nil
}
