// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/instance"
	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/tsp"
)

// Solver names used in reports.
const (
	SolverHopfield = "hopfield"
	SolverNearest  = "nearest_neighbor"
	SolverTwoOpt   = "two_opt"
	SolverRandom   = "random"
	SolverExact    = "exact"
)

// RNG stream ids derived from Config.Seed, one per stochastic solver.
const (
	streamHopfield uint64 = iota
	streamNearest
	streamRandom
)

// DefaultExactLimit keeps the Held–Karp oracle well below a second.
const DefaultExactLimit = 12

// Config selects what Run executes.
type Config struct {
	Hopfield hopfield.Options `json:"hopfield"`
	// Runs > 1 switches to hopfield.SolveParallel with Workers goroutines.
	Runs    int `json:"runs"`
	Workers int `json:"workers"`
	// ExactLimit is the largest n for which the exact oracle runs; 0 disables it.
	ExactLimit int   `json:"exact_limit"`
	Seed       int64 `json:"seed"`
	// Hook, when set, observes every Hopfield attempt.
	Hook func(hopfield.Attempt) `json:"-"`
}

// DefaultConfig returns a single Hopfield run with default hyperparameters.
func DefaultConfig() Config {
	return Config{
		Hopfield:   hopfield.DefaultOptions(),
		Runs:       1,
		Workers:    runtime.GOMAXPROCS(0),
		ExactLimit: DefaultExactLimit,
	}
}

// SolverReport is one solver's tour scored with tsp.TourLength.
type SolverReport struct {
	Name  string `json:"name"`
	Tour  []int  `json:"tour"`
	Valid bool   `json:"valid"`
	// Length is set only for valid tours.
	Length float64 `json:"length"`
	// Gap is (Length − optimum)/optimum when the exact oracle ran.
	Gap *float64 `json:"gap,omitempty"`
	// Elapsed is the wall time of the solver call, scoring excluded.
	Elapsed time.Duration `json:"elapsed_ns"`

	// Hopfield only.
	Attempts    int     `json:"attempts,omitempty"`
	Iterations  int     `json:"iterations,omitempty"`
	FinalEnergy float64 `json:"final_energy,omitempty"`
	MinEnergy   float64 `json:"min_energy,omitempty"`
	// Energy is the per-iteration energy history of the reported attempt.
	Energy []float64 `json:"energy,omitempty"`
}

// Report collects the solver results for one instance.
type Report struct {
	N           int            `json:"n"`
	MinDistance float64        `json:"min_distance"`
	MaxDistance float64        `json:"max_distance"`
	Results     []SolverReport `json:"results"`
}

// Best returns the shortest valid tour in the report; ties keep report order.
func (r Report) Best() (SolverReport, bool) {
	var (
		best  SolverReport
		found bool
	)
	for _, s := range r.Results {
		if s.Valid && (!found || s.Length < best.Length) {
			best, found = s, true
		}
	}

	return best, found
}

// Result returns the entry for the named solver.
func (r Report) Result(name string) (SolverReport, bool) {
	for _, s := range r.Results {
		if s.Name == name {
			return s, true
		}
	}

	return SolverReport{}, false
}

// Run executes Hopfield, nearest neighbour, nearest neighbour polished by
// 2-opt, the random baseline and, when n ≤ cfg.ExactLimit, the exact oracle
// on dist, in that order.
//
// Errors: instance.ErrTooFewPoints and matrix sentinels for unusable
// distances, hopfield.ErrInvalidInput / ErrConfiguration from the network and
// any oracle error, each wrapped with the failing stage.
func Run(dist matrix.Matrix, cfg Config) (Report, error) {
	lo, hi, err := instance.DistanceBounds(dist)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %w", err)
	}
	var (
		n   = dist.Rows()
		rep = Report{N: n, MinDistance: lo, MaxDistance: hi}
		rng = tsp.NewRand(cfg.Seed)
	)
	// Derive all streams up front so adding a solver never shifts another.
	hopRng := tsp.DeriveRand(rng, streamHopfield)
	nnRng := tsp.DeriveRand(rng, streamNearest)
	rndRng := tsp.DeriveRand(rng, streamRandom)

	start := time.Now()
	hop, err := runHopfield(dist, cfg, hopRng)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %s: %w", SolverHopfield, err)
	}
	hop.Elapsed = time.Since(start)
	rep.Results = append(rep.Results, hop)

	start = time.Now()
	nn, err := tsp.NearestNeighbor(dist, nnRng)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %s: %w", SolverNearest, err)
	}
	if err = appendScored(&rep, dist, SolverNearest, nn, time.Since(start)); err != nil {
		return Report{}, err
	}

	start = time.Now()
	polished, _, err := tsp.TwoOpt(dist, nn, 0)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %s: %w", SolverTwoOpt, err)
	}
	if err = appendScored(&rep, dist, SolverTwoOpt, polished, time.Since(start)); err != nil {
		return Report{}, err
	}

	start = time.Now()
	rnd, err := tsp.RandomTour(n, rndRng)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %s: %w", SolverRandom, err)
	}
	if err = appendScored(&rep, dist, SolverRandom, rnd, time.Since(start)); err != nil {
		return Report{}, err
	}

	if cfg.ExactLimit > 0 && n <= cfg.ExactLimit {
		start = time.Now()
		opt, err := tsp.TSPExact(dist)
		if err != nil {
			return Report{}, fmt.Errorf("compare: %s: %w", SolverExact, err)
		}
		rep.Results = append(rep.Results, SolverReport{
			Name:    SolverExact,
			Tour:    opt.Tour,
			Valid:   true,
			Length:  opt.Cost,
			Elapsed: time.Since(start),
		})
		fillGaps(&rep, opt.Cost)
	}

	return rep, nil
}

func runHopfield(dist matrix.Matrix, cfg Config, rng *rand.Rand) (SolverReport, error) {
	opts := []hopfield.Option{hopfield.WithOptions(cfg.Hopfield), hopfield.WithRand(rng)}
	if cfg.Hook != nil {
		opts = append(opts, hopfield.WithAttemptHook(cfg.Hook))
	}

	var (
		res hopfield.Result
		err error
	)
	if cfg.Runs > 1 {
		res, err = hopfield.SolveParallel(dist, cfg.Runs, max(cfg.Workers, 1), opts...)
	} else {
		var s *hopfield.Solver
		if s, err = hopfield.New(dist, opts...); err == nil {
			res = s.Solve()
		}
	}
	if err != nil {
		return SolverReport{}, err
	}

	out := SolverReport{
		Name:       SolverHopfield,
		Tour:       res.Tour,
		Valid:      res.Valid,
		Attempts:   res.Attempts,
		Iterations: res.Iterations,
		Energy:     res.Energy,
	}
	if len(res.Energy) > 0 {
		out.FinalEnergy = res.Energy[len(res.Energy)-1]
		out.MinEnergy = floats.Min(res.Energy)
	}
	if res.Valid {
		if out.Length, err = tsp.TourLength(dist, res.Tour); err != nil {
			return SolverReport{}, err
		}
	}

	return out, nil
}

// appendScored validates a baseline tour and appends it with its length and
// the time the solver took to produce it.
func appendScored(rep *Report, dist matrix.Matrix, name string, tour []int, elapsed time.Duration) error {
	if err := tsp.ValidatePermutation(tour, rep.N); err != nil {
		return fmt.Errorf("compare: %s: %w", name, err)
	}
	l, err := tsp.TourLength(dist, tour)
	if err != nil {
		return fmt.Errorf("compare: %s: %w", name, err)
	}
	rep.Results = append(rep.Results, SolverReport{Name: name, Tour: tour, Valid: true, Length: l, Elapsed: elapsed})

	return nil
}

func fillGaps(rep *Report, optimum float64) {
	if optimum <= 0 {
		return
	}
	for k := range rep.Results {
		if !rep.Results[k].Valid {
			continue
		}
		g := (rep.Results[k].Length - optimum) / optimum
		rep.Results[k].Gap = &g
	}
}
