// SPDX-License-Identifier: MIT
//
// options.go: hyperparameters and functional options for the solver.
//
// Contract:
//   • Options is a plain, JSON-friendly struct; DefaultOptions is the single
//     source of truth for defaults.
//   • Option constructors panic only on programmer error (nil RNG, nil hook).
//     Numeric values are checked by validateOptions and surface as
//     ErrConfiguration, never as panics.
//   • Randomness is explicit: WithSeed / WithRand. No global RNG is touched.

package hopfield

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hopnet/tsp"
)

// Defaults.
const (
	DefaultA             = 500.0 // row (one position per city) penalty
	DefaultB             = 500.0 // column (one city per position) penalty
	DefaultC             = 200.0 // global activation count penalty
	DefaultD             = 500.0 // distance penalty
	DefaultNPrime        = 15.0  // target active-neuron count, independent of n
	DefaultU0            = 0.02  // squashing gain
	DefaultU00           = 0.0   // baseline offset for the initial potentials
	DefaultInitBand      = 0.1   // half-width of the init band, in units of u0
	DefaultDelta         = 1e-4  // forward-Euler step
	DefaultMaxIterations = 2000  // inner convergence cap
	DefaultMaxAttempts   = 2000  // outer restart cap
	DefaultTolerance     = 1e-15 // element-wise stability tolerance
)

// tau is the membrane time constant of the classical dynamics.
const tau = 1.0

// Options holds the network hyperparameters.
type Options struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`

	// NPrime is the target total activation n′. It is deliberately not tied
	// to the instance size.
	NPrime float64 `json:"n_prime"`

	U0       float64 `json:"u0"`
	U00      float64 `json:"u00"`
	InitBand float64 `json:"init_band"`
	Delta    float64 `json:"delta"`

	MaxIterations int     `json:"max_iterations"`
	MaxAttempts   int     `json:"max_attempts"`
	Tolerance     float64 `json:"tolerance"`
}

// DefaultOptions returns the classical Hopfield–Tank settings.
func DefaultOptions() Options {
	return Options{
		A:             DefaultA,
		B:             DefaultB,
		C:             DefaultC,
		D:             DefaultD,
		NPrime:        DefaultNPrime,
		U0:            DefaultU0,
		U00:           DefaultU00,
		InitBand:      DefaultInitBand,
		Delta:         DefaultDelta,
		MaxIterations: DefaultMaxIterations,
		MaxAttempts:   DefaultMaxAttempts,
		Tolerance:     DefaultTolerance,
	}
}

// config is the resolved solver configuration.
type config struct {
	opts Options
	rng  *rand.Rand
	hook func(Attempt)
}

// Option customizes a solver before construction.
type Option func(*config)

func newConfig(opts []Option) config {
	c := config{opts: DefaultOptions()}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = tsp.NewRand(0)
	}

	return c
}

// WithOptions replaces every hyperparameter at once.
func WithOptions(o Options) Option {
	return func(c *config) { c.opts = o }
}

// WithPenalties sets the A, B, C, D penalty weights.
func WithPenalties(a, b, cc, d float64) Option {
	return func(c *config) {
		c.opts.A, c.opts.B, c.opts.C, c.opts.D = a, b, cc, d
	}
}

// WithTargetCount sets n′.
func WithTargetCount(nPrime float64) Option {
	return func(c *config) { c.opts.NPrime = nPrime }
}

// WithGain sets u0. Zero is rejected later with ErrConfiguration.
func WithGain(u0 float64) Option {
	return func(c *config) { c.opts.U0 = u0 }
}

// WithBaseline sets u00, the centre of the initial potential band.
func WithBaseline(u00 float64) Option {
	return func(c *config) { c.opts.U00 = u00 }
}

// WithInitBand sets the half-width of the init band as a multiple of u0.
func WithInitBand(f float64) Option {
	return func(c *config) { c.opts.InitBand = f }
}

// WithStep sets the integration step δ.
func WithStep(delta float64) Option {
	return func(c *config) { c.opts.Delta = delta }
}

// WithMaxIterations sets the inner convergence cap.
func WithMaxIterations(k int) Option {
	return func(c *config) { c.opts.MaxIterations = k }
}

// WithMaxAttempts sets the outer restart cap.
func WithMaxAttempts(k int) Option {
	return func(c *config) { c.opts.MaxAttempts = k }
}

// WithTolerance sets the element-wise stability tolerance.
func WithTolerance(eps float64) Option {
	return func(c *config) { c.opts.Tolerance = eps }
}

// WithSeed seeds a private RNG (seed 0 ⇒ the package default stream).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = tsp.NewRand(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
// The solver takes ownership: do not share r with another goroutine.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("hopfield: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithAttemptHook registers fn to be called after every outer attempt.
// Panics on nil. Under SolveParallel fn is called from several goroutines.
func WithAttemptHook(fn func(Attempt)) Option {
	if fn == nil {
		panic("hopfield: WithAttemptHook(nil)")
	}
	return func(c *config) { c.hook = fn }
}

// validateOptions rejects hyperparameters the dynamics cannot run with.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	for name, v := range map[string]float64{
		"A": o.A, "B": o.B, "C": o.C, "D": o.D, "n'": o.NPrime,
		"u0": o.U0, "u00": o.U00, "init band": o.InitBand,
		"delta": o.Delta, "tolerance": o.Tolerance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrConfiguration, name)
		}
	}
	switch {
	case o.U0 == 0:
		return fmt.Errorf("%w: gain u0 must be non-zero", ErrConfiguration)
	case o.A < 0 || o.B < 0 || o.C < 0 || o.D < 0:
		return fmt.Errorf("%w: penalty weights must be non-negative", ErrConfiguration)
	case o.Delta <= 0:
		return fmt.Errorf("%w: step delta must be positive", ErrConfiguration)
	case o.MaxIterations < 1 || o.MaxAttempts < 1:
		return fmt.Errorf("%w: iteration and attempt caps must be >= 1", ErrConfiguration)
	case o.Tolerance < 0 || o.InitBand < 0:
		return fmt.Errorf("%w: tolerance and init band must be non-negative", ErrConfiguration)
	}

	return nil
}
