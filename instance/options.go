// SPDX-License-Identifier: MIT
//
// options.go: functional options for the stochastic generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package instance

import (
	"math/rand"

	"github.com/katalvlaran/hopnet/tsp"
)

// Option customizes a generator by mutating its config before use.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = tsp.NewRand(0)
	}

	return c
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds generation through tsp.NewRand; seed 0 selects
// tsp.DefaultSeed, the same points an option-less call produces.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = tsp.NewRand(seed)
	}
}
