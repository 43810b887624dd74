package tsp

import "math/rand"

// DefaultSeed seeds every stream whose caller asked for seed 0 or passed no
// generator at all. The CLI, instance generation and the network's initial
// potentials all start from it, so an unseeded run is still repeatable.
const DefaultSeed int64 = 1

// NewRand returns a generator seeded with seed, or with DefaultSeed when
// seed is 0. The result must stay on one goroutine.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRand splits off generator number stream from base. It draws exactly
// one value from base, so a caller handing out several streams (one per
// parallel network run, one per baseline in a comparison) must derive them
// in a fixed order before any of them is used. A nil base acts as a
// generator seeded with DefaultSeed.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(int64(mix64(uint64(parent) ^ (stream + golden64)))))
}

// golden64 is 2⁶⁴/φ, the SplitMix64 increment.
const golden64 = 0x9e3779b97f4a7c15

// mix64 is the SplitMix64 output function: adjacent stream numbers land on
// unrelated seeds.
func mix64(x uint64) uint64 {
	x += golden64
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
