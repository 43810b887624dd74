// SPDX-License-Identifier: MIT

// Package tsp - sentinel errors and result types shared by every solver here.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Solvers never panic on user input.
package tsp

import "errors"

var (
	// ErrDimensionMismatch indicates an empty matrix, an empty tour, an
	// out-of-range city index or a NaN entry.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare indicates that the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] where symmetry is required.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrIncompleteGraph is returned when the distance matrix does not
	// admit any Hamiltonian cycle (some required edge is +Inf).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrTooManyVertices is returned by TSPExact when n exceeds MaxExactVertices.
	ErrTooManyVertices = errors.New("tsp: instance too large for exact solver")

	// ErrStartOutOfRange indicates a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// TSResult holds the outcome of the exact solver.
type TSResult struct {
	// Tour is an open cyclic order of the n cities, starting at city 0.
	// The closing edge Tour[n-1]→Tour[0] is implied.
	Tour []int `json:"tour"`

	// Cost is the total length of the cycle, rounded to 1e-9.
	Cost float64 `json:"cost"`
}
