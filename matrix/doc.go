// Package matrix provides the dense float64 storage shared by the distance
// provider, the Hopfield–Tank network and the baseline TSP solvers.
//
// The package offers:
//
//   - Matrix: a small interface (Rows, Cols, At, Set, Clone) that algorithms
//     accept, so callers can plug their own storage.
//   - Dense: a row-major implementation with bounds-checked accessors and
//     aliasing fast paths (Row, Data) for hot numeric loops.
//   - Validators: square, symmetric, zero-diagonal and non-negative checks
//     used before a matrix is accepted as a distance matrix.
//
// Errors are package-level sentinels (errors.go); match them with errors.Is.
package matrix
