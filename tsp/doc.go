// Package tsp provides the comparison baselines and the fitness function for
// Euclidean Travelling Salesman instances.
//
// Everything here works on a distance matrix (matrix.Matrix) and on open
// tours: a tour is an ordered slice of the n city indices and the closing edge
// back to the first city is implied.
//
//   - TourLength: cyclic length of any tour (the fitness used to compare solvers).
//     Invariant under rotation and reversal. O(n).
//
//   - TSPExact: Held–Karp dynamic programming; the exact oracle.
//     O(n²·2ⁿ) time and O(n·2ⁿ) memory, so n is capped at MaxExactVertices.
//
//   - NearestNeighbor / NearestNeighborFrom: greedy walk, O(n²).
//
//   - TwoOpt: first-improvement 2-opt polish of any tour.
//
//   - RandomTour: uniform permutation (Fisher–Yates), O(n).
//
// Randomness is always explicit: every stochastic routine takes a *rand.Rand.
// NewRand gives the reproducible default stream, DeriveRand splits independent
// streams for parallel workers.
package tsp
