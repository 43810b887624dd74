// Package hopnet solves the Travelling Salesman Problem with a continuous
// Hopfield–Tank neural network and measures it against classical baselines.
//
// What is inside?
//
//	• hopfield    network, energy, Euler dynamics, restarts, parallel runs
//	• tsp         tour length, nearest neighbour, 2-opt, random tours, Held–Karp
//	• instance    random points, instance files, Euclidean distance matrix
//	• matrix      row-major Dense matrix and distance-matrix validators
//	• compare     one report per instance, every solver on the same scale
//	• cmd/hopnet  command line front end (JSON report on stdout)
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	the unit square; every solver should find the perimeter tour of length 4.
//
// All randomness is explicit and seeded, so every result is reproducible.
//
//	go install github.com/katalvlaran/hopnet/cmd/hopnet@latest
package hopnet
