// Package hopfield solves the Travelling Salesman Problem with a continuous
// Hopfield–Tank network.
//
// An n-city tour is encoded as an n×n grid of neurons: row x is a city,
// column i a position in the tour, and V[x][i] ≈ 1 means "city x is visited
// at step i". Each neuron carries an internal potential U and an output
// V = ½·(1 + tanh(U/u0)). The network descends the energy
//
//	E = (A/2)·Σ_x Σ_i Σ_{j≠i} V[x][i]·V[x][j]
//	  + (B/2)·Σ_i Σ_x Σ_{y≠x} V[x][i]·V[y][i]
//	  + (C/2)·(Σ V − n′)²
//	  + (D/2)·Σ_{x≠y} Σ_{i≠x} D[x][y]·V[x][i]·(V[y][i+1] + V[y][i−1])
//
// by forward-Euler integration of du/dt = −u/τ − ∂E/∂V. The first three terms
// penalize infeasible assignments, the last one long tours.
//
// An attempt starts from potentials drawn uniformly around u00, iterates until
// V is stable to within a tolerance (or an iteration cap) and reads the tour
// off the columns of V. Attempts restart until a valid permutation appears or
// the attempt cap is reached. Running out of attempts is reported through
// Result.Valid, never as an error.
//
// All randomness comes from an explicit *rand.Rand (WithSeed / WithRand), so a
// fixed seed reproduces results exactly. SolveParallel fans independent runs
// out over a bounded goroutine pool and is deterministic as well.
//
// Quick start:
//
//	s, err := hopfield.New(dist, hopfield.WithSeed(7))
//	if err != nil { … }
//	res := s.Solve()
//	if res.Valid { … res.Tour … }
package hopfield
