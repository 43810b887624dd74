// Package instance is the distance provider: it builds or loads the point
// coordinates of a Euclidean TSP instance and turns them into the pairwise
// distance matrix every solver consumes.
//
// ⚙️ Usage:
//
//	pts, err := instance.Generate(20, instance.WithSeed(7))
//	// or: pts, err := instance.LoadFile("berlin.txt")
//	dist, err := instance.DistanceMatrix(pts)
//	lo, hi, err := instance.DistanceBounds(dist)
//
// File format (one record per line, whitespace separated):
//
//	5            ← optional bare point count on the first line
//	1 0.0 0.0    ← <index> <x> <y>; the index is ignored
//	2 1.0 0.0
//
// Malformed lines fail the whole load with a *ParseError (errors.Is ErrParse).
package instance
