// Package tsp: tour utilities shared by every solver.
//
// This file operates purely on tour structure (index sequences) without
// touching distance matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - Reversed: same cycle walked in the opposite direction.
//   - EqualCyclic: equality of cycles up to rotation and direction.
//
// All helpers return fresh slices; inputs are never mutated.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a copy of tour shifted so that out[0] == start.
//
// Errors:
//   - ErrDimensionMismatch for an empty tour.
//   - ErrStartOutOfRange when start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	var n = len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// Reversed returns the same cycle walked backwards, keeping tour[0] first:
// [a b c d] → [a d c b].
//
// Complexity: O(n).
func Reversed(tour []int) []int {
	var n = len(tour)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	out[0] = tour[0]
	for i := 1; i < n; i++ {
		out[i] = tour[n-i]
	}

	return out
}

// EqualCyclic reports whether a and b describe the same undirected cycle,
// i.e. b is a rotation of a or of Reversed(a).
//
// Complexity: O(n).
func EqualCyclic(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, err := RotateToStart(b, a[0])
	if err != nil {
		return false
	}

	return equalInts(a, rb) || equalInts(a, Reversed(rb))
}

func equalInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
