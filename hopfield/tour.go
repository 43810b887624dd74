// SPDX-License-Identifier: MIT

package hopfield

import "github.com/katalvlaran/hopnet/matrix"

// ExtractTour reads a tour from outputs v: for every position (column) the
// city (row) with the largest output wins, scanning with strict > from 0 so
// ties keep the lowest city. A column whose maximum is 0 contributes nothing,
// hence the result may be shorter than n. A nil v yields nil.
//
// Complexity: O(n²).
func ExtractTour(v *matrix.Dense) []int {
	if v == nil {
		return nil
	}
	var (
		rows, cols = v.Rows(), v.Cols()
		data       = v.Data()
		tour       = make([]int, 0, cols)
		x, i, city int
		best       float64
	)
	for i = 0; i < cols; i++ {
		best, city = 0, 0
		for x = 0; x < rows; x++ {
			if data[x*cols+i] > best {
				best, city = data[x*cols+i], x
			}
		}
		if best != 0 {
			tour = append(tour, city)
		}
	}

	return tour
}

// ValidTour reports whether tour visits each of the cities 0..n-1 exactly once.
//
// Complexity: O(n).
func ValidTour(tour []int, n int) bool {
	if len(tour) != n {
		return false
	}
	seen := make([]bool, n)
	for _, c := range tour {
		if c < 0 || c >= n || seen[c] {
			return false
		}
		seen[c] = true
	}

	return true
}
