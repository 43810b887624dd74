package tsp

import (
	"math"

	"github.com/katalvlaran/hopnet/matrix"
)

// MaxExactVertices bounds TSPExact: the DP tables hold n·2ⁿ entries.
const MaxExactVertices = 16

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic‐programming algorithm.
//
// The input is an n×n symmetric matrix dist with zero diagonal and
// non-negative entries. A value of math.Inf(1) represents “no edge.”
//
// It returns a TSResult containing:
//   - Tour: the n cities in visiting order, starting at 0 (closing edge implied).
//   - Cost: total cycle cost.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNonZeroDiagonal,
// ErrNegativeWeight, ErrAsymmetry, ErrTooManyVertices, and
// ErrIncompleteGraph if no Hamiltonian cycle exists.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the vertices in
// mask (mask&1 != 0), and end at j. After filling dp, we “close” the tour by
// returning from j back to 0.
func TSPExact(dist matrix.Matrix) (TSResult, error) {
	n, err := validateDist(dist, true, true)
	if err != nil {
		return TSResult{}, err
	}
	if n > MaxExactVertices {
		return TSResult{}, ErrTooManyVertices
	}
	if n == 1 {
		return TSResult{Tour: []int{0}, Cost: 0}, nil
	}
	d := denseRows(dist, n)

	// --- 1. Allocate flat DP and parent tables ---
	var (
		allMask   = (1 << n) - 1
		startMask = 1
		size      = (allMask + 1) * n
		dp        = make([]float64, size)
		parent    = make([]int8, size)
		mask      int
		j, k      int
	)
	for j = 0; j < size; j++ {
		dp[j] = math.Inf(1)
		parent[j] = -1
	}
	dp[startMask*n+0] = 0

	// --- 2. Fill DP for all masks that include vertex 0 ---
	var (
		prevMask int
		c, cand  float64
	)
	for mask = startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				c = d[k*n+j]
				if math.IsInf(c, 1) || math.IsInf(dp[prevMask*n+k], 1) {
					continue
				}
				cand = dp[prevMask*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	// --- 3. Close the tour by returning to 0 ---
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		c = d[j*n+0]
		if math.IsInf(c, 1) {
			continue
		}
		total = dp[allMask*n+j] + c
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	// --- 4. Reconstruct tour from parent table ---
	tour := make([]int, n)
	mask = allMask
	j = last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		k = int(parent[mask*n+j])
		mask ^= 1 << j
		j = k
	}
	tour[0] = 0

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
