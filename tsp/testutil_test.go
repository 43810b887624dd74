// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for float comparisons of rounded costs.
	epsTiny = 1e-8

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)
)

// testDense is a simple [][]float64 matrix with bounds-checked At/Set and deep
// Clone. It exercises the generic (non-*Dense) code paths.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// euclidRows builds the symmetric Euclidean distance rows for pts.
func euclidRows(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d // mirror to keep exact symmetry
		}
	}

	return a
}

// euclid returns the Euclidean distance matrix as *matrix.Dense (fast paths).
func euclid(t *testing.T, pts [][2]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(euclidRows(pts))
	require.NoError(t, err)

	return m
}

// square is the unit square (0,0),(1,0),(1,1),(0,1): optimum cycle length 4.
func square() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// randomPoints draws n points uniformly in the unit square.
func randomPoints(rng *rand.Rand, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	return pts
}

// cycleRows returns distances along a ring: d(i,j)=min(|i-j|, n-|i-j|).
// The optimum cycle has cost n.
func cycleRows(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			d := math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// Repeat runs fn n times as subtests to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}
