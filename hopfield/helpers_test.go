package hopfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/instance"
	"github.com/katalvlaran/hopnet/matrix"
)

const seedDet = int64(42)

// unitSquare returns the distance matrix of the corners of the unit square,
// listed in perimeter order.
func unitSquare(t testing.TB) *matrix.Dense {
	t.Helper()
	d, err := instance.DistanceMatrix([]instance.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return d
}

// randomInstance returns the distances of n seeded random points.
func randomInstance(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	pts, err := instance.Generate(n, instance.WithSeed(seed))
	require.NoError(t, err)
	d, err := instance.DistanceMatrix(pts)
	require.NoError(t, err)

	return d
}

// permutationOutputs builds V with V[tour[i]][i] = 1.
func permutationOutputs(t testing.TB, tour []int) *matrix.Dense {
	t.Helper()
	v, err := matrix.NewDense(len(tour), len(tour))
	require.NoError(t, err)
	for i, city := range tour {
		require.NoError(t, v.Set(city, i, 1))
	}

	return v
}

// permutations lists every permutation of 0..n-1 (Heap's algorithm).
func permutations(n int) [][]int {
	var (
		out []int
		all [][]int
		gen func(k int)
	)
	out = make([]int, n)
	for i := range out {
		out[i] = i
	}
	gen = func(k int) {
		if k == 1 {
			all = append(all, append([]int(nil), out...))
			return
		}
		for i := 0; i < k-1; i++ {
			gen(k - 1)
			if k%2 == 0 {
				out[i], out[k-1] = out[k-1], out[i]
			} else {
				out[0], out[k-1] = out[k-1], out[0]
			}
		}
		gen(k - 1)
	}
	gen(n)

	return all
}

// quick keeps test runtimes small.
func quick() []hopfield.Option {
	return []hopfield.Option{
		hopfield.WithSeed(seedDet),
		hopfield.WithMaxIterations(300),
		hopfield.WithMaxAttempts(10),
	}
}
