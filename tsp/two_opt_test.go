package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopnet/tsp"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	d := euclid(t, square())
	in := []int{0, 2, 1, 3}

	out, cost, err := tsp.TwoOpt(d, in, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, out)
	assert.InDelta(t, 4.0, cost, epsTiny)
	assert.Equal(t, []int{0, 2, 1, 3}, in, "input is not modified")
}

func TestTwoOpt_ImprovesNearestNeighbor(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	for trial := 0; trial < 10; trial++ {
		d := euclid(t, randomPoints(rng, 12))
		nn, err := tsp.NearestNeighborFrom(d, 0)
		require.NoError(t, err)
		nnCost, err := tsp.TourLength(d, nn)
		require.NoError(t, err)

		out, cost, err := tsp.TwoOpt(d, nn, 0)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidatePermutation(out, 12))
		assert.Equal(t, 0, out[0])
		assert.LessOrEqual(t, cost, nnCost+epsTiny)

		opt, err := tsp.TSPExact(d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cost, opt.Cost-epsTiny)

		// A local optimum is a fixed point.
		again, againCost, err := tsp.TwoOpt(d, out, 0)
		require.NoError(t, err)
		assert.Equal(t, out, again)
		assert.InDelta(t, cost, againCost, epsTiny)
	}
}

func TestTwoOpt_MoveCap(t *testing.T) {
	d := testDense{a: cycleRows(8)}
	in := []int{0, 4, 1, 5, 2, 6, 3, 7}
	inCost, err := tsp.TourLength(d, in)
	require.NoError(t, err)

	_, capped, err := tsp.TwoOpt(d, in, 1)
	require.NoError(t, err)
	_, full, err := tsp.TwoOpt(d, in, 0)
	require.NoError(t, err)
	assert.Less(t, capped, inCost)
	assert.LessOrEqual(t, full, capped)
}

func TestTwoOpt_Errors(t *testing.T) {
	d := euclid(t, square())
	_, _, err := tsp.TwoOpt(d, []int{0, 1, 1, 3}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.TwoOpt(d, []int{0, 1, 2}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.TwoOpt(nil, []int{0}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	inf := testDense{a: [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}}
	_, _, err = tsp.TwoOpt(inf, []int{0, 1}, 0)
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)
}
