package compare_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopnet/compare"
	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/instance"
	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/tsp"
)

func unitSquare(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := instance.DistanceMatrix([]instance.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return d
}

func quickConfig() compare.Config {
	cfg := compare.DefaultConfig()
	cfg.Seed = 42
	cfg.Hopfield.MaxIterations = 300
	cfg.Hopfield.MaxAttempts = 5

	return cfg
}

func TestRun_Square(t *testing.T) {
	rep, err := compare.Run(unitSquare(t), quickConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, rep.N)
	assert.InDelta(t, 1.0, rep.MinDistance, 1e-12)
	assert.InDelta(t, 1.4142135623730951, rep.MaxDistance, 1e-12)

	names := make([]string, 0, len(rep.Results))
	for _, r := range rep.Results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{compare.SolverHopfield, compare.SolverNearest, compare.SolverTwoOpt, compare.SolverRandom, compare.SolverExact}, names)

	exact, ok := rep.Result(compare.SolverExact)
	require.True(t, ok)
	assert.InDelta(t, 4.0, exact.Length, 1e-9)

	nn, ok := rep.Result(compare.SolverNearest)
	require.True(t, ok)
	assert.True(t, nn.Valid)
	assert.InDelta(t, 4.0, nn.Length, 1e-9, "greedy is optimal on the square")
	require.NotNil(t, nn.Gap)
	assert.InDelta(t, 0.0, *nn.Gap, 1e-9)

	polished, ok := rep.Result(compare.SolverTwoOpt)
	require.True(t, ok)
	assert.LessOrEqual(t, polished.Length, nn.Length+1e-9)

	rnd, ok := rep.Result(compare.SolverRandom)
	require.True(t, ok)
	require.NoError(t, tsp.ValidatePermutation(rnd.Tour, 4))
	assert.GreaterOrEqual(t, rnd.Length, exact.Length-1e-9)

	hop, ok := rep.Result(compare.SolverHopfield)
	require.True(t, ok)
	assert.LessOrEqual(t, hop.Attempts, 5)
	assert.LessOrEqual(t, hop.MinEnergy, hop.FinalEnergy)
	require.NotEmpty(t, hop.Energy)
	assert.Len(t, hop.Energy, hop.Iterations)
	assert.Equal(t, hop.FinalEnergy, hop.Energy[len(hop.Energy)-1])
	if hop.Valid {
		assert.GreaterOrEqual(t, hop.Length, exact.Length-1e-9)
	} else {
		assert.Zero(t, hop.Length)
		assert.Nil(t, hop.Gap)
	}

	best, ok := rep.Best()
	require.True(t, ok)
	assert.InDelta(t, 4.0, best.Length, 1e-9)
}

func TestRun_ExactLimit(t *testing.T) {
	cfg := quickConfig()
	cfg.ExactLimit = 3
	rep, err := compare.Run(unitSquare(t), cfg)
	require.NoError(t, err)
	_, ok := rep.Result(compare.SolverExact)
	assert.False(t, ok)
	for _, r := range rep.Results {
		assert.Nil(t, r.Gap)
	}
}

func TestRun_Deterministic(t *testing.T) {
	pts, err := instance.Generate(6, instance.WithSeed(5))
	require.NoError(t, err)
	d, err := instance.DistanceMatrix(pts)
	require.NoError(t, err)

	a, err := compare.Run(d, quickConfig())
	require.NoError(t, err)
	b, err := compare.Run(d, quickConfig())
	require.NoError(t, err)
	// Wall time is the only field allowed to differ.
	for k := range a.Results {
		a.Results[k].Elapsed, b.Results[k].Elapsed = 0, 0
	}
	assert.Equal(t, a, b)
}

func TestRun_Elapsed(t *testing.T) {
	rep, err := compare.Run(unitSquare(t), quickConfig())
	require.NoError(t, err)
	require.Len(t, rep.Results, 5)
	for _, r := range rep.Results {
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0), r.Name)
	}
	hop, ok := rep.Result(compare.SolverHopfield)
	require.True(t, ok)
	assert.Positive(t, hop.Elapsed, "the network always iterates at least once")
}

func TestRun_Parallel(t *testing.T) {
	cfg := quickConfig()
	cfg.Runs, cfg.Workers = 3, 1 // one worker: the hook below is not synchronized
	attempts := 0
	cfg.Hook = func(hopfield.Attempt) { attempts++ }

	rep, err := compare.Run(unitSquare(t), cfg)
	require.NoError(t, err)
	hop, ok := rep.Result(compare.SolverHopfield)
	require.True(t, ok)
	assert.Positive(t, attempts)
	assert.LessOrEqual(t, hop.Attempts, 5)
}

func TestRun_Errors(t *testing.T) {
	_, err := compare.Run(nil, quickConfig())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	one, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	_, err = compare.Run(one, quickConfig())
	require.ErrorIs(t, err, instance.ErrTooFewPoints)

	asym, err := matrix.NewDenseFrom([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	_, err = compare.Run(asym, quickConfig())
	require.ErrorIs(t, err, hopfield.ErrInvalidInput)

	cfg := quickConfig()
	cfg.Hopfield.U0 = 0
	_, err = compare.Run(unitSquare(t), cfg)
	require.ErrorIs(t, err, hopfield.ErrConfiguration)

	pts, err := instance.Generate(tsp.MaxExactVertices+1, instance.WithSeed(1))
	require.NoError(t, err)
	big, err := instance.DistanceMatrix(pts)
	require.NoError(t, err)
	cfg = quickConfig()
	cfg.Hopfield.MaxAttempts, cfg.Hopfield.MaxIterations = 1, 1
	cfg.ExactLimit = tsp.MaxExactVertices + 1
	_, err = compare.Run(big, cfg)
	require.ErrorIs(t, err, tsp.ErrTooManyVertices)
}

func TestReport_JSON(t *testing.T) {
	rep, err := compare.Run(unitSquare(t), quickConfig())
	require.NoError(t, err)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Contains(t, generic, "results")
	assert.Contains(t, generic, "min_distance")
	results, ok := generic["results"].([]any)
	require.True(t, ok)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, first, "elapsed_ns")
	assert.Contains(t, first, "energy")
}

func TestReport_BestEmpty(t *testing.T) {
	_, ok := compare.Report{Results: []compare.SolverReport{{Name: "x"}}}.Best()
	assert.False(t, ok)
}
