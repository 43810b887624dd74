// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom covers the literal constructor: happy path, ragged rows, NaN.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{4, 5, 6}, m.Row(1))

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSet_OutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSet_RejectsNonFinite checks the numeric guard on Set.
func TestSet_RejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestRow_Aliases verifies that Row and Data alias the backing buffer.
func TestRow_Aliases(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	r := m.Row(1)
	r[2] = 9
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
	require.Equal(t, 9.0, m.Data()[5])

	// the row slice must not be able to grow into the next row
	require.Equal(t, 3, cap(m.Row(0)))
}

// TestFillCopyFrom covers Fill and CopyFrom including the shape guard.
func TestFillCopyFrom(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 2)
	a.Fill(0.5)
	require.NoError(t, b.CopyFrom(a))
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, b.Data())

	c, _ := matrix.NewDense(3, 2)
	require.ErrorIs(t, c.CopyFrom(a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, c.CopyFrom(nil), matrix.ErrNilMatrix)
}

// TestClone_Independence ensures Clone() returns a deep copy that does not share storage.
func TestClone_Independence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	orig, _ := m.At(0, 0)
	cl, _ := clone.At(0, 0)
	require.Equal(t, 1.0, orig)
	require.Equal(t, 3.0, cl)
}

// TestString checks that String() formats the matrix as expected.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
