// SPDX-License-Identifier: MIT

package hopfield

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hopnet/matrix"
)

// OutputActivation is the squashing function g(u) = ½·(1 + tanh(u/u0)).
// The result lies in [0, 1]. u0 must be non-zero: OutputActivation does not
// check it and yields NaN for u0 == 0. ComputeOutputs and New reject a zero
// gain with ErrConfiguration.
func OutputActivation(u, u0 float64) float64 {
	return 0.5 * (1 + math.Tanh(u/u0))
}

// ComputeOutputs writes g(U) element-wise into V. U is not modified.
//
// Errors: ErrConfiguration for u0 == 0 or a non-finite u0, ErrInvalidInput
// when either matrix is nil or the shapes differ.
// Complexity: O(n²).
func ComputeOutputs(u, v *matrix.Dense, u0 float64) error {
	if u0 == 0 || math.IsNaN(u0) || math.IsInf(u0, 0) {
		return fmt.Errorf("ComputeOutputs: %w: gain u0 must be non-zero and finite", ErrConfiguration)
	}
	if u == nil || v == nil {
		return fmt.Errorf("ComputeOutputs: %w: nil matrix", ErrInvalidInput)
	}
	if u.Rows() != v.Rows() || u.Cols() != v.Cols() {
		return fmt.Errorf("ComputeOutputs: %w: shape %dx%d vs %dx%d",
			ErrInvalidInput, u.Rows(), u.Cols(), v.Rows(), v.Cols())
	}
	computeOutputs(u.Data(), v.Data(), u0)

	return nil
}

func computeOutputs(u, v []float64, u0 float64) {
	for k := range u {
		v[k] = OutputActivation(u[k], u0)
	}
}
