// SPDX-License-Identifier: MIT

package hopfield

import "errors"

var (
	// ErrInvalidInput indicates a distance matrix the network cannot be built
	// on: nil, empty, non-square, negative, non-finite, non-zero diagonal or
	// asymmetric. The matrix sentinel describing the violation is wrapped too.
	ErrInvalidInput = errors.New("hopfield: invalid input")

	// ErrConfiguration indicates unusable hyperparameters, most importantly a
	// zero gain u0 (the squashing function divides by it).
	ErrConfiguration = errors.New("hopfield: invalid configuration")
)
