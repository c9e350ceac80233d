// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"

	"github.com/katalvlaran/mat2/matrix"
)

var (
	// ErrNilMatrix indicates a nil coefficient matrix.
	ErrNilMatrix = errors.New("linsys: nil matrix")

	// ErrNonSquare indicates Solve was given a matrix with rows != cols.
	ErrNonSquare = errors.New("linsys: matrix is not square")

	// ErrSingular indicates no pivot larger than the tolerance was found.
	ErrSingular = errors.New("linsys: singular matrix")
)

// ErrDimensionMismatch is shared with package matrix so one errors.Is check
// covers shape faults from either package.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch
