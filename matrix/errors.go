// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// FromRows returns these directly. Mutators panic with an error value that
// wraps one of them, so a recover() site can still match via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by FromRows when no rows are supplied.
	ErrEmpty = errors.New("matrix: no rows")

	// ErrRagged is returned by FromRows when rows differ in length.
	ErrRagged = errors.New("matrix: rows differ in length")

	// ErrBadShape is the panic cause for negative dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange is the panic cause for a row index outside [0, Rows()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is the panic cause for a row or column whose
	// length does not fit the matrix shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxNewWith   = "NewWith"
	ctxFromRows  = "FromRows"
	ctxRow       = "Row"
	ctxCopyRow   = "CopyRow"
	ctxSetRow    = "SetRow"
	ctxSwapRows  = "SwapRows"
	ctxAddColumn = "AddColumn"
	ctxScaleRow  = "ScaleRow"
	ctxAddScaled = "AddScaled"
)

// matrixErrorf wraps err with the method tag and its integer arguments,
// e.g. "Matrix.SwapRows(0,7): matrix: index out of range".
func matrixErrorf(method string, err error, args ...int) error {
	var b []byte
	for i, a := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", a)
	}

	return fmt.Errorf("Matrix.%s(%s): %w", method, b, err)
}

// fault panics with a wrapped sentinel. Reserved for contract violations.
func fault(method string, err error, args ...int) {
	panic(matrixErrorf(method, err, args...))
}
