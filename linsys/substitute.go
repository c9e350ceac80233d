// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/mat2/matrix"
)

// Substitute evaluates every equation of m at the given values.
// MAIN DESCRIPTION:
//   - Row n of the result is Σ_k values[k]·m[n][k] over the row's own
//     elements, accumulated from T's zero value in column order.
//     The result is a new rows×1 matrix; m is not touched.
//
// Implementation:
//   - Stage 1: read (cols, rows) from m.Dimensions(); require len(values) == rows.
//   - Stage 2: require cols <= len(values) so every coefficient has a value.
//   - Stage 3: build the single-column result with matrix.NewWith.
//
// Behavior highlights:
//   - A matrix narrower than values is legal; trailing values are unused.
//
// Inputs:
//   - m: coefficient matrix, one equation per row.
//   - values: one value per row of m.
//
// Returns:
//   - *matrix.Matrix[T]: rows×1 matrix of evaluated equations.
//
// Errors:
//   - Panics with an error wrapping ErrDimensionMismatch on either shape check,
//     and with ErrNilMatrix for a nil m. These are caller contract violations.
//
// Complexity:
//   - Time O(r·c), Space O(r).
func Substitute[T matrix.Ring](m *matrix.Matrix[T], values []T) *matrix.Matrix[T] {
	if m == nil {
		panic(fmt.Errorf("Substitute: %w", ErrNilMatrix))
	}
	cols, rows := m.Dimensions()
	if len(values) != rows {
		panic(fmt.Errorf("Substitute: %d values for %d rows: %w", len(values), rows, ErrDimensionMismatch))
	}
	if rows > 0 && cols > len(values) {
		panic(fmt.Errorf("Substitute: %d values for %d columns: %w", len(values), cols, ErrDimensionMismatch))
	}

	return matrix.NewWith(rows, 1, func(n, _ int) T {
		return dot(m.Row(n), values)
	})
}

// Residual returns a·x − b, one entry per equation.
// MAIN DESCRIPTION:
//   - Evaluates each row of a against x and subtracts b; a zero (or
//     near-zero) residual confirms x solves a·x = b.
//
// Behavior highlights:
//   - Works for any r×c system: x carries one value per column, b one per row.
//
// Errors:
//   - Panics wrapping ErrNilMatrix for a nil a, and ErrDimensionMismatch
//     when len(x) != Cols() or len(b) != Rows().
//
// Complexity:
//   - Time O(r·c), Space O(r).
func Residual[T matrix.Ring](a *matrix.Matrix[T], x, b []T) []T {
	if a == nil {
		panic(fmt.Errorf("Residual: %w", ErrNilMatrix))
	}
	cols, rows := a.Dimensions()
	if len(x) != cols {
		panic(fmt.Errorf("Residual: %d unknowns for %d columns: %w", len(x), cols, ErrDimensionMismatch))
	}
	if len(b) != rows {
		panic(fmt.Errorf("Residual: %d right-hand values for %d rows: %w", len(b), rows, ErrDimensionMismatch))
	}
	out := make([]T, rows)
	for i, row := range a.All() {
		out[i] = dot(row, x) - b[i]
	}

	return out
}

// dot is Σ_k v[k]·row[k] starting from the zero value.
func dot[T matrix.Ring](row, v []T) T {
	var acc T
	for k, c := range row {
		acc += v[k] * c
	}

	return acc
}
