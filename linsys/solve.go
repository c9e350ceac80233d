// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/katalvlaran/mat2/matrix"
)

// Solve returns x with a·x = b using Gauss–Jordan elimination.
// MAIN DESCRIPTION:
//   - Works on an augmented clone [a | b] using only matrix row operations,
//     so neither a nor b is modified.
//
// Implementation:
//   - Stage 1: validate a != nil, a square, len(b) == rows.
//   - Stage 2: aug := a.Clone(); aug.AddColumn(copy of b).
//   - Stage 3: for each column: choose a pivot row (largest magnitude when
//     pivoting, the diagonal otherwise), SwapRows it into place, ScaleRow it
//     to 1, then AddScaled it out of every other row.
//   - Stage 4: read x from the last column.
//
// Behavior highlights:
//   - A 0×0 system has the empty solution.
//   - Pivot scan is top-to-bottom; the first maximum wins on ties.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (shape),
//     ErrSingular (|pivot| <= eps), each wrapped with context.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve[T matrix.Field](a *matrix.Matrix[T], b []T, opts ...Option) ([]T, error) {
	// Stage 1: validate
	if a == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilMatrix)
	}
	cols, n := a.Dimensions()
	if cols != n {
		return nil, fmt.Errorf("Solve: %dx%d: %w", n, cols, ErrNonSquare)
	}
	if len(b) != n {
		return nil, fmt.Errorf("Solve: %d right-hand values for %d rows: %w", len(b), n, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	// Stage 2: augment
	aug := a.Clone()
	aug.AddColumn(append(make([]T, 0, n), b...))

	// Stage 3: eliminate
	var (
		col, r, p int
		best, mag float64
		pivot, f  T
	)
	for col = 0; col < n; col++ {
		p = col
		best = magnitude(aug.Row(col)[col])
		if o.pivoting {
			for r = col + 1; r < n; r++ {
				if mag = magnitude(aug.Row(r)[col]); mag > best {
					p, best = r, mag
				}
			}
		}
		if !(best > o.eps) { // NaN pivots are singular too
			return nil, fmt.Errorf("Solve: pivot %g at column %d: %w", best, col, ErrSingular)
		}
		if p != col {
			aug.SwapRows(p, col)
		}

		pivot = aug.Row(col)[col]
		matrix.ScaleRow(aug, col, 1/pivot)
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			if f = aug.Row(r)[col]; f != 0 {
				matrix.AddScaled(aug, col, r, -f)
			}
		}
	}

	// Stage 4: read the solution column
	x := make([]T, n)
	for r = range x {
		x[r] = aug.Row(r)[n]
	}

	return x, nil
}

// magnitude returns |v| for any Field element. Built-in kinds take a type
// switch; named types such as `type Volts float64` fall back to reflect.
func magnitude[T matrix.Field](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex128:
		return cmplx.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	default:
		return math.Abs(rv.Float())
	}
}
