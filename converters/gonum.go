// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mat2/matrix"
)

// ToDense copies m into a new gonum *mat.Dense, converting elements to float64.
// Implementation:
//   - Stage 1: reject nil and zero-area shapes (mat.NewDense panics on them).
//   - Stage 2: flatten rows into a row-major buffer owned by the result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToDense[T matrix.Real](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrNilMatrix)
	}
	cols, rows := m.Dimensions()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ToDense: %dx%d: %w", rows, cols, ErrEmptyMatrix)
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range m.All() {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromDense copies any gonum mat.Matrix into a new matrix.Matrix[float64].
// Complexity: O(r*c) calls to d.At.
func FromDense(d mat.Matrix) *matrix.Matrix[float64] {
	r, c := d.Dims()

	return matrix.NewWith(r, c, d.At)
}

// ToVecDense copies v into a new gonum *mat.VecDense.
func ToVecDense[T matrix.Real](v []T) (*mat.VecDense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("ToVecDense: %w", ErrEmptyMatrix)
	}
	data := make([]float64, len(v))
	for i, x := range v {
		data[i] = float64(x)
	}

	return mat.NewVecDense(len(v), data), nil
}

// ToCDense copies a complex-valued matrix into a new gonum *mat.CDense.
func ToCDense[T matrix.Complex](m *matrix.Matrix[T]) (*mat.CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToCDense: %w", ErrNilMatrix)
	}
	cols, rows := m.Dimensions()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ToCDense: %dx%d: %w", rows, cols, ErrEmptyMatrix)
	}

	data := make([]complex128, 0, rows*cols)
	for _, row := range m.All() {
		for _, v := range row {
			data = append(data, complex128(v))
		}
	}

	return mat.NewCDense(rows, cols, data), nil
}

// FromCDense copies any gonum mat.CMatrix into a new matrix.Matrix[complex128].
func FromCDense(c mat.CMatrix) *matrix.Matrix[complex128] {
	r, k := c.Dims()

	return matrix.NewWith(r, k, c.At)
}
