// SPDX-License-Identifier: MIT

// Package matrix - row-owned dense storage & row accessors.
//
// Purpose:
//   - Keep one owned slice per row so rows can be swapped, replaced and grown independently.
//   - Clip every stored row to len==cap so append in AddColumn never writes into
//     memory shared with another row or with a caller's backing array.
//   - Keep the cached column count in sync on every shape-changing call.
//
// Complexity quicksheet:
//   - New/NewWith: O(r*c); Row/RowChecked/SwapRows: O(1); SetRow: O(1);
//     AddColumn: O(r) amortized; Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a rectangular grid of T stored as owned rows.
//   - rows[i] is row i; len(rows) == r and len(rows[i]) == c for all i.
//   - c is cached so that 0×c shapes keep their width.
type Matrix[T any] struct {
	rows [][]T // owned row storage, each clipped to len==cap
	r, c int   // row and column counts
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates an n×m matrix filled with T's zero value.
// MAIN DESCRIPTION:
//   - Allocating constructor; the zero value is T's default.
//
// Implementation:
//   - Stage 1: validate n>=0 && m>=0.
//   - Stage 2: allocate one flat buffer and cut it into clipped rows.
//
// Behavior highlights:
//   - n==0 or m==0 yields a degenerate but consistent matrix.
//
// Inputs:
//   - n, m: row and column counts (>= 0).
//
// Returns:
//   - *Matrix[T]: newly allocated, zero-filled matrix.
//
// Errors:
//   - Panics with ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func New[T any](n, m int) *Matrix[T] {
	if n < 0 || m < 0 {
		fault(ctxNew, ErrBadShape, n, m)
	}

	return &Matrix[T]{rows: carve(make([]T, n*m), n, m), r: n, c: m}
}

// NewWith creates an n×m matrix where cell (i, j) holds f(i, j).
// MAIN DESCRIPTION:
//   - Generating constructor; each cell comes from a caller-supplied function.
//
// Implementation:
//   - Stage 1: validate n>=0 && m>=0.
//   - Stage 2: carve clipped rows from one flat buffer.
//   - Stage 3: fill row-major: rows outer, columns inner.
//
// Behavior highlights:
//   - f is called exactly once per cell and is expected to be pure; the
//     visitation order is fixed but callers should not depend on it.
//
// Inputs:
//   - n, m: row and column counts (>= 0).
//   - f: generator from (row, col) to the cell value.
//
// Returns:
//   - *Matrix[T]: newly allocated matrix.
//
// Errors:
//   - Panics with ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(n*m) plus n*m calls to f, Space O(n*m).
func NewWith[T any](n, m int, f func(i, j int) T) *Matrix[T] {
	if n < 0 || m < 0 {
		fault(ctxNewWith, ErrBadShape, n, m)
	}
	rows := carve(make([]T, n*m), n, m)
	var i, j int
	for i = 0; i < n; i++ { // rows outer
		for j = 0; j < m; j++ { // columns inner
			rows[i][j] = f(i, j)
		}
	}

	return &Matrix[T]{rows: rows, r: n, c: m}
}

// FromRows builds a matrix from nested rows.
// MAIN DESCRIPTION:
//   - Validating conversion; the only constructor with a recoverable failure path.
//
// Implementation:
//   - Stage 1: reject empty input (ErrEmpty).
//   - Stage 2: every row must match len(rows[0]) (ErrRagged).
//   - Stage 3: adopt (default) or copy (WithCopy) the row storage.
//
// Behavior highlights:
//   - Adoption is zero-copy for elements; the outer slice is always fresh and
//     each row is clipped, so later appends never reach the caller's arrays.
//   - On failure the result is nil; the input is left untouched.
//
// Inputs:
//   - rows: non-empty, rectangular nested rows.
//   - opts: WithCopy / WithAdopt.
//
// Returns:
//   - *Matrix[T]: the adopted or copied matrix, or nil on failure.
//
// Errors:
//   - ErrEmpty, ErrRagged (wrapped with the offending row index).
//
// Complexity:
//   - Time O(r) adopt / O(r*c) copy.
func FromRows[T any](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	o := gatherOptions(opts...)

	width := len(rows[0])
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(rows[i]), width, ErrRagged)
		}
	}

	owned := make([][]T, len(rows))
	for i = range rows {
		if o.copyRows {
			owned[i] = append(make([]T, 0, width), rows[i]...)
		} else {
			owned[i] = clip(rows[i])
		}
	}

	return &Matrix[T]{rows: owned, r: len(rows), c: width}, nil
}

// Dimensions returns (cols, rows). The column count comes FIRST.
// Complexity: O(1).
func (m *Matrix[T]) Dimensions() (cols, rows int) { return m.c, m.r }

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Row returns a borrowed view of row i.
// Writes through the view are visible in the matrix; appends are not.
// The view is invalidated by SetRow/SwapRows/AddColumn/AddScaled.
// Panics with ErrOutOfRange if i is outside [0, Rows()).
func (m *Matrix[T]) Row(i int) []T {
	return m.rowAt(ctxRow, i)
}

// RowChecked is Row without the panic: it reports ok=false when i is out of range.
func (m *Matrix[T]) RowChecked(i int) ([]T, bool) {
	if i < 0 || i >= m.r {
		return nil, false
	}

	return m.rows[i], true
}

// CopyRow returns an owned copy of row i. Panics with ErrOutOfRange.
func (m *Matrix[T]) CopyRow(i int) []T {
	src := m.rowAt(ctxCopyRow, i)

	return append(make([]T, 0, len(src)), src...)
}

// SetRow replaces row i with row, taking ownership of its storage.
// The caller must not keep writing to row afterwards unless that aliasing is intended.
// Panics with ErrOutOfRange for a bad index and ErrDimensionMismatch
// when len(row) != Cols(); the matrix shape never drifts.
func (m *Matrix[T]) SetRow(i int, row []T) {
	m.rowAt(ctxSetRow, i)
	if len(row) != m.c {
		fault(ctxSetRow, ErrDimensionMismatch, i, len(row))
	}
	m.rows[i] = clip(row)
}

// SwapRows exchanges rows i and j in place. O(1): only row headers move.
// Panics with ErrOutOfRange if either index is invalid.
func (m *Matrix[T]) SwapRows(i, j int) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		fault(ctxSwapRows, ErrOutOfRange, i, j)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// AddColumn appends values[i] to row i for every row and grows Cols() by one.
// MAIN DESCRIPTION:
//   - Augments the matrix with a trailing column (e.g. the right-hand side of a system).
//
// Implementation:
//   - Stage 1: require len(values) == Rows().
//   - Stage 2: append per row; rows are clipped so each append reallocates privately.
//   - Stage 3: bump the cached column count.
//
// Errors:
//   - Panics with ErrDimensionMismatch on a length mismatch; the matrix is unchanged.
//
// Complexity:
//   - Time O(r*c) worst case (reallocation), Space O(r*c).
func (m *Matrix[T]) AddColumn(values []T) {
	if len(values) != m.r {
		fault(ctxAddColumn, ErrDimensionMismatch, len(values), m.r)
	}
	for i, v := range values {
		m.rows[i] = clip(append(m.rows[i], v))
	}
	m.c++
}

// Clone returns a deep copy with independent storage.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := carve(make([]T, m.r*m.c), m.r, m.c)
	for i := range m.rows {
		copy(rows[i], m.rows[i])
	}

	return &Matrix[T]{rows: rows, r: m.r, c: m.c}
}

// String renders one bracketed, comma-separated line per row.
// Intended for diagnostics and examples, not hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.rows[i][j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// rowAt is the single bounds check behind every panicking row accessor.
func (m *Matrix[T]) rowAt(method string, i int) []T {
	if i < 0 || i >= m.r {
		fault(method, ErrOutOfRange, i)
	}

	return m.rows[i]
}

// carve cuts buf into n clipped rows of width w.
func carve[T any](buf []T, n, w int) [][]T {
	rows := make([][]T, n)
	var lo int
	for i := range rows {
		lo = i * w
		rows[i] = buf[lo : lo+w : lo+w]
	}

	return rows
}

// clip drops spare capacity so append always reallocates.
func clip[T any](s []T) []T { return s[:len(s):len(s)] }
