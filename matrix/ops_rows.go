// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Go methods cannot narrow the receiver's type parameter, so the arithmetic
// row operations are package functions constrained to the capability set
// they need (Scalar for ScaleRow, Ring for AddScaled).
package matrix

// ScaleRow multiplies every element of row i by a, in place, in column order.
// Implementation:
//   - Stage 1: bounds-check i (panics with ErrOutOfRange).
//   - Stage 2: row[k] = row[k] * a for k = 0..Cols()-1.
//
// Complexity:
//   - Time O(c), Space O(1).
func ScaleRow[T Scalar](m *Matrix[T], i int, a T) {
	row := m.rowAt(ctxScaleRow, i)
	for k := range row {
		row[k] *= a
	}
}

// AddScaled performs the row operation R_j ← R_j + a·R_i.
// MAIN DESCRIPTION:
//   - For each column k, computes row[i][k]*a + row[j][k] and stores the
//     resulting sequence as the new row j. Row i is unchanged.
//
// Implementation:
//   - Stage 1: bounds-check i and j (panics with ErrOutOfRange).
//   - Stage 2: build the combined row in fresh storage.
//   - Stage 3: install it as row j.
//
// Behavior highlights:
//   - i == j is legal and yields R_i·(1+a).
//   - Views previously obtained for row j keep pointing at the old storage.
//
// Complexity:
//   - Time O(c), Space O(c).
func AddScaled[T Ring](m *Matrix[T], i, j int, a T) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		fault(ctxAddScaled, ErrOutOfRange, i, j)
	}
	src, dst := m.rows[i], m.rows[j]
	res := make([]T, len(dst))
	for k := range res {
		res[k] = src[k]*a + dst[k]
	}
	m.rows[j] = res
}
