// Package mat2 is a small, generic, row-oriented matrix toolkit.
//
// 🚀 What is inside?
//
//	• matrix/     : Matrix[T]: owned rows, row views, row iterator, equality,
//	                and the elementary row operations (swap, scale, scaled-add)
//	• linsys/     : treat a matrix as a system of linear equations:
//	                Substitute (row-wise dot products), Solve (Gauss–Jordan), Residual
//	• converters/ : copy to and from gonum's mat.Dense / mat.CDense
//
// ✨ Why?
//
//   - Generic over the element type, asking each operation only for the
//     capability it needs (any, comparable, Scalar, Ring, Field).
//   - Row-granular: rows are owned slices, so swaps are O(1) and appending a
//     column never corrupts a neighbouring row.
//   - Explicit failure classes: bad input → error value; broken caller
//     contract (bad index, wrong length) → panic wrapping a sentinel.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	matrix.AddScaled(m, 0, 1, -4) // R1 ← R1 − 4·R0
//	fmt.Print(m)                  // [1, 2, 3]\n[0, -3, -6]\n
//
//	go get github.com/katalvlaran/mat2
package mat2
