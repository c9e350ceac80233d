// Package linsys treats a matrix as a system of linear equations.
//
// Each row of a coefficient matrix is one equation; column k holds the
// coefficient of unknown x_k.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mat2/linsys"
//
//	a, _ := matrix.FromRows([][]float64{{2, 1}, {1, 3}})
//
//	// evaluate both equations at x = (1, 2)
//	lhs := linsys.Substitute(a, []float64{1, 2}) // 2×1: [4] [7]
//
//	// solve a·x = b
//	x, err := linsys.Solve(a, []float64{4, 7})
//
// Operations:
//
//   - Substitute: row-wise dot products against a value vector (any Ring).
//     Shape mismatch is a programmer error and panics.
//   - Solve: Gauss–Jordan elimination over a Field, assembled from the
//     matrix row operations. Returns ErrSingular and friends as errors.
//   - Residual: a·x − b, for checking a candidate solution.
//
// Performance:
//
//   - Substitute: O(r·c)
//   - Solve:      O(n³) time, O(n²) memory (one augmented clone)
package linsys
