// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b have the same shape and equal elements.
// MAIN DESCRIPTION:
//   - Structural (deep) equality: same row count, same column count and
//     pairwise-equal elements in every row.
//
// Behavior highlights:
//   - Reflexive, symmetric and transitive for comparable T.
//   - Two nil matrices are equal; a nil and a non-nil matrix are not.
//   - 0×2 and 0×3 differ: the column count is part of the shape.
//
// Inputs:
//   - a, b: matrices to compare (either may be nil).
//
// Returns:
//   - bool: true iff shapes and all elements match.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal[T comparable](a, b *Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
// MAIN DESCRIPTION:
//   - Same shape rules as Equal; elements are compared with eq, e.g. a
//     tolerance check for floating-point data.
//
// Implementation:
//   - Stage 1: resolve nil operands.
//   - Stage 2: compare (rows, cols).
//   - Stage 3: row-major scan, stopping at the first eq==false.
//
// Inputs:
//   - a, b: matrices to compare (either may be nil).
//   - eq: element predicate; should be symmetric for Equal-like semantics.
//
// Returns:
//   - bool: true iff shapes match and eq holds for every cell pair.
//
// Complexity:
//   - Time O(r*c) calls to eq, Space O(1).
func EqualFunc[T any](a, b *Matrix[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var i, k int
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			if !eq(a.rows[i][k], b.rows[i][k]) {
				return false
			}
		}
	}

	return true
}
