// SPDX-License-Identifier: MIT

package matrix

import "iter"

// RowIterator walks the rows of a Matrix in index order.
// It holds a cursor and re-queries the matrix on each step, so it never
// copies storage. Do not mutate the matrix while an iterator is in use.
// An exhausted iterator stays exhausted; call RowIter again to restart.
type RowIterator[T any] struct {
	m *Matrix[T] // borrowed owner
	i int        // next row to yield
}

// RowIter returns a fresh iterator positioned at row 0.
// MAIN DESCRIPTION:
//   - Lazy, finite walk over borrowed row views in index order 0..Rows()-1.
//
// Behavior highlights:
//   - Each call creates an independent cursor; this is how a walk restarts.
//   - No storage is copied; views follow the Row aliasing rules.
//
// Returns:
//   - *RowIterator[T]: iterator bound to m.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) RowIter() *RowIterator[T] {
	return &RowIterator[T]{m: m}
}

// Next returns the next row view and advances the cursor.
// MAIN DESCRIPTION:
//   - Re-queries the matrix via RowChecked, so reaching the end never panics.
//
// Returns:
//   - ([]T, true): borrowed view of the next row.
//   - (nil, false): once Rows() rows were yielded; stays exhausted afterwards.
//
// Complexity:
//   - Time O(1), Space O(1).
func (it *RowIterator[T]) Next() ([]T, bool) {
	row, ok := it.m.RowChecked(it.i)
	if ok {
		it.i++
	}

	return row, ok
}

// All returns a range-over-func sequence of (index, row view) pairs.
// MAIN DESCRIPTION:
//   - Adapter over RowIter for use with range:
//
//	for i, row := range m.All() { ... }
//
// Behavior highlights:
//   - Breaking out of the loop stops the walk immediately.
//   - Each range statement starts a fresh walk from row 0.
//
// Returns:
//   - iter.Seq2[int, []T]: index and borrowed row view.
//
// Complexity:
//   - Time O(r) for a full walk, Space O(1).
func (m *Matrix[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		it := m.RowIter()
		for i := 0; ; i++ {
			row, ok := it.Next()
			if !ok || !yield(i, row) {
				return
			}
		}
	}
}
