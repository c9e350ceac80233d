package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects every row an iterator yields.
func drain[T any](it *matrix.RowIterator[T]) [][]T {
	var out [][]T
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		out = append(out, row)
	}

	return out
}

// TestRowIter_Sequence yields the rows in order, then stays exhausted.
func TestRowIter_Sequence(t *testing.T) {
	x := mustFromRows(t, grid3())
	it := x.RowIter()

	row, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, row)
	row, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{4, 5, 6}, row)
	row, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{7, 8, 9}, row)

	row, ok = it.Next()
	assert.False(t, ok)
	assert.Nil(t, row)
	_, ok = it.Next()
	assert.False(t, ok, "an exhausted iterator stays exhausted")
}

// TestRowIter_Restartable: independent iterators see identical sequences.
func TestRowIter_Restartable(t *testing.T) {
	x := mustFromRows(t, grid3())
	first := drain(x.RowIter())
	second := drain(x.RowIter())
	assert.Equal(t, grid3(), first)
	assert.Equal(t, first, second)
}

// TestRowIter_Empty yields nothing for a matrix without rows.
func TestRowIter_Empty(t *testing.T) {
	assert.Empty(t, drain(matrix.New[int](0, 3).RowIter()))
}

// TestAll_RangeAndBreak covers range-over-func iteration and early exit.
func TestAll_RangeAndBreak(t *testing.T) {
	x := mustFromRows(t, grid3())

	var idx []int
	var got [][]int
	for i, row := range x.All() {
		idx = append(idx, i)
		got = append(got, row)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, grid3(), got)

	var seen int
	for i := range x.All() {
		seen++
		if i == 1 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
