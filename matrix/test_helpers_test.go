// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the row-operation tests.
//   • Assert panics by sentinel so tests never match on message text.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/require"
)

// grid3 is the 3×3 fixture used across tests: rows 1..3, 4..6, 7..9.
func grid3() [][]int {
	return [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
}

// mustFromRows builds a matrix or fails the test immediately.
func mustFromRows[T any](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)

	return m
}

// requirePanicsIs runs fn and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value must be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
