// SPDX-License-Identifier: MIT

// File: test_helpers_test.go - test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppvstat/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the
// non-*Dense materialization path in code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a Dense from a row literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts |a-b| ≤ atol element-wise and equal shapes.
func CompareClose(t testing.TB, a matrix.Matrix, want [][]float64, atol float64) {
	t.Helper()
	require.Equal(t, len(want), a.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), a.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, a, i, j), atol, "(%d,%d)", i, j)
		}
	}
}

// randomSymmetric returns a deterministic n×n symmetric matrix with U(-1,1) entries.
func randomSymmetric(t testing.TB, n int, seed int64) [][]float64 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*2 - 1
			rows[i][j], rows[j][i] = v, v
		}
	}

	return rows
}

// dot returns Σ a[i]·b[i].
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// isNaNSlice reports whether every element of v is NaN.
func isNaNSlice(v []float64) bool {
	for _, x := range v {
		if !math.IsNaN(x) {
			return false
		}
	}

	return true
}
