// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ppvstat/matrix"
)

func TestEigenSym_Diagonal(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 0, 0}, {0, 3, 0}, {0, 0, 2}})
	vals, q, err := matrix.EigenSym(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2}, vals, "already diagonal: no rotation")

	sorted, vecs := matrix.SortEigenDesc(vals, q)
	assert.Equal(t, []float64{3, 2, 1}, sorted)
	assert.Equal(t, []float64{0, 1, 0}, vecs[0])
	assert.Equal(t, []float64{0, 0, 1}, vecs[1])
	assert.Equal(t, []float64{1, 0, 0}, vecs[2])
}

func TestEigenSym_2x2Closed(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenpairs 3:(1,1)/√2 and 1:(1,-1)/√2.
	vals, q, err := matrix.EigenSym(MustRows(t, [][]float64{{2, 1}, {1, 2}}), 1e-14, 50)
	require.NoError(t, err)
	sorted, vecs := matrix.SortEigenDesc(vals, q)
	assert.InDelta(t, 3, sorted[0], 1e-12)
	assert.InDelta(t, 1, sorted[1], 1e-12)
	s := 1 / math.Sqrt2
	assert.InDelta(t, s, vecs[0][0], 1e-12)
	assert.InDelta(t, s, vecs[0][1], 1e-12)
	assert.InDelta(t, 0, dot(vecs[0], vecs[1]), 1e-12)
}

// TestEigenSym_MatchesGonum cross-checks eigenvalues and the eigen equation
// A·v = λ·v against gonum's LAPACK-backed EigenSym on random inputs.
func TestEigenSym_MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 8, 20, 40} {
		rows := randomSymmetric(t, n, int64(100+n))
		m := MustRows(t, rows)

		vals, q, err := matrix.EigenSym(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
		require.NoError(t, err, "n=%d", n)
		sorted, vecs := matrix.SortEigenDesc(vals, q)

		flat := make([]float64, 0, n*n)
		for _, r := range rows {
			flat = append(flat, r...)
		}
		var es mat.EigenSym
		require.True(t, es.Factorize(mat.NewSymDense(n, flat), true))
		ref := es.Values(nil)
		sort.Sort(sort.Reverse(sort.Float64Slice(ref)))

		for k := 0; k < n; k++ {
			assert.InDelta(t, ref[k], sorted[k], 1e-9, "n=%d k=%d", n, k)

			av, err := matrix.MatVec(m, vecs[k])
			require.NoError(t, err)
			for i := range av {
				assert.InDelta(t, sorted[k]*vecs[k][i], av[i], 1e-9)
			}
			assert.InDelta(t, 1, matrix.Norm(vecs[k]), 1e-10)
		}
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				assert.InDelta(t, 0, dot(vecs[a], vecs[b]), 1e-9)
			}
		}
	}
}

func TestEigenSym_ScaleInvariantConvergence(t *testing.T) {
	t.Parallel()

	// Large physical scales must converge under the relative tolerance.
	m := MustRows(t, [][]float64{{4e12, 1e12, 2e11}, {1e12, 3e12, 5e11}, {2e11, 5e11, 1e12}})
	_, _, err := matrix.EigenSym(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
}

func TestEigenSym_SweepBudget(t *testing.T) {
	t.Parallel()

	// A 2×2 is diagonalized by the single rotation of one sweep.
	_, _, err := matrix.EigenSym(MustRows(t, [][]float64{{2, 1}, {1, 2}}), matrix.DefaultEigenTol, 1)
	require.NoError(t, err)

	// 40×40 needs tens of thousands of rotations but only a handful of sweeps.
	_, _, err = matrix.EigenSym(MustRows(t, randomSymmetric(t, 40, 41)), matrix.DefaultEigenTol, 20)
	require.NoError(t, err)
}

func TestEigenSym_NonFiniteIsData(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	vals, q, err := matrix.EigenSym(MustRows(t, [][]float64{{nan, nan}, {nan, nan}}), 1e-12, 10)
	require.NoError(t, err)
	assert.True(t, isNaNSlice(vals))
	sorted, vecs := matrix.SortEigenDesc(vals, q)
	assert.True(t, isNaNSlice(sorted))
	assert.True(t, isNaNSlice(vecs[0]))
	assert.True(t, isNaNSlice(vecs[1]))
}

func TestEigenSym_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.EigenSym(MustRows(t, [][]float64{{1, 2}, {0, 1}}), 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(MustRows(t, [][]float64{{1, 2, 3}}), 1e-12, 10)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.EigenSym(MustRows(t, randomSymmetric(t, 6, 7)), 1e-12, 1)
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestSortEigenDesc_SignConvention(t *testing.T) {
	t.Parallel()

	q := MustRows(t, [][]float64{{-0.6, 0.8}, {-0.8, -0.6}})
	sorted, vecs := matrix.SortEigenDesc([]float64{1, 2}, q)
	assert.Equal(t, []float64{2, 1}, sorted)
	assert.Equal(t, []float64{0.8, -0.6}, vecs[0])
	assert.Equal(t, []float64{0.6, 0.8}, vecs[1])
}
