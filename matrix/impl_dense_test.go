// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppvstat/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := d.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.0, MustAt(t, d, 1, 2))

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	d := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	CompareClose(t, d, [][]float64{{1, 2}, {3, 4}}, 0)

	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, math.NaN()))
	assert.True(t, math.IsNaN(MustAt(t, d, 0, 1)))
	assert.False(t, d.AllFinite())

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = d.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Col(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	d := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := d.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0))

	row, err := d.Row(1)
	require.NoError(t, err)
	row[0] = 100
	assert.Equal(t, 3.0, MustAt(t, d, 1, 0), "Row must return a copy")

	col, err := d.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, d.ToRows())
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	d := MustRows(t, [][]float64{{1, 0.5}, {0, 2}})
	assert.Equal(t, "[1, 0.5]\n[0, 2]\n", d.String())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, id, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 0)
}
