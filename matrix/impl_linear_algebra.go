// SPDX-License-Identifier: MIT

// File: impl_linear_algebra.go - the linear-algebra kernels used by the moment
// engine: products, transpose, row normalization and the congruence
// transform W·M·Wᵀ that restricts a covariance matrix to a set of directions.
//
// Purpose:
//   - Keep every kernel deterministic (fixed i→k→j loop orders).
//   - Propagate NaN/±Inf with IEEE semantics: no zero-skipping shortcuts, so
//     0·NaN stays NaN exactly like a dense BLAS product would.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opNormalizeRows = "NormalizeRows"
	opCongruence    = "Congruence"
	opEigen         = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize both operands as *Dense and run i→k→j on flat slices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av         float64
		offA, offB int
		offR       int
	)
	for i = 0; i < da.r; i++ {
		offA = i * da.c
		offR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[offA+k]
			offB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[offR+j] += av * db.data[offB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var acc float64
	for i := 0; i < d.r; i++ {
		acc = ZeroSum
		base := i * d.c
		for j := 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Norm returns the Euclidean length of x.
func Norm(x []float64) float64 {
	var sq float64
	for _, v := range x {
		sq += v * v
	}

	return math.Sqrt(sq)
}

// NormalizeRows copies rows into a Dense and scales each row to unit L2 norm.
//
// Behavior highlights:
//   - A zero-length row divides by zero and becomes NaN: a direction with no
//     length has no defined variance, and the NaN flows into every quantity
//     derived from it.
//   - Rows must share one length (ErrInvalidDimensions otherwise).
//
// Returns the normalized matrix and the original norms.
// Complexity: O(r*c).
func NormalizeRows(rows [][]float64) (*Dense, []float64, error) {
	d, err := NewFromRows(rows)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	norms := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		row := d.data[i*d.c : (i+1)*d.c]
		norms[i] = Norm(row)
		for j := range row {
			row[j] /= norms[i]
		}
	}

	return d, norms, nil
}

// Congruence computes W · M · Wᵀ.
// Implementation:
//   - Stage 1: Validate M square, W.Cols == M.Rows.
//   - Stage 2: T = W·M, then R = T·Wᵀ via Transpose and Mul.
//   - Stage 3: Mirror R[i][j] (i < j) into R[j][i] so the result is symmetric bit for bit.
//
// Inputs:
//   - w: k×n matrix whose rows are directions (need not be orthogonal).
//   - m: n×n matrix (typically a covariance).
//
// Returns:
//   - *Dense: k×k projected matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(k*n² + k²*n), Space O(k*n + k²).
func Congruence(w, m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	t, err := Mul(w, m)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	wt, err := Transpose(w)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	res, err := Mul(t, wt)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	k := res.r
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			res.data[j*k+i] = res.data[i*k+j]
		}
	}

	return res, nil
}
