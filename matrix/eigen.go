// SPDX-License-Identifier: MIT

// File: eigen.go - symmetric eigen-decomposition (Jacobi rotations).
//
// Purpose:
//   - EigenSym: cyclic Jacobi for real symmetric matrices; maxIter counts sweeps.
//   - SortEigenDesc: order eigenpairs by descending eigenvalue with a
//     deterministic sign convention on each eigenvector.
//
// Numeric policy:
//   - A matrix with any NaN/±Inf entry is not iterated: every eigenvalue and
//     every eigenvector component is NaN and no error is returned. Degenerate
//     moment matrices are data, not failures.
//   - Convergence is relative: iteration stops once max|A[p,q]| < tol·‖A‖_F,
//     so covariance matrices of any physical scale converge alike.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Defaults for EigenSym callers.
const (
	// DefaultEigenTol is the relative off-diagonal tolerance.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of cyclic Jacobi sweeps. Cyclic
	// Jacobi converges quadratically, so a few sweeps suffice for any n.
	DefaultEigenMaxIter = 100
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate square & symmetric within tol; short-circuit non-finite input.
//   - Stage 2: Cyclic sweeps: visit every (p,q) with p<q in row order and apply
//     a rotation that zeroes A[p,q], accumulating the rotations into Q. One
//     sweep is n(n-1)/2 rotations; stop once max|A[p,q]| is negligible.
//   - Stage 3: Read eigenvalues off the diagonal.
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - tol: relative convergence threshold (typ. 1e-12).
//   - maxIter: safety cap on sweeps.
//
// Returns:
//   - []float64: eigenvalues in solver order (NOT sorted).
//   - *Dense: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (bad tol),
//     ErrEigenFailed (not converged after maxIter sweeps).
//
// Determinism:
//   - Fixed p→q sweep order and update order produce stable results.
//
// Complexity:
//   - Time O(n³) per sweep, worst-case O(maxIter·n³); Space O(n²).
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	if !a.AllFinite() {
		return nanEigen(n)
	}
	A := a.Clone().(*Dense) // working copy; input is never mutated
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Frobenius norm is invariant under the rotations; compute once.
	var frob float64
	for _, v := range A.data {
		frob += v * v
	}
	threshold := math.Abs(tol) * math.Sqrt(frob)

	var (
		sweep          int
		maxOff         float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		theta, t, c, s float64
		converged      bool
	)
	for sweep = 0; sweep <= maxIter; sweep++ {
		// J.1: Converged once the largest off-diagonal is negligible.
		maxOff = maxOffDiagonal(A)
		if maxOff <= threshold {
			converged = true
			break
		}
		if sweep == maxIter {
			break
		}

		// J.2: One cyclic sweep over the upper triangle.
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				apq = A.data[p*n+q]
				if math.Abs(apq) <= threshold {
					continue
				}

				// J.3: Rotation parameters.
				app = A.data[p*n+p]
				aqq = A.data[q*n+q]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// J.4: Apply rotation to A, keeping it exactly symmetric.
				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip = A.data[i*n+p]
					aiq = A.data[i*n+q]
					A.data[i*n+p] = c*aip - s*aiq
					A.data[p*n+i] = A.data[i*n+p]
					A.data[i*n+q] = s*aip + c*aiq
					A.data[q*n+i] = A.data[i*n+q]
				}
				A.data[p*n+p] = app - t*apq
				A.data[q*n+q] = aqq + t*apq
				A.data[p*n+q], A.data[q*n+p] = 0, 0

				// J.5: Accumulate rotation into Q.
				for i := 0; i < n; i++ {
					qip = Q.data[i*n+p]
					qiq = Q.data[i*n+q]
					Q.data[i*n+p] = c*qip - s*qiq
					Q.data[i*n+q] = s*qip + c*qiq
				}
			}
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("max off-diagonal %g after %d sweeps: %w", maxOff, maxIter, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}

// maxOffDiagonal returns max|A[i,j]| over i<j of a square Dense.
func maxOffDiagonal(a *Dense) float64 {
	var maxOff, off float64
	for i := 0; i < a.r; i++ {
		for j := i + 1; j < a.c; j++ {
			if off = math.Abs(a.data[i*a.c+j]); off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}

// nanEigen returns the all-NaN decomposition for non-finite input.
func nanEigen(n int) ([]float64, *Dense, error) {
	eigs := make([]float64, n)
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := range eigs {
		eigs[i] = math.NaN()
	}
	for i := range Q.data {
		Q.data[i] = math.NaN()
	}

	return eigs, Q, nil
}

// SortEigenDesc orders eigenpairs by strictly descending eigenvalue and
// returns the eigenvectors as separate slices (column k of q becomes
// vectors[k]).
//
// Behavior highlights:
//   - Stable sort: numerically tied eigenvalues keep solver order, which is
//     implementation-defined. No canonical tie-break is attempted.
//   - Sign convention: each vector is flipped so that its largest-magnitude
//     component (first one on exact ties) is positive.
//   - NaN eigenvalues sort last; NaN vectors are left untouched.
//
// Complexity: O(n² + n log n).
func SortEigenDesc(vals []float64, q *Dense) ([]float64, [][]float64) {
	n := len(vals)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := vals[order[a]], vals[order[b]]
		if math.IsNaN(vb) {
			return !math.IsNaN(va)
		}

		return va > vb
	})

	sorted := make([]float64, n)
	vectors := make([][]float64, n)
	for k, idx := range order {
		sorted[k] = vals[idx]
		v, _ := q.Col(idx) // idx < q.c by construction
		canonicalSign(v)
		vectors[k] = v
	}

	return sorted, vectors
}

// canonicalSign flips v in place so its largest-magnitude component is positive.
func canonicalSign(v []float64) {
	best, bestAbs := -1, -1.0
	for i, x := range v {
		if a := math.Abs(x); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	if best >= 0 && v[best] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}
