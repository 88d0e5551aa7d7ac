// Package matrix offers the small dense linear-algebra core behind ppvstat.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - Mul, Transpose, MatVec and NormalizeRows kernels.
//   - Congruence (W·M·Wᵀ), which restricts a covariance matrix to an arbitrary,
//     possibly non-orthogonal set of directions.
//   - EigenSym (Jacobi rotations) and SortEigenDesc for principal axes.
//
// NaN and ±Inf entries are legal: moment matrices of degenerate samples are
// non-finite and must reach the caller as data. EigenSym answers such input
// with an all-NaN decomposition instead of an error.
//
// Matrices here are tiny (one row per data dimension), so every kernel favours
// determinism and clarity over blocking or parallelism.
package matrix
