// Package moments computes weighted intensity moments of irregular,
// possibly masked sample sets. It is the statistics engine behind ppvstat.
//
// 🚀 What is a sample set?
//
//	A scalar field sampled at N positions in nd dimensions:
//	  values  — N intensities; NaN marks a masked (missing) sample
//	  indices — nd coordinate slices, each of length N, aligned with values
//
// ✨ What Stat computes:
//   - Mom0: total weight Σv (NaN skipped)
//   - Mom1: intensity-weighted centroid per dimension
//   - Mom2: intensity-weighted covariance (nd×nd, exactly symmetric)
//   - Mom2Along / Mom2AlongAll: covariance restricted to arbitrary directions
//   - PAxes / ProjectedPAxes: principal axes, greatest elongation first
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ppvstat/moments"
//
//	st, err := moments.New(values, [][]float64{z, y, x})
//	if err != nil {
//	  // ErrSizeMismatch, ErrNoDimensions
//	}
//	centroid := st.Mom1()
//	axes, err := st.PAxes()
//
// Degenerate input is data, not failure: a zero total weight yields NaN/±Inf
// moments, and principal axes of a non-finite covariance are NaN-filled.
//
// A Stat is immutable after New; its covariance is computed once and shared
// by every derived call, so a Stat may be read from many goroutines.
//
// Performance:
//
//   - Mom0/Mom1: O(N·nd)
//   - Mom2:      O(N·nd²), cached after the first call
//   - PAxes:     O(nd³) Jacobi on top of the cached covariance
package moments
