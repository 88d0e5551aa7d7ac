// SPDX-License-Identifier: MIT

// File: options.go - functional configuration of the eigen solver used by
// PAxes and ProjectedPAxes.
//
// Safe by construction: With* constructors panic on nonsensical values
// (programmer error), never on data.

package moments

import (
	"math"

	"github.com/katalvlaran/ppvstat/matrix"
)

// Solver defaults.
const (
	// DefaultEigenTol is the relative off-diagonal threshold for Jacobi sweeps.
	DefaultEigenTol = matrix.DefaultEigenTol

	// DefaultEigenMaxIter bounds the number of Jacobi sweeps.
	DefaultEigenMaxIter = matrix.DefaultEigenMaxIter
)

// Option configures a Stat.
type Option func(*options)

type options struct {
	eigenTol     float64
	eigenMaxIter int
}

func defaultOptions() options {
	return options{eigenTol: DefaultEigenTol, eigenMaxIter: DefaultEigenMaxIter}
}

// WithEigenTol sets the convergence tolerance of the eigen solver.
// Panics if tol is negative, NaN or infinite.
func WithEigenTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("moments: WithEigenTol requires a finite tol >= 0")
	}

	return func(o *options) { o.eigenTol = tol }
}

// WithEigenMaxIter sets the sweep budget of the eigen solver.
// Panics if n < 1.
func WithEigenMaxIter(n int) Option {
	if n < 1 {
		panic("moments: WithEigenMaxIter requires n >= 1")
	}

	return func(o *options) { o.eigenMaxIter = n }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
