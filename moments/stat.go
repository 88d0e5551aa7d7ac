// SPDX-License-Identifier: MIT

// File: stat.go - Stat, the scalar statistic of one sample set.
//
// Purpose:
//   - Reduce (values, indices) to zeroth, first and second intensity moments.
//   - Derive directional variances and principal axes from the covariance.
//
// Determinism:
//   - Fixed sample order in every reduction; the off-diagonal covariance term
//     is accumulated once and mirrored, so Mom2 is symmetric bit for bit.

package moments

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/ppvstat/matrix"
)

// Stat holds an immutable copy of one sample set and its lazily computed
// covariance. Safe for concurrent use after New returns.
type Stat struct {
	values  []float64
	indices [][]float64
	opts    options

	once sync.Once
	mom0 float64
	mom1 []float64
	mom2 *matrix.Dense
}

// New copies values and indices into a Stat.
// Implementation:
//   - Stage 1: Reject an empty index list (ErrNoDimensions).
//   - Stage 2: Reject any coordinate slice whose length differs from values
//     (ErrSizeMismatch, wrapped with the offending dimension).
//   - Stage 3: Deep-copy the inputs so later caller mutation is invisible.
//
// Inputs:
//   - values: intensities; NaN marks a masked sample.
//   - indices: one coordinate slice per dimension.
//   - opts: eigen solver configuration.
func New(values []float64, indices [][]float64, opts ...Option) (*Stat, error) {
	if len(indices) == 0 {
		return nil, momentsErrorf(opNew, ErrNoDimensions)
	}
	for d, idx := range indices {
		if len(idx) != len(values) {
			return nil, momentsErrorf(opNew, fmt.Errorf("dimension %d has %d coordinates for %d values: %w",
				d, len(idx), len(values), ErrSizeMismatch))
		}
	}

	s := &Stat{
		values:  append([]float64(nil), values...),
		indices: make([][]float64, len(indices)),
		opts:    gatherOptions(opts),
	}
	for d, idx := range indices {
		s.indices[d] = append([]float64(nil), idx...)
	}

	return s, nil
}

// IntIndices converts integer pixel coordinates into the float form New expects.
func IntIndices(indices [][]int) [][]float64 {
	out := make([][]float64, len(indices))
	for d, idx := range indices {
		out[d] = make([]float64, len(idx))
		for i, v := range idx {
			out[d][i] = float64(v)
		}
	}

	return out
}

// Count returns the number of samples, masked ones included.
func (s *Stat) Count() int { return len(s.values) }

// Dims returns the number of coordinate dimensions.
func (s *Stat) Dims() int { return len(s.indices) }

// Mom0 returns the sum of all non-NaN values; 0 when every sample is masked.
func (s *Stat) Mom0() float64 {
	s.compute()

	return s.mom0
}

// Mom1 returns the intensity-weighted centroid, one coordinate per dimension.
// A zero Mom0 yields NaN or ±Inf components.
func (s *Stat) Mom1() []float64 {
	s.compute()

	return append([]float64(nil), s.mom1...)
}

// Mom2 returns a copy of the intensity-weighted covariance matrix (Dims×Dims).
func (s *Stat) Mom2() *matrix.Dense {
	s.compute()

	return s.mom2.Clone().(*matrix.Dense)
}

// compute fills mom0, mom1 and mom2 exactly once.
// Implementation:
//   - Stage 1: mom0 = Σv over non-NaN samples.
//   - Stage 2: mom1[d] = Σ c_d·v / mom0.
//   - Stage 3: w = v/mom0; mom2[i][j] = Σ w·(c_i-μ_i)·(c_j-μ_j) for i ≤ j, mirrored.
//
// Complexity: O(N·nd²).
func (s *Stat) compute() {
	s.once.Do(func() {
		nd := len(s.indices)

		var m0 float64
		for _, v := range s.values {
			if !math.IsNaN(v) {
				m0 += v
			}
		}

		m1 := make([]float64, nd)
		for d, idx := range s.indices {
			var acc float64
			for i, v := range s.values {
				if !math.IsNaN(v) {
					acc += idx[i] * v
				}
			}
			m1[d] = acc / m0
		}

		m2, _ := matrix.NewDense(nd, nd) // nd >= 1 guaranteed by New
		for i := 0; i < nd; i++ {
			for j := i; j < nd; j++ {
				var acc float64
				ci, cj := s.indices[i], s.indices[j]
				for k, v := range s.values {
					if math.IsNaN(v) {
						continue
					}
					acc += (v / m0) * (ci[k] - m1[i]) * (cj[k] - m1[j])
				}
				_ = m2.Set(i, j, acc)
				_ = m2.Set(j, i, acc)
			}
		}

		s.mom0, s.mom1, s.mom2 = m0, m1, m2
	})
}

// Mom2Along returns the variance along one direction: wᵀ·Mom2·w with w the
// direction scaled to unit length. A zero-length direction yields NaN.
func (s *Stat) Mom2Along(direction []float64) (float64, error) {
	res, err := s.Mom2AlongAll([][]float64{direction})
	if err != nil {
		return 0, err
	}
	v, _ := res.At(0, 0)

	return v, nil
}

// Mom2AlongAll returns W·Mom2·Wᵀ where each row of W is one direction scaled
// to unit length. Rows need not be orthogonal; one row gives a 1×1 matrix.
//
// Errors:
//   - ErrNoDirections for an empty list.
//   - ErrDimensionMismatch when a direction length differs from Dims.
func (s *Stat) Mom2AlongAll(directions [][]float64) (*matrix.Dense, error) {
	if len(directions) == 0 {
		return nil, momentsErrorf(opMom2Along, ErrNoDirections)
	}
	for k, dir := range directions {
		if len(dir) != s.Dims() {
			return nil, momentsErrorf(opMom2Along, fmt.Errorf("direction %d has length %d, want %d: %w",
				k, len(dir), s.Dims(), ErrDimensionMismatch))
		}
	}
	w, _, err := matrix.NormalizeRows(directions)
	if err != nil {
		return nil, momentsErrorf(opMom2Along, err)
	}
	s.compute()
	res, err := matrix.Congruence(w, s.mom2)
	if err != nil {
		return nil, momentsErrorf(opMom2Along, err)
	}

	return res, nil
}

// PAxes returns the principal axes of Mom2, greatest variance first.
// Each axis is unit length with its largest-magnitude component positive.
// Ties between equal eigenvalues keep solver order.
func (s *Stat) PAxes() ([][]float64, error) {
	_, axes, err := s.PAxesWithValues()

	return axes, err
}

// PAxesWithValues is PAxes that also returns the eigenvalues, descending.
func (s *Stat) PAxesWithValues() ([]float64, [][]float64, error) {
	s.compute()
	vals, axes, err := s.eigen(s.mom2)
	if err != nil {
		return nil, nil, momentsErrorf(opPAxes, err)
	}

	return vals, axes, nil
}

// ProjectedPAxes returns the principal axes of the covariance restricted to
// the subspace spanned by axes, expressed in subspace coordinates
// (each result has len(axes) components).
func (s *Stat) ProjectedPAxes(axes [][]float64) ([][]float64, error) {
	sub, err := s.Mom2AlongAll(axes)
	if err != nil {
		return nil, momentsErrorf(opProjectedPAxes, err)
	}
	_, vecs, err := s.eigen(sub)
	if err != nil {
		return nil, momentsErrorf(opProjectedPAxes, err)
	}

	return vecs, nil
}

func (s *Stat) eigen(m *matrix.Dense) ([]float64, [][]float64, error) {
	vals, q, err := matrix.EigenSym(m, s.opts.eigenTol, s.opts.eigenMaxIter)
	if err != nil {
		return nil, nil, err
	}
	sorted, vecs := matrix.SortEigenDesc(vals, q)

	return sorted, vecs, nil
}

// SurfaceArea is not implemented for irregular sample sets.
func (s *Stat) SurfaceArea() (float64, error) {
	return 0, momentsErrorf(opSurfaceArea, ErrNotSupported)
}

// Perimeter is not implemented for irregular sample sets.
func (s *Stat) Perimeter(plane []int) (float64, error) {
	return 0, momentsErrorf(opPerimeter, ErrNotSupported)
}
