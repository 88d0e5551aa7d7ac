// SPDX-License-Identifier: MIT

package moments

// VectorStat is the statistic of a vector-valued field. Only the shape of the
// API exists; every operation reports ErrNotSupported.
type VectorStat struct{}

// NewVectorStat always fails with ErrNotSupported.
func NewVectorStat(components [][]float64, indices [][]float64) (*VectorStat, error) {
	return nil, momentsErrorf(opVector, ErrNotSupported)
}

// Divergence always fails with ErrNotSupported.
func (v *VectorStat) Divergence() (float64, error) {
	return 0, momentsErrorf(opVector, ErrNotSupported)
}

// Curl always fails with ErrNotSupported.
func (v *VectorStat) Curl() (float64, error) {
	return 0, momentsErrorf(opVector, ErrNotSupported)
}
