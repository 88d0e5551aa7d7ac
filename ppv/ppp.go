// SPDX-License-Identifier: MIT

package ppv

import (
	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/moments"
)

// PPPStat would derive properties from position-position-position density
// and velocity fields. It has no implementation.
type PPPStat struct{}

// NewPPP always fails with moments.ErrNotSupported.
func NewPPP(rho *moments.Stat, vel *moments.VectorStat, md metadata.Record) (*PPPStat, error) {
	return nil, ppvErrorf("ppp", moments.ErrNotSupported)
}
