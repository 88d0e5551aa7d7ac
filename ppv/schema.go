// SPDX-License-Identifier: MIT

package ppv

import (
	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/units"
)

// Metadata keys read by Stat.
const (
	KeyDX    = "dx"
	KeyDV    = "dv"
	KeyVAxis = "vaxis"
	KeyBMaj  = "bmaj"
	KeyBMin  = "bmin"
	KeyBUnit = "bunit"
	KeyDist  = "dist"
)

// Schema returns the metadata fields a Stat reads. No field is strict;
// use Schema().Require to tighten it.
func Schema() metadata.Schema {
	return metadata.Schema{
		{Key: KeyDX, Description: "Angular length of a pixel", Default: units.Bare(1)},
		{Key: KeyDV, Description: "Velocity channel width", Default: units.Bare(1)},
		{Key: KeyVAxis, Description: "Index of velocity axis (0-based, slowest axis first)", Default: units.Bare(1)},
		{Key: KeyBMaj, Description: "Beam major axis, sigma", Default: units.Bare(0)},
		{Key: KeyBMin, Description: "Beam minor axis, sigma", Default: units.Bare(0)},
		{Key: KeyBUnit, Description: "Unit of intensity", Default: units.Bare(1)},
		{Key: KeyDist, Description: "Distance", Default: units.Bare(1)},
	}
}
