// SPDX-License-Identifier: MIT

package ppv

import (
	"fmt"

	"github.com/katalvlaran/ppvstat/units"
)

// Registered quantity names.
const (
	NameFlux              = "flux"
	NameLuminosity        = "luminosity"
	NameSkyMaj            = "sky_maj"
	NameSkyMin            = "sky_min"
	NameSkyRad            = "sky_rad"
	NameVRMS              = "vrms"
	NameSkyDeconvolvedRad = "sky_deconvolved_rad"
	NameSkyPA             = "sky_pa"
)

// Func computes one named quantity.
type Func func(*Stat) (units.Quantity, error)

// Entry is one registered quantity.
type Entry struct {
	Name        string
	Description string
	Func        Func
}

var registry = []Entry{
	{NameFlux, "Integrated flux, bunit·dx²·dv·mom0", (*Stat).Flux},
	{NameLuminosity, "Integrated luminosity, dist²·flux with dx in radians", (*Stat).Luminosity},
	{NameSkyMaj, "Width along the major axis of the sky projection", (*Stat).SkyMaj},
	{NameSkyMin, "Width along the minor axis of the sky projection", (*Stat).SkyMin},
	{NameSkyRad, "Geometric mean of sky_maj and sky_min", (*Stat).SkyRad},
	{NameVRMS, "Intensity-weighted velocity dispersion", (*Stat).VRMS},
	{NameSkyDeconvolvedRad, "sky_rad corrected for beam smearing", (*Stat).SkyDeconvolvedRad},
	{NameSkyPA, "Position angle of sky_maj in degrees", (*Stat).SkyPA},
}

// Fields lists every registered quantity in declaration order.
func Fields() []Entry {
	return append([]Entry(nil), registry...)
}

// DefaultFields returns the names a catalog computes when none are chosen.
func DefaultFields() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}

	return names
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e.Func, true
		}
	}

	return nil, false
}

// Compute evaluates the quantity registered under name.
func (s *Stat) Compute(name string) (units.Quantity, error) {
	fn, ok := Lookup(name)
	if !ok {
		return units.Quantity{}, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}

	return fn(s)
}
