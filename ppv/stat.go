// SPDX-License-Identifier: MIT

// File: stat.go - Stat, the derived-quantity view of one PPV structure.
//
// Purpose:
//   - Scale raw moments by metadata into fluxes, sizes and line widths.
//   - Keep unit tags flowing: every formula works on units.Quantity and
//     branches on IsBare rather than probing the value.
//
// Numeric outcomes (NaN from an unresolved beam, ±Inf from zero flux) are
// data; errors only come from metadata lookup, axis layout or the eigen solver.

package ppv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/moments"
	"github.com/katalvlaran/ppvstat/units"
)

// ppvDims is the dimensionality of a PPV cube.
const ppvDims = 3

// Option configures a Stat.
type Option func(*Stat)

// WithSchema replaces the metadata schema, typically with a stricter copy
// of Schema().
func WithSchema(s metadata.Schema) Option {
	return func(st *Stat) { st.schema = s }
}

// Stat derives PPV quantities from one structure's moments. The metadata
// record is read, never written, so one record may back many Stats.
type Stat struct {
	stat   *moments.Stat
	md     metadata.Record
	schema metadata.Schema
}

// New binds stat to md.
func New(stat *moments.Stat, md metadata.Record, opts ...Option) *Stat {
	s := &Stat{stat: stat, md: md, schema: Schema()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Moments returns the underlying scalar statistic.
func (s *Stat) Moments() *moments.Stat { return s.stat }

func (s *Stat) get(key string) (units.Quantity, error) {
	return s.schema.Get(s.md, key)
}

// vaxis returns the velocity axis index.
func (s *Stat) vaxis() (int, error) {
	if d := s.stat.Dims(); d != ppvDims {
		return 0, fmt.Errorf("%d dimensions: %w", d, ErrNotPPV)
	}
	q, err := s.get(KeyVAxis)
	if err != nil {
		return 0, err
	}
	v := q.Value
	if !q.IsBare() || v != math.Trunc(v) || v < 0 || v >= ppvDims {
		return 0, fmt.Errorf("vaxis=%s: %w", q, ErrBadVAxis)
	}

	return int(v), nil
}

// Flux returns bunit · dx² · dv · mom0.
func (s *Stat) Flux() (units.Quantity, error) {
	bunit, err := s.get(KeyBUnit)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameFlux, err)
	}
	dx, err := s.get(KeyDX)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameFlux, err)
	}
	dv, err := s.get(KeyDV)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameFlux, err)
	}

	return bunit.Mul(dx.Pow(2)).Mul(dv).Scale(s.stat.Mom0()), nil
}

// Luminosity returns dist² · flux · k², where k converts one dx unit into
// radians. A bare dx is taken to be in degrees.
func (s *Stat) Luminosity() (units.Quantity, error) {
	dx, err := s.get(KeyDX)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameLuminosity, err)
	}
	k := units.Bare(math.Pi / 180)
	if !dx.IsBare() {
		f, ok := dx.Unit.Radians()
		if !ok {
			return units.Quantity{}, ppvErrorf(NameLuminosity,
				fmt.Errorf("dx unit %q is not an angle: %w", dx.Unit, units.ErrIncompatible))
		}
		k = units.New(f, dx.Unit.Pow(-1))
	}
	dist, err := s.get(KeyDist)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameLuminosity, err)
	}
	flux, err := s.Flux()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameLuminosity, err)
	}

	return dist.Pow(2).Mul(flux).Mul(k.Pow(2)), nil
}

// SkyAxis is a direction in the sky plane: Plane holds its components along
// the two non-velocity axes, in cube order.
type SkyAxis struct {
	VAxis int
	Plane [2]float64
}

// Embed returns the 3-D direction with a zero velocity component.
func (a SkyAxis) Embed() []float64 {
	out := make([]float64, 0, ppvDims)
	p := 0
	for d := 0; d < ppvDims; d++ {
		if d == a.VAxis {
			out = append(out, 0)
			continue
		}
		out = append(out, a.Plane[p])
		p++
	}

	return out
}

// SkyPAxes returns the major and minor principal axes of the structure
// projected onto the sky plane.
func (s *Stat) SkyPAxes() (SkyAxis, SkyAxis, error) {
	maj, mn, err := s.skyPAxes()
	if err != nil {
		return SkyAxis{}, SkyAxis{}, ppvErrorf("sky_paxes", err)
	}

	return maj, mn, nil
}

func (s *Stat) skyPAxes() (SkyAxis, SkyAxis, error) {
	vaxis, err := s.vaxis()
	if err != nil {
		return SkyAxis{}, SkyAxis{}, err
	}
	basis := make([][]float64, 0, ppvDims-1)
	for d := 0; d < ppvDims; d++ {
		if d == vaxis {
			continue
		}
		e := make([]float64, ppvDims)
		e[d] = 1
		basis = append(basis, e)
	}
	axes, err := s.stat.ProjectedPAxes(basis)
	if err != nil {
		return SkyAxis{}, SkyAxis{}, err
	}
	maj := SkyAxis{VAxis: vaxis, Plane: [2]float64{axes[0][0], axes[0][1]}}
	mn := SkyAxis{VAxis: vaxis, Plane: [2]float64{axes[1][0], axes[1][1]}}

	return maj, mn, nil
}

// skyWidth returns dx · sqrt(mom2 along the chosen sky axis).
func (s *Stat) skyWidth(name string, major bool) (units.Quantity, error) {
	dx, err := s.get(KeyDX)
	if err != nil {
		return units.Quantity{}, ppvErrorf(name, err)
	}
	maj, mn, err := s.skyPAxes()
	if err != nil {
		return units.Quantity{}, ppvErrorf(name, err)
	}
	axis := mn
	if major {
		axis = maj
	}
	v, err := s.stat.Mom2Along(axis.Embed())
	if err != nil {
		return units.Quantity{}, ppvErrorf(name, err)
	}

	return dx.Scale(math.Sqrt(v)), nil
}

// SkyMaj returns the intensity-weighted width along the direction of
// greatest elongation in the sky plane.
func (s *Stat) SkyMaj() (units.Quantity, error) { return s.skyWidth(NameSkyMaj, true) }

// SkyMin returns the width perpendicular to SkyMaj in the sky plane.
func (s *Stat) SkyMin() (units.Quantity, error) { return s.skyWidth(NameSkyMin, false) }

// SkyRad returns the geometric mean of SkyMaj and SkyMin.
func (s *Stat) SkyRad() (units.Quantity, error) {
	maj, err := s.SkyMaj()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyRad, err)
	}
	mn, err := s.SkyMin()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyRad, err)
	}

	return units.New(math.Sqrt(maj.Value*mn.Value), maj.Unit), nil
}

// VRMS returns dv · sqrt(mom2 along the velocity axis).
func (s *Stat) VRMS() (units.Quantity, error) {
	dv, err := s.get(KeyDV)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameVRMS, err)
	}
	vaxis, err := s.vaxis()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameVRMS, err)
	}
	e := make([]float64, ppvDims)
	e[vaxis] = 1
	v, err := s.stat.Mom2Along(e)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameVRMS, err)
	}

	return dv.Scale(math.Sqrt(v)), nil
}

// SkyDeconvolvedRad returns SkyRad with the beam area bmaj·bmin removed in
// quadrature from each axis. An axis narrower than the beam yields NaN.
func (s *Stat) SkyDeconvolvedRad() (units.Quantity, error) {
	bmaj, err := s.get(KeyBMaj)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyDeconvolvedRad, err)
	}
	bmin, err := s.get(KeyBMin)
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyDeconvolvedRad, err)
	}
	maj, err := s.SkyMaj()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyDeconvolvedRad, err)
	}
	mn, err := s.SkyMin()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyDeconvolvedRad, err)
	}

	beam := bmaj.Mul(bmin)
	if !beam.IsBare() && !maj.IsBare() {
		beam, err = beam.To(maj.Unit.Pow(2))
		if err != nil {
			return units.Quantity{}, ppvErrorf(NameSkyDeconvolvedRad, err)
		}
	}
	a, b := maj.Value, mn.Value
	r := math.Sqrt(math.Sqrt(a*a-beam.Value) * math.Sqrt(b*b-beam.Value))

	return units.New(r, maj.Unit), nil
}

// SkyPA returns the position angle of SkyMaj in degrees,
// atan2(plane[0], plane[1]) over the two sky axes in cube order.
func (s *Stat) SkyPA() (units.Quantity, error) {
	maj, _, err := s.skyPAxes()
	if err != nil {
		return units.Quantity{}, ppvErrorf(NameSkyPA, err)
	}
	deg := math.Atan2(maj.Plane[0], maj.Plane[1]) * 180 / math.Pi

	return units.New(deg, units.Degree), nil
}
