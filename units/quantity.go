// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const opParseQuantity = "ParseQuantity"

// Quantity is a number tagged with a Unit. The zero Unit means the value is
// a bare number; IsBare is the explicit tag every formula branches on.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Bare returns an untagged quantity.
func Bare(v float64) Quantity { return Quantity{Value: v} }

// New returns v tagged with u.
func New(v float64, u Unit) Quantity { return Quantity{Value: v, Unit: u} }

// ParseQuantity reads "<number> [unit]", e.g. "0.5 arcsec", "1 km/s", "3".
// Numbers accept everything strconv.ParseFloat does, including "NaN".
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, unitsErrorf(opParseQuantity, fmt.Errorf("empty input: %w", ErrSyntax))
	}
	num, rest, _ := strings.Cut(s, " ")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, unitsErrorf(opParseQuantity, fmt.Errorf("%q: bad number: %w", s, ErrSyntax))
	}
	u, err := Parse(rest)
	if err != nil {
		return Quantity{}, unitsErrorf(opParseQuantity, err)
	}

	return Quantity{Value: v, Unit: u}, nil
}

// IsBare reports whether q carries no unit.
func (q Quantity) IsBare() bool { return q.Unit.IsDimensionless() }

// IsNaN reports whether the numeric value is NaN.
func (q Quantity) IsNaN() bool { return math.IsNaN(q.Value) }

// Mul returns q·r with units multiplied.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{Value: q.Value * r.Value, Unit: q.Unit.Mul(r.Unit)}
}

// Div returns q/r with units divided.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{Value: q.Value / r.Value, Unit: q.Unit.Div(r.Unit)}
}

// Pow returns q raised to the integer power n.
func (q Quantity) Pow(n int) Quantity {
	return Quantity{Value: math.Pow(q.Value, float64(n)), Unit: q.Unit.Pow(n)}
}

// Scale multiplies the value by a bare factor, keeping the unit.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// To converts q into unit u. Bare quantities only convert to bare units.
func (q Quantity) To(u Unit) (Quantity, error) {
	f, err := q.Unit.Conversion(u)
	if err != nil {
		return Quantity{}, unitsErrorf(opTo, err)
	}

	return Quantity{Value: q.Value * f, Unit: u}, nil
}

// String renders "value unit", or just the value for bare quantities.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.IsBare() {
		return v
	}

	return v + " " + q.Unit.String()
}
