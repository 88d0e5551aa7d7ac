// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Operation tags for error wrapping.
const (
	opParse      = "Parse"
	opConversion = "Conversion"
	opTo         = "To"
)

// term is one symbol raised to a non-zero integer power.
type term struct {
	sym string
	pow int
}

// Unit is a product of symbols with integer powers. The zero Unit is
// dimensionless and marks a bare number. Units are immutable values; every
// operation returns a fresh Unit.
type Unit struct {
	terms []term // sorted by sym, pow != 0
}

// base describes how a known symbol reduces to a base symbol.
type base struct {
	sym   string
	scale float64 // 1 <symbol> == scale <base>
}

// known is the built-in reduction table. Symbols absent here are their own base.
var known = map[string]base{
	// angles
	"rad":    {"rad", 1},
	"deg":    {"rad", math.Pi / 180},
	"arcmin": {"rad", math.Pi / (180 * 60)},
	"arcsec": {"rad", math.Pi / (180 * 3600)},
	"mas":    {"rad", math.Pi / (180 * 3600 * 1000)},
	"sr":     {"sr", 1},

	// lengths
	"m":   {"m", 1},
	"cm":  {"m", 1e-2},
	"km":  {"m", 1e3},
	"au":  {"m", 1.495978707e11},
	"ly":  {"m", 9.4607304725808e15},
	"pc":  {"m", 3.0856775814913673e16},
	"kpc": {"m", 3.0856775814913673e19},
	"Mpc": {"m", 3.0856775814913673e22},

	// time
	"s":   {"s", 1},
	"min": {"s", 60},
	"h":   {"s", 3600},
	"yr":  {"s", 3.15576e7},

	// frequency
	"Hz":  {"s", 1}, // handled as s-1 in reduce
	"kHz": {"s", 1e-3},
	"MHz": {"s", 1e-6},
	"GHz": {"s", 1e-9},

	// intensity / flux density
	"K":   {"K", 1},
	"mK":  {"K", 1e-3},
	"Jy":  {"Jy", 1},
	"mJy": {"Jy", 1e-3},
}

// frequency symbols reduce to inverse seconds.
var inverse = map[string]bool{"Hz": true, "kHz": true, "MHz": true, "GHz": true}

// Angle units commonly used for pixel sizes.
var (
	Radian    = mustSymbol("rad")
	Degree    = mustSymbol("deg")
	Arcminute = mustSymbol("arcmin")
	Arcsecond = mustSymbol("arcsec")
)

func mustSymbol(sym string) Unit { return Unit{terms: []term{{sym: sym, pow: 1}}} }

// Symbol returns the unit consisting of sym to the first power.
// An empty symbol yields the dimensionless unit.
func Symbol(sym string) Unit {
	if sym == "" {
		return Unit{}
	}

	return mustSymbol(sym)
}

// tokenRE matches "<symbol><exponent>", where the exponent may be written
// as "2", "-1", "^2" or "^-1" ("**" is rewritten to "^" beforehand).
var tokenRE = regexp.MustCompile(`^([A-Za-zµ_]+)\^?(-?[0-9]+)?$`)

// Parse reads a unit expression such as "km/s", "K km s-1" or "erg/s/cm2".
// Each '/' negates the powers of the tokens in the segment that follows it.
// Tokens are separated by whitespace, '*' or '.'. A lone "1" is ignored so
// "1/s" parses as s-1. The empty string yields the dimensionless unit.
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, nil
	}
	expr := strings.ReplaceAll(s, "**", "^")
	acc := map[string]int{}
	for segIdx, seg := range strings.Split(expr, "/") {
		sign := 1
		if segIdx > 0 {
			sign = -1
		}
		fields := strings.FieldsFunc(seg, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '.' || r == '·' || r == '*'
		})
		if len(fields) == 0 {
			return Unit{}, unitsErrorf(opParse, fmt.Errorf("%q: empty segment: %w", s, ErrSyntax))
		}
		for _, tok := range fields {
			if tok == "1" {
				continue
			}
			m := tokenRE.FindStringSubmatch(tok)
			if m == nil {
				return Unit{}, unitsErrorf(opParse, fmt.Errorf("%q: bad token %q: %w", s, tok, ErrSyntax))
			}
			pow := 1
			if m[2] != "" {
				p, err := strconv.Atoi(m[2])
				if err != nil {
					return Unit{}, unitsErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
				}
				pow = p
			}
			acc[m[1]] += sign * pow
		}
	}

	return fromMap(acc), nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// variables and tests.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// fromMap builds a canonical Unit from symbol powers, dropping zero powers.
func fromMap(acc map[string]int) Unit {
	terms := make([]term, 0, len(acc))
	for sym, pow := range acc {
		if pow != 0 {
			terms = append(terms, term{sym: sym, pow: pow})
		}
	}
	if len(terms) == 0 {
		return Unit{}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].sym < terms[j].sym })

	return Unit{terms: terms}
}

func (u Unit) toMap() map[string]int {
	acc := make(map[string]int, len(u.terms))
	for _, t := range u.terms {
		acc[t.sym] += t.pow
	}

	return acc
}

// IsDimensionless reports whether u carries no symbols.
func (u Unit) IsDimensionless() bool { return len(u.terms) == 0 }

// Mul returns u·v.
func (u Unit) Mul(v Unit) Unit {
	acc := u.toMap()
	for _, t := range v.terms {
		acc[t.sym] += t.pow
	}

	return fromMap(acc)
}

// Div returns u/v.
func (u Unit) Div(v Unit) Unit { return u.Mul(v.Pow(-1)) }

// Pow returns u raised to the integer power n.
func (u Unit) Pow(n int) Unit {
	if n == 0 || u.IsDimensionless() {
		return Unit{}
	}
	terms := make([]term, len(u.terms))
	for i, t := range u.terms {
		terms[i] = term{sym: t.sym, pow: t.pow * n}
	}

	return Unit{terms: terms}
}

// Equal reports whether u and v have identical symbols and powers.
// Equal does not convert: deg and arcsec are different units.
func (u Unit) Equal(v Unit) bool {
	if len(u.terms) != len(v.terms) {
		return false
	}
	for i := range u.terms {
		if u.terms[i] != v.terms[i] {
			return false
		}
	}

	return true
}

// String renders u as space separated "symPow" tokens, e.g. "K deg2 km s-1".
func (u Unit) String() string {
	if u.IsDimensionless() {
		return ""
	}
	var sb strings.Builder
	for i, t := range u.terms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.sym)
		if t.pow != 1 {
			sb.WriteString(strconv.Itoa(t.pow))
		}
	}

	return sb.String()
}

// reduce maps u onto base symbols and returns the accumulated scale.
func (u Unit) reduce() (map[string]int, float64) {
	acc := map[string]int{}
	scale := 1.0
	for _, t := range u.terms {
		b, ok := known[t.sym]
		if !ok {
			acc[t.sym] += t.pow
			continue
		}
		pow := t.pow
		if inverse[t.sym] {
			pow = -pow
		}
		acc[b.sym] += pow
		scale *= math.Pow(b.scale, float64(pow))
	}
	for k, v := range acc {
		if v == 0 {
			delete(acc, k)
		}
	}

	return acc, scale
}

// Conversion returns the factor f such that x [u] == x·f [to].
// Returns ErrIncompatible when the base dimensions differ.
func (u Unit) Conversion(to Unit) (float64, error) {
	fromBase, fromScale := u.reduce()
	toBase, toScale := to.reduce()
	if len(fromBase) != len(toBase) {
		return 0, unitsErrorf(opConversion, fmt.Errorf("%q -> %q: %w", u, to, ErrIncompatible))
	}
	for sym, pow := range fromBase {
		if toBase[sym] != pow {
			return 0, unitsErrorf(opConversion, fmt.Errorf("%q -> %q: %w", u, to, ErrIncompatible))
		}
	}

	return fromScale / toScale, nil
}

// ConvertibleTo reports whether Conversion(to) would succeed.
func (u Unit) ConvertibleTo(to Unit) bool {
	_, err := u.Conversion(to)

	return err == nil
}

// IsAngle reports whether u reduces to radians to the first power.
func (u Unit) IsAngle() bool { return u.ConvertibleTo(Radian) }

// Radians returns how many radians one u spans. ok is false when u is not
// an angle unit.
func (u Unit) Radians() (f float64, ok bool) {
	f, err := u.Conversion(Radian)
	if err != nil {
		return 0, false
	}

	return f, true
}
