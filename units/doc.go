// SPDX-License-Identifier: MIT

// Package units implements tagged physical quantities for ppvstat.
//
// A Quantity is either a bare number (zero Unit) or a number paired with a
// Unit. Formulas branch on that tag explicitly (Quantity.IsBare) instead of
// probing values at runtime.
//
// Units are products of named symbols raised to integer powers:
//
//	K deg2 km s-1     (kelvin · square degree · km / s)
//
// Parse accepts the usual spellings: "km/s", "K km s^-1", "deg**2",
// "erg/s/cm2". Symbols listed in the built-in table reduce to a base symbol
// with a scale (deg → π/180 rad, pc → 3.0857e16 m, ...), which lets
// compatible units convert into each other. Unknown symbols are kept as
// their own base, so "beam" or "counts" round-trip but never convert.
//
// Complexity: unit algebra is O(t log t) in the number of distinct symbols t
// (always tiny); Quantity arithmetic allocates one small slice per result.
package units
