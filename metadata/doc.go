// Package metadata declares, decodes and validates the per-catalog metadata
// that turns pixel moments into physical quantities.
//
// A Schema is an ordered list of Fields. Each Field has a key, a human
// description, a default and a strictness flag. A Record maps keys to
// tagged values (units.Quantity). Schema.Validate runs once per catalog:
// missing strict fields fail the whole build, missing non-strict fields are
// logged and later read as their default.
//
// Records are decoded from YAML (or JSON) where each value is a number,
// a "<number> <unit>" string or a {value, unit} mapping:
//
//	dx: 0.5 arcsec
//	dv: {value: 0.2, unit: km/s}
//	vaxis: 0
package metadata
