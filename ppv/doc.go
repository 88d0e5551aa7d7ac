// Package ppv derives physical properties of structures found in
// position-position-velocity (PPV) cubes.
//
// A Stat pairs the raw moments of one structure (moments.Stat) with the
// catalog metadata (metadata.Record): pixel size dx, channel width dv,
// velocity axis vaxis, beam bmaj/bmin, intensity unit bunit and distance
// dist. Every derived quantity is a units.Quantity: bare when the metadata
// is bare, unit-tagged when it is tagged.
//
// Quantities are addressable by name through a fixed registry (Fields,
// Lookup, Stat.Compute) so catalogs can select columns without reflection.
package ppv
