// Package ppvstat computes moment-based properties of structures extracted
// from position-position-velocity (PPV) data cubes: flux, luminosity, sky
// sizes, velocity dispersion and position angle, each carrying its unit.
//
// What is in the box?
//
//	units/    — Unit and Quantity: exponent maps, conversion, parsing
//	matrix/   — small Dense matrices, congruence, Jacobi eigen-decomposition
//	moments/  — weighted moments 0/1/2 and principal axes of a point cloud
//	metadata/ — typed metadata schema, defaults, warnings, YAML/JSON records
//	ppv/      — PPV quantities over moments + metadata, and their registry
//	catalog/  — one row per structure, sequential or bounded-parallel
//	cmd/ppvcat — CLI: build catalogs as table, CSV, Markdown or JSON
//
// A structure is a set of weighted voxels: values[i] is the intensity at the
// point whose coordinate along axis d is indices[d][i]. Missing voxels are NaN
// and are skipped by every moment.
//
// Quick example:
//
//	st, _ := moments.New(values, indices)
//	dx, _ := units.ParseQuantity("0.5 arcsec")
//	flux, _ := ppv.New(st, metadata.Record{ppv.KeyDX: dx}).Flux()
//	fmt.Println(flux) // "… arcsec2"; tag bunit and dv for K arcsec2 km s-1
//
//	go install github.com/katalvlaran/ppvstat/cmd/ppvcat@latest
package ppvstat
