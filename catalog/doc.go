// Package catalog turns a collection of PPV structures into a table of
// derived quantities.
//
// Build validates the metadata once, then computes the selected ppv
// quantities for each structure, optionally on a bounded worker pool.
// NewTable pivots the resulting rows into named columns, and
// LoadStructures reads structures from YAML or JSON files.
//
//	rows, err := catalog.Build(structs, md,
//	    catalog.WithFields("flux", "vrms"),
//	    catalog.WithWorkers(4),
//	)
//	tbl := catalog.NewTable(rows)
package catalog
