// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/moments"
	"github.com/katalvlaran/ppvstat/ppv"
	"github.com/katalvlaran/ppvstat/units"
)

// Structure is a labeled region of a cube: sample values (NaN for masked
// samples) and one coordinate slice per cube axis.
type Structure interface {
	Values() []float64
	Indices() [][]float64
}

// Row maps quantity names to values for one structure.
type Row map[string]units.Quantity

// Build computes the selected quantities for every structure.
// Implementation:
//   - Stage 1: Resolve field names against the ppv registry.
//   - Stage 2: Validate md against the schema exactly once; a missing strict
//     field fails here, before any row exists.
//   - Stage 3: Compute one Row per structure, sequentially or on an
//     errgroup bounded by WithWorkers. md is shared read-only.
//
// Returns rows in input order. The first failure aborts the build and is
// wrapped with the structure's position.
func Build(structures []Structure, md metadata.Record, opts ...Option) ([]Row, error) {
	o := gatherOptions(opts)

	fns := make([]ppv.Func, len(o.fields))
	for i, name := range o.fields {
		fn, ok := ppv.Lookup(name)
		if !ok {
			return nil, catalogErrorf(opBuild, fmt.Errorf("%q: %w", name, ppv.ErrUnknownField))
		}
		fns[i] = fn
	}

	if err := o.schema.Validate(md, o.logger); err != nil {
		return nil, catalogErrorf(opBuild, err)
	}

	rows := make([]Row, len(structures))
	if o.workers <= 1 || len(structures) < 2 {
		for i, s := range structures {
			row, err := buildRow(s, md, o, fns)
			if err != nil {
				return nil, catalogErrorf(opBuild, fmt.Errorf("structure %d: %w", i, err))
			}
			rows[i] = row
			logRow(o.logger, i, len(structures))
		}

		return rows, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)
	for i, s := range structures {
		i, s := i, s
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			row, err := buildRow(s, md, o, fns)
			if err != nil {
				return fmt.Errorf("structure %d: %w", i, err)
			}
			rows[i] = row
			logRow(o.logger, i, len(structures))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, catalogErrorf(opBuild, err)
	}

	return rows, nil
}

func buildRow(s Structure, md metadata.Record, o options, fns []ppv.Func) (Row, error) {
	st, err := moments.New(s.Values(), s.Indices(), o.moments...)
	if err != nil {
		return nil, err
	}
	p := ppv.New(st, md, ppv.WithSchema(o.schema))
	row := make(Row, len(fns))
	for i, fn := range fns {
		q, err := fn(p)
		if err != nil {
			return nil, err
		}
		row[o.fields[i]] = q
	}

	return row, nil
}

func logRow(l logrus.FieldLogger, i, total int) {
	l.WithFields(logrus.Fields{
		"action":    "catalog_build",
		"structure": i,
		"total":     total,
	}).Debug("built catalog row")
}
