// SPDX-License-Identifier: MIT

package catalog

import (
	"math"
	"sort"

	"github.com/katalvlaran/ppvstat/units"
)

// Table is a column view of catalog rows. Columns are named after the row
// keys and sorted lexicographically; a row lacking a key holds a bare NaN.
type Table struct {
	names []string
	cols  map[string][]units.Quantity
	n     int
}

// NewTable pivots rows into columns. Empty input yields an empty table.
func NewTable(rows []Row) *Table {
	seen := map[string]bool{}
	var names []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	cols := make(map[string][]units.Quantity, len(names))
	for _, name := range names {
		col := make([]units.Quantity, len(rows))
		for i, r := range rows {
			q, ok := r[name]
			if !ok {
				q = units.Bare(math.NaN())
			}
			col[i] = q
		}
		cols[name] = col
	}

	return &Table{names: names, cols: cols, n: len(rows)}
}

// Names returns the column names in sorted order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]units.Quantity, bool) {
	col, ok := t.cols[name]
	if !ok {
		return nil, false
	}

	return append([]units.Quantity(nil), col...), true
}

// Units returns the unit of the first tagged cell of the named column, or
// the dimensionless unit when every cell is bare.
func (t *Table) Units(name string) units.Unit {
	for _, q := range t.cols[name] {
		if !q.IsBare() {
			return q.Unit
		}
	}

	return units.Unit{}
}
