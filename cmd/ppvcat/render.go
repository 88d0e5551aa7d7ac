package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/ppvstat/catalog"
	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/ppv"
)

// Output formats.
const (
	formatTable    = "table"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// idColumn heads the structure id column.
const idColumn = "id"

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("ppvcat: unknown output format")

// renderer writes a catalog table; ids label the rows in order.
type renderer func(w io.Writer, ids []string, tbl *catalog.Table) error

func rendererFor(format string) (renderer, error) {
	switch format {
	case formatTable, formatCSV, formatMarkdown:
		return func(w io.Writer, ids []string, tbl *catalog.Table) error {
			return renderPretty(w, format, ids, tbl)
		}, nil
	case formatJSON:
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// header returns "name [unit]" for tagged columns and "name" otherwise.
func header(tbl *catalog.Table, name string) string {
	if u := tbl.Units(name); !u.IsDimensionless() {
		return fmt.Sprintf("%s [%s]", name, u)
	}

	return name
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// newWriter returns a light-style table that keeps header case; unit
// symbols are case sensitive.
func newWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault

	return tw
}

func renderPretty(w io.Writer, format string, ids []string, tbl *catalog.Table) error {
	tw := newWriter()

	names := tbl.Names()
	head := table.Row{idColumn}
	for _, name := range names {
		head = append(head, header(tbl, name))
	}
	tw.AppendHeader(head)

	cols := make([][]string, len(names))
	for j, name := range names {
		col, _ := tbl.Column(name)
		cols[j] = make([]string, len(col))
		for i, q := range col {
			cols[j][i] = formatValue(q.Value)
		}
	}
	for i := 0; i < tbl.Len(); i++ {
		row := table.Row{ids[i]}
		for j := range names {
			row = append(row, cols[j][i])
		}
		tw.AppendRow(row)
	}

	var out string
	switch format {
	case formatCSV:
		out = tw.RenderCSV()
	case formatMarkdown:
		out = tw.RenderMarkdown()
	default:
		out = tw.Render()
	}
	_, err := fmt.Fprintln(w, out)

	return err
}

// jsonCell is one quantity; NaN and ±Inf encode as a null value.
type jsonCell struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit,omitempty"`
}

func renderJSON(w io.Writer, ids []string, tbl *catalog.Table) error {
	out := make([]map[string]any, tbl.Len())
	for i := range out {
		out[i] = map[string]any{idColumn: ids[i]}
	}
	for _, name := range tbl.Names() {
		col, _ := tbl.Column(name)
		for i, q := range col {
			cell := jsonCell{Unit: q.Unit.String()}
			if v := q.Value; !math.IsNaN(v) && !math.IsInf(v, 0) {
				cell.Value = &v
			}
			out[i][name] = cell
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func renderFields(w io.Writer, entries []ppv.Entry, schema metadata.Schema) error {
	tw := newWriter()
	tw.SetTitle("Quantities")
	tw.AppendHeader(table.Row{"name", "description"})
	for _, e := range entries {
		tw.AppendRow(table.Row{e.Name, e.Description})
	}
	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}

	mw := newWriter()
	mw.SetTitle("Metadata")
	mw.AppendHeader(table.Row{"key", "description", "default", "strict"})
	for _, f := range schema {
		mw.AppendRow(table.Row{f.Key, f.Description, f.Default.String(), f.Strict})
	}
	_, err := fmt.Fprintln(w, mw.Render())

	return err
}
