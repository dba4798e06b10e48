// Package dataset provides the in-memory tabular model shared by the
// reconciliation engine and the I/O layer: ordered rows of typed cells under
// unique, order-preserving column names.
//
// Every transforming method returns a new Dataset; the receiver is never
// modified, which lets a baseline be shared by reference.
package dataset

import (
	"strconv"

	"github.com/agentstation/casematch/pkg/constants"
)

// Row is a slice of cells aligned to a dataset's columns.
type Row []Cell

// At returns the cell at position i, or an empty cell when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Empty()
	}
	return r[i]
}

// Dataset is an ordered sequence of rows under named columns.
type Dataset struct {
	// Name labels the source of the data, usually the file base name.
	Name string

	// Columns are unique column names in order.
	Columns []string

	// Rows hold exactly len(Columns) cells each.
	Rows []Row
}

// New creates an empty dataset. Column names are made unique with UniqueColumns.
func New(name string, columns ...string) *Dataset {
	return &Dataset{
		Name:    name,
		Columns: UniqueColumns(columns),
		Rows:    []Row{},
	}
}

// Append adds a row, padding with empty cells or truncating to the dataset width.
func (d *Dataset) Append(cells ...Cell) {
	row := make(Row, len(d.Columns))
	copy(row, cells)
	d.Rows = append(d.Rows, row)
}

// Len returns the number of rows. A nil dataset has no rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Width returns the number of columns. A nil dataset has no columns.
func (d *Dataset) Width() int {
	if d == nil {
		return 0
	}
	return len(d.Columns)
}

// IsEmpty reports whether the dataset has no rows.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (d *Dataset) Cell(row, col int) Cell {
	if row < 0 || row >= d.Len() {
		return Empty()
	}
	return d.Rows[row].At(col)
}

// Column returns a copy of the cells at position col, one per row.
// Out-of-range positions yield empty cells.
func (d *Dataset) Column(col int) []Cell {
	cells := make([]Cell, d.Len())
	for i := range cells {
		cells[i] = d.Rows[i].At(col)
	}
	return cells
}

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{
		Name:    d.Name,
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append(Row(nil), row...)
	}
	return out
}

// Filter returns a new dataset with the rows for which keep returns true.
func (d *Dataset) Filter(keep func(Row) bool) *Dataset {
	out := &Dataset{
		Name:    d.Name,
		Columns: append([]string(nil), d.Columns...),
		Rows:    []Row{},
	}
	for _, row := range d.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, append(Row(nil), row...))
		}
	}
	return out
}

// SelectColumns returns a new dataset with the columns at the given positions,
// in the given order. Positions must be in range.
func (d *Dataset) SelectColumns(positions []int) *Dataset {
	out := &Dataset{
		Name:    d.Name,
		Columns: make([]string, len(positions)),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, p := range positions {
		out.Columns[i] = d.Columns[p]
	}
	for r, row := range d.Rows {
		projected := make(Row, len(positions))
		for i, p := range positions {
			projected[i] = row.At(p)
		}
		out.Rows[r] = projected
	}
	return out
}

// MapColumn returns a new dataset with fn applied to every cell of column col.
// When col is out of range the result is a plain copy.
func (d *Dataset) MapColumn(col int, fn func(Cell) Cell) *Dataset {
	out := d.Clone()
	if col < 0 || col >= out.Width() {
		return out
	}
	for _, row := range out.Rows {
		row[col] = fn(row[col])
	}
	return out
}

// WithColumn returns a new dataset with an extra trailing column.
// cells must hold one value per row; missing values are empty.
func (d *Dataset) WithColumn(name string, cells []Cell) *Dataset {
	out := d.Clone()
	out.Columns = UniqueColumns(append(out.Columns, name))
	for i := range out.Rows {
		var c Cell
		if i < len(cells) {
			c = cells[i]
		}
		out.Rows[i] = append(out.Rows[i], c)
	}
	return out
}

// UniqueColumns names blank headers "Unnamed: <pos>" and suffixes repeated
// names with ".1", ".2", ... so every column name is unique.
func UniqueColumns(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	for i, h := range headers {
		if h == "" {
			h = constants.UnnamedColumnPrefix + strconv.Itoa(i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
