// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"github.com/agentstation/casematch/pkg/dataset"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// FromDataset converts a dataset to table data. Columns holding only numbers
// (ignoring empty cells) are right aligned.
func FromDataset(ds *dataset.Dataset) Data {
	if ds == nil {
		return Data{Headers: []string{}, Rows: [][]string{}}
	}
	data := Data{
		Headers:         append([]string{}, ds.Columns...),
		Rows:            make([][]string, 0, ds.Len()),
		ColumnAlignment: make([]Align, ds.Width()),
	}

	numeric := make([]bool, ds.Width())
	seen := make([]bool, ds.Width())
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range ds.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.String()
			switch c.Kind() {
			case dataset.KindEmpty:
			case dataset.KindNumber:
				seen[i] = true
			default:
				numeric[i] = false
			}
		}
		data.Rows = append(data.Rows, cells)
	}

	for i := range data.ColumnAlignment {
		if numeric[i] && seen[i] {
			data.ColumnAlignment[i] = AlignRight
		}
	}
	return data
}
