package output

import (
	"fmt"
	"io"

	"github.com/agentstation/casematch/internal/cmd/table"
	"github.com/agentstation/casematch/pkg/dataset"
)

// DatasetView is the serialized form of a dataset for JSON and YAML output.
type DatasetView struct {
	File    string   `json:"file" yaml:"file"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
	Count   int      `json:"count" yaml:"count"`
}

// NewDatasetView converts a dataset for serialization. Empty cells become
// null, numbers stay numbers.
func NewDatasetView(ds *dataset.Dataset) DatasetView {
	view := DatasetView{Columns: []string{}, Rows: [][]any{}}
	if ds == nil {
		return view
	}
	view.File = ds.Name
	view.Columns = append(view.Columns, ds.Columns...)
	for _, row := range ds.Rows {
		values := make([]any, len(row))
		for i, c := range row {
			values[i] = c.Value()
		}
		view.Rows = append(view.Rows, values)
	}
	view.Count = len(view.Rows)
	return view
}

// FormatDataset writes a dataset in the given format. Tables are followed by
// a footer with the row count and the source file.
func FormatDataset(w io.Writer, ds *dataset.Dataset, format Format) error {
	formatter := NewFormatter(format)

	switch format {
	case FormatTable, "":
		if err := formatter.Format(w, table.FromDataset(ds)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, Footer(ds))
		return err
	case FormatCSV:
		return formatter.Format(w, table.FromDataset(ds))
	default:
		return formatter.Format(w, NewDatasetView(ds))
	}
}

// Footer returns the row counter line shown under a table.
func Footer(ds *dataset.Dataset) string {
	if ds == nil || ds.Name == "" {
		return fmt.Sprintf("Rows: %d", ds.Len())
	}
	return fmt.Sprintf("Rows: %d | File: %s", ds.Len(), ds.Name)
}
