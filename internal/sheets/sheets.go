// Package sheets reads and writes datasets as spreadsheet (.xlsx) and CSV
// files, and reads legacy (.xls) workbooks.
//
// The first row of a file holds the column names. Spreadsheet cells keep
// their type, so numbers stay numbers; CSV fields and legacy workbook cells
// are read as text.
package sheets

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/logging"
)

// Format is a supported file format.
type Format string

const (
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy BIFF workbook. It can be read but not written.
	FormatXLS Format = "xls"
	// FormatCSV is delimited text.
	FormatCSV Format = "csv"
)

// DetectFormat maps a file name to its format by extension.
func DetectFormat(path string) (Format, error) {
	switch fileExt(path) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatCSV, nil
	default:
		return "", unsupported(path)
	}
}

func unsupported(path string) error {
	return &errors.ParseError{
		Format:  strings.TrimPrefix(fileExt(path), "."),
		File:    path,
		Message: "unsupported file format",
		Err:     errors.ErrUnsupportedFormat,
	}
}

// Load reads a dataset from path. The dataset is named after the file.
func Load(ctx context.Context, path string, opts ...Option) (*dataset.Dataset, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if fileExt(path) == ".tsv" {
		o.delimiter = '\t'
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx).With().Str("file", path).Logger()

	var ds *dataset.Dataset
	switch format {
	case FormatXLSX:
		ds, err = loadXLSX(path, o)
	case FormatXLS:
		ds, err = loadXLS(path, o)
	case FormatCSV:
		ds, err = loadCSV(path, o)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", string(format)).
		Int("rows", ds.Len()).
		Int("columns", ds.Width()).
		Msg("Loaded file")
	return ds, nil
}

// LoadAll reads several files concurrently. Empty paths are skipped and
// yield nil at their position. The first failure cancels the rest.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]*dataset.Dataset, error) {
	out := make([]*dataset.Dataset, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		if path == "" {
			continue
		}
		i, path := i, path
		g.Go(func() error {
			ds, err := Load(gctx, path, opts...)
			if err != nil {
				return err
			}
			out[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Export writes ds to path, choosing the format from the extension. An empty
// path writes the default export file next to the working directory.
func Export(ctx context.Context, ds *dataset.Dataset, path string, opts ...Option) (string, error) {
	if ds.Width() == 0 || ds.Len() == 0 {
		return "", errors.ErrNothingToExport
	}
	o, err := newOptions(opts...)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = ExportPath(ds.Name)
	}
	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}
	if fileExt(path) == ".tsv" {
		o.delimiter = '\t'
	}

	switch format {
	case FormatXLSX:
		err = exportXLSX(ds, path, o)
	case FormatCSV:
		err = exportCSV(ds, path, o)
	default:
		err = unsupported(path)
	}
	if err != nil {
		return "", err
	}

	logging.FromContext(ctx).Info().
		Str("file", path).
		Int("rows", ds.Len()).
		Msg("Exported dataset")
	return path, nil
}

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// build turns raw records into a dataset. The first record holds the column
// names; the widest record decides the width.
func build(name string, records [][]string, cell func(row, col int, value string) dataset.Cell) *dataset.Dataset {
	if len(records) == 0 {
		return dataset.New(name)
	}
	width := 0
	for _, r := range records {
		width = max(width, len(r))
	}
	headers := make([]string, width)
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	ds := dataset.New(name, headers...)
	for r, record := range records[1:] {
		cells := make([]dataset.Cell, width)
		for c, value := range record {
			cells[c] = cell(r+1, c, value)
		}
		ds.Append(cells...)
	}
	return ds
}
