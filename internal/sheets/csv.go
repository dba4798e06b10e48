package sheets

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/transform"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
)

const bom = "\ufeff"

func loadCSV(path string, o *options) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(transform.NewReader(file, o.encoding.NewDecoder()))
	r.Comma = o.delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &errors.ParseError{
				Format:  "csv",
				File:    path,
				Line:    parseErr.Line,
				Message: parseErr.Err.Error(),
				Err:     err,
			}
		}
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], bom)
	}

	return build(fileName(path), records, func(_, _ int, value string) dataset.Cell {
		if value == "" {
			return dataset.Empty()
		}
		return dataset.Text(value)
	}), nil
}

func exportCSV(ds *dataset.Dataset, path string, o *options) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	encoder := transform.NewWriter(file, o.encoding.NewEncoder())
	w := csv.NewWriter(encoder)
	w.Comma = o.delimiter

	records := make([][]string, 0, ds.Len()+1)
	records = append(records, ds.Columns)
	for _, row := range ds.Rows {
		record := make([]string, len(row))
		for i, c := range row {
			record[i] = c.String()
		}
		records = append(records, record)
	}

	if err := w.WriteAll(records); err != nil {
		_ = file.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := encoder.Close(); err != nil {
		_ = file.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

func fileName(path string) string {
	return filepath.Base(path)
}
