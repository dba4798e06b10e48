package sheets

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
)

func loadXLSX(path string, o *options) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := o.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.NewNotFoundError("worksheet", sheet)
	}
	if sheet == "" {
		return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
	}

	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}

	return build(fileName(path), records, func(row, col int, value string) dataset.Cell {
		return xlsxCell(f, sheet, row, col, value)
	}), nil
}

// xlsxCell types a raw cell value. Cells without a string type that parse as
// numbers are numbers; dates come through as serial numbers.
func xlsxCell(f *excelize.File, sheet string, row, col int, value string) dataset.Cell {
	if value == "" {
		return dataset.Empty()
	}
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return dataset.Text(value)
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return dataset.Text(value)
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		if n, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return dataset.Number(n)
		}
	}
	return dataset.Text(value)
}

func exportXLSX(ds *dataset.Dataset, path string, o *options) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := o.sheet
	if sheet == "" {
		sheet = constants.DefaultSheet
	}
	if sheet != constants.DefaultSheet {
		if err := f.SetSheetName(constants.DefaultSheet, sheet); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	headers := make([]any, len(ds.Columns))
	for i, c := range ds.Columns {
		headers[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.WrapIO("write", path, err)
	}

	for r, row := range ds.Rows {
		values := make([]any, len(row))
		for i, c := range row {
			values[i] = c.Value()
		}
		axis, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.WrapIO("write", path, err)
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
