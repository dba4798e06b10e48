package sheets

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding/charmap"

	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
)

// xlsMaxColumns is the BIFF column limit.
const xlsMaxColumns = 256

// loadXLS reads a legacy workbook. Cells come through as text, like CSV
// fields; the pipeline coerces the columns it needs.
func loadXLS(path string, o *options) (ds *dataset.Dataset, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = file.Close() }()

	defer func() {
		if r := recover(); r != nil {
			ds, err = nil, errors.NewParseError("xls", path, "malformed workbook", nil)
		}
	}()

	wb, err := xls.OpenReader(file, o.charset)
	if err != nil {
		return nil, errors.WrapParse("xls", path, err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.NewParseError("xls", path, "workbook has no sheets", nil)
	}

	sheet, err := xlsSheet(wb, o.sheet)
	if err != nil {
		return nil, err
	}

	decode := legacyDecoder(o)
	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		records = append(records, xlsRecord(xlsRow(sheet, i), decode))
	}
	for len(records) > 0 && len(records[len(records)-1]) == 0 {
		records = records[:len(records)-1]
	}

	return build(fileName(path), records, func(_, _ int, value string) dataset.Cell {
		if value == "" {
			return dataset.Empty()
		}
		return dataset.Text(value)
	}), nil
}

func xlsSheet(wb *xls.WorkBook, name string) (*xls.WorkSheet, error) {
	if name == "" {
		return wb.GetSheet(0), nil
	}
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == name {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("worksheet", name)
}

// xlsRow returns row i, or nil when the sheet holds no record for it.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// xlsRecord reads a row's values with trailing empty cells trimmed.
func xlsRecord(row *xls.Row, decode func(string) string) []string {
	if row == nil {
		return nil
	}
	record := make([]string, xlsMaxColumns)
	last := -1
	for c := range record {
		if v := row.Col(c); v != "" {
			record[c] = decode(v)
			last = c
		}
	}
	return record[:last+1]
}

// legacyDecoder converts BIFF5 byte strings, which are stored in the
// workbook's code page, to UTF-8. Strings that are already valid UTF-8 pass
// through. With the default encoding the code page is taken to be cp1251.
func legacyDecoder(o *options) func(string) string {
	enc := o.encoding
	if o.charset == charsetUTF8 {
		enc = charmap.Windows1251
	}
	dec := enc.NewDecoder()
	return func(s string) string {
		if utf8.ValidString(s) {
			return s
		}
		out, err := dec.String(s)
		if err != nil {
			return strings.ToValidUTF8(s, string(utf8.RuneError))
		}
		return out
	}
}
