package qualifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/layout"
	"github.com/agentstation/casematch/pkg/qualifier"
)

// reportRow builds a nine column report row with the identifier in column 0
// and the aux values in columns 7 and 8.
func reportRow(id dataset.Cell, amount, balance dataset.Cell) []dataset.Cell {
	row := make([]dataset.Cell, 9)
	row[0] = id
	row[7] = amount
	row[8] = balance
	return row
}

func newReport() *dataset.Dataset {
	return dataset.New("report", "A", "B", "C", "D", "E", "F", "G", "H", "I")
}

func identifiers(ds *dataset.Dataset, col int) []string {
	var out []string
	for _, c := range ds.Column(col) {
		out = append(out, c.String())
	}
	return out
}

func TestReport(t *testing.T) {
	ds := newReport()
	ds.Append(reportRow(dataset.Text("2, 5"), dataset.Text("100"), dataset.Empty())...)
	ds.Append(reportRow(dataset.Text("7"), dataset.Empty(), dataset.Number(3.5))...)
	ds.Append(reportRow(dataset.Text("8"), dataset.Text("abc"), dataset.Empty())...)
	ds.Append(reportRow(dataset.Text("нет номера"), dataset.Number(10), dataset.Number(20))...)
	ds.Append(reportRow(dataset.Empty(), dataset.Number(10), dataset.Empty())...)
	ds.Append(reportRow(dataset.Text("9"), dataset.Text(" 1,5 "), dataset.Text("-4"))...)

	got := qualifier.Report(ds, layout.Default())

	assert.Equal(t, []string{"2, 5", "7", "9"}, identifiers(got, 0))
	assert.Equal(t, dataset.KindNumber, got.Cell(0, 7).Kind())
	assert.Equal(t, "100", got.Cell(0, 7).String())
	assert.True(t, got.Cell(0, 8).IsEmpty())
	assert.True(t, got.Cell(2, 7).IsEmpty(), "decimal comma is not a number")
	assert.Equal(t, "-4", got.Cell(2, 8).String())

	assert.Equal(t, 6, ds.Len(), "input unchanged")
	assert.Equal(t, dataset.KindText, ds.Cell(0, 7).Kind())
}

func TestReportNarrowDataset(t *testing.T) {
	ds := dataset.New("narrow", "A", "B")
	ds.Append(dataset.Text("12"), dataset.Number(1))

	got := qualifier.Report(ds, layout.Default())

	require.NotNil(t, got)
	assert.Equal(t, 0, got.Len(), "no aux columns means no aux value")
	assert.Equal(t, 2, got.Width(), "missing aux columns are not created")
}

func TestReportWithinIgnoresAppendedColumns(t *testing.T) {
	ds := dataset.New("narrow", "A", "B", "C", "D", "E", "F", "G", "H", "Дубликат")
	ds.Append(dataset.Text("4"), dataset.Empty(), dataset.Empty(), dataset.Empty(),
		dataset.Empty(), dataset.Empty(), dataset.Empty(), dataset.Text("1"), dataset.Text("ДУБЛЬ"))
	ds.Append(dataset.Text("5"), dataset.Empty(), dataset.Empty(), dataset.Empty(),
		dataset.Empty(), dataset.Empty(), dataset.Empty(), dataset.Empty(), dataset.Text("7"))

	got := qualifier.ReportWithin(ds, layout.Default(), 8)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "ДУБЛЬ", got.Cell(0, 8).String())
	assert.Equal(t, dataset.KindNumber, got.Cell(0, 7).Kind())
}

func TestReportNil(t *testing.T) {
	assert.Nil(t, qualifier.Report(nil, layout.Default()))
}

func TestStatusFeed(t *testing.T) {
	ds := dataset.New("feed", "Номер", "Статус")
	ds.Append(dataset.Number(10), dataset.Text("Работа"))
	ds.Append(dataset.Text(" 30 "), dataset.Text("Работа"))
	ds.Append(dataset.Text("12, 13"), dataset.Text("Работа"))
	ds.Append(dataset.Text("Итого"), dataset.Text(""))
	ds.Append(dataset.Empty(), dataset.Text("Закрыт"))
	ds.Append(dataset.Text("20"), dataset.Text("Закрыт"))

	got := qualifier.StatusFeed(ds, layout.Default())

	assert.Equal(t, []string{"10", " 30 ", "20"}, identifiers(got, 0))
	assert.Equal(t, 6, ds.Len())
}

func TestProject(t *testing.T) {
	wide := dataset.New("feed")
	wide.Columns = make([]string, 40)
	for i := range wide.Columns {
		wide.Columns[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
	}
	row := make([]dataset.Cell, 40)
	for i := range row {
		row[i] = dataset.Number(float64(i))
	}
	wide.Append(row...)

	tests := []struct {
		name      string
		ds        *dataset.Dataset
		positions []int
		want      []string
	}{
		{"standard feed", wide, []int{0, 6, 14, 37}, []string{"0", "6", "14", "37"}},
		{"order follows the source", wide, []int{37, 0, 6}, []string{"0", "6", "37"}},
		{"repeats and negatives dropped", wide, []int{6, 6, -1}, []string{"6"}},
		{"nothing in range keeps first column", wide, []int{40, 41}, []string{"0"}},
		{"narrow feed", newFive(), []int{0, 6, 14, 37}, []string{"0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qualifier.Project(tt.ds, tt.positions)
			require.Equal(t, 1, got.Len())

			var values []string
			for _, c := range got.Rows[0] {
				values = append(values, c.String())
			}
			assert.Equal(t, tt.want, values)
			assert.Len(t, got.Columns, len(tt.want))
		})
	}
}

func TestProjectFiveColumns(t *testing.T) {
	got := qualifier.Project(newFive(), []int{0, 6, 14, 37})
	assert.Equal(t, []string{"c0"}, got.Columns)
}

func TestProjectEmpty(t *testing.T) {
	empty := dataset.New("empty")
	got := qualifier.Project(empty, []int{0, 1})
	assert.Equal(t, 0, got.Width())
	assert.Nil(t, qualifier.Project(nil, []int{0}))
}

func newFive() *dataset.Dataset {
	ds := dataset.New("five", "c0", "c1", "c2", "c3", "c4")
	ds.Append(dataset.Number(0), dataset.Number(1), dataset.Number(2), dataset.Number(3), dataset.Number(4))
	return ds
}
