package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/casematch/pkg/dataset"
)

func TestFromDataset(t *testing.T) {
	ds := dataset.New("feed", "Номер", "Статус", "Сумма")
	ds.Append(dataset.Number(10), dataset.Text("Работа"), dataset.Empty())
	ds.Append(dataset.Text("12, 13"), dataset.Text("Закрыт"), dataset.Empty())

	data := FromDataset(ds)

	assert.Equal(t, []string{"Номер", "Статус", "Сумма"}, data.Headers)
	assert.Equal(t, [][]string{{"10", "Работа", ""}, {"12, 13", "Закрыт", ""}}, data.Rows)
	assert.Equal(t, []Align{AlignDefault, AlignDefault, AlignDefault}, data.ColumnAlignment)
}

func TestFromDatasetNumericColumns(t *testing.T) {
	ds := dataset.New("report", "Номер", "Сумма")
	ds.Append(dataset.Text("1"), dataset.Number(1.5))
	ds.Append(dataset.Text("2"), dataset.Empty())

	data := FromDataset(ds)
	assert.Equal(t, []Align{AlignDefault, AlignRight}, data.ColumnAlignment)
}

func TestFromDatasetNil(t *testing.T) {
	data := FromDataset(nil)
	assert.Empty(t, data.Headers)
	assert.Empty(t, data.Rows)
}
