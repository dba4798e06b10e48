package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/casematch/pkg/dataset"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		cell  dataset.Cell
		want  float64
		valid bool
	}{
		{"number", dataset.Number(4.5), 4.5, true},
		{"integer text", dataset.Text("12"), 12, true},
		{"padded text", dataset.Text("  7.25 "), 7.25, true},
		{"negative", dataset.Text("-3"), -3, true},
		{"exponent", dataset.Text("1e3"), 1000, true},
		{"empty", dataset.Empty(), 0, false},
		{"blank text", dataset.Text("   "), 0, false},
		{"words", dataset.Text("нет"), 0, false},
		{"list", dataset.Text("12, 13"), 0, false},
		{"nan text", dataset.Text("NaN"), 0, false},
		{"inf text", dataset.Text("Inf"), 0, false},
		{"hex", dataset.Text("0x10"), 0, false},
		{"comma decimal", dataset.Text("1,5"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dataset.Coerce(tt.cell)
			assert.Equal(t, tt.valid, got.OK)
			if tt.valid {
				assert.Equal(t, tt.want, got.Value)
				assert.Equal(t, dataset.KindNumber, got.Cell().Kind())
			} else {
				assert.True(t, got.Cell().IsEmpty())
			}
		})
	}
}

func TestCoerceColumn(t *testing.T) {
	ds := dataset.New("r", "id", "sum")
	ds.Append(dataset.Text("1"), dataset.Text("100"))
	ds.Append(dataset.Text("2"), dataset.Text("n/a"))

	got := ds.CoerceColumn(1)

	v, ok := got.Cell(0, 1).Float()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)
	assert.True(t, got.Cell(1, 1).IsEmpty())
	assert.Equal(t, "n/a", ds.Cell(1, 1).String())
}

func TestNumberNaNIsEmpty(t *testing.T) {
	assert.True(t, dataset.Number(math.NaN()).IsEmpty())
}
