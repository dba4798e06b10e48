package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/casematch/pkg/dataset"
)

func TestSortByColumn(t *testing.T) {
	ds := dataset.New("feed", "id", "status")
	ds.Append(dataset.Text("100"), dataset.Text("a"))
	ds.Append(dataset.Empty(), dataset.Text("b"))
	ds.Append(dataset.Number(9), dataset.Text("c"))
	ds.Append(dataset.Text("abc"), dataset.Text("d"))
	ds.Append(dataset.Text("9"), dataset.Text("e"))

	got := ds.SortByColumn(0)

	var order []string
	for _, c := range got.Column(1) {
		order = append(order, c.String())
	}
	assert.Equal(t, []string{"c", "e", "a", "d", "b"}, order)
	assert.Equal(t, "100", ds.Cell(0, 0).String(), "receiver unchanged")
}
