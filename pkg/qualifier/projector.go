package qualifier

import (
	"sort"

	"github.com/agentstation/casematch/pkg/dataset"
)

// Project keeps the columns at the given positions, in their original order.
// Positions past the dataset width, negative positions, and repeats are
// ignored. When nothing survives the first column is kept, so a narrow feed
// still yields its identifiers.
func Project(ds *dataset.Dataset, positions []int) *dataset.Dataset {
	width := ds.Width()
	if width == 0 {
		return ds.Clone()
	}

	seen := make(map[int]bool, len(positions))
	keep := make([]int, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= width || seen[p] {
			continue
		}
		seen[p] = true
		keep = append(keep, p)
	}
	if len(keep) == 0 {
		keep = append(keep, 0)
	}
	sort.Ints(keep)

	return ds.SelectColumns(keep)
}
