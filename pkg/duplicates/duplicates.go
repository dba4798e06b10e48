// Package duplicates flags report rows that share a canonical identifier.
//
// Detection compares canonical strings exactly: callers must run
// identifier.Canonicalize first so "5, 2" and "2, 5" compare equal. Rows that
// merely overlap ("3, 7" and "3") are not duplicates.
package duplicates

import (
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/identifier"
)

// Detect returns one flag per cell. A cell takes part only if it contains a
// digit; it is flagged when another taking part has the same string.
func Detect(cells []dataset.Cell) []bool {
	groups := make(map[string][]int)
	for i, c := range cells {
		if !identifier.HasDigit(c) {
			continue
		}
		key := c.String()
		groups[key] = append(groups[key], i)
	}

	flags := make([]bool, len(cells))
	for _, rows := range groups {
		if len(rows) < 2 {
			continue
		}
		for _, i := range rows {
			flags[i] = true
		}
	}
	return flags
}

// Mark returns a copy of ds with a trailing column named label holding marker
// for every duplicated row of column col and empty text otherwise.
func Mark(ds *dataset.Dataset, col int, label, marker string) *dataset.Dataset {
	flags := Detect(ds.Column(col))
	cells := make([]dataset.Cell, len(flags))
	for i, dup := range flags {
		if dup {
			cells[i] = dataset.Text(marker)
		} else {
			cells[i] = dataset.Text("")
		}
	}
	return ds.WithColumn(label, cells)
}

// Count returns the number of flagged rows.
func Count(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
