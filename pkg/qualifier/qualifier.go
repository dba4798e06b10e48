// Package qualifier decides which rows of each dataset take part in
// reconciliation.
//
// Both qualifiers are pure: they return a new dataset and degrade on narrow
// input instead of failing.
package qualifier

import (
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/identifier"
	"github.com/agentstation/casematch/pkg/layout"
)

// Report keeps report rows whose identifier has a digit and that carry a
// number in at least one of the two aux columns. The aux columns are written
// back as numbers or empty cells; aux columns the dataset lacks count as having
// no value and are not created.
//
// The identifier column is expected to be canonical already.
func Report(ds *dataset.Dataset, l layout.Layout) *dataset.Dataset {
	if ds == nil {
		return nil
	}
	return ReportWithin(ds, l, ds.Width())
}

// ReportWithin is Report with the aux columns resolved against width instead
// of the dataset's own width. Columns appended after loading, such as the
// duplicate flag, sit at or past width and are never coerced or read as aux.
func ReportWithin(ds *dataset.Dataset, l layout.Layout, width int) *dataset.Dataset {
	if ds == nil {
		return nil
	}

	aux := make([]int, 0, len(l.AuxColumns))
	for _, col := range l.AuxColumns {
		if col < width {
			aux = append(aux, col)
		}
	}

	coerced := ds
	for _, col := range aux {
		coerced = coerced.CoerceColumn(col)
	}

	return coerced.Filter(func(row dataset.Row) bool {
		if !identifier.HasDigit(row.At(l.IdentifierColumn)) {
			return false
		}
		for _, col := range aux {
			if dataset.Coerce(row.At(col)).OK {
				return true
			}
		}
		return false
	})
}

// StatusFeed keeps rows whose identifier cell as a whole is a number. Cells
// listing several identifiers ("12, 13") do not qualify.
func StatusFeed(ds *dataset.Dataset, l layout.Layout) *dataset.Dataset {
	if ds == nil {
		return nil
	}
	return ds.Filter(func(row dataset.Row) bool {
		return dataset.Coerce(row.At(l.IdentifierColumn)).OK
	})
}
