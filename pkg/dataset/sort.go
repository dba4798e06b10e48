package dataset

import "sort"

// SortBy returns a new dataset with rows stably ordered by less.
func (d *Dataset) SortBy(less func(a, b Row) bool) *Dataset {
	out := d.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return less(out.Rows[i], out.Rows[j])
	})
	return out
}

// SortByColumn orders rows by column col: numeric values ascending first,
// then text in byte order, then empty cells.
func (d *Dataset) SortByColumn(col int) *Dataset {
	return d.SortBy(func(a, b Row) bool {
		return compareCells(a.At(col), b.At(col)) < 0
	})
}

func compareCells(a, b Cell) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 0:
		x, y := Coerce(a).Value, Coerce(b).Value
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	case 1:
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
	}
	return 0
}

// rank groups cells for ordering: numeric, text, empty.
func rank(c Cell) int {
	switch {
	case c.IsEmpty():
		return 2
	case Coerce(c).OK:
		return 0
	default:
		return 1
	}
}
