package identifier

import "github.com/agentstation/casematch/pkg/dataset"

// SortByLeadingToken orders rows by the first numeric token of column col.
// Rows without a token go last; ties keep their original order.
func SortByLeadingToken(ds *dataset.Dataset, col int) *dataset.Dataset {
	return ds.SortBy(func(a, b dataset.Row) bool {
		x, okA := LeadingToken(a.At(col))
		y, okB := LeadingToken(b.At(col))
		switch {
		case !okA:
			return false
		case !okB:
			return true
		default:
			return Compare(x, y) < 0
		}
	})
}
