package reconciler

import (
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/identifier"
	"github.com/agentstation/casematch/pkg/layout"
)

// IdentifierSet returns every identifier token found in the report's
// identifier column. A nil report yields an empty set.
func IdentifierSet(report *dataset.Dataset, l layout.Layout) identifier.Set {
	set := make(identifier.Set)
	for _, c := range report.Column(l.IdentifierColumn) {
		set.Union(identifier.ExtractTokens(c))
	}
	return set
}

// filter decides baseline row membership for one mode
type filter struct {
	mode      Mode
	report    identifier.Set
	idColumn  int
	statusCol int
	active    string
}

// newFilter creates a new filter
func newFilter(mode Mode, report identifier.Set, l layout.Layout) *filter {
	return &filter{
		mode:      mode,
		report:    report,
		idColumn:  l.IdentifierColumn,
		statusCol: l.StatusColumn,
		active:    l.ActiveStatus,
	}
}

// isActive compares the status cell with the active literal exactly
func (f *filter) isActive(row dataset.Row) bool {
	return row.At(f.statusCol).String() == f.active
}

// inReport returns true if any token of the row's identifier is in the report
func (f *filter) inReport(row dataset.Row) bool {
	return identifier.ExtractTokens(row.At(f.idColumn)).Intersects(f.report)
}

// keep applies the mode's rule to a baseline row
func (f *filter) keep(row dataset.Row) bool {
	switch f.mode {
	case ModeUnmatchedActive:
		return f.isActive(row) && !f.inReport(row)
	case ModeMatchedInactive:
		return !f.isActive(row) && f.inReport(row)
	default:
		return false
	}
}
