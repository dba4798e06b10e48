package casematch

import (
	"context"

	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/duplicates"
	"github.com/agentstation/casematch/pkg/identifier"
	"github.com/agentstation/casematch/pkg/layout"
	"github.com/agentstation/casematch/pkg/logging"
	"github.com/agentstation/casematch/pkg/qualifier"
)

// PrepareReport runs the report pipeline: canonicalize the identifier column,
// flag duplicates, then qualify rows. Canonicalization must come first so that
// reordered identifier lists are caught as duplicates. Flags are computed over
// every raw row, so a twin dropped by qualification still marks its survivor.
// Aux positions are resolved against the raw width so a narrow report never
// reads the appended flag column as aux.
func PrepareReport(ctx context.Context, raw *dataset.Dataset, l layout.Layout) *dataset.Dataset {
	if raw == nil {
		return nil
	}
	logger := logging.FromContext(ctx)

	normalized := raw.MapColumn(l.IdentifierColumn, identifier.Canonicalize)
	marked := duplicates.Mark(normalized, l.IdentifierColumn, l.DuplicateColumn, l.DuplicateMarker)
	qualified := qualifier.ReportWithin(marked, l, raw.Width())

	logger.Debug().
		Str("dataset", raw.Name).
		Int("raw_rows", raw.Len()).
		Int("duplicates", duplicates.Count(duplicates.Detect(normalized.Column(l.IdentifierColumn)))).
		Int("qualified_rows", qualified.Len()).
		Msg("Prepared report")

	return qualified
}

// PrepareStatusFeed runs the status feed pipeline: project to the layout's
// columns, then keep rows with a numeric identifier.
func PrepareStatusFeed(ctx context.Context, raw *dataset.Dataset, l layout.Layout) *dataset.Dataset {
	if raw == nil {
		return nil
	}
	logger := logging.FromContext(ctx)

	projected := qualifier.Project(raw, l.Projection)
	baseline := qualifier.StatusFeed(projected, l)

	logger.Debug().
		Str("dataset", raw.Name).
		Int("raw_rows", raw.Len()).
		Int("raw_columns", raw.Width()).
		Strs("columns", baseline.Columns).
		Int("baseline_rows", baseline.Len()).
		Msg("Prepared status feed")

	return baseline
}
