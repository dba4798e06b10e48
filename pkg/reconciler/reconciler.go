// Package reconciler derives reconciliation views from a status feed baseline
// and the identifiers of a report.
//
// Every call starts over from the baseline: views are never applied on top of
// one another and the baseline is never modified.
package reconciler

import (
	"context"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
	"github.com/agentstation/casematch/pkg/logging"
)

// Reconciler is the main interface for deriving views from a baseline.
type Reconciler interface {
	// UnmatchedActive keeps baseline rows that are active and whose identifiers
	// the report does not mention. With no report every active row is kept.
	UnmatchedActive(ctx context.Context, report, baseline *dataset.Dataset) (*Result, error)

	// MatchedInactive keeps baseline rows that are not active and share an
	// identifier with the report. With no report nothing is kept.
	MatchedInactive(ctx context.Context, report, baseline *dataset.Dataset) (*Result, error)

	// Reconcile runs the given mode.
	Reconcile(ctx context.Context, mode Mode, report, baseline *dataset.Dataset) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	layout layout.Layout
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{layout: options.layout}, nil
}

// UnmatchedActive implements Reconciler.
func (r *reconciler) UnmatchedActive(ctx context.Context, report, baseline *dataset.Dataset) (*Result, error) {
	return r.Reconcile(ctx, ModeUnmatchedActive, report, baseline)
}

// MatchedInactive implements Reconciler.
func (r *reconciler) MatchedInactive(ctx context.Context, report, baseline *dataset.Dataset) (*Result, error) {
	return r.Reconcile(ctx, ModeMatchedInactive, report, baseline)
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, mode Mode, report, baseline *dataset.Dataset) (*Result, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, errors.NewDatasetError(constants.StatusFeedDataset, "reconcile "+mode.String())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := NewResult(mode)
	logger := logging.FromContext(ctx).With().
		Str("mode", mode.String()).
		Str("run_id", result.Metadata.RunID.String()).
		Logger()

	set := IdentifierSet(report, r.layout)
	result.Metadata.Stats.BaselineRows = baseline.Len()
	result.Metadata.Stats.ReportIdentifiers = set.Len()

	f := newFilter(mode, set, r.layout)
	result.Dataset = baseline.Filter(f.keep)
	result.Finalize()

	logger.Debug().
		Int("baseline_rows", result.Metadata.Stats.BaselineRows).
		Int("report_identifiers", result.Metadata.Stats.ReportIdentifiers).
		Int("kept", result.Metadata.Stats.Kept).
		Dur("duration", result.Metadata.Duration).
		Msg("Reconciled baseline")

	return result, nil
}
