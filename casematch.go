package casematch

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/utc"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/dataset"
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
	"github.com/agentstation/casematch/pkg/logging"
	"github.com/agentstation/casematch/pkg/reconciler"
)

// Session holds the prepared report and the status feed baseline, and derives
// reconciliation views from them.
type Session interface {
	// LoadReport prepares a raw report and replaces the stored one
	LoadReport(ctx context.Context, raw *dataset.Dataset) (*dataset.Dataset, error)

	// LoadStatusFeed prepares a raw status feed and replaces the baseline
	LoadStatusFeed(ctx context.Context, raw *dataset.Dataset) (*dataset.Dataset, error)

	// Report returns a copy of the prepared report, or nil if none is loaded
	Report() *dataset.Dataset

	// Baseline returns a copy of the baseline, or nil if none is loaded
	Baseline() *dataset.Dataset

	// UnmatchedActive derives the unmatched-active view from the baseline
	UnmatchedActive(ctx context.Context) (*reconciler.Result, error)

	// MatchedInactive derives the matched-inactive view from the baseline
	MatchedInactive(ctx context.Context) (*reconciler.Result, error)

	// Reconcile derives the view for mode from the baseline
	Reconcile(ctx context.Context, mode reconciler.Mode) (*reconciler.Result, error)

	// Info describes what is loaded
	Info() Info

	// Layout returns the column layout in use
	Layout() layout.Layout

	// OnReportLoaded registers a callback for when a report is loaded
	OnReportLoaded(ReportLoadedHook)

	// OnStatusFeedLoaded registers a callback for when a status feed is loaded
	OnStatusFeedLoaded(StatusFeedLoadedHook)

	// OnReconciled registers a callback for when a view is derived
	OnReconciled(ReconciledHook)
}

// Info describes the datasets held by a session.
type Info struct {
	ReportName     string
	ReportRows     int
	ReportLoadedAt utc.Time

	FeedName     string
	BaselineRows int
	FeedLoadedAt utc.Time
}

// HasReport returns true if a report is loaded.
func (i Info) HasReport() bool {
	return !i.ReportLoadedAt.Time.IsZero()
}

// HasBaseline returns true if a status feed is loaded.
func (i Info) HasBaseline() bool {
	return !i.FeedLoadedAt.Time.IsZero()
}

// session is the internal implementation of the Session interface
type session struct {
	mu       sync.RWMutex
	report   *dataset.Dataset
	baseline *dataset.Dataset
	info     Info

	layout     layout.Layout
	reconciler reconciler.Reconciler

	// Event hooks
	*hooks
}

// New creates a new Session with the given options
func New(opts ...Option) (Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	rec := cfg.reconciler
	if rec == nil {
		var err error
		rec, err = reconciler.New(reconciler.WithLayout(cfg.layout))
		if err != nil {
			return nil, fmt.Errorf("creating reconciler: %w", err)
		}
	}

	return &session{
		layout:     cfg.layout,
		reconciler: rec,
		hooks:      newHooks(),
	}, nil
}

// LoadReport prepares raw and stores it as the report
func (s *session) LoadReport(ctx context.Context, raw *dataset.Dataset) (*dataset.Dataset, error) {
	if raw == nil {
		return nil, errors.NewValidationError(constants.ReportDataset, nil, "cannot be nil")
	}
	report := PrepareReport(ctx, raw, s.layout)

	s.mu.Lock()
	s.report = report
	s.info.ReportName = report.Name
	s.info.ReportRows = report.Len()
	s.info.ReportLoadedAt = utc.Now()
	s.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("dataset", report.Name).
		Int("rows", report.Len()).
		Msg("Loaded report")

	s.triggerReportLoaded(report)
	return report.Clone(), nil
}

// LoadStatusFeed prepares raw and stores it as the baseline
func (s *session) LoadStatusFeed(ctx context.Context, raw *dataset.Dataset) (*dataset.Dataset, error) {
	if raw == nil {
		return nil, errors.NewValidationError(constants.StatusFeedDataset, nil, "cannot be nil")
	}
	baseline := PrepareStatusFeed(ctx, raw, s.layout)

	s.mu.Lock()
	s.baseline = baseline
	s.info.FeedName = baseline.Name
	s.info.BaselineRows = baseline.Len()
	s.info.FeedLoadedAt = utc.Now()
	s.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("dataset", baseline.Name).
		Int("rows", baseline.Len()).
		Msg("Loaded status feed")

	s.triggerStatusFeedLoaded(baseline)
	return baseline.Clone(), nil
}

// Report returns a copy of the prepared report
func (s *session) Report() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report.Clone()
}

// Baseline returns a copy of the baseline
func (s *session) Baseline() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline.Clone()
}

// UnmatchedActive derives the unmatched-active view
func (s *session) UnmatchedActive(ctx context.Context) (*reconciler.Result, error) {
	return s.Reconcile(ctx, reconciler.ModeUnmatchedActive)
}

// MatchedInactive derives the matched-inactive view
func (s *session) MatchedInactive(ctx context.Context) (*reconciler.Result, error) {
	return s.Reconcile(ctx, reconciler.ModeMatchedInactive)
}

// Reconcile derives the view for mode. The stored datasets are only read, so
// the references are taken under the lock and used without it.
func (s *session) Reconcile(ctx context.Context, mode reconciler.Mode) (*reconciler.Result, error) {
	s.mu.RLock()
	report, baseline := s.report, s.baseline
	s.mu.RUnlock()

	if baseline == nil {
		return nil, errors.NewDatasetError(constants.StatusFeedDataset, "reconcile "+mode.String())
	}

	result, err := s.reconciler.Reconcile(ctx, mode, report, baseline)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("mode", mode.String()).
		Bool("report_loaded", report != nil).
		Int("rows", result.Dataset.Len()).
		Msg(result.Summary())

	s.triggerReconciled(result)
	return result, nil
}

// Info describes what is loaded
func (s *session) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Layout returns the column layout in use
func (s *session) Layout() layout.Layout {
	l := s.layout
	l.Projection = append([]int(nil), s.layout.Projection...)
	return l
}
