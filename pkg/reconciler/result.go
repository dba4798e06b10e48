package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/agentstation/casematch/pkg/dataset"
)

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Mode that produced the view
	Mode Mode

	// Dataset holds the baseline rows that passed the filter. It is a fresh
	// copy and never aliases the baseline.
	Dataset *dataset.Dataset

	// Metadata
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the reconciliation run.
type ResultMetadata struct {
	// RunID identifies the run in logs
	RunID uuid.UUID

	// StartTime when reconciliation started
	StartTime utc.Time

	// EndTime when reconciliation completed
	EndTime utc.Time

	// Duration of the reconciliation
	Duration time.Duration

	// Statistics about the reconciliation
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	BaselineRows      int
	ReportIdentifiers int
	Kept              int
	Dropped           int
}

// NewResult creates a new result with defaults.
func NewResult(mode Mode) *Result {
	return &Result{
		Mode: mode,
		Metadata: ResultMetadata{
			RunID:     uuid.New(),
			StartTime: utc.Now(),
		},
	}
}

// IsEmpty returns true if no baseline rows passed the filter.
func (r *Result) IsEmpty() bool {
	return r.Dataset.Len() == 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	stats := r.Metadata.Stats
	if r.IsEmpty() {
		return fmt.Sprintf("%s: no rows out of %d", r.Mode.Title(), stats.BaselineRows)
	}
	return fmt.Sprintf("%s: %d of %d rows (%d report identifiers)",
		r.Mode.Title(), stats.Kept, stats.BaselineRows, stats.ReportIdentifiers)
}

// Finalize calculates duration and row counts.
func (r *Result) Finalize() {
	r.Metadata.EndTime = utc.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Time.Sub(r.Metadata.StartTime.Time)
	r.Metadata.Stats.Kept = r.Dataset.Len()
	r.Metadata.Stats.Dropped = r.Metadata.Stats.BaselineRows - r.Metadata.Stats.Kept
}
