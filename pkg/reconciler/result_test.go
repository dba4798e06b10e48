package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/casematch/pkg/dataset"
)

func TestResultSummary(t *testing.T) {
	r := NewResult(ModeMatchedInactive)
	r.Dataset = dataset.New("feed", "Номер")
	r.Metadata.Stats.BaselineRows = 4
	r.Finalize()

	assert.True(t, r.IsEmpty())
	assert.Equal(t, "Matched inactive: no rows out of 4", r.Summary())
	assert.Equal(t, 4, r.Metadata.Stats.Dropped)
	assert.False(t, r.Metadata.EndTime.Time.Before(r.Metadata.StartTime.Time))

	r.Dataset.Append(dataset.Text("1"))
	r.Metadata.Stats.ReportIdentifiers = 2
	r.Finalize()
	assert.Equal(t, "Matched inactive: 1 of 4 rows (2 report identifiers)", r.Summary())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("unmatched-active")
	assert.NoError(t, err)
	assert.Equal(t, ModeUnmatchedActive, m)

	_, err = ParseMode("active")
	assert.Error(t, err)
}
