package casematch_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/casematch"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/reconciler"
)

// workbook writes rows to the first sheet of a new xlsx file.
func workbook(t *testing.T, path string, rows ...[]any) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestWorkbookRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	reportPath := filepath.Join(dir, "report.xlsx")
	workbook(t, reportPath,
		[]any{"Номер", "B", "C", "D", "E", "F", "G", "Сумма", "Остаток"},
		[]any{"101 100", nil, nil, nil, nil, nil, nil, 250, nil},
		[]any{102, nil, nil, nil, nil, nil, nil, nil, "12,5"},
		[]any{103, nil, nil, nil, nil, nil, nil, nil, 3},
	)

	feedHeaders := make([]any, 38)
	for i := range feedHeaders {
		feedHeaders[i] = fmt.Sprintf("C%d", i+1)
	}
	feedHeaders[0], feedHeaders[6] = "Номер", "Статус"
	feedRows := [][]any{feedHeaders}
	for _, r := range [][2]any{{100, "Работа"}, {101, "Закрыт"}, {103, "Закрыт"}, {104, "Работа"}, {"н/д", "Работа"}} {
		row := make([]any, 38)
		row[0], row[6] = r[0], r[1]
		feedRows = append(feedRows, row)
	}
	feedPath := filepath.Join(dir, "feed.xlsx")
	workbook(t, feedPath, feedRows...)

	loaded, err := sheets.LoadAll(ctx, []string{reportPath, feedPath})
	require.NoError(t, err)

	s := newSession(t)
	report, err := s.LoadReport(ctx, loaded[0])
	require.NoError(t, err)
	// "12,5" is not a decimal number, so 102 has no amount
	assert.Equal(t, []string{"100, 101", "103"}, column(report, 0))

	baseline, err := s.LoadStatusFeed(ctx, loaded[1])
	require.NoError(t, err)
	assert.Equal(t, 4, baseline.Width())
	assert.Equal(t, 4, baseline.Len())

	unmatched, err := s.Reconcile(ctx, reconciler.ModeUnmatchedActive)
	require.NoError(t, err)
	assert.Equal(t, []string{"104"}, column(unmatched.Dataset, 0))

	inactive, err := s.Reconcile(ctx, reconciler.ModeMatchedInactive)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "103"}, column(inactive.Dataset, 0))

	out, err := sheets.Export(ctx, inactive.Dataset, filepath.Join(dir, "inactive.xlsx"))
	require.NoError(t, err)

	exported, err := sheets.Load(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, inactive.Dataset.Columns, exported.Columns)
	assert.Equal(t, column(inactive.Dataset, 1), column(exported, 1))
}

func TestWorkbookMissingFeed(t *testing.T) {
	s, err := casematch.New()
	require.NoError(t, err)

	_, err = sheets.LoadAll(context.Background(), []string{"", filepath.Join(t.TempDir(), "absent.xlsx")})
	require.Error(t, err)

	_, err = s.UnmatchedActive(context.Background())
	require.Error(t, err)
}
