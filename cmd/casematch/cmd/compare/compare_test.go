package compare

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/casematch"
	appcontext "github.com/agentstation/casematch/cmd/casematch/context"
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
)

type fixture struct {
	report string
	feed   string
	mock   *appcontext.MockContext
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		report: filepath.Join(dir, "cases.csv"),
		feed:   filepath.Join(dir, "statuses.csv"),
	}
	require.NoError(t, os.WriteFile(f.report,
		[]byte("Номер,Сумма\n\"10, 12\",5\n30,1\n40,\n"), 0o644))
	require.NoError(t, os.WriteFile(f.feed,
		[]byte("Номер,Статус\n10,Работа\n11,Работа\n12,Закрыт\n30,Закрыт\n40,Работа\n"), 0o644))

	l := layout.Default()
	l.AuxColumns = [2]int{1, 1}
	l.Projection = []int{0, 1}
	f.mock = &appcontext.MockContext{
		SessionFunc: func() (casematch.Session, error) {
			return casematch.New(casematch.WithLayout(l))
		},
		OutputFormatFunc: func() string { return "csv" },
	}
	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(f.mock)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareUnmatchedActive(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "--report", f.report, "--feed", f.feed)
	require.NoError(t, err)
	// 40 has no amount, so the report never mentions it
	assert.Equal(t, "Номер,Статус\n11,Работа\n40,Работа\n", out)
}

func TestCompareMatchedInactive(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "-r", f.report, "-f", f.feed, "--mode", "matched-inactive")
	require.NoError(t, err)
	assert.Equal(t, "Номер,Статус\n12,Закрыт\n30,Закрыт\n", out)
}

func TestCompareWithoutReport(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "--feed", f.feed)
	require.NoError(t, err)
	assert.Equal(t, "Номер,Статус\n10,Работа\n11,Работа\n40,Работа\n", out)

	out, err = f.run(t, "--feed", f.feed, "--mode", "matched-inactive")
	require.NoError(t, err)
	assert.Equal(t, "Номер,Статус\n", out)
}

func TestCompareWithoutFeed(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "--report", f.report)
	assert.True(t, errors.IsNotLoaded(err), "got %v", err)
}

func TestCompareUnknownMode(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "--feed", f.feed, "--mode", "everything")
	assert.True(t, errors.IsValidationError(err), "got %v", err)
}

func TestCompareExport(t *testing.T) {
	f := newFixture(t)
	target := filepath.Join(t.TempDir(), "gone.csv")

	_, err := f.run(t, "-r", f.report, "-f", f.feed, "-m", "matched-inactive", "--export="+target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Номер,Статус\n12,Закрыт\n30,Закрыт\n", string(data))
}

func TestCompareExportEmpty(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "-f", f.feed, "-m", "matched-inactive", "--export="+filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorIs(t, err, errors.ErrNothingToExport)
}

func TestCompareOrdersByFeedIdentifier(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.feed,
		[]byte("Номер,Статус\n100,Работа\n9,Работа\n10,Работа\n"), 0o644))

	out, err := f.run(t, "--report", f.report, "--feed", f.feed)
	require.NoError(t, err)
	// numeric order, not text order
	assert.Equal(t, "Номер,Статус\n9,Работа\n100,Работа\n", out)
}
