package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/casematch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "sheet",
			ID:       "Лист1",
		}
		assert.Equal(t, "sheet Лист1 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("column", "7")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "active_status",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field active_status: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid layout"}
		assert.Equal(t, "validation failed: invalid layout", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestDatasetError(t *testing.T) {
	t.Run("with operation", func(t *testing.T) {
		err := pkgerrors.NewDatasetError("status feed", "reconcile")
		assert.Equal(t, "cannot reconcile: status feed not loaded", err.Error())
		assert.True(t, pkgerrors.IsNotLoaded(err))
	})

	t.Run("without operation", func(t *testing.T) {
		err := &pkgerrors.DatasetError{Dataset: "report"}
		assert.Equal(t, "report not loaded", err.Error())
		assert.False(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	inner := errors.New("bad yaml")
	err := pkgerrors.NewConfigError("layout", "aux_columns must have two entries", inner)
	assert.Contains(t, err.Error(), "layout")
	assert.Contains(t, err.Error(), "aux_columns")
	assert.ErrorIs(t, err, inner)
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &pkgerrors.ParseError{Format: "csv", File: "feed.csv", Line: 4, Message: "wrong field count"},
			want: "parse error in csv file feed.csv at line 4: wrong field count",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "xlsx", File: "report.xlsx", Message: "no sheets"},
			want: "parse error in xlsx file report.xlsx: no sheets",
		},
		{
			name: "format only",
			err:  &pkgerrors.ParseError{Format: "csv", Message: "empty input"},
			want: "csv parse error: empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := pkgerrors.NewIOError("open", "/tmp/report.xlsx", inner)
	assert.Equal(t, "IO error during open of /tmp/report.xlsx: permission denied", err.Error())
	assert.Equal(t, inner, err.Unwrap())
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))
		assert.NoError(t, pkgerrors.WrapValidation("x", nil))
	})

	t.Run("wrap io", func(t *testing.T) {
		inner := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "out.xlsx", inner)
		require.Error(t, err)
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "write", ioErr.Operation)
		assert.ErrorIs(t, err, inner)
	})

	t.Run("wrap parse keeps sentinel", func(t *testing.T) {
		err := pkgerrors.WrapParse("xls", "old.xls", pkgerrors.ErrUnsupportedFormat)
		assert.ErrorIs(t, err, pkgerrors.ErrUnsupportedFormat)
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("projection", errors.New("empty"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
