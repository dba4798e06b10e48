package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
)

func TestDefault(t *testing.T) {
	l := layout.Default()

	assert.Equal(t, 0, l.IdentifierColumn)
	assert.Equal(t, [2]int{7, 8}, l.AuxColumns)
	assert.Equal(t, []int{0, 6, 14, 37}, l.Projection)
	assert.Equal(t, 1, l.StatusColumn)
	assert.Equal(t, "Работа", l.ActiveStatus)
	require.NoError(t, l.Validate())
}

func TestDefaultProjectionIsCopied(t *testing.T) {
	a := layout.Default()
	a.Projection[0] = 99
	assert.Equal(t, 0, layout.Default().Projection[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*layout.Layout)
		field  string
	}{
		{"negative identifier", func(l *layout.Layout) { l.IdentifierColumn = -1 }, "identifier_column"},
		{"negative aux", func(l *layout.Layout) { l.AuxColumns[1] = -2 }, "aux_columns"},
		{"empty projection", func(l *layout.Layout) { l.Projection = nil }, "projection"},
		{"negative projection", func(l *layout.Layout) { l.Projection = []int{0, -6} }, "projection"},
		{"negative status", func(l *layout.Layout) { l.StatusColumn = -1 }, "status_column"},
		{"blank active", func(l *layout.Layout) { l.ActiveStatus = "  " }, "active_status"},
		{"no duplicate column", func(l *layout.Layout) { l.DuplicateColumn = "" }, "duplicate_column"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layout.Default()
			tt.mutate(&l)

			err := l.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
