// Package layout names the fixed column positions and literals the engine
// relies on, so the same logic can be pointed at a different spreadsheet
// layout without code changes.
package layout

import (
	"strings"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/errors"
)

// Layout describes where the engine finds things. All positions are 0-indexed.
type Layout struct {
	// IdentifierColumn holds case/contract numbers in both datasets.
	IdentifierColumn int `json:"identifier_column" yaml:"identifier_column" mapstructure:"identifier_column"`

	// AuxColumns are the two report columns of which at least one must be numeric.
	AuxColumns [2]int `json:"aux_columns" yaml:"aux_columns" mapstructure:"aux_columns"`

	// Projection lists the status-feed columns to keep.
	Projection []int `json:"projection" yaml:"projection" mapstructure:"projection"`

	// StatusColumn is the status position within the projected status feed.
	StatusColumn int `json:"status_column" yaml:"status_column" mapstructure:"status_column"`

	// ActiveStatus is the status literal for an active contract.
	ActiveStatus string `json:"active_status" yaml:"active_status" mapstructure:"active_status"`

	// DuplicateColumn is the header of the duplicate flag column added to the report.
	DuplicateColumn string `json:"duplicate_column" yaml:"duplicate_column" mapstructure:"duplicate_column"`

	// DuplicateMarker is written into DuplicateColumn for duplicated identifiers.
	DuplicateMarker string `json:"duplicate_marker" yaml:"duplicate_marker" mapstructure:"duplicate_marker"`
}

// Default returns the layout of the standard report and status feed exports.
func Default() Layout {
	return Layout{
		IdentifierColumn: constants.IdentifierColumn,
		AuxColumns:       [2]int{constants.ReportAmountColumn, constants.ReportBalanceColumn},
		Projection:       append([]int(nil), constants.FeedProjection...),
		StatusColumn:     constants.StatusColumn,
		ActiveStatus:     constants.ActiveStatus,
		DuplicateColumn:  constants.DuplicateColumn,
		DuplicateMarker:  constants.DuplicateMarker,
	}
}

// Validate checks that positions are non-negative and literals are set.
func (l Layout) Validate() error {
	if l.IdentifierColumn < 0 {
		return errors.NewValidationError("identifier_column", l.IdentifierColumn, "must not be negative")
	}
	for _, col := range l.AuxColumns {
		if col < 0 {
			return errors.NewValidationError("aux_columns", l.AuxColumns, "must not be negative")
		}
	}
	if len(l.Projection) == 0 {
		return errors.NewValidationError("projection", l.Projection, "must list at least one column")
	}
	for _, col := range l.Projection {
		if col < 0 {
			return errors.NewValidationError("projection", l.Projection, "must not be negative")
		}
	}
	if l.StatusColumn < 0 {
		return errors.NewValidationError("status_column", l.StatusColumn, "must not be negative")
	}
	if strings.TrimSpace(l.ActiveStatus) == "" {
		return errors.NewValidationError("active_status", l.ActiveStatus, "cannot be empty")
	}
	if l.DuplicateColumn == "" {
		return errors.NewValidationError("duplicate_column", l.DuplicateColumn, "cannot be empty")
	}
	return nil
}
