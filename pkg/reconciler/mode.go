package reconciler

import (
	"github.com/agentstation/casematch/pkg/errors"
)

// Mode selects which reconciliation view to derive from the baseline.
type Mode string

const (
	// ModeUnmatchedActive keeps active contracts the report does not mention.
	ModeUnmatchedActive Mode = "unmatched-active"

	// ModeMatchedInactive keeps inactive contracts the report still mentions.
	ModeMatchedInactive Mode = "matched-inactive"
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{ModeUnmatchedActive, ModeMatchedInactive}
}

// String returns the string representation of a mode.
func (m Mode) String() string {
	return string(m)
}

// Title returns a display name.
func (m Mode) Title() string {
	switch m {
	case ModeUnmatchedActive:
		return "Unmatched active"
	case ModeMatchedInactive:
		return "Matched inactive"
	default:
		return string(m)
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.NewValidationError("mode", s, "must be unmatched-active or matched-inactive")
}
