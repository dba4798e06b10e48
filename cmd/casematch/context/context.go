// Package context provides the application context interface for casematch
// commands.
//
// Commands accept this interface rather than the concrete App type, so they
// can be tested with MockContext:
//
//	mock := &context.MockContext{
//	    SessionFunc: func() (casematch.Session, error) {
//	        return casematch.New()
//	    },
//	}
//	cmd := report.NewCommand(mock)
package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/casematch"
	"github.com/agentstation/casematch/internal/sheets"
)

// Context provides what commands need from the application.
//
// Thread Safety: All methods must be safe for concurrent access.
type Context interface {
	// Session returns the session holding the loaded datasets.
	Session() (casematch.Session, error)

	// SheetOptions returns the file loading options from configuration
	// (CSV delimiter, encoding).
	SheetOptions() []sheets.Option

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, csv).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
