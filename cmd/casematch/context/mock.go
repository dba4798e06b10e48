package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/casematch"
	"github.com/agentstation/casematch/internal/sheets"
)

// MockContext provides a mock implementation of Context for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type MockContext struct {
	SessionFunc      func() (casematch.Session, error)
	SheetOptionsFunc func() []sheets.Option
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Session returns a session using the mock function or a fresh default session.
func (m *MockContext) Session() (casematch.Session, error) {
	if m.SessionFunc != nil {
		return m.SessionFunc()
	}
	return casematch.New()
}

// SheetOptions returns options using the mock function or none.
func (m *MockContext) SheetOptions() []sheets.Option {
	if m.SheetOptionsFunc != nil {
		return m.SheetOptionsFunc()
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *MockContext) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *MockContext) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns the version using the mock function or "dev".
func (m *MockContext) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns the commit using the mock function or "unknown".
func (m *MockContext) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the date using the mock function or "unknown".
func (m *MockContext) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "unknown".
func (m *MockContext) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

// Ensure MockContext implements Context at compile time.
var _ Context = (*MockContext)(nil)
