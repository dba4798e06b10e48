// Package app provides the application context and dependency management
// for the casematch CLI. It centralizes configuration, logging and the
// reconciliation session shared by the commands.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/casematch"
	appcontext "github.com/agentstation/casematch/cmd/casematch/context"
	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/errors"
)

// App represents the casematch application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Session (lazy-initialized, singleton)
	mu      sync.RWMutex
	session casematch.Session
}

// New creates a new App instance with the given version information.
// Configuration is loaded from files and the environment, then functional
// options are applied on top.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// SheetOptions returns the file options derived from the configuration.
func (a *App) SheetOptions() []sheets.Option {
	return a.config.SheetOptions()
}

// Session returns the reconciliation session, creating it lazily with the
// configured layout. Every call returns the same instance.
func (a *App) Session() (casematch.Session, error) {
	a.mu.RLock()
	if a.session != nil {
		s := a.session
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.session != nil {
		return a.session, nil
	}

	s, err := casematch.New(casematch.WithLayout(a.config.Layout))
	if err != nil {
		return nil, err
	}
	a.session = s
	return s, nil
}

// Shutdown releases application resources. The session holds only memory,
// so this just drops it.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
	return nil
}

// reloadConfig re-reads configuration from an explicit file given on the
// command line. Flag values are applied afterwards by setupCommand.
func (a *App) reloadConfig(path string) error {
	config, err := LoadConfigFile(path)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		return errors.NewConfigError("config", "cannot change configuration after the session was created", nil)
	}
	a.config = config
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "config cannot be nil")
		}
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSession sets a custom session (useful for testing).
func WithSession(s casematch.Session) Option {
	return func(a *App) error {
		a.session = s
		return nil
	}
}

// Ensure App implements the command context at compile time.
var _ appcontext.Context = (*App)(nil)
