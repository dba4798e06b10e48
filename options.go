package casematch

import (
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
	"github.com/agentstation/casematch/pkg/reconciler"
)

// config holds session settings
type config struct {
	layout     layout.Layout
	reconciler reconciler.Reconciler
}

func defaultConfig() *config {
	return &config{
		layout: layout.Default(),
	}
}

// Option is a function that configures a Session
type Option func(*config) error

// WithLayout configures the column layout used by every stage
func WithLayout(l layout.Layout) Option {
	return func(c *config) error {
		if err := l.Validate(); err != nil {
			return err
		}
		c.layout = l
		return nil
	}
}

// WithReconciler replaces the reconciler built from the layout
func WithReconciler(r reconciler.Reconciler) Option {
	return func(c *config) error {
		if r == nil {
			return &errors.ValidationError{
				Field:   "reconciler",
				Message: "cannot be nil",
			}
		}
		c.reconciler = r
		return nil
	}
}
