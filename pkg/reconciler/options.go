package reconciler

import (
	"strings"

	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
)

// Options configures a reconciler.
type options struct {
	layout layout.Layout
}

func defaultOptions() *options {
	return &options{
		layout: layout.Default(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithLayout sets the column layout.
func WithLayout(l layout.Layout) Option {
	return func(o *options) error {
		if err := l.Validate(); err != nil {
			return err
		}
		o.layout = l
		return nil
	}
}

// WithActiveStatus overrides the status literal of an active contract.
func WithActiveStatus(status string) Option {
	return func(o *options) error {
		if strings.TrimSpace(status) == "" {
			return &errors.ValidationError{
				Field:   "active_status",
				Message: "cannot be empty",
			}
		}
		o.layout.ActiveStatus = status
		return nil
	}
}
