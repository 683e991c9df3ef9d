package check

import (
	"log/slog"

	"checktree/internal/logger"
	"checktree/options"
)

// Option configures a single check operation.
type Option func(*config)

type config struct {
	log    *slog.Logger
	policy options.PolicyEnum
}

// WithLogger sends debug events of the operation to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithPolicy overrides the default aggregation rules.
func WithPolicy(p options.PolicyEnum) Option {
	return func(c *config) {
		c.policy = p
	}
}

func newConfig(opts []Option) config {
	c := config{policy: options.PolicyNone}
	for _, opt := range opts {
		opt(&c)
	}

	c.log = logger.OrDiscard(c.log)

	return c
}
