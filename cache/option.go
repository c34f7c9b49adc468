package cache

import "log/slog"

// Option configures a [CachedGraph] at construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger attaches a logger for cache construction and traversal
// events. Pass nil (the default) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
