package collect

import "github.com/rs/zerolog"

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger build diagnostics are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}
