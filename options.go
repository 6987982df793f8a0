package simtrack

import (
	"log/slog"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
}

// Option configures Tracker behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := simtrack.NewJSONLogger(slog.LevelInfo)
//	tracker, _ := simtrack.New(embedder, simtrack.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithParallelism bounds how many embeddings and distance-matrix rows are
// computed concurrently. Values <= 1 keep everything sequential; results are
// identical either way.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
