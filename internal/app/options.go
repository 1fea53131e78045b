package app

import (
	"log/slog"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/persist"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	activitySink events.Sink
	noActivity   bool
	saveSink     persist.Sink
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithActivitySink replaces the repository as the destination of change
// events. A nil sink disables the activity log.
func WithActivitySink(sink events.Sink) Option {
	return func(cfg *appConfig) {
		cfg.activitySink = sink
		cfg.noActivity = sink == nil
	}
}

// WithSaveSink replaces the repository as the destination of autosaved
// snapshots
func WithSaveSink(sink persist.Sink) Option {
	return func(cfg *appConfig) {
		cfg.saveSink = sink
	}
}
