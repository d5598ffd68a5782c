// File: reactor/options.go
// Package reactor defines functional options for Loop construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import "log/slog"

// Option customizes loop initialization.
type Option func(*Loop)

// WithLogger sets the structured logger receiving reactor diagnostics.
// If unset, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loop) {
		l.log = log
	}
}
