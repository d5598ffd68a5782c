// File: bridge/options.go
// Package bridge defines functional options for Bridge construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bridge

import "log/slog"

// Option customizes bridge initialization.
type Option func(*Bridge)

// WithLogger sets the structured logger receiving bridge diagnostics.
// Per-operation events are logged at Debug level, registration failures
// at Error. If unset, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		b.log = log
	}
}
