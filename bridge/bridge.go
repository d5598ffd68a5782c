// File: bridge/bridge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bridge state: the process-wide binding between one reactor instance and
// one host event loop. The host-loop handle is injected at construction
// and never reassigned; the reactor handle is set once, by the attach
// hook the reactor invokes while it is being constructed.

package bridge

import (
	"log/slog"

	"github.com/momentics/loopbridge/api"
)

// Bridge implements api.Backend over an external host event loop.
//
// Single-threaded, cooperative: only the host loop's dispatch thread may
// call into a Bridge, so no locking is performed. The bridge never blocks;
// all waiting belongs to the host loop.
type Bridge struct {
	host api.HostLoop
	rt   api.Emitter
	log  *slog.Logger

	stats Stats
}

// Stats is a snapshot of bridge operation counters.
type Stats struct {
	FDAdds     uint64
	FDMods     uint64
	FDDels     uint64
	SignalAdds uint64
	SignalDels uint64
	Notifies   uint64
	Failures   uint64
}

// New creates a Bridge registered against the given host loop. The host
// handle is fixed for the bridge's lifetime.
func New(host api.HostLoop, opts ...Option) *Bridge {
	b := &Bridge{host: host}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach implements api.Backend. It binds the bridge to its owning
// reactor; exactly one reactor may ever attach.
func (b *Bridge) Attach(rt api.Emitter) error {
	if b.rt != nil {
		return api.NewError(api.ErrCodeInvalidState, "attach", api.ErrAlreadyAttached)
	}
	b.rt = rt
	b.logger().Debug("bridge: reactor attached")
	return nil
}

// Close implements api.Backend. It drops the reactor handle. Outstanding
// watch registrations are not torn down here: the reactor must stop every
// watch before closing its backend.
func (b *Bridge) Close() error {
	b.rt = nil
	b.logger().Debug("bridge: closed")
	return nil
}

// Stats returns a copy of the bridge's operation counters.
func (b *Bridge) Stats() Stats {
	return b.stats
}

// logger returns the configured logger or the default.
func (b *Bridge) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return slog.Default()
}
