// File: api/hostloop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Registration surface the bridge consumes from the externally-owned host
// event loop. The host loop performs all OS-level polling and signal
// delivery; the bridge only registers sources and receives callbacks on
// the host loop's dispatch thread.

package api

// FDFunc is invoked by the host loop when a registered descriptor becomes
// ready. The mask is in host encoding and reports readiness, not interest.
// The callback returns no status; host notification is fire-and-forget.
type FDFunc func(fd int, revents PollFlags)

// SignalFunc is invoked by the host loop when a registered signal arrives.
type SignalFunc func(signo int)

// Source is a host-loop registration handle. Removal is always explicit;
// the host loop never destroys a source on its own.
type Source interface {
	// Remove cancels the registration. The callback will not be invoked
	// after Remove returns.
	Remove() error
}

// FDSource is a descriptor registration whose interest mask can be
// updated in place without re-registering.
type FDSource interface {
	Source

	// Update replaces the registered interest mask.
	Update(events PollFlags) error
}

// HostLoop is the externally-owned event loop a bridge registers with.
// Exactly one logical thread, the host loop's own dispatch thread, ever
// calls through a HostLoop or fires its callbacks.
type HostLoop interface {
	// AddFD registers a descriptor for the given host-encoded interest
	// mask. fn fires on the host dispatch thread whenever the descriptor
	// is ready.
	AddFD(fd int, events PollFlags, fn FDFunc) (FDSource, error)

	// AddSignal registers interest in delivery of one signal number.
	AddSignal(signo int, fn SignalFunc) (Source, error)
}
