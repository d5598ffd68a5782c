// File: api/backend.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract between an embedded reactor and its event backend. The reactor
// owns watch objects and the dispatch pass; the backend owns whatever
// notification machinery actually detects readiness (for loopbridge, a
// registration per watch inside an external host loop).

package api

// Emitter is the slice of the reactor a backend calls back into when a
// notification arrives.
type Emitter interface {
	// Emit queues a readiness event for the given watch. The mask is in
	// reactor encoding; signal deliveries use a zero mask. Emit never
	// runs user callbacks itself.
	Emit(w Watch, events EventFlags)

	// Dispatch synchronously runs every callback that is ready to fire,
	// draining the reactor's entire pending backlog before returning.
	Dispatch()
}

// Backend multiplexes reactor watches onto an external notification
// source. All methods are called from the reactor on the single loop
// thread; implementations perform no locking of their own.
//
// Add operations either fully register the watch or leave it exactly as
// it was (no partial state on failure). Modify and remove on a watch that
// is not currently registered are caller contract violations and fail
// with ErrNotRegistered.
type Backend interface {
	// Attach binds the backend to its owning reactor. Called exactly once,
	// during reactor construction. A second Attach fails with
	// ErrAlreadyAttached.
	Attach(rt Emitter) error

	// Close releases backend state. Close does not unregister outstanding
	// watches; the reactor must stop all watches before closing.
	Close() error

	// AddFD registers a descriptor watch with the notification source.
	AddFD(w FDWatch) error

	// ModFD updates the registered interest mask of w in place, re-reading
	// the mask from the watch. No re-registration occurs.
	ModFD(w FDWatch) error

	// DelFD cancels the registration of w.
	DelFD(w FDWatch) error

	// AddSignal registers a signal watch with the notification source.
	AddSignal(w SignalWatch) error

	// DelSignal cancels the registration of w.
	DelSignal(w SignalWatch) error
}
