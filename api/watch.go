// File: api/watch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Accessor contracts for reactor watch objects as seen from a backend.
// A backend never constructs watches; it only reads their registration
// parameters and uses the backend-data slot to stash its per-watch record.

package api

// Watch is the part of a watch object common to descriptor and signal
// variants. The backend-data slot is a weak, non-owning association: the
// watch does not own whatever is stored there, and a backend must clear
// the slot when it releases the associated record.
type Watch interface {
	// BackendData returns the value stashed by SetBackendData, or nil.
	BackendData() any

	// SetBackendData stores an opaque backend-private value on the watch.
	SetBackendData(data any)
}

// FDWatch is a watch on a file descriptor's readiness.
type FDWatch interface {
	Watch

	// FD returns the descriptor under watch.
	FD() int

	// Interest returns the current interest mask in reactor encoding.
	Interest() EventFlags
}

// SignalWatch is a watch on delivery of one signal number. Signal watches
// have no interest mask and no modify operation; the signal number is
// immutable after registration.
type SignalWatch interface {
	Watch

	// Signo returns the watched signal number.
	Signo() int
}
