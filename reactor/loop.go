// File: reactor/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The reactor loop: watch lifecycle on one side, emit/dispatch on the
// other. Single-threaded by contract — every entry point runs on the
// backend's dispatch thread, so no locking is performed anywhere here.

package reactor

import (
	"log/slog"

	"github.com/eapache/queue"

	"github.com/momentics/loopbridge/api"
)

// pendingEvent is one queued readiness delivery.
type pendingEvent struct {
	watch  api.Watch
	events api.EventFlags
}

// Loop owns watch objects and the pending-event queue and drives user
// callbacks through its dispatch pass. Exactly one backend serves a Loop,
// bound at construction.
type Loop struct {
	backend api.Backend
	pending *queue.Queue
	log     *slog.Logger

	dispatching bool
	closed      bool
}

// New creates a Loop bound to the given backend. The backend's attach
// hook runs during construction; on attach failure no loop is returned
// and the backend is left untouched.
func New(backend api.Backend, opts ...Option) (*Loop, error) {
	l := &Loop{
		backend: backend,
		pending: queue.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := backend.Attach(l); err != nil {
		return nil, err
	}

	l.logger().Debug("reactor: loop created")
	return l, nil
}

// Close tears the loop down and closes its backend. Every watch must have
// been stopped first; Close does not unregister outstanding watches.
func (l *Loop) Close() error {
	if l.closed {
		return api.ErrLoopClosed
	}
	l.closed = true

	l.logger().Debug("reactor: loop closed")
	return l.backend.Close()
}

// Start registers w with the backend. On failure the watch remains
// unstarted and unregistered.
func (l *Loop) Start(w Watch) error {
	if l.closed {
		return api.ErrLoopClosed
	}
	if w.running() {
		return api.NewError(api.ErrCodeInvalidState, "start", api.ErrAlreadyRegistered)
	}

	if err := w.attach(l); err != nil {
		return err
	}
	w.setRunning(true)
	return nil
}

// Stop unregisters w from the backend. Events still queued for w at this
// point are dropped, not delivered.
func (l *Loop) Stop(w Watch) error {
	if !w.running() {
		return api.NewError(api.ErrCodeInvalidState, "stop", api.ErrNotRegistered)
	}

	if err := w.detach(l); err != nil {
		return err
	}
	w.setRunning(false)
	return nil
}

// Update pushes w's current interest mask to the backend registration.
func (l *Loop) Update(w *FDWatch) error {
	if !w.running() {
		return api.NewError(api.ErrCodeInvalidState, "update", api.ErrNotRegistered)
	}
	return l.backend.ModFD(w)
}

// Emit implements api.Emitter. It queues a readiness event; callbacks run
// only from Dispatch.
func (l *Loop) Emit(w api.Watch, events api.EventFlags) {
	l.pending.Add(pendingEvent{watch: w, events: events & api.EventMask})
}

// Dispatch implements api.Emitter. It drains the pending queue to
// completion, running every eligible callback in FIFO order. Events
// emitted by a callback are handled in the same pass. Nested Dispatch
// calls made from inside a callback return immediately; the outer drain
// is already covering the backlog.
func (l *Loop) Dispatch() {
	if l.dispatching {
		return
	}
	l.dispatching = true
	defer func() { l.dispatching = false }()

	for l.pending.Length() > 0 {
		ev := l.pending.Remove().(pendingEvent)
		l.deliver(ev)
	}
}

// deliver runs one queued event's callback. Events for watches stopped
// after emission are stale and are skipped.
func (l *Loop) deliver(ev pendingEvent) {
	switch w := ev.watch.(type) {
	case *FDWatch:
		if w.started && w.cb != nil {
			w.cb(w, ev.events)
		}
	case *SignalWatch:
		if w.started && w.cb != nil {
			w.cb(w)
		}
	default:
		l.logger().Error("reactor: dropped event for unknown watch type")
	}
}

// Pending returns the number of queued, not yet dispatched events.
func (l *Loop) Pending() int {
	return l.pending.Length()
}

// logger returns the configured logger or the default.
func (l *Loop) logger() *slog.Logger {
	if l.log != nil {
		return l.log
	}
	return slog.Default()
}
