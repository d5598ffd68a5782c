// File: reactor/watch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Watch objects. A watch is created unstarted, registered with the
// backend via Loop.Start and unregistered via Loop.Stop. The backend-data
// slot carries the backend's per-watch record while the watch is started;
// the watch does not own that record.

package reactor

import "github.com/momentics/loopbridge/api"

// FDCallback is invoked from the dispatch pass with the watch and the
// readiness events reported for it, in reactor encoding.
type FDCallback func(w *FDWatch, events api.EventFlags)

// SignalCallback is invoked from the dispatch pass when the watched
// signal has been delivered.
type SignalCallback func(w *SignalWatch)

// Watch is a startable reactor watch: either *FDWatch or *SignalWatch.
type Watch interface {
	api.Watch

	attach(l *Loop) error
	detach(l *Loop) error
	running() bool
	setRunning(on bool)
}

// FDWatch watches one file descriptor for readiness.
type FDWatch struct {
	fd       int
	interest api.EventFlags
	cb       FDCallback

	backendData any
	started     bool
}

// NewFDWatch creates an unstarted descriptor watch.
func NewFDWatch(fd int, interest api.EventFlags, cb FDCallback) *FDWatch {
	return &FDWatch{fd: fd, interest: interest & api.EventMask, cb: cb}
}

// FD implements api.FDWatch.
func (w *FDWatch) FD() int { return w.fd }

// Interest implements api.FDWatch.
func (w *FDWatch) Interest() api.EventFlags { return w.interest }

// SetInterest replaces the interest mask. For a started watch the new
// mask takes effect once Loop.Update is called.
func (w *FDWatch) SetInterest(events api.EventFlags) {
	w.interest = events & api.EventMask
}

// BackendData implements api.Watch.
func (w *FDWatch) BackendData() any { return w.backendData }

// SetBackendData implements api.Watch.
func (w *FDWatch) SetBackendData(data any) { w.backendData = data }

func (w *FDWatch) attach(l *Loop) error { return l.backend.AddFD(w) }
func (w *FDWatch) detach(l *Loop) error { return l.backend.DelFD(w) }
func (w *FDWatch) running() bool        { return w.started }
func (w *FDWatch) setRunning(on bool)   { w.started = on }

// SignalWatch watches delivery of one signal number. The number is fixed
// at creation; signal watches have no modify operation.
type SignalWatch struct {
	signo int
	cb    SignalCallback

	backendData any
	started     bool
}

// NewSignalWatch creates an unstarted signal watch.
func NewSignalWatch(signo int, cb SignalCallback) *SignalWatch {
	return &SignalWatch{signo: signo, cb: cb}
}

// Signo implements api.SignalWatch.
func (w *SignalWatch) Signo() int { return w.signo }

// BackendData implements api.Watch.
func (w *SignalWatch) BackendData() any { return w.backendData }

// SetBackendData implements api.Watch.
func (w *SignalWatch) SetBackendData(data any) { w.backendData = data }

func (w *SignalWatch) attach(l *Loop) error { return l.backend.AddSignal(w) }
func (w *SignalWatch) detach(l *Loop) error { return l.backend.DelSignal(w) }
func (w *SignalWatch) running() bool        { return w.started }
func (w *SignalWatch) setRunning(on bool)   { w.started = on }
