// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the loopbridge
// boundary interfaces.

package fake

import "github.com/momentics/loopbridge/api"

// HostLoop is a fake api.HostLoop. It records every registration made
// through it, lets tests inject registration failures, and fires
// readiness into registered callbacks on demand. Like the real contract,
// everything is single-threaded.
type HostLoop struct {
	// AddFDErr, when set, makes AddFD fail with this error.
	AddFDErr error
	// AddSignalErr, when set, makes AddSignal fail with this error.
	AddSignalErr error

	// FDs and Signals hold every source ever created, removed ones
	// included, in registration order.
	FDs     []*FDSource
	Signals []*SignalSource
}

// NewHostLoop creates an empty fake host loop.
func NewHostLoop() *HostLoop {
	return &HostLoop{}
}

// FDSource records one descriptor registration.
type FDSource struct {
	Fd      int
	Events  api.PollFlags
	Updates []api.PollFlags
	Removed bool

	fn api.FDFunc
}

// Update implements api.FDSource, recording the new mask.
func (s *FDSource) Update(events api.PollFlags) error {
	s.Events = events
	s.Updates = append(s.Updates, events)
	return nil
}

// Remove implements api.Source.
func (s *FDSource) Remove() error {
	s.Removed = true
	return nil
}

// SignalSource records one signal registration.
type SignalSource struct {
	Signo   int
	Removed bool

	fn api.SignalFunc
}

// Remove implements api.Source.
func (s *SignalSource) Remove() error {
	s.Removed = true
	return nil
}

// AddFD implements api.HostLoop.
func (h *HostLoop) AddFD(fd int, events api.PollFlags, fn api.FDFunc) (api.FDSource, error) {
	if h.AddFDErr != nil {
		return nil, h.AddFDErr
	}
	s := &FDSource{Fd: fd, Events: events, fn: fn}
	h.FDs = append(h.FDs, s)
	return s, nil
}

// AddSignal implements api.HostLoop.
func (h *HostLoop) AddSignal(signo int, fn api.SignalFunc) (api.Source, error) {
	if h.AddSignalErr != nil {
		return nil, h.AddSignalErr
	}
	s := &SignalSource{Signo: signo, fn: fn}
	h.Signals = append(h.Signals, s)
	return s, nil
}

// FireFD reports readiness on fd to every live registration watching it.
// The source list is snapshotted first so callbacks may register or
// remove sources while the fire is in progress.
func (h *HostLoop) FireFD(fd int, revents api.PollFlags) {
	sources := make([]*FDSource, len(h.FDs))
	copy(sources, h.FDs)

	for _, s := range sources {
		if !s.Removed && s.Fd == fd {
			s.fn(fd, revents)
		}
	}
}

// FireSignal reports delivery of signo to every live signal registration.
func (h *HostLoop) FireSignal(signo int) {
	sources := make([]*SignalSource, len(h.Signals))
	copy(sources, h.Signals)

	for _, s := range sources {
		if !s.Removed && s.Signo == signo {
			s.fn(signo)
		}
	}
}

// ActiveFDs counts descriptor registrations not yet removed.
func (h *HostLoop) ActiveFDs() int {
	n := 0
	for _, s := range h.FDs {
		if !s.Removed {
			n++
		}
	}
	return n
}

// ActiveSignals counts signal registrations not yet removed.
func (h *HostLoop) ActiveSignals() int {
	n := 0
	for _, s := range h.Signals {
		if !s.Removed {
			n++
		}
	}
	return n
}

// FDUpdates counts mask-update calls across all descriptor sources.
func (h *HostLoop) FDUpdates() int {
	n := 0
	for _, s := range h.FDs {
		n += len(s.Updates)
	}
	return n
}
