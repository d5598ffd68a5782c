// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import "github.com/momentics/loopbridge/api"

// Backend is a fake api.Backend counting calls and optionally failing
// them, for reactor tests that need no real host loop behind the scenes.
type Backend struct {
	AttachErr    error
	AddFDErr     error
	ModFDErr     error
	DelFDErr     error
	AddSignalErr error
	DelSignalErr error

	Attached api.Emitter
	Closed   bool

	AddFDCalls     int
	ModFDCalls     int
	DelFDCalls     int
	AddSignalCalls int
	DelSignalCalls int
}

// NewBackend creates a fake backend that accepts everything.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach implements api.Backend.
func (b *Backend) Attach(rt api.Emitter) error {
	if b.AttachErr != nil {
		return b.AttachErr
	}
	if b.Attached != nil {
		return api.ErrAlreadyAttached
	}
	b.Attached = rt
	return nil
}

// Close implements api.Backend.
func (b *Backend) Close() error {
	b.Closed = true
	return nil
}

// AddFD implements api.Backend.
func (b *Backend) AddFD(w api.FDWatch) error {
	if b.AddFDErr != nil {
		return b.AddFDErr
	}
	b.AddFDCalls++
	return nil
}

// ModFD implements api.Backend.
func (b *Backend) ModFD(w api.FDWatch) error {
	if b.ModFDErr != nil {
		return b.ModFDErr
	}
	b.ModFDCalls++
	return nil
}

// DelFD implements api.Backend.
func (b *Backend) DelFD(w api.FDWatch) error {
	if b.DelFDErr != nil {
		return b.DelFDErr
	}
	b.DelFDCalls++
	return nil
}

// AddSignal implements api.Backend.
func (b *Backend) AddSignal(w api.SignalWatch) error {
	if b.AddSignalErr != nil {
		return b.AddSignalErr
	}
	b.AddSignalCalls++
	return nil
}

// DelSignal implements api.Backend.
func (b *Backend) DelSignal(w api.SignalWatch) error {
	if b.DelSignalErr != nil {
		return b.DelSignalErr
	}
	b.DelSignalCalls++
	return nil
}
