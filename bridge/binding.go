// File: bridge/binding.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Source bindings: one heap-allocated record per started watch, pairing
// the watch object with the host-loop source created for it. A binding
// exists exactly while its watch is registered. Ownership belongs to the
// add/remove call pair; the watch only holds a weak reference through its
// backend-data slot, set on add and cleared on remove.

package bridge

import "github.com/momentics/loopbridge/api"

// binding links one watch object to its host-loop registration.
type binding struct {
	watch  api.Watch
	bridge *Bridge
	src    api.Source
}

// register is the scoped-acquisition helper shared by both add paths:
// allocate the binding, attempt the host-loop registration, and attach
// the binding to the watch only on full success. Every failure path
// returns with the watch exactly as it was.
func (b *Bridge) register(w api.Watch, add func(*binding) (api.Source, error)) error {
	if b.rt == nil {
		return api.NewError(api.ErrCodeInvalidState, "add", api.ErrNotAttached)
	}
	if w.BackendData() != nil {
		return api.NewError(api.ErrCodeInvalidState, "add", api.ErrAlreadyRegistered)
	}

	bind := &binding{watch: w, bridge: b}

	src, err := add(bind)
	if err != nil {
		b.stats.Failures++
		return api.NewError(api.ErrCodeRegistration, "add", err)
	}

	bind.src = src
	w.SetBackendData(bind)

	return nil
}

// bindingOf retrieves the binding attached to w. A missing binding means
// the caller invoked modify/remove on an unregistered watch.
func bindingOf(op string, w api.Watch) (*binding, error) {
	bind, ok := w.BackendData().(*binding)
	if !ok || bind == nil {
		return nil, api.NewError(api.ErrCodeInvalidState, op, api.ErrNotRegistered)
	}
	return bind, nil
}

// AddFD implements api.Backend.
func (b *Bridge) AddFD(w api.FDWatch) error {
	fd := w.FD()
	events := PollFromEvents(w.Interest())

	err := b.register(w, func(bind *binding) (api.Source, error) {
		return b.host.AddFD(fd, events, bind.onFDReady)
	})
	if err != nil {
		b.logger().Error("bridge: fd registration failed",
			"fd", fd, "events", uint32(events), "error", err)
		return err
	}

	b.stats.FDAdds++
	b.logger().Debug("bridge: fd watch registered", "fd", fd, "events", uint32(events))
	return nil
}

// ModFD implements api.Backend. The interest mask is re-read from the
// watch and applied to the existing host source in place.
func (b *Bridge) ModFD(w api.FDWatch) error {
	bind, err := bindingOf("modify", w)
	if err != nil {
		return err
	}

	src, ok := bind.src.(api.FDSource)
	if !ok {
		return api.NewError(api.ErrCodeInternal, "modify", api.ErrNotSupported).
			WithContext("fd", w.FD())
	}

	events := PollFromEvents(w.Interest())
	if err := src.Update(events); err != nil {
		b.stats.Failures++
		return api.NewError(api.ErrCodeRegistration, "modify", err)
	}

	b.stats.FDMods++
	b.logger().Debug("bridge: fd watch updated", "fd", w.FD(), "events", uint32(events))
	return nil
}

// DelFD implements api.Backend.
func (b *Bridge) DelFD(w api.FDWatch) error {
	bind, err := bindingOf("remove", w)
	if err != nil {
		return err
	}

	if err := bind.src.Remove(); err != nil {
		b.stats.Failures++
		return api.NewError(api.ErrCodeRegistration, "remove", err)
	}
	w.SetBackendData(nil)

	b.stats.FDDels++
	b.logger().Debug("bridge: fd watch removed", "fd", w.FD())
	return nil
}

// AddSignal implements api.Backend.
func (b *Bridge) AddSignal(w api.SignalWatch) error {
	signo := w.Signo()

	err := b.register(w, func(bind *binding) (api.Source, error) {
		return b.host.AddSignal(signo, bind.onSignal)
	})
	if err != nil {
		b.logger().Error("bridge: signal registration failed",
			"signo", signo, "error", err)
		return err
	}

	b.stats.SignalAdds++
	b.logger().Debug("bridge: signal watch registered", "signo", signo)
	return nil
}

// DelSignal implements api.Backend.
func (b *Bridge) DelSignal(w api.SignalWatch) error {
	bind, err := bindingOf("remove", w)
	if err != nil {
		return err
	}

	if err := bind.src.Remove(); err != nil {
		b.stats.Failures++
		return api.NewError(api.ErrCodeRegistration, "remove", err)
	}
	w.SetBackendData(nil)

	b.stats.SignalDels++
	b.logger().Debug("bridge: signal watch removed", "signo", w.Signo())
	return nil
}

// onFDReady is the dispatch callback fired by the host loop for a ready
// descriptor. It forwards the translated readiness mask to the watch and
// then runs the reactor's full dispatch pass: one host notification may
// drain an arbitrary backlog of already-pending reactor work, and user
// callbacks run inline on the host thread. Reentrant add/modify/remove of
// other watches during that pass is safe because every binding is an
// independent allocation.
func (bind *binding) onFDReady(fd int, revents api.PollFlags) {
	b := bind.bridge
	b.stats.Notifies++

	b.rt.Emit(bind.watch, EventsFromPoll(revents))
	b.rt.Dispatch()
}

// onSignal is the dispatch callback fired by the host loop for a
// delivered signal. Signal events carry a zero mask.
func (bind *binding) onSignal(signo int) {
	b := bind.bridge
	b.stats.Notifies++

	b.rt.Emit(bind.watch, 0)
	b.rt.Dispatch()
}
