package reactor_test

import (
	"testing"

	"github.com/momentics/loopbridge/api"
	"github.com/momentics/loopbridge/bridge"
	"github.com/momentics/loopbridge/fake"
	"github.com/momentics/loopbridge/reactor"
)

// End-to-end: reactor embedded in a host loop through the bridge, with
// readiness driven by hand through the fake host.
func newEmbedded(t *testing.T) (*reactor.Loop, *fake.HostLoop) {
	t.Helper()
	host := fake.NewHostLoop()
	loop, err := reactor.New(bridge.New(host))
	if err != nil {
		t.Fatal(err)
	}
	return loop, host
}

func TestEmbeddedReadableDelivery(t *testing.T) {
	loop, host := newEmbedded(t)

	var got api.EventFlags
	deliveries := 0
	w := reactor.NewFDWatch(5, api.EventReadable, func(_ *reactor.FDWatch, ev api.EventFlags) {
		got = ev
		deliveries++
	})
	if err := loop.Start(w); err != nil {
		t.Fatal(err)
	}

	host.FireFD(5, api.PollIn)

	if deliveries != 1 {
		t.Fatalf("expected one delivery per notification, got %d", deliveries)
	}
	if got != api.EventReadable {
		t.Errorf("expected only the readable bit, got %#x", got)
	}
}

func TestEmbeddedBacklogDrainedByOneNotification(t *testing.T) {
	loop, host := newEmbedded(t)

	var delivered []string
	w1 := reactor.NewFDWatch(5, api.EventReadable, func(_ *reactor.FDWatch, ev api.EventFlags) {
		delivered = append(delivered, "w1")
	})
	w2 := reactor.NewFDWatch(6, api.EventWritable, func(_ *reactor.FDWatch, ev api.EventFlags) {
		delivered = append(delivered, "w2")
	})
	if err := loop.Start(w1); err != nil {
		t.Fatal(err)
	}
	if err := loop.Start(w2); err != nil {
		t.Fatal(err)
	}

	// w2's event is already pending when the host reports w1: the single
	// notification's dispatch pass covers the whole backlog.
	loop.Emit(w2, api.EventWritable)
	host.FireFD(5, api.PollIn)

	if len(delivered) != 2 {
		t.Fatalf("expected both callbacks to run, got %v", delivered)
	}
	if loop.Pending() != 0 {
		t.Errorf("backlog not drained: %d left", loop.Pending())
	}
}

func TestEmbeddedCallbackStartsAnotherWatch(t *testing.T) {
	loop, host := newEmbedded(t)

	var b *reactor.FDWatch
	bFired := false
	a := reactor.NewFDWatch(5, api.EventReadable, func(_ *reactor.FDWatch, ev api.EventFlags) {
		if err := loop.Start(b); err != nil {
			t.Errorf("starting watch from callback: %v", err)
		}
	})
	b = reactor.NewFDWatch(6, api.EventReadable, func(_ *reactor.FDWatch, ev api.EventFlags) {
		bFired = true
	})
	if err := loop.Start(a); err != nil {
		t.Fatal(err)
	}

	host.FireFD(5, api.PollIn)

	if host.ActiveFDs() != 2 {
		t.Fatalf("watch started from callback not registered: %d active", host.ActiveFDs())
	}
	host.FireFD(6, api.PollIn)
	if !bFired {
		t.Error("watch started from callback never received events")
	}

	// Watch A survived the nested registration.
	if a.BackendData() == nil {
		t.Error("outer watch lost its binding")
	}
}

func TestEmbeddedSignal(t *testing.T) {
	loop, host := newEmbedded(t)

	fired := 0
	w := reactor.NewSignalWatch(2, func(_ *reactor.SignalWatch) {
		fired++
	})
	if err := loop.Start(w); err != nil {
		t.Fatal(err)
	}

	host.FireSignal(2)
	if fired != 1 {
		t.Fatalf("expected one signal delivery, got %d", fired)
	}

	if err := loop.Stop(w); err != nil {
		t.Fatal(err)
	}
	if host.FDUpdates() != 0 {
		t.Error("signal removal caused a descriptor-mask-update call")
	}
	host.FireSignal(2)
	if fired != 1 {
		t.Error("signal delivered after watch removal")
	}
}

func TestEmbeddedInterestChange(t *testing.T) {
	loop, host := newEmbedded(t)

	w := reactor.NewFDWatch(5, api.EventReadable, nil)
	if err := loop.Start(w); err != nil {
		t.Fatal(err)
	}

	w.SetInterest(api.EventReadable | api.EventWritable)
	if err := loop.Update(w); err != nil {
		t.Fatal(err)
	}

	src := host.FDs[0]
	if len(src.Updates) != 1 || src.Updates[0] != api.PollIn|api.PollOut {
		t.Errorf("host mask not updated in place: %v", src.Updates)
	}
	if len(host.FDs) != 1 {
		t.Error("interest change re-registered the descriptor")
	}
}

func TestEmbeddedTeardown(t *testing.T) {
	loop, host := newEmbedded(t)

	w := reactor.NewFDWatch(5, api.EventReadable, nil)
	if err := loop.Start(w); err != nil {
		t.Fatal(err)
	}
	if err := loop.Stop(w); err != nil {
		t.Fatal(err)
	}
	if err := loop.Close(); err != nil {
		t.Fatal(err)
	}

	if host.ActiveFDs() != 0 {
		t.Errorf("sources left registered after teardown: %d", host.ActiveFDs())
	}
}
