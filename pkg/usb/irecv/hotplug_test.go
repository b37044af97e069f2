package irecv

import (
	"sync"
	"testing"
)

func TestDeviceEventSubscribeRejectsNilCallback(t *testing.T) {
	if _, err := DeviceEventSubscribe(nil); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for a nil callback, got %v", err)
	}
}

// TestDeviceEventSubscribeLifecycle exercises §8's invariant that the
// worker exists iff listeners is non-empty after any subscribe/unsubscribe
// operation completes.
func TestDeviceEventSubscribeLifecycle(t *testing.T) {
	h1, err := DeviceEventSubscribe(func(DeviceEvent) {})
	if err != nil {
		t.Fatal(err)
	}
	workerMu.Lock()
	running := workerCancel != nil
	workerMu.Unlock()
	if !running {
		t.Fatal("worker should be running after the first subscribe")
	}

	h2, err := DeviceEventSubscribe(func(DeviceEvent) {})
	if err != nil {
		t.Fatal(err)
	}

	if err := DeviceEventUnsubscribe(h1); err != nil {
		t.Fatal(err)
	}
	workerMu.Lock()
	running = workerCancel != nil
	workerMu.Unlock()
	if !running {
		t.Fatal("worker should still be running with one listener left")
	}

	if err := DeviceEventUnsubscribe(h2); err != nil {
		t.Fatal(err)
	}
	workerMu.Lock()
	running = workerCancel != nil
	workerMu.Unlock()
	if running {
		t.Fatal("worker should stop once the last listener unsubscribes")
	}
}

func TestFanOutDeliversToListener(t *testing.T) {
	listenerMu.Lock()
	saved := listeners
	listeners = nil
	listenerMu.Unlock()
	defer func() {
		listenerMu.Lock()
		listeners = saved
		listenerMu.Unlock()
	}()

	var mu sync.Mutex
	var got []DeviceEvent
	h1, _ := DeviceEventSubscribe(func(ev DeviceEvent) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	})
	defer DeviceEventUnsubscribe(h1)

	ev := DeviceEvent{Type: EventConnected, Location: "bus-1", Mode: ModeDFU}
	fanOut(ev)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0].Location != "bus-1" {
		t.Fatalf("fanOut delivered %#v", got)
	}
}

func TestHandleRemoveFansOutLastKnownMode(t *testing.T) {
	listenerMu.Lock()
	saved := listeners
	listeners = nil
	listenerMu.Unlock()
	defer func() {
		listenerMu.Lock()
		listeners = saved
		listenerMu.Unlock()
	}()

	var mu sync.Mutex
	var got DeviceEvent
	h, _ := DeviceEventSubscribe(func(ev DeviceEvent) {
		mu.Lock()
		got = ev
		mu.Unlock()
	})
	defer DeviceEventUnsubscribe(h)

	d := &trackedDevice{location: "loc-1", mode: ModeRecovery2, info: &DeviceInfo{SRNM: "X"}}
	handleRemove(d)

	mu.Lock()
	defer mu.Unlock()
	if got.Type != EventDisconnected || got.Mode != ModeRecovery2 || got.Location != "loc-1" {
		t.Fatalf("handleRemove fanned out %#v", got)
	}
}
