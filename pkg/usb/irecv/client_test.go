package irecv

import (
	"testing"

	"github.com/google/gousb"
)

func TestClientModeAndDeviceInfo(t *testing.T) {
	info := &DeviceInfo{SRNM: "ABCDE"}
	c := &Client{mode: ModeRecovery2, info: info}
	if c.Mode() != ModeRecovery2 {
		t.Fatalf("Mode() = %v", c.Mode())
	}
	if c.DeviceInfo() != info {
		t.Fatal("DeviceInfo() should return the stored pointer")
	}
}

func TestClientSetCallbacks(t *testing.T) {
	c := &Client{}
	called := false
	c.SetCallbacks(Callbacks{Disconnected: func(*Client) { called = true }})
	c.callbacks.fireDisconnected(c)
	if !called {
		t.Fatal("SetCallbacks should replace the callback set")
	}
}

func TestClientCloseIdempotent(t *testing.T) {
	ft := newFakeTransport()
	c := &Client{transport: ft}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if !ft.closed {
		t.Fatal("Close should close the underlying transport")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}

func TestClientCloseFiresDisconnected(t *testing.T) {
	ft := newFakeTransport()
	fired := false
	c := &Client{transport: ft, callbacks: Callbacks{Disconnected: func(*Client) { fired = true }}}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if !fired {
		t.Fatal("Close should fire the Disconnected callback")
	}
}

func TestClientResetNoDevice(t *testing.T) {
	c := &Client{}
	if err := c.Reset(); err != ErrNoDevice {
		t.Fatalf("Reset on a closed client should return ErrNoDevice, got %v", err)
	}
}

// TestReconnectPreservesCallbacks checks that a session's hooks survive a
// Reconnect: the old handle is closed, a fresh one is opened for the same
// ECID, and the returned Client carries the same Callbacks as the original.
func TestReconnectPreservesCallbacks(t *testing.T) {
	ft := newFakeTransport()
	ft.vendor = 0x05AC
	ft.product = uint16(ModeRecovery2)
	ft.serial = "SRNM:[ABCDE12345]"

	orig := openTransportFn
	openTransportFn = func(want func(desc *gousb.DeviceDesc) bool) (Transport, error) {
		return ft, nil
	}
	defer func() { openTransportFn = orig }()

	disconnectedCalled := false
	cb := Callbacks{Disconnected: func(*Client) { disconnectedCalled = true }}
	c := &Client{transport: ft, callbacks: cb, mode: ModeRecovery2, info: &DeviceInfo{SRNM: "ABCDE12345"}}

	nc, err := c.Reconnect(0)
	if err != nil {
		t.Fatalf("Reconnect failed: %v", err)
	}
	if nc.callbacks.Disconnected == nil {
		t.Fatal("reconnected client lost its Disconnected hook")
	}
	// Reconnect's Close of the old handle already fired the hook once.
	disconnectedCalled = false
	nc.callbacks.fireDisconnected(nc)
	if !disconnectedCalled {
		t.Fatal("reconnected client's Disconnected hook should fire")
	}
}

func TestSetDebugLevel(t *testing.T) {
	// SetDebugLevel has no observable return value; this just exercises
	// every branch without panicking.
	SetDebugLevel(0)
	SetDebugLevel(1)
	SetDebugLevel(2)
}
