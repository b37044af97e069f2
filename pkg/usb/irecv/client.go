package irecv

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/gousb"
)

func init() {
	if lvl := os.Getenv("LIBIRECOVERY_DEBUG_LEVEL"); lvl != "" {
		if n, err := strconv.Atoi(lvl); err == nil {
			SetDebugLevel(n)
		}
	}
}

// SetDebugLevel gates this package's apex/log output: n <= 0 logs warnings
// and above, n == 1 adds info, n >= 2 adds debug, matching
// LIBIRECOVERY_DEBUG_LEVEL's "higher values produce more diagnostic
// writes" without inventing new level names.
func SetDebugLevel(n int) {
	switch {
	case n >= 2:
		log.SetLevel(log.DebugLevel)
	case n == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

// Client is an open connection to a device in one of the boot modes this
// package understands. It owns the underlying Transport and the identity
// information read from the device at open time.
type Client struct {
	mu sync.Mutex

	transport Transport
	mode      Mode
	info      *DeviceInfo
	callbacks Callbacks
}

// Mode returns the boot mode the device was in when opened.
func (c *Client) Mode() Mode { return c.mode }

// DeviceInfo returns the identity parsed from the device's serial string
// descriptor at open time.
func (c *Client) DeviceInfo() *DeviceInfo { return c.info }

// SetCallbacks installs the event hooks fired during commands, uploads
// and receives, and when the session connects or closes. Hot-plug
// notifications go to DeviceEventSubscribe listeners, not to these hooks.
func (c *Client) SetCallbacks(cb Callbacks) { c.callbacks = cb }

// Open connects to the first attached Apple device in a recognized boot
// mode. If ecid is non-zero, that first device is accepted only if its
// parsed identity carries that ECID; otherwise it is closed and Open fails
// with CodeUnableToConnect. Other attached candidates are not tried. Passing
// ecid equal to uint64(ModeWTF) is the documented special case that
// selects a WTF-mode device regardless of ECID, since ECID cannot be read
// in that mode (§4.2).
func Open(ecid uint64) (*Client, error) {
	return OpenWithAttempts(ecid, 1, 0)
}

// OpenWithAttempts retries Open up to attempts times, sleeping 1 second
// between tries, mirroring irecv_open_with_ecid_and_attempts. attempts < 1
// is treated as 1. pause, if non-zero, is an additional sleep applied
// after a successful open before returning.
func OpenWithAttempts(ecid uint64, attempts int, pause time.Duration) (*Client, error) {
	return openWithAttempts(ecid, attempts, pause, Callbacks{})
}

// openWithAttempts is OpenWithAttempts generalized to carry a set of
// callbacks onto the freshly opened Client before Connected fires, so a
// caller reopening a known session (Reconnect) keeps its hooks live across
// the new handle instead of starting from a zero Callbacks.
func openWithAttempts(ecid uint64, attempts int, pause time.Duration, cb Callbacks) (*Client, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			log.WithField("attempt", i+1).Debug("irecv: retrying open")
			time.Sleep(time.Second)
		}
		c, err := openOnce(ecid, cb)
		if err == nil {
			if pause > 0 {
				time.Sleep(pause)
			}
			return c, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func openOnce(ecid uint64, cb Callbacks) (*Client, error) {
	wtfOnly := ecid == uint64(ModeWTF)
	if wtfOnly {
		ecid = 0
	}

	want := matchAppleAny(
		uint16(ModeRecovery1), uint16(ModeRecovery2), uint16(ModeRecovery3), uint16(ModeRecovery4),
		uint16(ModeWTF), uint16(ModeDFU), uint16(ModeKIS),
	)

	t, err := openTransportFn(func(desc *gousb.DeviceDesc) bool {
		if !want(desc) {
			return false
		}
		product := uint16(desc.Product)
		if wtfOnly {
			return product == uint16(ModeWTF)
		}
		if ecid != 0 && product == uint16(ModeWTF) {
			// ECID cannot be read in WTF mode.
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	_, product := t.VendorProduct()
	mode := Mode(product)

	var info *DeviceInfo
	if mode == ModeKIS {
		if err := kisInit(t); err != nil {
			t.Close()
			return nil, err
		}
		info, err = kisLoadDeviceInfo(t)
		if err != nil {
			t.Close()
			return nil, err
		}
	} else {
		serial, err := t.SerialNumber()
		if err != nil {
			t.Close()
			return nil, err
		}
		info = ParseIBootString(serial)

		// NONC/SNON live in a separate string descriptor from the main
		// identity string (§4.3): index 1, not the index 3 carrying SRNM
		// and friends. A device that doesn't populate it (or a bus that
		// balks at an odd index) just means no nonce, not a failure to
		// open.
		if nonceBuf, nerr := t.StringDescriptor(1); nerr == nil {
			if apNonce := extractNonce(nonceBuf, "NONC"); apNonce != nil {
				info.APNonce = apNonce
			}
			if sepNonce := extractNonce(nonceBuf, "SNON"); sepNonce != nil {
				info.SEPNonce = sepNonce
			}
		} else {
			log.WithError(nerr).Debug("irecv: no separate nonce descriptor, falling back to main identity string")
		}
	}

	// ECID is unknown before KIS info is loaded, so the check happens
	// only now, uniformly for every mode.
	if ecid != 0 && info.ECID != ecid {
		t.Close()
		return nil, wrapError(CodeUnableToConnect, nil, "device ECID %016x does not match requested %016x", info.ECID, ecid)
	}

	if mode != ModeKIS {
		if err := t.SetConfiguration(1); err != nil {
			t.Close()
			return nil, err
		}
		if mode.DFULike() {
			if err := t.SetInterface(0, 0); err != nil {
				t.Close()
				return nil, err
			}
		} else {
			if err := t.SetInterface(0, 0); err != nil {
				t.Close()
				return nil, err
			}
			if mode == ModeRecovery3 || mode == ModeRecovery4 {
				if err := t.SetInterface(1, 1); err != nil {
					t.Close()
					return nil, err
				}
			}
		}
	}

	c := &Client{transport: t, mode: mode, info: info, callbacks: cb}

	if err := c.callbacks.fireConnected(c); err != nil {
		t.Close()
		return nil, err
	}

	return c, nil
}

// Reconnect closes and reopens the same device by ECID, optionally
// pausing before the reopen attempt. Used after a command that resets
// the USB connection, e.g. "reboot" or firmware upload completion. The
// returned Client carries the same callbacks as c.
func (c *Client) Reconnect(initialPause time.Duration) (*Client, error) {
	ecid := uint64(0)
	if c.info != nil {
		ecid = c.info.ECID
	}
	cb := c.callbacks
	c.Close()
	if initialPause > 0 {
		time.Sleep(initialPause)
	}
	return openWithAttempts(ecid, 10, 0, cb)
}

// Close releases the underlying USB handle. It is safe to call more than
// once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transport == nil {
		return nil
	}
	err := c.transport.Close()
	c.transport = nil
	c.callbacks.fireDisconnected(c)
	return err
}

// Reset issues a USB bus reset. It errors with ErrNoDevice if the client
// has already been closed.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transport == nil {
		return ErrNoDevice
	}
	return c.transport.Reset()
}

// USBSetConfiguration selects the device's active USB configuration
// (usb_set_configuration, §6).
func (c *Client) USBSetConfiguration(cfg int) error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}
	return t.SetConfiguration(cfg)
}

// USBSetInterface claims the given interface/alt-setting pair
// (usb_set_interface, §6).
func (c *Client) USBSetInterface(iface, alt int) error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}
	return t.SetInterface(iface, alt)
}

// USBControlTransfer issues a raw USB control transfer
// (usb_control_transfer, §6), for callers that need a command this
// package's higher-level methods don't cover.
func (c *Client) USBControlTransfer(rType, request uint8, value, index uint16, data []byte) (int, error) {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return 0, ErrNoDevice
	}
	return t.Control(rType, request, value, index, data)
}

// USBBulkTransfer issues a raw USB bulk transfer (usb_bulk_transfer, §6).
// write selects direction: true writes data to endpoint, false reads into
// it.
func (c *Client) USBBulkTransfer(endpoint int, data []byte, write bool) (int, error) {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return 0, ErrNoDevice
	}
	if write {
		return t.BulkWrite(endpoint, data)
	}
	return t.BulkRead(endpoint, data)
}
