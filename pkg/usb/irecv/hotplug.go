package irecv

import (
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/gousb"
	"github.com/google/uuid"
)

// DeviceEvent is delivered to a hot-plug listener.
type DeviceEvent struct {
	Type     EventType // EventConnected (add) or EventDisconnected (remove)
	Location string
	Mode     Mode
	Info     *DeviceInfo
}

// DeviceEventCallback receives hot-plug notifications. It must not block
// for long: it runs on the shared worker goroutine under listenerMu.
type DeviceEventCallback func(DeviceEvent)

// ListenerHandle identifies one DeviceEventSubscribe registration, opaque
// to callers, returned by DeviceEventSubscribe and consumed by
// DeviceEventUnsubscribe.
type ListenerHandle struct {
	id uuid.UUID
}

type listenerEntry struct {
	id uuid.UUID
	cb DeviceEventCallback
}

type trackedDevice struct {
	location string
	mode     Mode
	info     *DeviceInfo
}

var (
	listenerMu sync.Mutex
	listeners  []listenerEntry

	deviceMu sync.Mutex
	trackedDevices = make(map[string]*trackedDevice)

	workerMu     sync.Mutex
	workerCancel func()
)

// DeviceEventSubscribe registers cb to receive ADD/REMOVE notifications
// for every recognised device location. The first subscription starts
// the background polling worker (§4.7); the returned handle is passed to
// DeviceEventUnsubscribe.
func DeviceEventSubscribe(cb DeviceEventCallback) (ListenerHandle, error) {
	if cb == nil {
		return ListenerHandle{}, ErrInvalidInput
	}

	entry := listenerEntry{id: uuid.New(), cb: cb}

	listenerMu.Lock()
	listeners = append(listeners, entry)
	n := len(listeners)
	listenerMu.Unlock()

	if n == 1 {
		startHotplugWorker()
	}

	return ListenerHandle{id: entry.id}, nil
}

// DeviceEventUnsubscribe removes h's listener. When it was the last
// listener, the background worker is stopped and all tracked device
// records are discarded.
func DeviceEventUnsubscribe(h ListenerHandle) error {
	listenerMu.Lock()
	for i, e := range listeners {
		if e.id == h.id {
			listeners = append(listeners[:i], listeners[i+1:]...)
			break
		}
	}
	remaining := len(listeners)
	listenerMu.Unlock()

	if remaining == 0 {
		stopHotplugWorker()
	}
	return nil
}

func startHotplugWorker() {
	workerMu.Lock()
	defer workerMu.Unlock()
	if workerCancel != nil {
		return
	}

	stop := make(chan struct{})
	var once sync.Once
	workerCancel = func() { once.Do(func() { close(stop) }) }

	go hotplugPollLoop(stop)
}

func stopHotplugWorker() {
	workerMu.Lock()
	cancel := workerCancel
	workerCancel = nil
	workerMu.Unlock()
	if cancel != nil {
		cancel()
	}

	deviceMu.Lock()
	trackedDevices = make(map[string]*trackedDevice)
	deviceMu.Unlock()
}

// hotplugPollLoop implements §4.7's polling model: every 500ms, enumerate
// matching devices, mark each known location alive iff still present, and
// fan out ADD/REMOVE for the difference.
func hotplugPollLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			pollOnce()
		}
	}
}

func pollOnce() {
	ctx := gousb.NewContext()
	defer ctx.Close()

	seen := make(map[string]bool)

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == AppleVendorID && Mode(desc.Product).Recognized()
	})
	if err != nil {
		log.WithError(err).Debug("irecv: hotplug enumeration failed")
		return
	}

	for _, dev := range devs {
		location := dev.String()
		seen[location] = true
		handleAdd(dev, location)
		dev.Close()
	}

	deviceMu.Lock()
	var removed []*trackedDevice
	for loc, d := range trackedDevices {
		if !seen[loc] {
			removed = append(removed, d)
			delete(trackedDevices, loc)
		}
	}
	deviceMu.Unlock()

	for _, d := range removed {
		handleRemove(d)
	}
}

// handleAdd opens the device just long enough to read its identity,
// builds a device-info record if this location is new, stores it, and
// fans out EventConnected. A location already tracked is left alone;
// ADD fires once per arrival, not once per poll tick.
func handleAdd(dev *gousb.Device, location string) {
	deviceMu.Lock()
	_, known := trackedDevices[location]
	deviceMu.Unlock()
	if known {
		return
	}

	mode := Mode(dev.Desc.Product)

	var info *DeviceInfo
	if mode == ModeKIS {
		kisInfo, err := handleAddKIS(dev)
		if err != nil {
			log.WithError(err).WithField("location", location).Debug("irecv: hotplug could not load kis info")
			return
		}
		info = kisInfo
	} else {
		serial, err := dev.SerialNumber()
		if err != nil {
			log.WithError(err).WithField("location", location).Debug("irecv: hotplug could not read serial")
			return
		}
		info = ParseIBootString(serial)
	}

	d := &trackedDevice{location: location, mode: mode, info: info}
	deviceMu.Lock()
	trackedDevices[location] = d
	deviceMu.Unlock()

	fanOut(DeviceEvent{Type: EventConnected, Location: location, Mode: mode, Info: info})
}

// kisAddAttempts/kisAddBackoff bound handleAddKIS's retry loop: the debug
// USB portal is not always ready to answer the info request the instant a
// KIS-mode device enumerates.
const (
	kisAddAttempts = 10
	kisAddBackoff  = 500 * time.Millisecond
)

// handleAddKIS runs the KIS init + info-retrieval sequence for a device
// observed in KIS mode, in place of the serial-string read every other
// mode uses, retrying on failure since the portal may not be up yet.
func handleAddKIS(dev *gousb.Device) (*DeviceInfo, error) {
	t, err := wrapGousbDevice(nil, dev)
	if err != nil {
		return nil, err
	}
	defer func() {
		if t.intf != nil {
			t.intf.Close()
		}
		if t.cfg != nil {
			t.cfg.Close()
		}
	}()

	var lastErr error
	for i := 0; i < kisAddAttempts; i++ {
		if i > 0 {
			time.Sleep(kisAddBackoff)
		}
		if err := kisInit(t); err != nil {
			lastErr = err
			continue
		}
		info, err := kisLoadDeviceInfo(t)
		if err != nil {
			lastErr = err
			continue
		}
		return info, nil
	}
	return nil, lastErr
}

// handleRemove fans out EventDisconnected carrying the last mode the
// device was observed in, rather than an unknown/zero mode.
func handleRemove(d *trackedDevice) {
	fanOut(DeviceEvent{Type: EventDisconnected, Location: d.location, Mode: d.mode, Info: d.info})
}

func fanOut(ev DeviceEvent) {
	listenerMu.Lock()
	defer listenerMu.Unlock()
	for _, e := range listeners {
		e.cb(ev)
	}
}
