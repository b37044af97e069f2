package irecv

import (
	"strings"

	"github.com/apex/log"
	"github.com/google/gousb"
)

// Transport is the USB surface this package needs: control transfers for
// DFU commands and status polling, bulk transfers for Recovery-mode
// uploads, and the handful of descriptor/identity calls used during
// discovery. Production code talks to a real device through
// gousbTransport; tests substitute a fake that records calls and plays
// back canned responses, so the protocol logic in upload.go and kis.go
// never needs real hardware.
type Transport interface {
	// Control issues a USB control transfer. rType follows gousb's
	// request-type encoding (direction | type | recipient).
	Control(rType, request uint8, value, index uint16, data []byte) (int, error)
	// BulkWrite writes data to the given bulk OUT endpoint.
	BulkWrite(endpoint int, data []byte) (int, error)
	// BulkRead reads up to len(buf) bytes from the given bulk IN endpoint.
	BulkRead(endpoint int, buf []byte) (int, error)
	// SerialNumber returns the device's USB serial-number string
	// descriptor (the iBoot identity string in DFU/Recovery/WTF).
	SerialNumber() (string, error)
	// StringDescriptor returns the raw string descriptor at the given
	// index (used to read the separate nonce descriptor).
	StringDescriptor(index int) (string, error)
	// VendorProduct returns the device's USB vendor and product ids.
	VendorProduct() (vendor, product uint16)
	// Reset issues a USB bus reset.
	Reset() error
	// SetConfiguration selects the device's active USB configuration.
	SetConfiguration(cfg int) error
	// SetInterface claims iface at the given alternate setting.
	SetInterface(iface, alt int) error
	// Close releases the underlying device handle.
	Close() error
}

// gousbTransport is the production Transport, backed by
// github.com/google/gousb.
type gousbTransport struct {
	ctx *gousb.Context
	dev *gousb.Device

	cfg   *gousb.Config
	intf  *gousb.Interface
	inEP  map[int]*gousb.InEndpoint
	outEP map[int]*gousb.OutEndpoint
}

// openTransportFn is the hook client.go calls to obtain a Transport for a
// new session. Tests replace it with a fake so Open/Reconnect's retry and
// callback-threading logic can be exercised without real USB hardware.
var openTransportFn = func(want func(desc *gousb.DeviceDesc) bool) (Transport, error) {
	t, err := openGousbTransport(want)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// openGousbTransport opens the first Apple device matching want, claiming
// its first interface so bulk endpoints are available for Recovery uploads.
func openGousbTransport(want func(desc *gousb.DeviceDesc) bool) (*gousbTransport, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(want)
	if err != nil {
		ctx.Close()
		return nil, wrapError(CodeUnableToConnect, err, "enumerate usb devices")
	}
	if len(devs) == 0 {
		ctx.Close()
		return nil, ErrNoDevice
	}
	// OpenDevices opens every matching device; we only want the first and
	// must close the rest to avoid leaking USB handles.
	for _, extra := range devs[1:] {
		extra.Close()
	}

	return wrapGousbDevice(ctx, devs[0])
}

// wrapGousbDevice builds a Transport around an already-open gousb.Device,
// claiming its default interface so bulk transfers are available. ctx may
// be nil when the caller owns the device's context and closes it
// separately, as hot-plug polling does with its short-lived per-tick
// context.
func wrapGousbDevice(ctx *gousb.Context, dev *gousb.Device) (*gousbTransport, error) {
	t := &gousbTransport{
		ctx:   ctx,
		dev:   dev,
		inEP:  make(map[int]*gousb.InEndpoint),
		outEP: make(map[int]*gousb.OutEndpoint),
	}

	cfg, err := dev.Config(1)
	if err != nil {
		log.WithError(err).Debug("usb: no configuration 1, continuing with control transfers only")
		return t, nil
	}
	t.cfg = cfg

	intf, err := cfg.Interface(0, 0)
	if err != nil {
		log.WithError(err).Debug("usb: no interface 0/0, continuing with control transfers only")
		return t, nil
	}
	t.intf = intf
	return t, nil
}

func (t *gousbTransport) Control(rType, request uint8, value, index uint16, data []byte) (int, error) {
	n, err := t.dev.Control(rType, request, value, index, data)
	if err != nil {
		if err == gousb.ErrorPipe {
			return n, wrapError(CodePipe, err, "control transfer (bmRequestType=0x%02x bRequest=0x%02x)", rType, request)
		}
		return n, wrapError(CodeUSBStatus, err, "control transfer (bmRequestType=0x%02x bRequest=0x%02x)", rType, request)
	}
	return n, nil
}

func (t *gousbTransport) outEndpoint(endpoint int) (*gousb.OutEndpoint, error) {
	if ep, ok := t.outEP[endpoint]; ok {
		return ep, nil
	}
	if t.intf == nil {
		return nil, wrapError(CodeUSBInterface, nil, "no interface claimed")
	}
	ep, err := t.intf.OutEndpoint(endpoint)
	if err != nil {
		return nil, wrapError(CodeUSBInterface, err, "open out endpoint %d", endpoint)
	}
	t.outEP[endpoint] = ep
	return ep, nil
}

func (t *gousbTransport) inEndpoint(endpoint int) (*gousb.InEndpoint, error) {
	if ep, ok := t.inEP[endpoint]; ok {
		return ep, nil
	}
	if t.intf == nil {
		return nil, wrapError(CodeUSBInterface, nil, "no interface claimed")
	}
	ep, err := t.intf.InEndpoint(endpoint)
	if err != nil {
		return nil, wrapError(CodeUSBInterface, err, "open in endpoint %d", endpoint)
	}
	t.inEP[endpoint] = ep
	return ep, nil
}

func (t *gousbTransport) BulkWrite(endpoint int, data []byte) (int, error) {
	ep, err := t.outEndpoint(endpoint)
	if err != nil {
		return 0, err
	}
	n, err := ep.Write(data)
	if err != nil {
		return n, wrapError(CodeUSBUpload, err, "bulk write to endpoint %d", endpoint)
	}
	return n, nil
}

func (t *gousbTransport) BulkRead(endpoint int, buf []byte) (int, error) {
	ep, err := t.inEndpoint(endpoint)
	if err != nil {
		return 0, err
	}
	n, err := ep.Read(buf)
	if err != nil {
		return n, wrapError(CodeUSBStatus, err, "bulk read from endpoint %d", endpoint)
	}
	return n, nil
}

func (t *gousbTransport) SerialNumber() (string, error) {
	s, err := t.dev.SerialNumber()
	if err != nil {
		return "", wrapError(CodeUSBStatus, err, "read serial number descriptor")
	}
	return s, nil
}

// StringDescriptor reads string descriptor index via a GET_DESCRIPTOR
// control transfer and decodes it from UTF-16LE. The read goes through
// Control directly so any index can be requested, such as the nonce
// descriptor read at open time.
func (t *gousbTransport) StringDescriptor(index int) (string, error) {
	buf := make([]byte, 255)
	const (
		getDescriptor  = 0x06
		descriptorTypeString = 0x03
	)
	n, err := t.dev.Control(gousb.ControlIn|gousb.ControlStandard|gousb.ControlDevice, getDescriptor, uint16(descriptorTypeString)<<8|uint16(index), 0x0409, buf)
	if err != nil {
		return "", wrapError(CodeUSBStatus, err, "read string descriptor %d", index)
	}
	if n < 2 {
		return "", newError(CodeUSBStatus, "string descriptor %d too short (%d bytes)", index, n)
	}
	return decodeUTF16StringDescriptor(buf[2:n]), nil
}

func decodeUTF16StringDescriptor(b []byte) string {
	var sb strings.Builder
	for i := 0; i+1 < len(b); i += 2 {
		sb.WriteRune(rune(uint16(b[i]) | uint16(b[i+1])<<8))
	}
	return sb.String()
}

func (t *gousbTransport) VendorProduct() (vendor, product uint16) {
	desc := t.dev.Desc
	return uint16(desc.Vendor), uint16(desc.Product)
}

func (t *gousbTransport) Reset() error {
	if t.dev == nil {
		return newError(CodeUSBInterface, "reset: no device handle")
	}
	if err := t.dev.Reset(); err != nil {
		if isResetDisconnect(err) {
			log.WithError(err).Debug("usb: device stopped responding during reset, treating as success")
			return nil
		}
		return wrapError(CodeUSBInterface, err, "reset device")
	}
	return nil
}

// isResetDisconnect reports whether err is the class of libusb error a
// reset produces when the device drops off the bus to reboot, rather than
// a genuine failure to reset it.
func isResetDisconnect(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no device") ||
		strings.Contains(msg, "not responding") ||
		strings.Contains(msg, "no such device")
}

func (t *gousbTransport) SetConfiguration(cfg int) error {
	if err := t.dev.SetAutoDetach(true); err != nil {
		log.WithError(err).Debug("usb: SetAutoDetach failed, continuing")
	}
	c, err := t.dev.Config(cfg)
	if err != nil {
		return wrapError(CodeUSBConfiguration, err, "set configuration %d", cfg)
	}
	if t.cfg != nil {
		t.cfg.Close()
	}
	t.cfg = c
	return nil
}

// SetInterface claims iface at the given alternate setting, replacing any
// previously claimed interface. Endpoint caches are cleared since a new
// alt setting may expose different endpoints.
func (t *gousbTransport) SetInterface(iface, alt int) error {
	if t.cfg == nil {
		return newError(CodeUSBInterface, "set interface %d/%d: no configuration claimed", iface, alt)
	}
	newIntf, err := t.cfg.Interface(iface, alt)
	if err != nil {
		return wrapError(CodeUSBInterface, err, "claim interface %d/%d", iface, alt)
	}
	if t.intf != nil {
		t.intf.Close()
	}
	t.intf = newIntf
	t.inEP = make(map[int]*gousb.InEndpoint)
	t.outEP = make(map[int]*gousb.OutEndpoint)
	return nil
}

func (t *gousbTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
	}
	if t.cfg != nil {
		t.cfg.Close()
	}
	var err error
	if t.dev != nil {
		err = t.dev.Close()
	}
	if t.ctx != nil {
		t.ctx.Close()
	}
	if err != nil {
		return wrapError(CodeUnknownError, err, "close device")
	}
	return nil
}

// matchApple builds a gousb device filter for a single Apple USB product
// id. Open uses matchAppleAny instead, to accept every recognized mode.
func matchApple(product uint16) func(desc *gousb.DeviceDesc) bool {
	return func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == AppleVendorID && uint16(desc.Product) == product
	}
}

func matchAppleAny(products ...uint16) func(desc *gousb.DeviceDesc) bool {
	want := make(map[uint16]bool, len(products))
	for _, p := range products {
		want[p] = true
	}
	return func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == AppleVendorID && want[uint16(desc.Product)]
	}
}
