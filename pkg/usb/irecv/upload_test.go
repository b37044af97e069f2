package irecv

import (
	"bytes"
	"testing"
)

// fakeTransport is a hand-rolled double for Transport, recording every
// call so the upload/kis protocol logic can be exercised without a real
// device. Control responses are keyed by (rType, request) pairs supplied
// up front; a missing key leaves data untouched and reports all of it as
// transferred, with no error.
type fakeTransport struct {
	controlCalls []fakeControlCall
	controlResp  map[[2]uint8][]byte

	bulkWrites [][]byte
	bulkReads  map[int][][]byte // successive reads per endpoint, consumed in order

	serial  string
	vendor  uint16
	product uint16

	resetCalled bool
	closed      bool
}

type fakeControlCall struct {
	rType, request uint8
	value, index   uint16
	data           []byte
}

func (f *fakeTransport) Control(rType, request uint8, value, index uint16, data []byte) (int, error) {
	f.controlCalls = append(f.controlCalls, fakeControlCall{rType, request, value, index, append([]byte(nil), data...)})
	if resp, ok := f.controlResp[[2]uint8{rType, request}]; ok {
		n := copy(data, resp)
		return n, nil
	}
	return len(data), nil
}

func (f *fakeTransport) BulkWrite(endpoint int, data []byte) (int, error) {
	f.bulkWrites = append(f.bulkWrites, append([]byte(nil), data...))
	return len(data), nil
}

func (f *fakeTransport) BulkRead(endpoint int, buf []byte) (int, error) {
	reads := f.bulkReads[endpoint]
	if len(reads) == 0 {
		return 0, nil
	}
	next := reads[0]
	f.bulkReads[endpoint] = reads[1:]
	n := copy(buf, next)
	return n, nil
}

func (f *fakeTransport) SerialNumber() (string, error)           { return f.serial, nil }
func (f *fakeTransport) StringDescriptor(int) (string, error)    { return "", ErrUnsupported }
func (f *fakeTransport) VendorProduct() (uint16, uint16)         { return f.vendor, f.product }
func (f *fakeTransport) Reset() error                            { f.resetCalled = true; return nil }
func (f *fakeTransport) SetConfiguration(int) error               { return nil }
func (f *fakeTransport) SetInterface(iface, alt int) error        { return nil }
func (f *fakeTransport) Close() error                             { f.closed = true; return nil }

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		controlResp: make(map[[2]uint8][]byte),
		bulkReads:   make(map[int][][]byte),
	}
}

func TestSendCommandRejectsLongCommand(t *testing.T) {
	c := &Client{transport: newFakeTransport()}
	long := make([]byte, 0x100)
	for i := range long {
		long[i] = 'a'
	}
	if err := c.SendCommand(string(long)); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for a 0x100-byte command, got %v", err)
	}

	ok := string(long[:0xFF])
	ft := newFakeTransport()
	c = &Client{transport: ft}
	if err := c.SendCommand(ok); err != nil {
		t.Fatalf("0xFF-byte command should be accepted: %v", err)
	}
}

func TestSendCommandNoDevice(t *testing.T) {
	c := &Client{}
	if err := c.SendCommand("reboot") ; err != ErrNoDevice {
		t.Fatalf("expected ErrNoDevice, got %v", err)
	}
}

func TestSendCommandFiresCallbacks(t *testing.T) {
	ft := newFakeTransport()
	var pre, post string
	c := &Client{transport: ft, callbacks: Callbacks{
		Precommand:  func(c *Client, cmd string) bool { pre = cmd; return false },
		Postcommand: func(c *Client, cmd string) bool { post = cmd; return false },
	}}
	if err := c.SendCommand("getenv foo"); err != nil {
		t.Fatal(err)
	}
	if pre != "getenv foo" || post != "getenv foo" {
		t.Fatalf("pre=%q post=%q", pre, post)
	}
	if len(ft.controlCalls) != 1 {
		t.Fatalf("expected 1 control call, got %d", len(ft.controlCalls))
	}
	call := ft.controlCalls[0]
	if string(call.data) != "getenv foo\x00" {
		t.Fatalf("command payload = %q", call.data)
	}
}

// TestSendCommandPrecommandShortCircuits checks that a Precommand hook
// returning true skips the USB transfer entirely and reports success,
// mirroring the precommand_callback short-circuit.
func TestSendCommandPrecommandShortCircuits(t *testing.T) {
	ft := newFakeTransport()
	postCalled := false
	c := &Client{transport: ft, callbacks: Callbacks{
		Precommand:  func(c *Client, cmd string) bool { return true },
		Postcommand: func(c *Client, cmd string) bool { postCalled = true; return false },
	}}
	if err := c.SendCommand("reboot"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(ft.controlCalls) != 0 {
		t.Fatalf("expected no control transfer, got %d", len(ft.controlCalls))
	}
	if postCalled {
		t.Fatal("postcommand should not fire when precommand short-circuits")
	}
}

// TestSendCommandPostcommandTrueIsTolerated checks that the transfer still
// happens but a true Postcommand result is tolerated (it is the final
// step, so there is nothing left to skip).
func TestSendCommandPostcommandTrueIsTolerated(t *testing.T) {
	ft := newFakeTransport()
	c := &Client{transport: ft, callbacks: Callbacks{
		Postcommand: func(c *Client, cmd string) bool { return true },
	}}
	if err := c.SendCommand("reboot"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(ft.controlCalls) != 1 {
		t.Fatalf("expected 1 control call, got %d", len(ft.controlCalls))
	}
}

// TestRecoveryZLP covers §8's scenario 4: an exactly-0x8000-byte upload in
// Recovery mode produces one full-size bulk write followed by a
// zero-length one.
func TestRecoveryZLP(t *testing.T) {
	ft := newFakeTransport()
	c := &Client{transport: ft, mode: ModeRecovery1}
	buf := make([]byte, 0x8000)
	if err := c.SendBuffer(buf, 0); err != nil {
		t.Fatal(err)
	}
	if len(ft.bulkWrites) != 2 {
		t.Fatalf("expected 2 bulk writes, got %d", len(ft.bulkWrites))
	}
	if len(ft.bulkWrites[0]) != 0x8000 {
		t.Fatalf("first write length = %d", len(ft.bulkWrites[0]))
	}
	if len(ft.bulkWrites[1]) != 0 {
		t.Fatalf("second write length = %d, want zero-length", len(ft.bulkWrites[1]))
	}
}

func TestRecoveryNonMultipleOf512NoZLP(t *testing.T) {
	ft := newFakeTransport()
	c := &Client{transport: ft, mode: ModeRecovery1}
	buf := make([]byte, 100)
	if err := c.SendBuffer(buf, 0); err != nil {
		t.Fatal(err)
	}
	if len(ft.bulkWrites) != 1 {
		t.Fatalf("expected 1 bulk write (no ZLP), got %d", len(ft.bulkWrites))
	}
}

// TestDFUCRCTrailer covers §8's scenario 3: a 16-byte payload 0x00..0x0F
// uploaded as a single DFU packet with CRC enabled produces a trailer
// packet of the 16 data bytes followed by the 12-byte magic and the
// 4-byte little-endian CRC.
func TestDFUCRCTrailer(t *testing.T) {
	payload := make([]byte, 16)
	for i := range payload {
		payload[i] = byte(i)
	}

	crc := crc32Update(0xFFFFFFFF, payload)
	for half := 0; half < 2; half++ {
		crc = crc32Update(crc, dfuMagicTrailer[half*6:half*6+6])
	}

	ft := newFakeTransport()
	c := &Client{transport: ft}
	chainCRC := crc32Update(0xFFFFFFFF, payload)
	out := c.appendDFUTrailer(ft, 0, payload, 16, 0x800, true, &chainCRC)
	if out == nil {
		t.Fatal("appendDFUTrailer returned nil")
	}
	if len(out) != 32 {
		t.Fatalf("trailer packet length = %d, want 32", len(out))
	}
	if !bytes.Equal(out[:16], payload) {
		t.Fatalf("data prefix mismatch: %x", out[:16])
	}
	if !bytes.Equal(out[16:28], dfuMagicTrailer[:]) {
		t.Fatalf("magic mismatch: %x", out[16:28])
	}
	gotCRC := uint32(out[28]) | uint32(out[29])<<8 | uint32(out[30])<<16 | uint32(out[31])<<24
	if gotCRC != crc {
		t.Fatalf("trailer crc = 0x%08X, want 0x%08X", gotCRC, crc)
	}
}

func TestAppendDFUTrailerSplitsWhenOverflowing(t *testing.T) {
	// packetSize 16, chunk size 16: size+16 (32) > packetSize (16), so the
	// data must go out in its own transfer first and the trailer alone
	// follows as a second, same-index transfer.
	payload := make([]byte, 16)
	ft := newFakeTransport()
	c := &Client{}
	crc := uint32(0xFFFFFFFF)
	out := c.appendDFUTrailer(ft, 2, payload, 16, 16, true, &crc)
	if out == nil {
		t.Fatal("appendDFUTrailer returned nil")
	}
	if len(out) != 16 {
		t.Fatalf("trailer-only packet length = %d, want 16 (trailer alone)", len(out))
	}
	if len(ft.controlCalls) != 2 {
		t.Fatalf("expected 2 control transfers (data, then trailer), got %d", len(ft.controlCalls))
	}
	if !bytes.Equal(ft.controlCalls[0].data, payload) {
		t.Fatalf("first transfer should carry the raw chunk: %x", ft.controlCalls[0].data)
	}
}

func TestRecvBufferRecoveryPacketSize(t *testing.T) {
	ft := newFakeTransport()
	ft.controlResp[[2]uint8{0xA1, 2}] = bytes.Repeat([]byte{0x42}, 0x2000)
	c := &Client{transport: ft, mode: ModeRecovery1}
	out, err := c.RecvBuffer(0x2000)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0x2000 {
		t.Fatalf("RecvBuffer returned %d bytes, want 0x2000", len(out))
	}
	if len(ft.controlCalls) != 1 || len(ft.controlCalls[0].data) != 0x2000 {
		t.Fatalf("expected one 0x2000-byte control read, got %d calls", len(ft.controlCalls))
	}
}

func TestGetenvHappyPath(t *testing.T) {
	ft := newFakeTransport()
	resp := make([]byte, 255)
	copy(resp, "bar")
	ft.controlResp[[2]uint8{0xC0, 0}] = resp
	c := &Client{transport: ft}

	if err := c.Setenv("foo", "bar"); err != nil {
		t.Fatal(err)
	}
	if err := c.Saveenv(); err != nil {
		t.Fatal(err)
	}
	got, err := c.Getenv("foo")
	if err != nil {
		t.Fatal(err)
	}
	if got != "bar" {
		t.Fatalf("Getenv returned %q, want %q", got, "bar")
	}
}

func TestExecuteScriptSkipsBlankAndCommentLines(t *testing.T) {
	ft := newFakeTransport()
	c := &Client{transport: ft}
	script := "setenv foo bar\n# a comment\n\n   \nsaveenv\n"
	if err := c.ExecuteScript(script); err != nil {
		t.Fatal(err)
	}
	if len(ft.controlCalls) != 2 {
		t.Fatalf("expected 2 commands sent, got %d", len(ft.controlCalls))
	}
}

func TestResetCountersNoOp(t *testing.T) {
	c := &Client{transport: newFakeTransport()}
	if err := c.ResetCounters(); err != nil {
		t.Fatalf("ResetCounters should never fail: %v", err)
	}
}
