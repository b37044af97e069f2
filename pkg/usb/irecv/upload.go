package irecv

import (
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Upload option flags, stable numeric values for callers that persist them.
const (
	DFUNotifyFinish = 1
	DFUForceZLP     = 2
	DFUSmallPkt     = 4
)

const usbTimeout = 10 * time.Second

// SendCommand sends cmd with bRequest 0, the common case for every
// iBoot text command.
func (c *Client) SendCommand(cmd string) error {
	return c.SendCommandBreq(cmd, 0)
}

// SendCommandBreq sends cmd as a NUL-terminated string via a vendor
// control-OUT transfer, using breq as the control request number. A
// command of length ≥ 0x100 is rejected outright rather than truncated,
// since the on-device command buffer is exactly 0x100 bytes including
// the terminator.
func (c *Client) SendCommandBreq(cmd string, breq uint8) error {
	if len(cmd) >= 0x100 {
		return ErrInvalidInput
	}

	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}

	if c.callbacks.firePrecommand(c, cmd) {
		return nil
	}

	payload := append([]byte(cmd), 0)
	const controlOut = 0x40
	n, err := t.Control(controlOut, breq, 0, 0, payload)
	if err != nil {
		if isPipeStall(err) {
			log.WithField("cmd", cmd).Debug("irecv: pipe stall sending command, treating as success")
		} else {
			return err
		}
	} else if n != len(payload) {
		return wrapError(CodeUSBUpload, nil, "send command %q: wrote %d bytes, want %d", cmd, n, len(payload))
	}

	c.callbacks.firePostcommand(c, cmd)
	return nil
}

func isPipeStall(err error) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Code == CodePipe
}

// SendBuffer uploads buf according to options, choosing the Recovery
// bulk flow or the DFU control+CRC flow based on the client's mode.
func (c *Client) SendBuffer(buf []byte, options int) error {
	c.mu.Lock()
	t := c.transport
	mode := c.mode
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}

	if mode.RecoveryMode() {
		return c.sendBufferRecovery(t, buf)
	}
	if mode == ModeKIS {
		return c.kisUpload(t, buf, options)
	}
	return c.sendBufferDFU(t, buf, options)
}

func (c *Client) sendBufferRecovery(t Transport, buf []byte) error {
	const (
		controlInitiate = 0x41
		bulkEndpoint    = 0x04
		chunkSize       = 0x8000
	)
	if _, err := t.Control(controlInitiate, 0, 0, 0, nil); err != nil {
		return err
	}

	var sent int
	for sent < len(buf) {
		end := sent + chunkSize
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[sent:end]
		n, err := t.BulkWrite(bulkEndpoint, chunk)
		if err != nil {
			return err
		}
		if n != len(chunk) {
			return wrapError(CodeUSBUpload, nil, "recovery upload: wrote %d bytes, want %d", n, len(chunk))
		}
		sent += len(chunk)
		c.reportProgress(sent, len(buf))
	}

	if len(buf) == 0 || len(buf)%512 == 0 {
		if _, err := t.BulkWrite(bulkEndpoint, nil); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) sendBufferDFU(t Transport, buf []byte, options int) error {
	const (
		controlGetState = 0xA1
		controlClass    = 0x21
	)

	var state [1]byte
	n, err := t.Control(controlGetState, 5, 0, 0, state[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return ErrUSBUpload
	}
	switch state[0] {
	case 2: // DFU_STATE_IDLE
	case 10: // DFU_STATE_ERROR
		t.Control(controlClass, 4, 0, 0, nil) // CLRSTATUS
		return ErrUSBUpload
	default:
		t.Control(controlClass, 6, 0, 0, nil) // ABORT
		return ErrUSBUpload
	}

	packetSize := 0x800
	if options&DFUSmallPkt != 0 {
		packetSize = 0x40
	}
	withCRC := options&DFUSmallPkt == 0

	packets := len(buf) / packetSize
	last := len(buf) % packetSize
	if last != 0 {
		packets++
	} else {
		last = packetSize
	}

	crc := uint32(0xFFFFFFFF)
	var sent int
	for i := 0; i < packets; i++ {
		size := packetSize
		if i+1 == packets {
			size = last
		}
		chunk := buf[sent : sent+size]

		var out []byte
		if withCRC {
			crc = crc32Update(crc, chunk)
		}

		if i+1 == packets {
			out = c.appendDFUTrailer(t, i, chunk, size, packetSize, withCRC, &crc)
			if out == nil {
				return ErrUSBUpload
			}
		} else {
			out = chunk
			transferred, err := t.Control(controlClass, 1, uint16(i), 0, out)
			if err != nil {
				return err
			}
			if transferred != len(out) {
				return ErrUSBUpload
			}
			sent += size
			c.reportProgress(sent, len(buf))
			if err := c.waitDFUReady(t); err != nil {
				return err
			}
			continue
		}

		sent += size
		c.reportProgress(sent, len(buf))
		if err := c.waitDFUReady(t); err != nil {
			return err
		}
	}

	if options&DFUNotifyFinish != 0 {
		if _, err := t.Control(controlClass, 1, uint16(packets), 0, nil); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			if _, err := c.getStatus(t); err != nil {
				return err
			}
		}
		if options&DFUForceZLP != 0 {
			if _, err := t.Control(controlClass, 1, 0, 0, nil); err != nil {
				return err
			}
		}
		return t.Reset()
	}
	return nil
}

// appendDFUTrailer sends the last data chunk followed by the 16-byte DFU
// trailer (or, if size+16 overflows packetSize, the chunk by itself first
// and the trailer alone in a second transfer at the same index), per
// §4.6.2 step 3. It returns the bytes actually transferred in the final
// trailer-bearing packet, or nil on a transfer-size mismatch.
func (c *Client) appendDFUTrailer(t Transport, index int, chunk []byte, size, packetSize int, withCRC bool, crc *uint32) []byte {
	const controlClass = 0x21
	if !withCRC {
		n, err := t.Control(controlClass, 1, uint16(index), 0, chunk)
		if err != nil || n != len(chunk) {
			return nil
		}
		return chunk
	}

	if size+16 > packetSize {
		n, err := t.Control(controlClass, 1, uint16(index), 0, chunk)
		if err != nil || n != len(chunk) {
			return nil
		}
		size = 0
		chunk = nil
	}

	for half := 0; half < 2; half++ {
		*crc = crc32Update(*crc, dfuMagicTrailer[half*6:half*6+6])
	}

	out := make([]byte, size+16)
	copy(out, chunk)
	copy(out[size:], dfuMagicTrailer[:])
	out[size+12] = byte(*crc)
	out[size+13] = byte(*crc >> 8)
	out[size+14] = byte(*crc >> 16)
	out[size+15] = byte(*crc >> 24)

	n, err := t.Control(controlClass, 1, uint16(index), 0, out)
	if err != nil || n != len(out) {
		return nil
	}
	return out
}

// waitDFUReady polls get_status until it reports 5 (dfuDNLOAD-IDLE/ready),
// retrying up to 20 times with a 1-second sleep between polls.
func (c *Client) waitDFUReady(t Transport) error {
	status, err := c.getStatus(t)
	if err != nil {
		return err
	}
	if status == 5 {
		return nil
	}
	for retry := 0; retry < 20; retry++ {
		time.Sleep(time.Second)
		status, err = c.getStatus(t)
		if err != nil {
			return err
		}
		if status == 5 {
			return nil
		}
	}
	return ErrUSBUpload
}

func (c *Client) getStatus(t Transport) (byte, error) {
	var buf [6]byte
	n, err := t.Control(0xA1, 3, 0, 0, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 6 {
		return 0, ErrUSBStatus
	}
	return buf[4], nil
}

func (c *Client) reportProgress(sent, total int) {
	if total == 0 {
		c.callbacks.fireProgress(c, 100)
		return
	}
	percent := sent * 100 / total
	c.callbacks.fireProgress(c, percent)
}

// SendFile reads path and uploads its contents via SendBuffer.
func (c *Client) SendFile(path string, options int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return wrapError(CodeFileNotFound, err, "read %s", path)
	}
	return c.SendBuffer(data, options)
}

// RecvBuffer reads length bytes from the device via a packetised control
// transfer, packet size 0x2000 in Recovery mode and 0x800 otherwise.
func (c *Client) RecvBuffer(length int) ([]byte, error) {
	c.mu.Lock()
	t := c.transport
	mode := c.mode
	c.mu.Unlock()
	if t == nil {
		return nil, ErrNoDevice
	}

	packetSize := 0x800
	if mode.RecoveryMode() {
		packetSize = 0x2000
	}

	out := make([]byte, 0, length)
	for len(out) < length {
		size := packetSize
		if length-len(out) < size {
			size = length - len(out)
		}
		buf := make([]byte, size)
		n, err := t.Control(0xA1, 2, 0, 0, buf)
		if err != nil {
			return nil, err
		}
		out = append(out, buf[:n]...)
		if n < size {
			break
		}
	}
	return out, nil
}

// Receive repeatedly bulk-reads from endpoint 0x81 (switching to
// interface 1/1 around each read and back to 0/0 after), dispatching
// each non-empty chunk to the received callback, until a zero-byte read,
// a transport error, or the callback returns an error.
func (c *Client) Receive() error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}

	const readEndpoint = 0x81
	buf := make([]byte, 0x10000)
	for {
		if err := t.SetInterface(1, 1); err != nil {
			return err
		}
		n, err := t.BulkRead(readEndpoint, buf)
		t.SetInterface(0, 0)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := c.callbacks.fireReceived(c, buf[:n]); err != nil {
			return nil
		}
	}
}

// Getenv runs "getenv VAR" and returns the device's response string. A
// pipe stall reading the response is treated as an empty success.
func (c *Client) Getenv(name string) (string, error) {
	if err := c.SendCommand("getenv " + name); err != nil {
		return "", err
	}
	return c.readEnvResponse()
}

// Setenv runs "setenv VAR VAL".
func (c *Client) Setenv(name, value string) error {
	return c.SendCommand("setenv " + name + " " + value)
}

// SetenvNP runs "setenvnp VAR VAL" (the non-persistent variant).
func (c *Client) SetenvNP(name, value string) error {
	return c.SendCommand("setenvnp " + name + " " + value)
}

// Saveenv runs "saveenv".
func (c *Client) Saveenv() error {
	return c.SendCommand("saveenv")
}

// Reboot runs "reboot". The device is expected to disconnect, so a pipe
// stall sending the command is not surfaced as an error (handled inside
// SendCommandBreq).
func (c *Client) Reboot() error {
	return c.SendCommand("reboot")
}

// Getret reads the (up to 255-byte) response buffer used by iBoot commands that
// report a numeric result and returns its first byte widened from a
// signed interpretation, matching irecv_getret's signed-char cast.
func (c *Client) Getret() (int32, error) {
	resp, err := c.readEnvResponseRaw()
	if err != nil {
		return 0, err
	}
	if len(resp) == 0 {
		return 0, nil
	}
	return int32(int8(resp[0])), nil
}

func (c *Client) readEnvResponse() (string, error) {
	resp, err := c.readEnvResponseRaw()
	if err != nil {
		return "", err
	}
	end := len(resp)
	for i, b := range resp {
		if b == 0 {
			end = i
			break
		}
	}
	return string(resp[:end]), nil
}

func (c *Client) readEnvResponseRaw() ([]byte, error) {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return nil, ErrNoDevice
	}
	buf := make([]byte, 255)
	n, err := t.Control(0xC0, 0, 0, 0, buf)
	if err != nil {
		if isPipeStall(err) {
			return nil, nil
		}
		return nil, err
	}
	return buf[:n], nil
}

// TriggerLimera1nExploit issues the control transfer that puts the
// endpoint in the half-transferred state the limera1n bootrom exploit
// depends on. This package does not interpret or verify the exploit's
// effect; it only performs the documented transfer.
func (c *Client) TriggerLimera1nExploit() error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}
	_, err := t.Control(0x21, 2, 0, 0, nil)
	return err
}

// ExecuteScript sends each non-empty, non-comment line of script as a
// command, in order, pausing briefly after a literal "reboot" line since
// the device is expected to disconnect. It stops and returns the first
// error encountered.
func (c *Client) ExecuteScript(script string) error {
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		if err := c.SendCommand(line); err != nil {
			return err
		}
		if line == "reboot" {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil
}

// ResetCounters resets the upload engine's internal transfer counters.
// This implementation keeps no counters across SendBuffer calls, so it
// is a documented no-op, matching irecv_reset_counters's own dummy-build
// behavior of reporting success without device I/O.
func (c *Client) ResetCounters() error {
	return nil
}

// FinishTransfer issues the DFU finish-notify sequence outside of
// SendBuffer, for callers that manage chunking themselves.
func (c *Client) FinishTransfer() error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return ErrNoDevice
	}
	if _, err := t.Control(0x21, 1, 0, 0, nil); err != nil {
		return err
	}
	_, err := c.getStatus(t)
	return err
}
