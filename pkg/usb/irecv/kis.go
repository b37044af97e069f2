package irecv

import "encoding/binary"

// KIS portals route a request to a specific bulk endpoint pair.
const (
	portalConfig = 1
	portalRSM    = 16
)

func portalEndpoint(portal uint8) (out, in int) {
	switch portal {
	case portalConfig:
		return 1, 1 | 0x80
	case portalRSM:
		return 3, 3 | 0x80
	default:
		return 0, 0
	}
}

// kisHeaderSize is the exact packed size of a KIS request header, per
// §4.4's layout.
const kisHeaderSize = 16

// kisSequence is a process-wide monotonically increasing request id.
// libirecovery keeps this per-client; a package-level counter is simpler
// in Go and the protocol does not require sequence numbers to be
// globally distinct, only distinct enough to pair a request with its
// reply within one session.
var kisSequence uint16

func nextKISSequence() uint16 {
	kisSequence++
	return kisSequence
}

// buildKISHeader packs the 16-byte KIS request header described in §4.4:
//
//	u16 sequence | u8 version=0xA0 | u8 portal | u8 argCount |
//	u8 indexLo | u8 (indexHi:2 | replySizeLo:6) | u8 replySizeHi |
//	u32 reqSize (little-endian)
//
// These fields fill bytes 0-11; bytes 12-15 are left zero.
func buildKISHeader(portal uint8, index uint16, argCount uint8, replyWords uint16, reqSize uint32) ([kisHeaderSize]byte, error) {
	var hdr [kisHeaderSize]byte
	if argCount > 255 {
		return hdr, ErrInvalidInput
	}
	if index >= 1<<10 {
		return hdr, ErrInvalidInput
	}
	if replyWords >= 1<<14 {
		return hdr, ErrInvalidInput
	}
	if uint64(reqSize)+4*uint64(argCount) > 1<<32 {
		return hdr, ErrInvalidInput
	}

	seq := nextKISSequence()
	binary.LittleEndian.PutUint16(hdr[0:2], seq)
	hdr[2] = 0xA0
	hdr[3] = portal
	hdr[4] = argCount
	hdr[5] = byte(index)
	indexHi := byte((index >> 8) & 0x3)
	replySizeLo := byte(replyWords & 0x3F)
	hdr[6] = indexHi | (replySizeLo << 2)
	hdr[7] = byte(replyWords >> 6)
	binary.LittleEndian.PutUint32(hdr[8:12], reqSize)
	return hdr, nil
}

// kisRequest issues one KIS request/reply exchange: it writes the packed
// header, any u32 arguments, and the payload to the portal's OUT
// endpoint, then reads replyWords*4 bytes from the paired IN endpoint.
func kisRequest(t Transport, portal uint8, index uint16, args []uint32, payload []byte, replyWords uint16) ([]byte, error) {
	out, in := portalEndpoint(portal)
	if out == 0 {
		return nil, newError(CodeInvalidInput, "unknown kis portal %d", portal)
	}

	reqSize := uint32(len(payload))
	hdr, err := buildKISHeader(portal, index, uint8(len(args)), replyWords, reqSize)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, kisHeaderSize+4*len(args)+len(payload))
	buf = append(buf, hdr[:]...)
	for _, a := range args {
		var w [4]byte
		binary.LittleEndian.PutUint32(w[:], a)
		buf = append(buf, w[:]...)
	}
	buf = append(buf, payload...)

	if _, err := t.BulkWrite(out, buf); err != nil {
		return nil, err
	}

	if replyWords == 0 {
		return nil, nil
	}
	reply := make([]byte, int(replyWords)*4)
	n, err := t.BulkRead(in, reply)
	if err != nil {
		return nil, err
	}
	return reply[:n], nil
}

// kisInit performs the two configuration writes required before any
// other KIS exchange (§4.4's Initialization step).
func kisInit(t Transport) error {
	if _, err := kisRequest(t, portalConfig, 0x0A, []uint32{0x21}, nil, 0); err != nil {
		return err
	}
	if _, err := kisRequest(t, portalConfig, 0x14, []uint32{0x01}, nil, 0); err != nil {
		return err
	}
	return nil
}

// kisLoadDeviceInfo issues the zero-argument info-retrieval request on
// (RSM, 0x100) and parses the reply into a DeviceInfo.
func kisLoadDeviceInfo(t Transport) (*DeviceInfo, error) {
	const infoReplyWords = 128 // 512 bytes: room for the descriptor strings plus the nonce area ParseKISInfo reads at 0x100
	reply, err := kisRequest(t, portalRSM, 0x100, nil, nil, infoReplyWords)
	if err != nil {
		return nil, err
	}
	return ParseKISInfo(reply)
}

// kisUploadChunkSize is the fixed chunk size for KIS uploads (§4.4).
const kisUploadChunkSize = 0x4000

// kisUpload iterates buf in kisUploadChunkSize chunks, each an (RSM,
// 0x0D) request carrying address and size as arguments and the chunk
// bytes as payload, then, if options requests it, notifies the boot
// loader of completion by writing the total length to (RSM, 0x103),
// gated on DFUNotifyFinish the same way sendBufferDFU gates its own
// finish notification.
func (c *Client) kisUpload(t Transport, buf []byte, options int) error {
	var sent int
	for sent < len(buf) {
		end := sent + kisUploadChunkSize
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[sent:end]
		args := []uint32{uint32(sent), uint32(len(chunk))}
		if _, err := kisRequest(t, portalRSM, 0x0D, args, chunk, 0); err != nil {
			return err
		}
		sent += len(chunk)
		c.reportProgress(sent, len(buf))
	}

	if options&DFUNotifyFinish != 0 {
		if _, err := kisRequest(t, portalRSM, 0x103, []uint32{uint32(len(buf))}, nil, 0); err != nil {
			return err
		}
	}
	return nil
}
