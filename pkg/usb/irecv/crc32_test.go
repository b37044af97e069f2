package irecv

import "testing"

func TestCRC32EmptyLaw(t *testing.T) {
	if got := crc32Update(0xFFFFFFFF, nil); got != 0xFFFFFFFF {
		t.Fatalf("crc32Update(0xFFFFFFFF, nil) = 0x%08X, want 0xFFFFFFFF", got)
	}
}

func TestCRC32StepMatchesUpdate(t *testing.T) {
	data := []byte("libirecovery")
	viaUpdate := crc32Update(0xFFFFFFFF, data)

	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = crc32Step(crc, b)
	}
	if crc != viaUpdate {
		t.Fatalf("crc32Step chain = 0x%08X, crc32Update = 0x%08X", crc, viaUpdate)
	}
}

func TestCRC32Chaining(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	whole := crc32Update(0xFFFFFFFF, data)

	partial := crc32Update(0xFFFFFFFF, data[:3])
	partial = crc32Update(partial, data[3:])
	if partial != whole {
		t.Fatalf("chained crc = 0x%08X, whole crc = 0x%08X", partial, whole)
	}
}
