package irecv

import (
	"bytes"
	"testing"
)

func TestParseIBootString(t *testing.T) {
	s := "CPID:8010 CPRV:11 CPFM:03 SCEP:01 BDID:0E ECID:001122334455AABB IBFL:1C " +
		"SRNM:[ABCDE12345] IMEI:[012345678901234] SRTG:[iBoot-3401.0.0.1.16] " +
		"NONC: 0102AABB SNON: DEADBEEF"

	info := ParseIBootString(s)

	checkU32 := func(name string, got *uint32, want uint32) {
		t.Helper()
		if got == nil {
			t.Fatalf("%s: missing", name)
		}
		if *got != want {
			t.Fatalf("%s = 0x%X, want 0x%X", name, *got, want)
		}
	}

	checkU32("CPID", info.CPID, 0x8010)
	checkU32("CPRV", info.CPRV, 0x11)
	checkU32("CPFM", info.CPFM, 0x03)
	checkU32("SCEP", info.SCEP, 0x01)
	checkU32("BDID", info.BDID, 0x0E)
	checkU32("IBFL", info.IBFL, 0x1C)

	if info.ECID != 0x001122334455AABB {
		t.Fatalf("ECID = 0x%X", info.ECID)
	}
	if info.SRNM != "ABCDE12345" {
		t.Fatalf("SRNM = %q", info.SRNM)
	}
	if info.IMEI != "012345678901234" {
		t.Fatalf("IMEI = %q", info.IMEI)
	}
	if info.SRTG != "iBoot-3401.0.0.1.16" {
		t.Fatalf("SRTG = %q", info.SRTG)
	}
	if !bytes.Equal(info.APNonce, []byte{0x01, 0x02, 0xAA, 0xBB}) {
		t.Fatalf("APNonce = %x", info.APNonce)
	}
	if !bytes.Equal(info.SEPNonce, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("SEPNonce = %x", info.SEPNonce)
	}
}

func TestParseIBootStringAbsentFieldsEmpty(t *testing.T) {
	info := ParseIBootString("SRNM:[ONLYTHIS]")
	if info.CPID != nil {
		t.Fatal("CPID should be absent")
	}
	if info.ECID != 0 {
		t.Fatal("ECID should be zero when absent")
	}
	if info.APNonce != nil {
		t.Fatal("APNonce should be absent")
	}
	if info.SRNM != "ONLYTHIS" {
		t.Fatalf("SRNM = %q", info.SRNM)
	}
}

func TestExtractNonceRequiresPrecedingSpace(t *testing.T) {
	// "XNONC:AABB" must not match tag "NONC" even though "NONC:" appears
	// as a substring, since it isn't preceded by a space or string start.
	if got := extractNonce("XNONC:AABB", "NONC"); got != nil {
		t.Fatalf("extractNonce should reject a tag glued to a preceding letter, got %x", got)
	}
	if got := extractNonce("NONC:AABB", "NONC"); !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Fatalf("extractNonce at string start = %x", got)
	}
}

func TestEncodeNonceRoundTrip(t *testing.T) {
	nonce := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}
	encoded := EncodeNonce(nonce)
	decoded := extractNonce("NONC:"+encoded, "NONC")
	if !bytes.Equal(decoded, nonce) {
		t.Fatalf("round trip %x -> %q -> %x", nonce, encoded, decoded)
	}
}

func TestParseKISInfo(t *testing.T) {
	raw := make([]byte, 0x100+32)

	writeField := func(off int, s string) int {
		units := []uint16{}
		for _, r := range s {
			units = append(units, uint16(r))
		}
		raw[off] = byte(len(units))
		raw[off+1] = byte(len(units) >> 8)
		off += 2
		for _, u := range units {
			raw[off] = byte(u)
			raw[off+1] = byte(u >> 8)
			off += 2
		}
		return off
	}

	off := writeField(0, "Apple Inc.")
	off = writeField(off, "iPhone")
	serial := "SRNM:[KISDEVICE] NONC: 0102"
	_ = writeField(off, serial)
	copy(raw[0x100:], []byte("NONC: 0102 SNON: A0A1"))

	info, err := ParseKISInfo(raw)
	if err != nil {
		t.Fatalf("ParseKISInfo: %v", err)
	}
	if info.SRNM != "KISDEVICE" {
		t.Fatalf("SRNM = %q", info.SRNM)
	}
	if !bytes.Equal(info.APNonce, []byte{0x01, 0x02}) {
		t.Fatalf("APNonce = %x", info.APNonce)
	}
	if !bytes.Equal(info.SEPNonce, []byte{0xA0, 0xA1}) {
		t.Fatalf("SEPNonce = %x", info.SEPNonce)
	}
}
