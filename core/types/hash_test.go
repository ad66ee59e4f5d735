package types

import (
	"bytes"
	"testing"
)

func TestHash_BytesToHashPadding(t *testing.T) {
	h := BytesToHash([]byte{0x01, 0x02})
	if h[31] != 0x02 || h[30] != 0x01 {
		t.Fatalf("expected right-aligned bytes, got %s", h.Hex())
	}
	for i := 0; i < 30; i++ {
		if h[i] != 0 {
			t.Fatalf("expected zero padding at byte %d", i)
		}
	}
}

func TestHash_BytesToHashTruncation(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	h := BytesToHash(long)
	if !bytes.Equal(h.Bytes(), long[8:]) {
		t.Fatal("expected the last 32 bytes to be kept")
	}
}

func TestHash_HexRoundTrip(t *testing.T) {
	h := HexToHash("0xdeadbeef")
	if h.Hex() != "0x00000000000000000000000000000000000000000000000000000000deadbeef" {
		t.Fatalf("unexpected hex: %s", h.Hex())
	}
	if HexToHash(h.Hex()) != h {
		t.Fatal("hex round trip should be stable")
	}
}

func TestHash_ParseHash(t *testing.T) {
	h, err := ParseHash("0xabc")
	if err != nil {
		t.Fatalf("ParseHash failed: %v", err)
	}
	if h != HexToHash("0x0abc") {
		t.Fatalf("odd-length input should be zero-extended, got %s", h.Hex())
	}

	if _, err := ParseHash("0xzz"); err == nil {
		t.Fatal("expected error for invalid hex")
	}

	long := "0x" + string(bytes.Repeat([]byte("ab"), 33))
	if _, err := ParseHash(long); err == nil {
		t.Fatal("expected error for over-long input")
	}
}

func TestHash_IsZero(t *testing.T) {
	var h Hash
	if !h.IsZero() {
		t.Fatal("zero value should be zero")
	}
	h[0] = 1
	if h.IsZero() {
		t.Fatal("non-zero value reported zero")
	}
}
