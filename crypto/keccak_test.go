package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/leon0x01/IncMerkleTree/core/types"
)

func TestKeccak256EmptyString(t *testing.T) {
	hash := Keccak256([]byte{})
	got := hex.EncodeToString(hash)
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got != want {
		t.Errorf("Keccak256(empty) = %s, want %s", got, want)
	}
}

func TestKeccak256Hello(t *testing.T) {
	hash := Keccak256([]byte("hello"))
	got := hex.EncodeToString(hash)
	want := "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"
	if got != want {
		t.Errorf("Keccak256(hello) = %s, want %s", got, want)
	}
}

func TestKeccak256MultipleInputs(t *testing.T) {
	// Keccak256("hello", "world") should equal Keccak256("helloworld")
	combined := Keccak256([]byte("helloworld"))
	separate := Keccak256([]byte("hello"), []byte("world"))
	if hex.EncodeToString(combined) != hex.EncodeToString(separate) {
		t.Errorf("Keccak256 multi-input mismatch: %x != %x", combined, separate)
	}
}

func TestKeccak256HashReturnsCorrectType(t *testing.T) {
	h := Keccak256Hash([]byte{})
	want := types.HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if h != want {
		t.Errorf("Keccak256Hash(empty) = %s, want %s", h, want)
	}
}

func TestKeccakNodeHasherMatchesConcatenation(t *testing.T) {
	left := Keccak256Hash([]byte("left"))
	right := Keccak256Hash([]byte("right"))

	got := KeccakNodeHasher(left, right)
	want := Keccak256Hash(left[:], right[:])
	if got != want {
		t.Errorf("KeccakNodeHasher = %s, want %s", got, want)
	}
}

func TestSHA256NodeHasherZeroChildren(t *testing.T) {
	// SHA-256 of 64 zero bytes, the level-1 zero hash of SSZ merkleization.
	got := SHA256NodeHasher(types.Hash{}, types.Hash{})
	want := types.HexToHash("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	if got != want {
		t.Errorf("SHA256NodeHasher(0, 0) = %s, want %s", got, want)
	}
}

func TestNodeHashersOrderSensitive(t *testing.T) {
	a := Keccak256Hash([]byte("a"))
	b := Keccak256Hash([]byte("b"))

	for name, h := range map[string]NodeHasher{
		"keccak": KeccakNodeHasher,
		"sha256": SHA256NodeHasher,
	} {
		if h(a, b) == h(b, a) {
			t.Errorf("%s: swapping children should change the digest", name)
		}
	}
}
