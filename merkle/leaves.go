// leaves.go provides helpers for turning caller data into leaf digests.
// What to commit is the caller's business; these cover the common cases
// of raw bytes and numeric values.
package merkle

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/leon0x01/IncMerkleTree/core/types"
	"github.com/leon0x01/IncMerkleTree/crypto"
)

// LeafFromBytes hashes arbitrary data into a leaf digest with Keccak-256.
func LeafFromBytes(data []byte) types.Hash {
	return crypto.Keccak256Hash(data)
}

// LeafFromUint64 encodes v as a little-endian 32-byte leaf, the
// deposit-tree packing for amounts and indexes.
func LeafFromUint64(v uint64) types.Hash {
	var h types.Hash
	binary.LittleEndian.PutUint64(h[:8], v)
	return h
}

// LeafFromUint256 encodes v as a little-endian 32-byte leaf. A nil
// value encodes as zero. Values that fit in 64 bits encode identically
// to LeafFromUint64.
func LeafFromUint256(v *uint256.Int) types.Hash {
	var h types.Hash
	if v == nil {
		return h
	}
	be := v.Bytes32()
	for i := 0; i < types.HashLength; i++ {
		h[i] = be[types.HashLength-1-i]
	}
	return h
}
