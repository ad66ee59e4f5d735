// hasher.go defines the node-pairing hash abstraction used by the Merkle
// accumulator. The accumulator treats the combiner as an opaque
// hash(64 bytes) -> 32 bytes primitive; this file supplies the two
// combiners the project ships with.
package crypto

import (
	"crypto/sha256"

	"github.com/leon0x01/IncMerkleTree/core/types"
)

// NodeHasher combines two 32-byte child digests into a parent digest.
// Implementations must be pure and deterministic.
type NodeHasher func(left, right types.Hash) types.Hash

// KeccakNodeHasher combines two nodes with Keccak-256, the default
// combiner and the one used by deposit-contract style trees.
func KeccakNodeHasher(left, right types.Hash) types.Hash {
	return Keccak256Hash(left[:], right[:])
}

// SHA256NodeHasher combines two nodes with SHA-256, as used by SSZ
// merkleization.
func SHA256NodeHasher(left, right types.Hash) types.Hash {
	var combined [64]byte
	copy(combined[:32], left[:])
	copy(combined[32:], right[:])
	return sha256.Sum256(combined[:])
}
