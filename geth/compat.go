// Package geth provides an adapter layer between this project's digest
// type and go-ethereum. This is the only package that imports
// go-ethereum directly; everything else uses core/types.
package geth

import (
	gethcommon "github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/leon0x01/IncMerkleTree/core/types"
)

// ToGethHash converts a types.Hash to a go-ethereum Hash. The layouts
// are identical, so this is a zero-copy cast.
func ToGethHash(h types.Hash) gethcommon.Hash {
	return gethcommon.Hash(h)
}

// FromGethHash converts a go-ethereum Hash to a types.Hash.
func FromGethHash(h gethcommon.Hash) types.Hash {
	return types.Hash(h)
}

// ToGethHashes converts a slice of digests.
func ToGethHashes(hs []types.Hash) []gethcommon.Hash {
	if hs == nil {
		return nil
	}
	out := make([]gethcommon.Hash, len(hs))
	for i, h := range hs {
		out[i] = ToGethHash(h)
	}
	return out
}

// FromGethHashes converts a slice of go-ethereum hashes.
func FromGethHashes(hs []gethcommon.Hash) []types.Hash {
	if hs == nil {
		return nil
	}
	out := make([]types.Hash, len(hs))
	for i, h := range hs {
		out[i] = FromGethHash(h)
	}
	return out
}

// KeccakNodeHasher combines two child digests with go-ethereum's own
// Keccak-256. It must agree with crypto.KeccakNodeHasher; having an
// independently implemented combiner lets accumulator roots be
// cross-checked against a second keccak implementation.
func KeccakNodeHasher(left, right types.Hash) types.Hash {
	return types.Hash(gethcrypto.Keccak256Hash(left[:], right[:]))
}
