// Package merkle implements an append-only, fixed-height incremental
// Merkle accumulator over 32-byte digests.
//
// The accumulator commits to a complete binary tree with 2^height leaf
// slots where the lowest size slots hold appended leaves and the rest
// are implicitly the zero digest. Appending a leaf and recomputing the
// root both cost O(height) combiner calls: a per-depth "active branch"
// records the most recent finalized node still awaiting its right
// sibling, and a precomputed table supplies the digest of an empty
// subtree at every depth. The rightmost leaf slot is permanently
// reserved, so a tree of height h accepts at most 2^h - 1 leaves and
// Root stays well-defined at every fill level.
//
// The tree is a plain in-memory value with no internal locking. Append
// is the only mutator of tree contents, but Node and Proof revalidate
// the flattened node cache and therefore also write; callers needing
// concurrent access must serialize externally.
package merkle

import (
	"fmt"

	"github.com/leon0x01/IncMerkleTree/core/types"
	"github.com/leon0x01/IncMerkleTree/crypto"
)

// MaxHeight is the largest supported tree height. The flattened node
// cache is allocated eagerly to its full 2^(height+1) - 1 slots, so the
// cache dominates memory: 1 GiB of digests at the maximum.
const MaxHeight = 24

// IncrementalMerkleTree is the accumulator state. Create instances with
// New; the zero value is not usable.
type IncrementalMerkleTree struct {
	height int
	hasher crypto.NodeHasher

	// zeroSub[h] is the root digest of a perfectly empty subtree of
	// depth h. Computed once at construction, immutable thereafter.
	zeroSub []types.Hash

	// branch[h] is the most recently finalized node at depth h whose
	// right sibling subtree is still partially empty. Only entries at
	// the set bits of size are meaningful; every read is gated on the
	// same bit test, so stale entries are never observed.
	branch []types.Hash

	// size is the number of leaves appended so far, at most 2^height - 1.
	size uint64

	// cache holds the whole tree flattened by generalized index (slot
	// g-1 holds gindex g). Leaf slots are written eagerly on Append;
	// internal slots are trusted only while cacheValid is set.
	cache      []types.Hash
	cacheValid bool
}

// Option configures an IncrementalMerkleTree at construction.
type Option func(*IncrementalMerkleTree)

// WithHasher selects the node combiner. The default is
// crypto.KeccakNodeHasher. A nil hasher is ignored.
func WithHasher(h crypto.NodeHasher) Option {
	return func(t *IncrementalMerkleTree) {
		if h != nil {
			t.hasher = h
		}
	}
}

// New creates an empty accumulator of the given height. Heights outside
// [1, MaxHeight] are rejected with ErrInvalidHeight; in particular a
// zero-height tree (a single, permanently reserved leaf slot) is not
// meaningful and is refused rather than given degenerate semantics.
func New(height int, opts ...Option) (*IncrementalMerkleTree, error) {
	if height < 1 || height > MaxHeight {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidHeight, height, MaxHeight)
	}

	t := &IncrementalMerkleTree{
		height: height,
		hasher: crypto.KeccakNodeHasher,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.zeroSub = make([]types.Hash, height)
	for h := 1; h < height; h++ {
		t.zeroSub[h] = t.hasher(t.zeroSub[h-1], t.zeroSub[h-1])
	}
	t.branch = make([]types.Hash, height)
	t.cache = make([]types.Hash, uint64(1)<<uint(height+1)-1)

	return t, nil
}

// Height returns the fixed tree height.
func (t *IncrementalMerkleTree) Height() int {
	return t.height
}

// Size returns the number of leaves appended so far.
func (t *IncrementalMerkleTree) Size() uint64 {
	return t.size
}

// Capacity returns the number of leaves the tree accepts: 2^height - 1,
// keeping the rightmost slot reserved.
func (t *IncrementalMerkleTree) Capacity() uint64 {
	return uint64(1)<<uint(t.height) - 1
}

// ZeroSubtree returns the precomputed digest of an empty subtree of the
// given depth, for depths in [0, height).
func (t *IncrementalMerkleTree) ZeroSubtree(depth int) (types.Hash, error) {
	if depth < 0 || depth >= t.height {
		return types.Hash{}, ErrIndexOutOfBounds
	}
	return t.zeroSub[depth], nil
}

// Root returns the current root digest without mutating the tree. An
// empty tree has the zero digest as its root. Cost is one combiner call
// per level.
func (t *IncrementalMerkleTree) Root() types.Hash {
	if t.size == 0 {
		return types.Hash{}
	}

	var acc types.Hash
	for h := 0; h < t.height; h++ {
		if t.size&(uint64(1)<<uint(h)) != 0 {
			// The finalized left sibling at this depth absorbs
			// everything accumulated on its right.
			acc = t.hasher(t.branch[h], acc)
		} else {
			// Nothing finalized at this depth yet; pair with a
			// known-empty right subtree.
			acc = t.hasher(acc, t.zeroSub[h])
		}
	}
	return acc
}

// Append adds a leaf digest to the tree. It fails with ErrTreeFull when
// the capacity of 2^height - 1 leaves is exhausted; on any failure the
// tree is left exactly as before the call.
func (t *IncrementalMerkleTree) Append(leaf types.Hash) error {
	newSize := t.size + 1
	if newSize > t.Capacity() {
		return ErrTreeFull
	}

	// Propagate the carry upward until it settles at the first set bit
	// of the post-increment size: below that depth both siblings are
	// complete, at it the carry becomes the new rightmost finalized
	// node.
	carry := leaf
	for h := 0; h < t.height; h++ {
		if newSize&(uint64(1)<<uint(h)) != 0 {
			t.branch[h] = carry
			t.size = newSize
			t.cache[LeafGIndex(t.height, newSize-1)-1] = leaf
			t.cacheValid = false
			return nil
		}
		carry = t.hasher(t.branch[h], carry)
	}

	// Unreachable: the capacity check guarantees a zero bit of size
	// below t.height, hence a set bit of newSize at or below it.
	return ErrLoopDidNotTerminate
}

// BatchAppend appends the leaves in order and returns the index assigned
// to the first of them. The capacity check is performed up front: a
// batch that does not fit fails whole with ErrTreeFull and no mutation.
func (t *IncrementalMerkleTree) BatchAppend(leaves []types.Hash) (uint64, error) {
	if t.size+uint64(len(leaves)) > t.Capacity() {
		return 0, ErrTreeFull
	}

	start := t.size
	for _, leaf := range leaves {
		if err := t.Append(leaf); err != nil {
			return 0, err
		}
	}
	return start, nil
}
