// cache.go maintains the flattened node cache backing indexed lookups
// and proof extraction. Leaf slots are kept in sync eagerly by Append;
// internal slots are recomputed bottom-up on demand.
package merkle

import "github.com/leon0x01/IncMerkleTree/core/types"

// maxGIndex returns the largest valid generalized index:
// 2^(height+1) - 1, the rightmost leaf.
func (t *IncrementalMerkleTree) maxGIndex() uint64 {
	return uint64(1)<<uint(t.height+1) - 1
}

// revalidate recomputes every internal slot of the flattened cache from
// the leaf slots. Unoccupied leaf slots hold the zero digest, which is
// exactly an empty subtree of depth 0, so the recomputed internal nodes
// over empty regions reproduce the zero-subtree table and the cached
// root matches Root for any non-empty tree.
func (t *IncrementalMerkleTree) revalidate() {
	if t.cacheValid {
		return
	}
	firstLeaf := uint64(1) << uint(t.height)
	for g := firstLeaf - 1; g >= RootGIndex; g-- {
		t.cache[g-1] = t.hasher(t.cache[LeftChildGIndex(g)-1], t.cache[RightChildGIndex(g)-1])
	}
	t.cacheValid = true
}

// Leaf returns the leaf digest appended at the given index. Indexes at
// or beyond Size fail with ErrIndexOutOfBounds. Leaf slots are always
// current, so no revalidation happens.
func (t *IncrementalMerkleTree) Leaf(index uint64) (types.Hash, error) {
	if index >= t.size {
		return types.Hash{}, ErrIndexOutOfBounds
	}
	return t.cache[LeafGIndex(t.height, index)-1], nil
}

// Node returns the digest of the node at the given generalized index,
// revalidating the cache first if any leaf changed since the last
// revalidation.
func (t *IncrementalMerkleTree) Node(gindex uint64) (types.Hash, error) {
	if gindex < RootGIndex || gindex > t.maxGIndex() {
		return types.Hash{}, ErrIndexOutOfBounds
	}
	t.revalidate()
	return t.cache[gindex-1], nil
}
