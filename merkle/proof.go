package merkle

import (
	"github.com/leon0x01/IncMerkleTree/core/types"
	"github.com/leon0x01/IncMerkleTree/crypto"
)

// Proof is a Merkle inclusion proof for one leaf: the sibling digest at
// every level, ordered leaf upward.
type Proof struct {
	Index    uint64
	Leaf     types.Hash
	Siblings []types.Hash
}

// Proof generates an inclusion proof for the leaf at the given index.
// Indexes at or beyond Size fail with ErrIndexOutOfBounds. The node
// cache is revalidated first, so the proof verifies against the current
// Root.
func (t *IncrementalMerkleTree) Proof(index uint64) (*Proof, error) {
	if index >= t.size {
		return nil, ErrIndexOutOfBounds
	}
	t.revalidate()

	p := &Proof{
		Index:    index,
		Leaf:     t.cache[LeafGIndex(t.height, index)-1],
		Siblings: make([]types.Hash, t.height),
	}
	g := LeafGIndex(t.height, index)
	for h := 0; h < t.height; h++ {
		p.Siblings[h] = t.cache[SiblingGIndex(g)-1]
		g = ParentGIndex(g)
	}
	return p, nil
}

// VerifyProof checks an inclusion proof against a root digest using the
// given combiner; a nil hasher means crypto.KeccakNodeHasher. The proof
// must carry one sibling per tree level.
func VerifyProof(root types.Hash, p *Proof, hasher crypto.NodeHasher) bool {
	if p == nil || len(p.Siblings) == 0 {
		return false
	}
	if hasher == nil {
		hasher = crypto.KeccakNodeHasher
	}

	current := p.Leaf
	idx := p.Index
	for _, sibling := range p.Siblings {
		if idx%2 == 0 {
			current = hasher(current, sibling)
		} else {
			current = hasher(sibling, current)
		}
		idx /= 2
	}
	return current == root
}
