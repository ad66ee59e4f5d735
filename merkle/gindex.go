// gindex.go provides generalized-index arithmetic for a complete binary
// tree: the root is 1 and node g has children 2g and 2g+1. Leaf i of a
// depth-h tree sits at gindex 2^h + i.
package merkle

import "math/bits"

// RootGIndex is the generalized index of the tree root.
const RootGIndex = 1

// ParentGIndex returns the generalized index of g's parent.
func ParentGIndex(g uint64) uint64 {
	return g >> 1
}

// LeftChildGIndex returns the generalized index of g's left child.
func LeftChildGIndex(g uint64) uint64 {
	return 2 * g
}

// RightChildGIndex returns the generalized index of g's right child.
func RightChildGIndex(g uint64) uint64 {
	return 2*g + 1
}

// SiblingGIndex returns the generalized index of g's sibling. The root
// has no sibling; SiblingGIndex(1) returns 0, which is not a valid index.
func SiblingGIndex(g uint64) uint64 {
	return g ^ 1
}

// GIndexDepth returns the depth of g below the root: 0 for the root,
// h for the leaves of a depth-h tree.
func GIndexDepth(g uint64) int {
	return bits.Len64(g) - 1
}

// LeafGIndex returns the generalized index of leaf i in a tree of the
// given height.
func LeafGIndex(height int, index uint64) uint64 {
	return uint64(1)<<uint(height) + index
}

// IsLeftChild reports whether g is the left child of its parent.
func IsLeftChild(g uint64) bool {
	return g%2 == 0
}
