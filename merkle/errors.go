package merkle

import "errors"

// Accumulator errors.
var (
	// ErrInvalidHeight is returned by New for heights outside [1, MaxHeight].
	ErrInvalidHeight = errors.New("merkle: tree height out of range")

	// ErrTreeFull is returned by Append when all 2^height - 1 usable leaf
	// slots are occupied. The tree is left unchanged.
	ErrTreeFull = errors.New("merkle: tree is full")

	// ErrLoopDidNotTerminate signals a broken internal invariant: the
	// append carry failed to settle within the tree height. It should be
	// unreachable; callers must treat it as a programming error, not a
	// recoverable condition.
	ErrLoopDidNotTerminate = errors.New("merkle: append did not settle within tree height")

	// ErrIndexOutOfBounds is returned by indexed lookups for positions
	// outside [0, size) or outside the tree capacity.
	ErrIndexOutOfBounds = errors.New("merkle: index out of range")
)
