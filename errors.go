package elfiearriba

import (
	"errors"
	"fmt"
)

var (
	// ErrRangeOutOfBounds is returned when a requested row range falls
	// outside the bounds of the column it addresses (or, for Bucketize,
	// of the row bucket-id array it writes).
	ErrRangeOutOfBounds = errors.New("row range out of bounds")

	// ErrMisalignedVectorIndex is returned when a vector-index argument is
	// not a multiple of 64, violating the word-aligned-write contract.
	ErrMisalignedVectorIndex = errors.New("vector index must be a multiple of 64")

	// ErrVectorTooSmall is returned when the target bit-vector's capacity
	// cannot hold the rows a scan call would write.
	ErrVectorTooSmall = errors.New("target bit-vector too small for requested range")

	// ErrLengthMismatch names the condition of two bit-vectors combined by
	// And, Or, or AndNot not sharing the same word length. Those methods do
	// not return it: they panic on a mismatch.
	ErrLengthMismatch = errors.New("bit-vector word lengths differ")

	// ErrUnsupportedLaneType names a lane type no kernel exists for. No
	// function in this module returns it: the predicate.Lane constraint
	// rejects other element types at compile time, and dispatch runs the
	// scalar kernel for every lane type without a bit-packed fast path.
	ErrUnsupportedLaneType = errors.New("unsupported lane type")

	// ErrBadBucketLayout is the sentinel every *ErrBoundaryCountMismatch
	// wraps, so callers that only care about the error class (not the
	// specific lengths involved) can check with errors.Is instead of
	// errors.As.
	ErrBadBucketLayout = errors.New("bucketizer argument arrays disagree in length")
)

// ErrBoundaryCountMismatch indicates a bucketizer call whose boundaries,
// counts, and multi-value arrays do not agree on length. It always wraps
// ErrBadBucketLayout.
type ErrBoundaryCountMismatch struct {
	Boundaries int
	Counts     int
}

func (e *ErrBoundaryCountMismatch) Error() string {
	return fmt.Sprintf("%s: boundaries=%d counts=%d", ErrBadBucketLayout, e.Boundaries, e.Counts)
}

func (e *ErrBoundaryCountMismatch) Unwrap() error { return ErrBadBucketLayout }
