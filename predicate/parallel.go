package predicate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/microsoft/elfie-arriba/bitvector"
)

// Shard names one slice of a larger scan: a row range of the column and
// the 64-aligned vector position it writes to. Shards must target
// non-overlapping vector word ranges — the concurrency model requires it,
// since the kernel takes an exclusive mutable borrow of its target words
// with no atomics.
type Shard[T Lane] struct {
	Index       int
	Length      int
	VectorIndex int
}

// ScanShards runs one Scan call per shard concurrently via errgroup and
// returns the first error any shard reports. Every shard's Scan runs to
// completion; neither an error nor cancelling ctx stops the other shards.
// It is sugar over the single-call contract,
// not a change to it: each goroutine still owns its shard's target word
// range exclusively, matching "callers may run multiple independent calls
// in parallel provided the target bit-vector word ranges do not overlap."
func ScanShards[T Lane](ctx context.Context, column []T, shards []Shard[T], cOp CompareOp, rhs T, bOp BoolOp, vector *bitvector.BitVector) error {
	g, _ := errgroup.WithContext(ctx)
	for _, shard := range shards {
		shard := shard
		g.Go(func() error {
			return Scan(column, shard.Index, shard.Length, cOp, rhs, bOp, vector, shard.VectorIndex)
		})
	}
	return g.Wait()
}
