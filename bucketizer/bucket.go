// Package bucketizer classifies column values into ordered buckets via
// branchless binary search, producing a byte bucket id per row plus
// aggregated per-bucket statistics suitable for sort/group-by
// acceleration.
package bucketizer

import (
	elfiearriba "github.com/microsoft/elfie-arriba"
	"github.com/microsoft/elfie-arriba/predicate"
)

// BucketIndex performs a branchless binary search over the full boundaries
// array (including the trailing running-maximum sentinel) for the last
// entry <= value, then folds that landing position into the valid bucket
// range [0, len(boundaries)-2]. It returns the bucket id, or its bitwise
// complement if value does not compare equal to the boundary it landed on
// (an inexact match) — the caller then decides how to update isMultiValue
// and the running min/max sentinels.
//
// Each iteration advances a base index by half the remaining count
// whenever the midpoint boundary is <= value; this has no data-dependent
// branch a CPU can't resolve with a conditional move. Searching the
// sentinel alongside the real boundaries matters: a value equal to the
// current running maximum must land as an exact match against the last
// bucket, not merely as close to its lower edge.
func BucketIndex[T predicate.Lane](boundaries []T, value T) int {
	base := 0
	count := len(boundaries)

	for count > 1 {
		half := count >> 1
		if boundaries[base+half] <= value {
			base += half
		}
		count -= half
	}

	exact := value == boundaries[base]
	id := base
	if last := len(boundaries) - 2; id > last {
		id = last
	}
	if !exact {
		id = ^id
	}
	return id
}

// Bucketize classifies values[index:index+length] against boundaries,
// writing each row's bucket id into rowBucketIDs, incrementing
// countPerBucket[id], and setting isMultiValue[id] when a classified row
// does not exactly equal the boundary it landed on. boundaries[0] and
// boundaries[len(boundaries)-1] are running min/max sentinels: a value
// landing below the first bucket or above the last extends them.
//
// After classification, countPerBucket's last slot is overwritten with
// the sum of every preceding slot — the total row count placed — doubling
// as both a per-bucket count and a grand total, matching the ABI the
// original bucketizer's countPerBucket array carries.
func Bucketize[T predicate.Lane](values []T, index, length int, boundaries []T, rowBucketIDs []byte, countPerBucket []int, isMultiValue []bool) error {
	if index < 0 || length < 0 || index+length > len(values) {
		return elfiearriba.ErrRangeOutOfBounds
	}
	if len(rowBucketIDs) < index+length {
		return elfiearriba.ErrRangeOutOfBounds
	}
	n := len(boundaries)
	if len(countPerBucket) != n || len(isMultiValue) != n {
		return &elfiearriba.ErrBoundaryCountMismatch{Boundaries: n, Counts: len(countPerBucket)}
	}

	end := index + length
	for i := index; i < end; i++ {
		id := BucketIndex(boundaries, values[i])
		if id < 0 {
			id = ^id
			if id == 0 && values[i] < boundaries[0] {
				boundaries[0] = values[i]
			}
			if id == n-2 && values[i] > boundaries[n-1] {
				boundaries[n-1] = values[i]
			}
			isMultiValue[id] = true
		}
		rowBucketIDs[i] = byte(id)
		countPerBucket[id]++
	}

	total := 0
	for i := 0; i < n-1; i++ {
		total += countPerBucket[i]
	}
	countPerBucket[n-1] = total
	return nil
}
