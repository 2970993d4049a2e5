package bucketizer

import (
	"context"

	elfiearriba "github.com/microsoft/elfie-arriba"
	"github.com/microsoft/elfie-arriba/predicate"
)

// BucketizeLogged runs Bucketize and records the call via logger, which
// may be nil (a nil *Logger disables logging entirely). This is the
// opt-in integration point described by the ambient logging carryover —
// Bucketize itself stays a pure function over caller-owned buffers.
func BucketizeLogged[T predicate.Lane](ctx context.Context, logger *elfiearriba.Logger, values []T, index, length int, boundaries []T, rowBucketIDs []byte, countPerBucket []int, isMultiValue []bool) error {
	err := Bucketize(values, index, length, boundaries, rowBucketIDs, countPerBucket, isMultiValue)
	if logger != nil {
		logger.WithContext(ctx).LogBucketize(ctx, len(boundaries), length, err)
	}
	return err
}
