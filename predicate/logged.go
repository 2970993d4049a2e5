package predicate

import (
	"context"
	"time"

	elfiearriba "github.com/microsoft/elfie-arriba"
	"github.com/microsoft/elfie-arriba/bitvector"
)

// ScanLogged runs Scan and records the call via logger, which may be nil
// (a nil *Logger disables logging entirely — callers that don't want
// observability overhead pay nothing for it). This is the opt-in
// integration point for callers that want every scan timed and logged
// without threading a logger through Scan's hot-path signature.
func ScanLogged[T Lane](ctx context.Context, logger *elfiearriba.Logger, column []T, index, length int, cOp CompareOp, rhs T, bOp BoolOp, vector *bitvector.BitVector, vectorIndex int) error {
	start := time.Now()
	err := Scan(column, index, length, cOp, rhs, bOp, vector, vectorIndex)
	if logger != nil {
		logger.WithContext(ctx).LogScan(ctx, int(cOp), int(bOp), length, time.Since(start), err)
	}
	return err
}

// ScanPairLogged runs ScanPair and records the call via logger, under the
// same nil-disables-logging convention as ScanLogged.
func ScanPairLogged[T Lane](ctx context.Context, logger *elfiearriba.Logger, left []T, leftIndex int, right []T, rightIndex int, length int, cOp CompareOp, bOp BoolOp, vector *bitvector.BitVector, vectorIndex int) error {
	start := time.Now()
	err := ScanPair(left, leftIndex, right, rightIndex, length, cOp, bOp, vector, vectorIndex)
	if logger != nil {
		logger.WithContext(ctx).LogScan(ctx, int(cOp), int(bOp), length, time.Since(start), err)
	}
	return err
}
