package predicate

import (
	elfiearriba "github.com/microsoft/elfie-arriba"
	"github.com/microsoft/elfie-arriba/bitvector"
)

const blockSize = 64

// Scan evaluates column[index:index+length] cOp rhs and merges the result
// into vector starting at the 64-aligned vectorIndex, under bOp. Argument-
// domain errors are returned without modifying vector; they are
// unrecoverable within the call and surfaced at this API boundary.
func Scan[T Lane](column []T, index, length int, cOp CompareOp, rhs T, bOp BoolOp, vector *bitvector.BitVector, vectorIndex int) error {
	if err := validate(len(column), index, length, vector, vectorIndex); err != nil {
		return err
	}

	words := vector.Words()
	wordBase := vectorIndex / blockSize
	for r0 := 0; r0 < length; r0 += blockSize {
		end := r0 + blockSize
		if end > length {
			end = length
		}
		mask := blockMask(column[index+r0:index+end], rhs, cOp)
		combine(&words[wordBase+r0/blockSize], mask, bOp)
	}
	return nil
}

// ScanPair evaluates left[leftIndex:leftIndex+length] cOp
// right[rightIndex:rightIndex+length] and merges the result into vector
// starting at the 64-aligned vectorIndex, under bOp.
func ScanPair[T Lane](left []T, leftIndex int, right []T, rightIndex int, length int, cOp CompareOp, bOp BoolOp, vector *bitvector.BitVector, vectorIndex int) error {
	if err := validate(len(left), leftIndex, length, vector, vectorIndex); err != nil {
		return err
	}
	if rightIndex < 0 || rightIndex+length > len(right) {
		return elfiearriba.ErrRangeOutOfBounds
	}

	words := vector.Words()
	wordBase := vectorIndex / blockSize
	for r0 := 0; r0 < length; r0 += blockSize {
		end := r0 + blockSize
		if end > length {
			end = length
		}
		mask := blockMaskPair(left[leftIndex+r0:leftIndex+end], right[rightIndex+r0:rightIndex+end], cOp)
		combine(&words[wordBase+r0/blockSize], mask, bOp)
	}
	return nil
}

func validate(columnLen, index, length int, vector *bitvector.BitVector, vectorIndex int) error {
	if vectorIndex%blockSize != 0 {
		return elfiearriba.ErrMisalignedVectorIndex
	}
	if index < 0 || length < 0 || index+length > columnLen {
		return elfiearriba.ErrRangeOutOfBounds
	}
	if vectorIndex+length > vector.Capacity() {
		return elfiearriba.ErrVectorTooSmall
	}
	return nil
}
