package predicate

import "github.com/microsoft/elfie-arriba/internal/simd"

// blockMask computes the per-lane result for up to 64 rows, selecting
// between the bit-packed fast path (int8/uint8/int16/uint16, gated on a
// detected AVX2/NEON-class ISA) and the scalar reference kernel that
// defines authoritative semantics for every other lane type. The dispatch
// happens once per block, outside the per-lane loop in either path.
func blockMask[T Lane](col []T, rhs T, cOp CompareOp) uint64 {
	if simd.ActiveISA() != simd.Generic {
		switch c := any(col).(type) {
		case []int8:
			return simd.CompareBlock(c, any(rhs).(int8), simd.Op(cOp))
		case []uint8:
			return simd.CompareBlock(c, any(rhs).(uint8), simd.Op(cOp))
		case []int16:
			return simd.CompareBlock(c, any(rhs).(int16), simd.Op(cOp))
		case []uint16:
			return simd.CompareBlock(c, any(rhs).(uint16), simd.Op(cOp))
		}
	}
	return scalarMask(col, rhs, cOp)
}

// blockMaskPair is blockMask's column×column counterpart.
func blockMaskPair[T Lane](left, right []T, cOp CompareOp) uint64 {
	if simd.ActiveISA() != simd.Generic {
		switch l := any(left).(type) {
		case []int8:
			return simd.ComparePairBlock(l, any(right).([]int8), simd.Op(cOp))
		case []uint8:
			return simd.ComparePairBlock(l, any(right).([]uint8), simd.Op(cOp))
		case []int16:
			return simd.ComparePairBlock(l, any(right).([]int16), simd.Op(cOp))
		case []uint16:
			return simd.ComparePairBlock(l, any(right).([]uint16), simd.Op(cOp))
		}
	}
	return scalarMaskPair(left, right, cOp)
}
