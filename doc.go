// Package elfiearriba is the CORE of a columnar scan engine: SIMD-friendly
// primitives that evaluate predicates over dense numeric columns, combine
// the results into compact bit-vectors, enumerate the set bits back into row
// indices, and classify column values into ordered buckets.
//
// The CORE is split into four packages, each owning one of the tightly
// coupled subsystems:
//
//   - bitvector — the packed bit index set shared by every other component.
//   - predicate — the compare-and-combine scan kernels (column×scalar and
//     column×column), the bulk of the engine.
//   - enumerator — resumable extraction of set-bit row indices.
//   - bucketizer — branchless ordered-bucket classification.
//
// # Quick Start
//
//	bv := bitvector.New(len(column))
//	predicate.Scan(column, 0, len(column), predicate.GreaterThan, int8(3), predicate.Set, bv, 0)
//	n := bv.Count()
//
//	var out [64]int
//	written, cursor := enumerator.Page(bv, 0, out[:])
//
// # Scope
//
// This package does not define query semantics above single-predicate
// evaluation, does not manage memory for columns (callers own all buffers),
// and does not perform type promotion — comparisons happen within a single
// concrete primitive type. Persistence, a query front-end, and string
// operations are treated as external collaborators; see SupportsSIMD for
// the one piece of runtime capability surfaced to integrators.
package elfiearriba

import "github.com/microsoft/elfie-arriba/internal/simd"

// SupportsSIMD reports whether the process selected a hardware-accelerated
// lane-compare tier (AVX2 or NEON) at startup, as opposed to the portable
// scalar/generic fallback that defines the engine's reference semantics.
// Integrators call this once at startup; its result never changes at
// runtime and its absence never surfaces as an error — kernels silently
// dispatch to the scalar path instead.
func SupportsSIMD() bool {
	return simd.ActiveISA() != simd.Generic
}
