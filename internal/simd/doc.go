// Package simd provides CPU-capability probing and word-level bit
// operations shared by the bitvector and predicate packages.
//
// # Capability probing
//
// ActiveISA reports which lane-compare tier the process selected at
// startup (Generic, AVX2, or NEON). The selection can be pinned for
// testing or diagnostics via the ARRIBA_SCAN_SIMD environment variable
// ("generic", "avx2", or "neon"); an override naming an ISA the CPU
// doesn't actually support is ignored and auto-detection runs instead.
//
// # Word operations
//
// AndWords, OrWords, AndNotWords, and PopcountWords operate on []uint64
// word slices with 4-way loop unrolling, the representation used
// throughout bitvector.BitVector.
package simd
