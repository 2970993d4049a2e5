package simd

import "math/bits"

// Word-level combinators for bitvector.BitVector: AND, OR, AND-NOT, and
// popcount over []uint64, unrolled 4-wide so the compiler can keep the
// loop body branch-free and pipeline the word loads. These back
// bitvector.BitVector's And, Or, AndNot and Count; predicate scans merge
// their per-block masks into the target with their own single-word
// combine instead.
var (
	kernelAndWords      = andWordsGeneric
	kernelAndNotWords   = andNotWordsGeneric
	kernelOrWords       = orWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
)

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src)
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src)
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

func andWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ^src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
