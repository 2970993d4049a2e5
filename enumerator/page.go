// Package enumerator implements resumable extraction of a bitvector.BitVector's
// set-bit row indices into caller-supplied pages.
package enumerator

import (
	"math/bits"

	"github.com/microsoft/elfie-arriba/bitvector"
)

const wordBits = 64

// Page fills out with up to len(out) ascending row indices whose bit is
// set in bv, starting at the resume cursor from. It returns the number of
// indices written and an updated cursor: -1 if the vector is exhausted,
// otherwise the next row index to examine (one past the last emitted
// index). Calling Page in a loop, passing back the returned cursor each
// time, visits every set index exactly once in ascending order.
func Page(bv *bitvector.BitVector, from int, out []int) (written int, next int) {
	capacity := bv.Capacity()
	if from >= capacity {
		return 0, -1
	}
	if len(out) == 0 {
		return 0, from
	}

	words := bv.Words()
	wordIdx := from / wordBits
	base := wordIdx * wordBits
	word := words[wordIdx] &^ ((uint64(1) << uint(from%wordBits)) - 1)

	for {
		for word == 0 {
			wordIdx++
			base += wordBits
			if wordIdx >= len(words) || base >= capacity {
				return written, -1
			}
			word = words[wordIdx]
		}

		t := bits.TrailingZeros64(word)
		idx := base + t
		if idx >= capacity {
			return written, -1
		}

		out[written] = idx
		word &= word - 1
		written++

		if written == len(out) {
			return written, idx + 1
		}
	}
}
