package enumerator

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/microsoft/elfie-arriba/bitvector"
)

// FromRoaring builds a dense bitvector.BitVector of the given capacity
// from a compressed roaring.Bitmap, for callers bringing a sparse result
// set from a prior pipeline stage back into the dense scan representation.
// Values at or beyond capacity are dropped.
func FromRoaring(capacity int, rb *roaring.Bitmap) *bitvector.BitVector {
	bv := bitvector.New(capacity)
	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		if int(v) < capacity {
			bv.Set(int(v), true)
		}
	}
	return bv
}

// ToRoaring drains bv's set bits into a compressed roaring.Bitmap, for
// callers persisting a sparse result set between query stages.
func ToRoaring(bv *bitvector.BitVector) *roaring.Bitmap {
	rb := roaring.New()
	buf := make([]int, 256)
	from := 0
	for {
		n, next := Page(bv, from, buf)
		for i := 0; i < n; i++ {
			rb.Add(uint32(buf[i]))
		}
		if next == -1 {
			break
		}
		from = next
	}
	return rb
}
