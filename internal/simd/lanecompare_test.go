package simd

import "testing"

func naiveMask(col []int16, rhs int16, op Op) uint64 {
	var mask uint64
	for i, v := range col {
		var ok bool
		switch op {
		case OpEqual:
			ok = v == rhs
		case OpNotEqual:
			ok = v != rhs
		case OpLessThan:
			ok = v < rhs
		case OpLessThanOrEqual:
			ok = v <= rhs
		case OpGreaterThan:
			ok = v > rhs
		case OpGreaterThanOrEqual:
			ok = v >= rhs
		}
		if ok {
			mask |= uint64(1) << uint(i)
		}
	}
	return mask
}

func TestCompareBlockAgainstNaive(t *testing.T) {
	ops := []Op{OpEqual, OpNotEqual, OpLessThan, OpLessThanOrEqual, OpGreaterThan, OpGreaterThanOrEqual}
	lengths := []int{0, 1, 7, 8, 9, 15, 16, 31, 32, 63, 64}

	for _, n := range lengths {
		col := make([]int16, n)
		for i := range col {
			col[i] = int16(i%11 - 5)
		}
		for _, op := range ops {
			got := CompareBlock(col, int16(0), op)
			want := naiveMask(col, 0, op)
			if got != want {
				t.Errorf("n=%d op=%d: got %#x, want %#x", n, op, got, want)
			}
		}
	}
}

func TestCompareBlockUint8SignNotBiased(t *testing.T) {
	col := []uint8{0, 127, 128, 200, 255}
	got := CompareBlock(col, uint8(128), OpGreaterThan)
	want := uint64(0)
	for i, v := range col {
		if v > 128 {
			want |= 1 << uint(i)
		}
	}
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestComparePairBlock(t *testing.T) {
	left := []int8{1, 2, 3, 4, 5}
	right := []int8{1, 1, 4, 4, 2}
	got := ComparePairBlock(left, right, OpEqual)
	want := uint64(0)
	for i := range left {
		if left[i] == right[i] {
			want |= 1 << uint(i)
		}
	}
	if got != want {
		t.Errorf("got %#b, want %#b", got, want)
	}

	got = ComparePairBlock(left, right, OpGreaterThan)
	want = 0
	for i := range left {
		if left[i] > right[i] {
			want |= 1 << uint(i)
		}
	}
	if got != want {
		t.Errorf("got %#b, want %#b", got, want)
	}
}
