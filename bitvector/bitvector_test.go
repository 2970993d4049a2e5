package bitvector

import "testing"

func TestNewZeroed(t *testing.T) {
	bv := New(130)
	if bv.Count() != 0 {
		t.Fatalf("new vector should be zeroed, got count %d", bv.Count())
	}
	if len(bv.Words()) != 3 {
		t.Fatalf("expected 3 words for capacity 130, got %d", len(bv.Words()))
	}
}

func TestGetSet(t *testing.T) {
	bv := New(128)
	bv.Set(0, true)
	bv.Set(63, true)
	bv.Set(64, true)
	bv.Set(127, true)

	for _, i := range []int{0, 63, 64, 127} {
		if !bv.Get(i) {
			t.Errorf("expected bit %d set", i)
		}
	}
	if bv.Get(1) || bv.Get(65) {
		t.Errorf("unexpected bit set")
	}
	if bv.Count() != 4 {
		t.Errorf("count = %d, want 4", bv.Count())
	}

	bv.Set(63, false)
	if bv.Get(63) {
		t.Errorf("bit 63 should be cleared")
	}
	if bv.Count() != 3 {
		t.Errorf("count = %d, want 3", bv.Count())
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	bv := New(10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range Get")
		}
	}()
	bv.Get(10)
}

// All must zero the tail bits of the final word: many bugs in similar
// libraries arise from leaving residual set bits above capacity.
func TestAllTailHygiene(t *testing.T) {
	sizes := []int{1, 7, 8, 63, 64, 65, 127, 128, 129, 200}
	for _, cap := range sizes {
		bv := New(cap)
		bv.All()
		if bv.Count() != cap {
			t.Errorf("capacity %d: All().Count() = %d, want %d", cap, bv.Count(), cap)
		}
		words := bv.Words()
		last := len(words) - 1
		tailBits := cap % wordBits
		if tailBits != 0 {
			residual := words[last] >> uint(tailBits)
			if residual != 0 {
				t.Errorf("capacity %d: residual tail bits set: %#x", cap, residual)
			}
		}
		for i := 0; i < cap; i++ {
			if !bv.Get(i) {
				t.Errorf("capacity %d: bit %d should be set after All()", cap, i)
			}
		}
	}
}

func TestNone(t *testing.T) {
	bv := New(128)
	bv.All()
	bv.None()
	if bv.Count() != 0 {
		t.Errorf("count after None() = %d, want 0", bv.Count())
	}
}

func TestAndOrAndNot(t *testing.T) {
	a := New(64)
	b := New(64)
	for i := 0; i < 64; i += 2 {
		a.Set(i, true)
	}
	for i := 0; i < 32; i++ {
		b.Set(i, true)
	}

	and := a.Clone()
	and.And(b)
	for i := 0; i < 64; i++ {
		want := i%2 == 0 && i < 32
		if and.Get(i) != want {
			t.Errorf("And: bit %d = %v, want %v", i, and.Get(i), want)
		}
	}

	or := a.Clone()
	or.Or(b)
	for i := 0; i < 64; i++ {
		want := i%2 == 0 || i < 32
		if or.Get(i) != want {
			t.Errorf("Or: bit %d = %v, want %v", i, or.Get(i), want)
		}
	}

	andNot := a.Clone()
	andNot.AndNot(b)
	for i := 0; i < 64; i++ {
		want := i%2 == 0 && i >= 32
		if andNot.Get(i) != want {
			t.Errorf("AndNot: bit %d = %v, want %v", i, andNot.Get(i), want)
		}
	}
}

// and_not(self, self) == none, per the Boolean-combinator identities.
func TestAndNotSelfIsNone(t *testing.T) {
	bv := New(128)
	bv.Set(3, true)
	bv.Set(100, true)
	bv.AndNot(bv)
	if bv.Count() != 0 {
		t.Errorf("AndNot(self, self) should be empty, got count %d", bv.Count())
	}
}

func TestAndAllOnesAndAllZeros(t *testing.T) {
	target := New(64)
	target.Set(5, true)
	target.Set(10, true)

	ones := New(64)
	ones.All()
	clone := target.Clone()
	clone.And(ones)
	if !clone.Equals(target) {
		t.Error("And with all-ones should leave target unchanged")
	}

	zeros := New(64)
	clone = target.Clone()
	clone.And(zeros)
	if clone.Count() != 0 {
		t.Error("And with all-zeros should clear target")
	}
}

func TestOrAllZerosAndAllOnes(t *testing.T) {
	target := New(64)
	target.Set(5, true)

	zeros := New(64)
	clone := target.Clone()
	clone.Or(zeros)
	if !clone.Equals(target) {
		t.Error("Or with all-zeros should leave target unchanged")
	}

	ones := New(64)
	ones.All()
	clone = target.Clone()
	clone.Or(ones)
	if clone.Count() != 64 {
		t.Error("Or with all-ones should set all bits in range")
	}
}

func TestEquals(t *testing.T) {
	a := New(70)
	b := New(70)
	if !a.Equals(b) {
		t.Error("two zeroed vectors of equal capacity should be equal")
	}
	a.Set(69, true)
	if a.Equals(b) {
		t.Error("vectors differing in a bit should not be equal")
	}
	c := New(71)
	if a.Equals(c) {
		t.Error("vectors of different capacity should not be equal")
	}
}

func TestAndLengthMismatchPanics(t *testing.T) {
	a := New(64)
	b := New(128)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on word-length mismatch")
		}
	}()
	a.And(b)
}
