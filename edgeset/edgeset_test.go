package edgeset

import "testing"

func TestFrom4BitsAndTest(t *testing.T) {
	s := From4Bits(1, 3, 5, 5)
	for _, want := range []int{1, 3, 5} {
		if !s.Test(want) {
			t.Errorf("bit %d not set in %v", want, s)
		}
	}
	for _, notWant := range []int{0, 2, 4, 6} {
		if s.Test(notWant) {
			t.Errorf("bit %d unexpectedly set in %v", notWant, s)
		}
	}
}

func TestMergeIntersect(t *testing.T) {
	a := From4Bits(0, 1, 2, 2)
	b := From4Bits(2, 3, 4, 4)
	merged := a.Merge(b)
	for i := 0; i < 5; i++ {
		if !merged.Test(i) {
			t.Errorf("merged set missing bit %d", i)
		}
	}
	inter := a.Intersect(b)
	if inter != From4Bits(2, 2, 2, 2) {
		t.Errorf("intersect = %v, want only bit 2 set", inter)
	}
}

func TestEmptyAndZero(t *testing.T) {
	if !Zero().Empty() {
		t.Error("Zero() should be empty")
	}
	if From4Bits(0, 0, 0, 0).Empty() {
		t.Error("set with bit 0 should not be empty")
	}
}

func TestEdgesOrdered(t *testing.T) {
	s := From4Bits(7, 2, 9, 2)
	got := s.Edges()
	want := []int{2, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestWithoutAsU32(t *testing.T) {
	s := From4Bits(0, 1, 2, 3).Without(1)
	if s.Test(1) {
		t.Error("bit 1 should have been cleared")
	}
	if s.AsU32() != uint32(s) {
		t.Error("AsU32 should widen without changing bit pattern")
	}
}
