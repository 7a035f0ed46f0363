package splinter

import "testing"

func TestInsertRangeRemoveRange(t *testing.T) {
	s := New()
	s.InsertRange(10, 20)
	if s.Cardinality() != 10 {
		t.Fatalf("Cardinality: got %d want 10", s.Cardinality())
	}
	if !s.ContainsAll(10, 20) {
		t.Fatalf("expected the whole inserted range to be present")
	}
	s.RemoveRange(12, 15)
	if s.Cardinality() != 7 {
		t.Fatalf("Cardinality after RemoveRange: got %d want 7", s.Cardinality())
	}
	if s.Contains(12) || s.Contains(13) || s.Contains(14) {
		t.Fatalf("12..14 should have been removed")
	}
	if !s.Contains(11) || !s.Contains(15) {
		t.Fatalf("values outside the removed range should remain")
	}
}

func TestContainsAllContainsAnyEmptyRange(t *testing.T) {
	s := FromSlice([]uint32{1, 2, 3})
	if !s.ContainsAll(5, 5) {
		t.Fatalf("ContainsAll with an empty range should be vacuously true")
	}
	if s.ContainsAny(5, 5) {
		t.Fatalf("ContainsAny with an empty range should be false")
	}
}

func TestContainsAllContainsAny(t *testing.T) {
	s := FromSlice([]uint32{1, 2, 3, 5})
	if !s.ContainsAll(1, 4) {
		t.Fatalf("ContainsAll(1,4) should hold for {1,2,3}")
	}
	if s.ContainsAll(1, 5) {
		t.Fatalf("ContainsAll(1,5) should fail: 4 is missing")
	}
	if !s.ContainsAny(4, 6) {
		t.Fatalf("ContainsAny(4,6) should hold: 5 is present")
	}
	if s.ContainsAny(100, 200) {
		t.Fatalf("ContainsAny(100,200) should be false")
	}
}

func TestPosition(t *testing.T) {
	s := FromSlice([]uint32{10, 20, 30})
	pos, ok := s.Position(20)
	if !ok || pos != 1 {
		t.Fatalf("Position(20): got (%d,%v) want (1,true)", pos, ok)
	}
	if _, ok := s.Position(25); ok {
		t.Fatalf("Position(25) should report not found")
	}
}

func TestCut(t *testing.T) {
	a := FromSlice([]uint32{1, 2, 3, 4})
	b := FromSlice([]uint32{2, 3, 100})
	removed := a.Cut(b)

	wantRemaining := []uint32{1, 4}
	got := a.Values()
	if len(got) != len(wantRemaining) {
		t.Fatalf("a after Cut: got %v want %v", got, wantRemaining)
	}
	for i := range wantRemaining {
		if got[i] != wantRemaining[i] {
			t.Fatalf("a after Cut[%d]: got %d want %d", i, got[i], wantRemaining[i])
		}
	}

	wantRemoved := []uint32{2, 3}
	gotRemoved := removed.Values()
	if len(gotRemoved) != len(wantRemoved) {
		t.Fatalf("Cut return: got %v want %v", gotRemoved, wantRemoved)
	}
	for i := range wantRemoved {
		if gotRemoved[i] != wantRemoved[i] {
			t.Fatalf("Cut return[%d]: got %d want %d", i, gotRemoved[i], wantRemoved[i])
		}
	}
}

func TestComplement(t *testing.T) {
	s := FromSlice([]uint32{1, 2, 3})
	comp := s.Complement()
	if comp.Contains(1) || comp.Contains(2) || comp.Contains(3) {
		t.Fatalf("complement should not contain any of the original's members")
	}
	if !comp.Contains(0) || !comp.Contains(4) {
		t.Fatalf("complement should contain everything else")
	}
	if comp.Complement().Cardinality() != s.Cardinality() {
		t.Fatalf("complementing twice should recover the original cardinality")
	}
}

func TestComplementOfEmptyIsFull(t *testing.T) {
	s := New()
	comp := s.Complement()
	if !comp.Contains(0) || !comp.Contains(0xFFFFFFFF) {
		t.Fatalf("complement of the empty set should contain every uint32")
	}
}

func TestSparsityRatio(t *testing.T) {
	s := New()
	if s.SparsityRatio() != 0 {
		t.Fatalf("SparsityRatio of an empty set should be 0")
	}
	s.Insert(1)
	s.Insert(2)
	if got := s.SparsityRatio(); got <= 0 || got > 1 {
		t.Fatalf("SparsityRatio: got %v, want a value in (0,1]", got)
	}
}
