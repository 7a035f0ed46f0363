package partition

import "testing"

// refAgrees opens buf as a Ref and checks its Cardinality, Contains and
// Values answers against the expected sorted values, the same kind of
// check codec_test.go's roundtrip makes after Decode.
func refAgrees(t *testing.T, buf []byte, l Level, values []uint32) Ref {
	t.Helper()
	ref, err := NewRef(buf, l)
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	card, err := ref.Cardinality()
	if err != nil {
		t.Fatalf("Cardinality: %v", err)
	}
	if card != len(values) {
		t.Fatalf("Cardinality: got %d want %d", card, len(values))
	}
	for _, v := range values {
		ok, err := ref.Contains(v)
		if err != nil || !ok {
			t.Fatalf("Contains(%d): got (%v,%v) want (true,nil)", v, ok, err)
		}
	}
	got, err := ref.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("Values: got %v want %v", got, values)
	}
	for i, v := range values {
		if got[i] != v {
			t.Fatalf("Values[%d]: got %d want %d", i, got[i], v)
		}
	}
	return ref
}

func TestRefVec(t *testing.T) {
	values := []uint32{0, 1000, 65535}
	p := fromValues(Low, values)
	buf := Encode(nil, p)
	refAgrees(t, buf, Low, values)
}

func TestRefBitmap(t *testing.T) {
	var values []uint32
	for i := uint32(0); i < 256; i += 2 {
		values = append(values, i)
	}
	p := fromValues(Block, values)
	p.kind = KindBitmap
	p.bitmap = bitmapFromValues(Block, values)
	p.vec = nil
	buf := Encode(nil, p)
	ref := refAgrees(t, buf, Block, values)
	if ok, _ := ref.Contains(1); ok {
		t.Fatalf("Contains(1) should be false for an even-only bitmap")
	}
}

func TestRefRun(t *testing.T) {
	values := make([]uint32, 0, 50)
	for i := uint32(10); i < 60; i++ {
		values = append(values, i)
	}
	p := fromValues(Low, values)
	Optimize(p, true)
	if p.Kind() != KindRun {
		t.Fatalf("expected Run, got %v", p.Kind())
	}
	buf := Encode(nil, p)
	ref := refAgrees(t, buf, Low, values)
	if ok, _ := ref.Contains(9); ok {
		t.Fatalf("Contains(9) should be false, just before the run")
	}
	if ok, _ := ref.Contains(60); ok {
		t.Fatalf("Contains(60) should be false, just after the run")
	}
}

func TestRefTreeLazyChildAccess(t *testing.T) {
	child0 := fromValues(Low, []uint32{1, 2, 3})
	child1 := fromValues(Low, []uint32{100})
	tree := &treePartition{level: Mid, segments: []byte{0x00, 0x05}, children: []*Partition{child0, child1}}
	p := &Partition{level: Mid, kind: KindTree, tree: tree}
	buf := Encode(nil, p)

	want := []uint32{
		Unsplit(Mid, 0x00, 1), Unsplit(Mid, 0x00, 2), Unsplit(Mid, 0x00, 3),
		Unsplit(Mid, 0x05, 100),
	}
	ref := refAgrees(t, buf, Mid, want)

	if ref.Kind() != KindTree {
		t.Fatalf("expected Tree, got %v", ref.Kind())
	}

	// A segment with no child at all must report absent without error.
	ok, err := ref.Contains(Unsplit(Mid, 0x01, 1))
	if err != nil || ok {
		t.Fatalf("Contains on a missing segment: got (%v,%v) want (false,nil)", ok, err)
	}

	last, ok, err := ref.Last()
	if err != nil || !ok || last != Unsplit(Mid, 0x05, 100) {
		t.Fatalf("Last(): got (%d,%v,%v) want (%d,true,nil)", last, ok, err, Unsplit(Mid, 0x05, 100))
	}

	pos, ok, err := ref.Position(Unsplit(Mid, 0x05, 100))
	if err != nil || !ok || pos != 3 {
		t.Fatalf("Position: got (%d,%v,%v) want (3,true,nil)", pos, ok, err)
	}
	if _, ok, err := ref.Position(Unsplit(Mid, 0x01, 1)); err != nil || ok {
		t.Fatalf("Position of an absent value should report not found")
	}
}

func TestRefRankMatchesPartition(t *testing.T) {
	values := []uint32{1, 3, 5, 7}
	p := fromValues(Block, values)
	buf := Encode(nil, p)
	ref, err := NewRef(buf, Block)
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	for v := uint32(0); v < 10; v++ {
		want := p.Rank(v)
		got, err := ref.Rank(v)
		if err != nil {
			t.Fatalf("Rank(%d): %v", v, err)
		}
		if got != want {
			t.Fatalf("Rank(%d): got %d want %d", v, got, want)
		}
	}
}

func TestRefToPartitionMutable(t *testing.T) {
	values := []uint32{1, 2, 3}
	p := fromValues(Block, values)
	buf := Encode(nil, p)
	ref, err := NewRef(buf, Block)
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	owned, err := ref.ToPartition()
	if err != nil {
		t.Fatalf("ToPartition: %v", err)
	}
	owned.Insert(4)
	if !owned.Contains(4) {
		t.Fatalf("owned Partition from ToPartition should be mutable")
	}
	if ok, _ := ref.Contains(4); ok {
		t.Fatalf("the original Ref should not observe the owned copy's mutation")
	}
}

func TestRefEmptyAndFull(t *testing.T) {
	empty := Empty(Block)
	buf := Encode(nil, empty)
	ref, err := NewRef(buf, Block)
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	if isEmpty, err := ref.IsEmpty(); err != nil || !isEmpty {
		t.Fatalf("IsEmpty: got (%v,%v) want (true,nil)", isEmpty, err)
	}

	full := Full(Block)
	buf = Encode(nil, full)
	ref, err = NewRef(buf, Block)
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	card, err := ref.Cardinality()
	if err != nil || card != 256 {
		t.Fatalf("Cardinality: got (%d,%v) want (256,nil)", card, err)
	}
	if ok, _ := ref.Contains(255); !ok {
		t.Fatalf("Full Ref should contain 255")
	}
}

func TestRefRejectsBadTag(t *testing.T) {
	if _, err := NewRef([]byte{0xFF}, Block); err == nil {
		t.Fatalf("expected error for invalid tag")
	}
}

func TestRefRejectsEmptyBuffer(t *testing.T) {
	if _, err := NewRef(nil, Block); err == nil {
		t.Fatalf("expected error for empty buffer")
	}
}
