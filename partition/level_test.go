package partition

import "testing"

func TestLevelBits(t *testing.T) {
	cases := []struct {
		l    Level
		bits int
	}{
		{High, 32}, {Mid, 24}, {Low, 16}, {Block, 8},
	}
	for _, c := range cases {
		if got := c.l.Bits(); got != c.bits {
			t.Fatalf("%v.Bits(): got %d want %d", c.l, got, c.bits)
		}
	}
}

func TestLevelChild(t *testing.T) {
	if High.Child() != Mid {
		t.Fatalf("High.Child() should be Mid")
	}
	if Mid.Child() != Low {
		t.Fatalf("Mid.Child() should be Low")
	}
	if Low.Child() != Block {
		t.Fatalf("Low.Child() should be Block")
	}
}

func TestLevelChildPanicsOnBlock(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic calling Block.Child()")
		}
	}()
	_ = Block.Child()
}

func TestLevelAllowTree(t *testing.T) {
	if !High.AllowTree() || !Mid.AllowTree() || !Low.AllowTree() {
		t.Fatalf("High, Mid, Low should allow Tree")
	}
	if Block.AllowTree() {
		t.Fatalf("Block must not allow Tree")
	}
}

func TestLevelMaxLen(t *testing.T) {
	if Block.MaxLen() != 256 {
		t.Fatalf("Block.MaxLen(): got %d want 256", Block.MaxLen())
	}
	if Low.MaxLen() != 1<<16 {
		t.Fatalf("Low.MaxLen(): got %d want %d", Low.MaxLen(), 1<<16)
	}
	if Mid.MaxLen() != 1<<24 {
		t.Fatalf("Mid.MaxLen(): got %d want %d", Mid.MaxLen(), 1<<24)
	}
	if High.MaxLen() != 1<<32 {
		t.Fatalf("High.MaxLen(): got %d want %d", High.MaxLen(), uint64(1)<<32)
	}
}

func TestSplitUnsplitRoundtrip(t *testing.T) {
	values := []uint32{0, 1, 255, 256, 65535, 65536, 0x00FF_FFFF, 0x0100_0000, 0xFFFF_FFFF}
	for _, l := range []Level{High, Mid, Low} {
		for _, v := range values {
			masked := v & uint32(l.Mask())
			seg, rest := Split(l, masked)
			got := Unsplit(l, seg, rest)
			if got != masked {
				t.Fatalf("%v: roundtrip(%d): got %d want %d", l, masked, got, masked)
			}
		}
	}
}

func TestSplitHighKnownValue(t *testing.T) {
	seg, rest := Split(High, 0x12_345678)
	if seg != 0x12 {
		t.Fatalf("segment: got %#x want %#x", seg, 0x12)
	}
	if rest != 0x345678 {
		t.Fatalf("rest: got %#x want %#x", rest, 0x345678)
	}
}
