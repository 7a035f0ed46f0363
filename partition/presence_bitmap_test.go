package partition

import "testing"

func TestPresenceBitmapSetGetClear(t *testing.T) {
	var bm presenceBitmap

	for _, i := range []byte{0, 63, 64, 127, 128, 191, 192, 255} {
		if bm.get(i) {
			t.Fatalf("bit %d should be clear initially", i)
		}
	}

	for _, i := range []byte{0, 1, 63, 64, 100, 200, 255} {
		bm.set(i)
		if !bm.get(i) {
			t.Fatalf("bit %d should be set after set", i)
		}
	}

	for _, i := range []byte{2, 62, 65, 199, 254} {
		if bm.get(i) {
			t.Fatalf("bit %d unexpectedly set", i)
		}
	}

	for _, i := range []byte{0, 63, 200, 255} {
		bm.clear(i)
		if bm.get(i) {
			t.Fatalf("bit %d should be clear after clear", i)
		}
	}
}

func TestPresenceBitmapRankSelect(t *testing.T) {
	var bm presenceBitmap
	set := []byte{0, 5, 64, 100, 200, 255}
	for _, b := range set {
		bm.set(b)
	}
	if got := bm.count(); got != len(set) {
		t.Fatalf("count: got %d want %d", got, len(set))
	}
	if got := bm.rank(0); got != 1 {
		t.Fatalf("rank(0): got %d want 1", got)
	}
	if got := bm.rank(63); got != 2 {
		t.Fatalf("rank(63): got %d want 2", got)
	}
	if got := bm.rank(255); got != 6 {
		t.Fatalf("rank(255): got %d want 6", got)
	}
	for idx, want := range set {
		got, ok := bm.selectBit(idx)
		if !ok || got != want {
			t.Fatalf("selectBit(%d): got (%d,%v) want %d", idx, got, ok, want)
		}
	}
	if _, ok := bm.selectBit(len(set)); ok {
		t.Fatalf("selectBit out of range should succeed as false")
	}
	if last, ok := bm.lastSet(); !ok || last != 255 {
		t.Fatalf("lastSet: got (%d,%v) want 255", last, ok)
	}
}

func TestPresenceBitmapBulkOperations(t *testing.T) {
	var bm presenceBitmap

	for i := byte(50); i <= 59; i++ {
		bm.set(i)
	}
	for i := byte(45); i <= 64; i++ {
		want := i >= 50 && i <= 59
		if bm.get(i) != want {
			t.Fatalf("range check: bit %d expected %v got %v", i, want, bm.get(i))
		}
	}

	for i := byte(50); i <= 59; i++ {
		bm.clear(i)
	}
	for i := byte(50); i <= 59; i++ {
		if bm.get(i) {
			t.Fatalf("bit %d should be clear after bulk clear", i)
		}
	}
}
