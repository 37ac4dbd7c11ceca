package bitvector

import "testing"

// lcg is a tiny deterministic generator for reproducible bit patterns.
type lcg uint64

func (g *lcg) next() uint64 {
	*g = *g*6364136223846793005 + 1442695040888963407
	return uint64(*g) >> 33
}

func buildPattern(n int, density uint64) (*Vector, []bool) {
	b := NewBuilder(uint32(n))
	bits := make([]bool, n)
	g := lcg(42)
	for i := range bits {
		bits[i] = g.next()%density == 0
		b.PushBit(bits[i])
	}
	return b.Build(), bits
}

func TestVector_GetRank(t *testing.T) {
	// 1500 bits spans multiple superblocks.
	v, bits := buildPattern(1500, 3)

	if v.Len() != 1500 {
		t.Fatalf("expected len 1500, got %d", v.Len())
	}

	rank := uint32(0)
	for i, set := range bits {
		if v.Get(uint32(i)) != set {
			t.Fatalf("bit %d: expected %v", i, set)
		}
		if got := v.Rank(uint32(i)); got != rank {
			t.Fatalf("rank(%d): expected %d, got %d", i, rank, got)
		}
		if set {
			rank++
		}
	}
	if v.Rank(v.Len()) != v.Count() {
		t.Errorf("rank(len): expected %d, got %d", v.Count(), v.Rank(v.Len()))
	}
	if v.Count() != rank {
		t.Errorf("count: expected %d, got %d", rank, v.Count())
	}
}

func TestVector_Select(t *testing.T) {
	v, bits := buildPattern(1500, 3)

	n := uint32(0)
	for i, set := range bits {
		if !set {
			continue
		}
		if got := v.Select(n); got != uint32(i) {
			t.Fatalf("select(%d): expected %d, got %d", n, i, got)
		}
		n++
	}
}

func TestVector_FindNextSet(t *testing.T) {
	v, bits := buildPattern(700, 10)

	for pos := 0; pos <= len(bits); pos++ {
		want := uint32(len(bits))
		for i := pos; i < len(bits); i++ {
			if bits[i] {
				want = uint32(i)
				break
			}
		}
		if got := v.FindNextSet(uint32(pos)); got != want {
			t.Fatalf("findNextSet(%d): expected %d, got %d", pos, want, got)
		}
	}
}

func TestVector_Empty(t *testing.T) {
	v := NewBuilder(0).Build()

	if v.Len() != 0 || v.Count() != 0 {
		t.Fatalf("expected empty vector, got len=%d count=%d", v.Len(), v.Count())
	}
	if got := v.FindNextSet(0); got != 0 {
		t.Errorf("findNextSet on empty: expected 0, got %d", got)
	}
	if got := v.Rank(0); got != 0 {
		t.Errorf("rank on empty: expected 0, got %d", got)
	}
}

func TestBuilder_PushZerosAndSet(t *testing.T) {
	b := NewBuilder(16)
	b.PushZeros(5)
	b.PushBit(true)
	b.PushZeros(130) // crosses word boundaries
	b.PushBit(true)
	b.Set(2)

	v := b.Build()
	if v.Len() != 137 {
		t.Fatalf("expected len 137, got %d", v.Len())
	}
	if v.Count() != 3 {
		t.Fatalf("expected count 3, got %d", v.Count())
	}
	for _, pos := range []uint32{2, 5, 136} {
		if !v.Get(pos) {
			t.Errorf("expected bit %d set", pos)
		}
	}
	if v.Select(0) != 2 || v.Select(1) != 5 || v.Select(2) != 136 {
		t.Errorf("unexpected select positions: %d %d %d", v.Select(0), v.Select(1), v.Select(2))
	}
}

func TestBuilder_SetOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range Set")
		}
	}()
	b := NewBuilder(8)
	b.PushBit(false)
	b.Set(1)
}

func TestFromWords_Roundtrip(t *testing.T) {
	v, _ := buildPattern(300, 2)

	words := make([]uint64, len(v.Words()))
	copy(words, v.Words())
	rebuilt := FromWords(words, v.Len())

	if rebuilt.Count() != v.Count() {
		t.Fatalf("count mismatch: %d vs %d", rebuilt.Count(), v.Count())
	}
	for i := uint32(0); i < v.Len(); i++ {
		if rebuilt.Get(i) != v.Get(i) {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestFromWords_ClearsPadding(t *testing.T) {
	// Trailing garbage beyond size must not leak into counts.
	v := FromWords([]uint64{^uint64(0)}, 4)

	if v.Count() != 4 {
		t.Fatalf("expected count 4, got %d", v.Count())
	}
	if got := v.FindNextSet(4); got != 4 {
		t.Errorf("expected no set bits past size, got %d", got)
	}
}
