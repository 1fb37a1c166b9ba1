package bitset

import "testing"

func TestSetTestClear(t *testing.T) {
	var b BitSet

	for _, i := range []uint{0, 1, 63, 64, 65, 200} {
		b.Set(i)
	}

	for _, i := range []uint{0, 1, 63, 64, 65, 200} {
		if !b.Test(i) {
			t.Fatalf("Test(%d) = false, want true", i)
		}
	}

	for _, i := range []uint{2, 62, 66, 199, 201} {
		if b.Test(i) {
			t.Fatalf("Test(%d) = true, want false", i)
		}
	}
}

func TestCount(t *testing.T) {
	var b BitSet
	want := 0
	for _, i := range []uint{0, 5, 63, 64, 127, 128, 300} {
		b.Set(i)
		want++
	}

	if got := b.Count(); got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
}

func TestRank(t *testing.T) {
	var b BitSet
	set := []uint{2, 5, 64, 70, 130}
	for _, i := range set {
		b.Set(i)
	}

	tests := []struct {
		idx  uint
		rank int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 1},
		{5, 2},
		{63, 2},
		{64, 3},
		{69, 3},
		{70, 4},
		{129, 4},
		{130, 5},
		{500, 5},
	}

	for _, tc := range tests {
		if got := b.Rank(tc.idx); got != tc.rank {
			t.Errorf("Rank(%d) = %d, want %d", tc.idx, got, tc.rank)
		}
		if got, want := b.Rank0(tc.idx), int(tc.idx+1)-tc.rank; got != want {
			t.Errorf("Rank0(%d) = %d, want %d", tc.idx, got, want)
		}
	}
}

func TestNextSetAndAll(t *testing.T) {
	var b BitSet
	set := []uint{3, 64, 65, 200}
	for _, i := range set {
		b.Set(i)
	}

	var got []uint
	for v := range b.All() {
		got = append(got, v)
	}

	if len(got) != len(set) {
		t.Fatalf("All() yielded %d bits, want %d", len(got), len(set))
	}
	for i, v := range set {
		if got[i] != v {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], v)
		}
	}

	next, ok := b.NextSet(4)
	if !ok || next != 64 {
		t.Fatalf("NextSet(4) = (%d, %v), want (64, true)", next, ok)
	}

	if _, ok := b.NextSet(201); ok {
		t.Fatalf("NextSet(201) = ok, want false")
	}
}

func TestClone(t *testing.T) {
	var b BitSet
	b.Set(10)
	c := b.Clone()
	c.Set(20)

	if b.Test(20) {
		t.Fatalf("Clone is not independent of original")
	}
	if !c.Test(10) || !c.Test(20) {
		t.Fatalf("Clone missing bits from original")
	}
}
