package gapidx

import (
	"reflect"
	"sort"
	"testing"
)

// collect drains it into an ordered slice of (a, b) pairs.
func collect(t *testing.T, it *Iterator) [][2]int {
	t.Helper()
	var out [][2]int
	for it.Valid() {
		a, b := it.Current()
		out = append(out, [2]int{a, b})
		it.Advance()
	}
	return out
}

func mustIndex(t *testing.T, text string) *Index {
	t.Helper()
	idx, err := New([]byte(text))
	if err != nil {
		t.Fatalf("New(%q): %v", text, err)
	}
	return idx
}

func TestEndToEndScenarios(t *testing.T) {
	// Gap is defined by spec.md §1 as (b-|s2|+1)-(a+|s1|). Two of spec.md's
	// worked "ababab" examples don't hold up against that formula (and
	// against the original_source match_ref semantics of emitting every
	// s1-occurrence/s2-occurrence pair in gap range, not just the first
	// per a) once hand-checked — see DESIGN.md's Open Question decision on
	// end-to-end scenarios 2 and 3. Cases below use the verified gap
	// values.
	cases := []struct {
		name         string
		text, s1, s2 string
		gMin, gMax   int
		want         [][2]int
	}{
		{"exact-adjacency", "ababab", "a", "b", 0, 0, [][2]int{{0, 1}, {2, 3}, {4, 5}}},
		{"gap-one-is-empty", "ababab", "a", "b", 1, 1, nil},
		{"gap-two", "ababab", "a", "b", 2, 2, [][2]int{{0, 3}, {2, 5}}},
		{"two-byte-patterns", "ababab", "ab", "ab", 0, 3, [][2]int{{0, 3}, {0, 5}, {2, 5}}},
		{"absent-s1", "xxxxx", "y", "x", 0, 100, nil},
		{"tight-gap-excluded", "aXXa", "a", "a", 0, 1, nil},
		{"tight-gap-included", "aXXa", "a", "a", 2, 2, [][2]int{{0, 3}}},
		{"digits-wide-gap", "0123456789", "2", "7", 0, 100, [][2]int{{2, 7}}},
		{"digits-exact-gap-miss", "0123456789", "2", "7", 5, 5, nil},
		{"digits-exact-gap-hit", "0123456789", "2", "7", 4, 4, [][2]int{{2, 7}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			idx := mustIndex(t, c.text)
			it, err := idx.Matches([]byte(c.s1), []byte(c.s2), c.gMin, c.gMax)
			if err != nil {
				t.Fatalf("Matches: %v", err)
			}
			got := collect(t, it)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Matches(%q,%q,%d,%d) on %q = %v, want %v",
					c.s1, c.s2, c.gMin, c.gMax, c.text, got, c.want)
			}
		})
	}
}

func TestNewRejectsEmptyText(t *testing.T) {
	if _, err := New(nil); err != ErrConstruction {
		t.Errorf("New(nil): err = %v, want ErrConstruction", err)
	}
	if _, err := New([]byte{}); err != ErrConstruction {
		t.Errorf("New([]byte{}): err = %v, want ErrConstruction", err)
	}
}

func TestMatchesRejectsEmptyPattern(t *testing.T) {
	idx := mustIndex(t, "abc")
	if _, err := idx.Matches(nil, []byte("a"), 0, 1); err != ErrEmptyPattern {
		t.Errorf("Matches with empty s1: err = %v, want ErrEmptyPattern", err)
	}
	if _, err := idx.Matches([]byte("a"), nil, 0, 1); err != ErrEmptyPattern {
		t.Errorf("Matches with empty s2: err = %v, want ErrEmptyPattern", err)
	}
}

func TestMatchesRejectsInvalidGapRange(t *testing.T) {
	idx := mustIndex(t, "abc")
	if _, err := idx.Matches([]byte("a"), []byte("b"), 3, 1); err != ErrInvalidGapRange {
		t.Errorf("Matches with gMin>gMax: err = %v, want ErrInvalidGapRange", err)
	}
}

func TestRefMatchesRejectsInvalidInput(t *testing.T) {
	idx := mustIndex(t, "abc")
	if _, err := idx.MatchesRef(nil, []byte("a"), 0, 1); err != ErrEmptyPattern {
		t.Errorf("MatchesRef with empty s1: err = %v, want ErrEmptyPattern", err)
	}
	if _, err := idx.MatchesRef([]byte("a"), []byte("b"), 3, 1); err != ErrInvalidGapRange {
		t.Errorf("MatchesRef with gMin>gMax: err = %v, want ErrInvalidGapRange", err)
	}
}

// P3: emitted a values are non-decreasing.
func TestAMonotonicity(t *testing.T) {
	idx := mustIndex(t, "abababcababab")
	it, err := idx.Matches([]byte("ab"), []byte("ab"), 0, 5)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	pairs := collect(t, it)
	for i := 1; i < len(pairs); i++ {
		if pairs[i][0] < pairs[i-1][0] {
			t.Fatalf("a not monotone at %d: %v then %v", i, pairs[i-1], pairs[i])
		}
	}
}

// P4: for consecutive emissions sharing the same a, b strictly increases.
func TestPerABMonotonicity(t *testing.T) {
	idx := mustIndex(t, "abababcababab")
	it, err := idx.Matches([]byte("ab"), []byte("ab"), 0, 5)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	pairs := collect(t, it)
	for i := 1; i < len(pairs); i++ {
		if pairs[i][0] == pairs[i-1][0] && pairs[i][1] <= pairs[i-1][1] {
			t.Fatalf("b not strictly increasing for shared a at %d: %v then %v", i, pairs[i-1], pairs[i])
		}
	}
}

// P2: every emitted pair actually satisfies the gap constraint against T.
func TestGapCorrectness(t *testing.T) {
	text := "abababcababab"
	s1, s2 := []byte("ab"), []byte("ab")
	gMin, gMax := 0, 5
	idx := mustIndex(t, text)
	it, err := idx.Matches(s1, s2, gMin, gMax)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	raw := []byte(text)
	for it.Valid() {
		a, b := it.Current()
		if a+len(s1) > len(raw) || string(raw[a:a+len(s1)]) != string(s1) {
			t.Fatalf("a=%d does not start s1 in %q", a, text)
		}
		s2Start := b - len(s2) + 1
		if s2Start < 0 || b+1 > len(raw) || string(raw[s2Start:b+1]) != string(s2) {
			t.Fatalf("b=%d does not end s2 in %q", b, text)
		}
		gap := s2Start - (a + len(s1))
		if gap < gMin || gap > gMax {
			t.Fatalf("pair (%d,%d) has gap %d outside [%d,%d]", a, b, gap, gMin, gMax)
		}
		it.Advance()
	}
}

// P1 / P5: C3 (DFS) and C4 (reference) agree exactly, as sets, across a
// spread of texts and gap windows.
func TestOracleEquivalence(t *testing.T) {
	cases := []struct {
		text, s1, s2 string
		gMin, gMax   int
	}{
		{"ababab", "a", "b", 0, 0},
		{"ababab", "a", "b", 1, 1},
		{"ababab", "ab", "ab", 0, 3},
		{"aXXa", "a", "a", 0, 1},
		{"aXXa", "a", "a", 2, 2},
		{"0123456789", "2", "7", 0, 100},
		{"mississippi", "is", "ss", 0, 10},
		{"mississippi", "i", "i", 0, 10},
		{"aaaaaaaaaa", "aa", "aa", 0, 5},
		{"banana", "an", "na", 0, 2},
	}

	for _, c := range cases {
		idx := mustIndex(t, c.text)

		it, err := idx.Matches([]byte(c.s1), []byte(c.s2), c.gMin, c.gMax)
		if err != nil {
			t.Fatalf("%+v: Matches: %v", c, err)
		}
		dfs := collect(t, it)

		ref, err := idx.MatchesRef([]byte(c.s1), []byte(c.s2), c.gMin, c.gMax)
		if err != nil {
			t.Fatalf("%+v: MatchesRef: %v", c, err)
		}

		sort.Slice(dfs, func(i, j int) bool {
			if dfs[i][0] != dfs[j][0] {
				return dfs[i][0] < dfs[j][0]
			}
			return dfs[i][1] < dfs[j][1]
		})
		sort.Slice(ref, func(i, j int) bool {
			if ref[i][0] != ref[j][0] {
				return ref[i][0] < ref[j][0]
			}
			return ref[i][1] < ref[j][1]
		})

		if !reflect.DeepEqual(dfs, ref) {
			t.Errorf("%+v: DFS = %v, ref = %v", c, dfs, ref)
		}
	}
}

// P6: building the index twice on the same text yields identical emissions.
func TestConstructionIdempotence(t *testing.T) {
	idx1 := mustIndex(t, "abababcababab")
	idx2 := mustIndex(t, "abababcababab")

	it1, err := idx1.Matches([]byte("ab"), []byte("ab"), 0, 5)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	it2, err := idx2.Matches([]byte("ab"), []byte("ab"), 0, 5)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}

	got1, got2 := collect(t, it1), collect(t, it2)
	if !reflect.DeepEqual(got1, got2) {
		t.Errorf("two Index builds over the same text disagree: %v vs %v", got1, got2)
	}
}

// P7: exact gap windows (gMin == gMax) return only exact-distance matches.
func TestBoundaryGaps(t *testing.T) {
	idx := mustIndex(t, "aXXa")

	it, err := idx.Matches([]byte("a"), []byte("a"), 0, 0)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if it.Valid() {
		t.Errorf("gMin=gMax=0 over \"aXXa\" should match nothing, got %v", collect(t, it))
	}

	it, err = idx.Matches([]byte("a"), []byte("a"), 2, 2)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	want := [][2]int{{0, 3}}
	if got := collect(t, it); !reflect.DeepEqual(got, want) {
		t.Errorf("gMin=gMax=2 over \"aXXa\" = %v, want %v", got, want)
	}
}

// P8: absent pattern yields an iterator that is exhausted from the start.
func TestAbsentPatternYieldsExhaustedIterator(t *testing.T) {
	idx := mustIndex(t, "xxxxx")
	it, err := idx.Matches([]byte("y"), []byte("x"), 0, 100)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if it.Valid() {
		t.Fatalf("expected iterator to be exhausted from the start, got %v", collect(t, it))
	}
}

func TestIteratorSeq(t *testing.T) {
	idx := mustIndex(t, "ababab")
	it, err := idx.Matches([]byte("a"), []byte("b"), 0, 0)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}

	var got [][2]int
	for a, b := range it.Seq() {
		got = append(got, [2]int{a, b})
	}
	want := [][2]int{{0, 1}, {2, 3}, {4, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Seq() = %v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	idx := mustIndex(t, "banana")

	if _, ok := idx.Contains([]byte("ana")); !ok {
		t.Errorf("expected \"ana\" to be found in \"banana\"")
	}
	if _, ok := idx.Contains([]byte("xyz")); ok {
		t.Errorf("expected \"xyz\" to be absent from \"banana\"")
	}
}

func TestSize(t *testing.T) {
	idx := mustIndex(t, "banana")
	if got := idx.Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
}
