// Package fmtext is a minimal reference CSA (component C7): it builds the
// suffix array of T plus an implicit sentinel by sorting, and answers
// backward search with a pair of binary searches over that order.
//
// It is intentionally uncompressed — no BWT rank table, no succinct
// bitvectors — because CSA construction and its storage format are out of
// scope for the gap-matching core (spec.md §1's non-goals). Any
// production CSA satisfying [wtiface.CSA] can replace it.
package fmtext

import (
	"sort"

	"github.com/textidx/gapidx/internal/wtiface"
)

// sentinel is smaller than every real byte value (0..255), modelled as an
// out-of-band int so no byte value in T needs to be reserved.
const sentinel = -1

// CSA is a suffix-array-backed reference implementation of wtiface.CSA.
type CSA struct {
	n       int
	rawText []byte
	sa      []int // suffix array of T+sentinel, length n+1; sa[0] is always
	// the sentinel suffix itself, since sentinel sorts before every real byte.
}

// New builds the suffix array of text by sorting all n+1 suffixes of
// text+sentinel. This is the naive O(n^2 log n) construction; production
// deployments should supply a CSA built with a linear-time SA-IS style
// algorithm instead (construction is out of scope here).
func New(text []byte) *CSA {
	n := len(text)
	aug := make([]int, n+1)
	for i, c := range text {
		aug[i] = int(c)
	}
	aug[n] = sentinel

	sa := make([]int, n+1)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return lessSuffix(aug, sa[i], sa[j])
	})

	return &CSA{n: n, rawText: text, sa: sa}
}

// lessSuffix compares the suffixes of aug starting at i and j. Because
// sentinel occurs exactly once, at the last position of aug, no suffix is
// ever a proper prefix of another distinct suffix, so this terminates
// without running past the end of aug.
func lessSuffix(aug []int, i, j int) bool {
	for {
		if aug[i] != aug[j] {
			return aug[i] < aug[j]
		}
		i++
		j++
	}
}

// Size returns n, the length of the indexed text (sentinel excluded).
func (c *CSA) Size() int {
	return c.n
}

// SAValues returns the suffix array's text positions with the sentinel
// row removed, in rank order. This is the sequence the wavelet tree
// (internal/wavelet) is built over; ranks returned by BackwardSearch
// index directly into it.
func (c *CSA) SAValues() []int {
	return c.sa[1:]
}

// BackwardSearch returns the rank interval, in the reduced (sentinel-
// excluded) rank space returned by SAValues, of all suffixes prefixed by
// p.
func (c *CSA) BackwardSearch(p []byte) (wtiface.Range, bool) {
	if len(p) == 0 {
		return wtiface.Range{}, false
	}

	pat := make([]int, len(p))
	for i, b := range p {
		pat[i] = int(b)
	}

	total := len(c.sa)
	sp := sort.Search(total, func(k int) bool {
		return cmpSuffixPattern(c.augAt, c.sa[k], pat) >= 0
	})
	ep := sort.Search(total, func(k int) bool {
		return cmpSuffixPattern(c.augAt, c.sa[k], pat) > 0
	}) - 1

	// sentinel's rank is always 0 and always compares less than any
	// non-empty real pattern, so sp >= 1 whenever the pattern is found.
	if sp > ep || sp < 1 {
		return wtiface.Range{}, false
	}
	return wtiface.Range{Lo: sp - 1, Hi: ep - 1}, true
}

// augAt returns the augmented-text byte at position i (as int), or -2 —
// strictly less than sentinel and every real byte — if i runs past the
// end, so that a suffix shorter than the pattern correctly sorts before
// it instead of panicking.
func (c *CSA) augAt(i int) int {
	switch {
	case i < c.n:
		return int(c.rawText[i])
	case i == c.n:
		return sentinel
	default:
		return -2
	}
}

func cmpSuffixPattern(at func(int) int, start int, pat []int) int {
	for k, want := range pat {
		got := at(start + k)
		if got != want {
			if got < want {
				return -1
			}
			return 1
		}
	}
	return 0
}
