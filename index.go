package gapidx

import (
	"log/slog"
	"time"

	"github.com/textidx/gapidx/internal/fmtext"
	"github.com/textidx/gapidx/internal/metrics"
	"github.com/textidx/gapidx/internal/wavelet"
)

// Index is the façade over a CSA and WTSA built from one text (component
// C6). It owns its storage and hands query operations to the co-descent
// engine (C3) or the reference enumerator (C4). An Index is immutable
// after New returns and is safe for concurrent queries — spec §5's
// single-threaded-per-query model holds per Iterator, not per Index.
type Index struct {
	csa CSA
	wt  WTSA
	m   *metrics.Metrics
}

// New builds an Index over text using the package's reference CSA/WTSA
// backing (internal/fmtext, internal/wavelet). Construction is naive —
// O(n^2 log n) suffix sorting — by design: the spec treats CSA/WTSA
// construction as a collaborator contract, not this package's concern.
// Large texts should be indexed with a production CSA/WTSA pair via
// [NewFrom] instead. New returns [ErrConstruction] for empty text, since
// an empty text has no suffix array rows to index.
func New(text []byte) (*Index, error) {
	if len(text) == 0 {
		return nil, ErrConstruction
	}

	start := time.Now()

	csa := fmtext.New(text)
	wt := wavelet.Build(csa.SAValues())

	idx := NewFrom(csa, wt)
	idx.m.ObserveConstruction(len(text), time.Since(start))
	slog.Debug("gapidx: index built", "bytes", len(text), "elapsed", time.Since(start))

	return idx, nil
}

// NewFrom builds an Index directly from caller-supplied CSA/WTSA
// collaborators, for production deployments backed by a succinct,
// disk-resident index rather than this package's in-memory reference.
func NewFrom(csa CSA, wt WTSA) *Index {
	return &Index{csa: csa, wt: wt, m: metrics.New()}
}

// Size returns n, the length of the indexed text.
func (idx *Index) Size() int {
	return idx.csa.Size()
}

// Contains returns the suffix-array rank interval of p, mirroring
// component C1 directly.
func (idx *Index) Contains(p []byte) (Range, bool) {
	return idx.csa.BackwardSearch(p)
}

// Matches returns a lazy, text-order iterator over every (a, b) pair
// satisfying the gap constraint, computed by the DFS co-descent
// algorithm (component C3). It returns [ErrEmptyPattern] if s1 or s2 is
// empty, or [ErrInvalidGapRange] if gMin > gMax; absence of either
// pattern from the text is not an error — the returned iterator is
// simply exhausted from the start (spec §7, IndexAbsent).
func (idx *Index) Matches(s1, s2 []byte, gMin, gMax int) (*Iterator, error) {
	start := time.Now()
	it, err := newIterator(idx.csa, idx.wt, s1, s2, gMin, gMax)
	if err != nil {
		return nil, err
	}
	idx.m.ObserveQuery("dfs", time.Since(start))
	return it, nil
}

// MatchesRef returns every (a, b) pair satisfying the gap constraint,
// computed by the reference/oracle algorithm (component C4). Its
// emission order is unspecified (see DESIGN.md); use [Index.Matches] for
// text-order results.
func (idx *Index) MatchesRef(s1, s2 []byte, gMin, gMax int) ([][2]int, error) {
	start := time.Now()
	out, err := RefMatches(idx.csa, idx.wt, s1, s2, gMin, gMax)
	if err != nil {
		return nil, err
	}
	idx.m.ObserveQuery("ref", time.Since(start))
	return out, nil
}

// Collector exposes the index's construction/query counters for a
// caller to register with a Prometheus registry (via its Collectors
// method). Every Index built by New or NewFrom carries its own Metrics,
// unregistered until the caller registers it.
func (idx *Index) Collector() *metrics.Metrics {
	return idx.m
}
