package gapidx

import "github.com/textidx/gapidx/internal/wtiface"

// Range is an inclusive interval of suffix-array ranks, [Lo, Hi]. A Range
// is empty when Hi < Lo.
type Range = wtiface.Range

// CSA is the compressed-suffix-array collaborator (component C1). An
// implementation supports backward search: given a literal pattern p, it
// returns the lexicographic interval of suffix-array rows whose suffixes
// begin with p.
//
// Construction of a CSA from raw text is out of scope for this package;
// see internal/fmtext for a minimal reference backing.
type CSA = wtiface.CSA
