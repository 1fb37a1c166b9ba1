package gapidx

import "github.com/textidx/gapidx/internal/wtiface"

// WTNode is an opaque handle to a node of the wavelet tree built over the
// suffix array's values (component C2's underlying collaborator). Handles
// are only ever compared or passed back into the WTSA that produced them.
type WTNode = wtiface.WTNode

// WTSA is the wavelet-tree-over-suffix-array-values collaborator
// (component C2/C3's substrate). Each node covers a contiguous lex
// sub-range of SA rows and a contiguous value range of text positions.
//
// Construction of a WTSA from a suffix array is out of scope for this
// package; see internal/wavelet for a minimal reference backing.
type WTSA = wtiface.WTSA
