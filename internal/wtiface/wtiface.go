// Package wtiface defines the CSA and WTSA collaborator contracts (spec
// components C1 and C2's substrate) in a leaf package so that both the
// root gapidx package and its reference backings (internal/fmtext,
// internal/wavelet) can depend on the same types without an import
// cycle. The root package re-exports these via type aliases, the same
// way the teacher's common.go aliases internal/nodes types (e.g.
// `type stridePath = nodes.StridePath`).
package wtiface

// Range is an inclusive interval of suffix-array ranks, [Lo, Hi]. A Range
// is empty when Hi < Lo.
type Range struct {
	Lo, Hi int
}

// Empty reports whether r contains no ranks.
func (r Range) Empty() bool {
	return r.Hi < r.Lo
}

// Len returns the number of ranks covered by r.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// CSA is the compressed-suffix-array collaborator (component C1).
type CSA interface {
	// Size returns n, the length of the indexed text (sentinel excluded).
	Size() int

	// BackwardSearch returns the rank interval [sp, ep] of all suffixes
	// prefixed by p, and false if p does not occur in the text.
	BackwardSearch(p []byte) (rng Range, ok bool)
}

// WTNode is an opaque handle to a node of the wavelet tree built over the
// suffix array's values (component C2's underlying collaborator).
type WTNode any

// WTSA is the wavelet-tree-over-suffix-array-values collaborator
// (component C2/C3's substrate).
type WTSA interface {
	// Root returns the root node, whose value range is [0, Size()-1].
	Root() WTNode

	// ValueRange returns the contiguous text-position range [lo, hi]
	// still reachable beneath n.
	ValueRange(n WTNode) (lo, hi int)

	// IsLeaf reports whether n represents exactly one text position.
	IsLeaf(n WTNode) bool

	// Expand returns n's two structural children.
	Expand(n WTNode) (left, right WTNode)

	// ExpandRange projects the lex sub-range [a, b] of n onto n's two
	// children's own lex sub-ranges. Either returned range may be empty.
	ExpandRange(n WTNode, sub Range) (left, right Range)
}
