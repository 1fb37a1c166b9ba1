// Package wavelet is a minimal reference WTSA (component C8): a binary
// tree built directly over a permutation of [0, n) (the suffix array's
// values, sentinel excluded), with each internal node splitting its
// covered value range at the midpoint and recording, in a per-node
// bitset, which of its locally-held elements went left or right.
//
// Because the sequence at any node is a permutation of the integers in
// that node's own value range, the node's local length always equals
// hi-lo+1 — no separate bookkeeping of "how many elements landed here" is
// needed beyond the value range itself. ExpandRange projects a lex
// sub-range onto the two children purely via bitset.Rank, the same way
// the teacher's sparse.Array turns a bit test into an Items offset
// (internal/sparse/array.go, not carried into this module — see
// DESIGN.md — but the rank-to-offset idiom is the same).
package wavelet

import (
	"github.com/textidx/gapidx/internal/bitset"
	"github.com/textidx/gapidx/internal/wtiface"
)

type node struct {
	lo, hi int
	leaf   bool

	// goesRight[i] is set iff the i-th element (in rank order) of this
	// node's local subsequence belongs to the right child. Local length
	// is always hi-lo+1.
	goesRight bitset.BitSet

	left, right *node
}

// Tree is a wtiface.WTSA built eagerly over a full permutation of
// [0, n). Eager, non-succinct construction is acceptable for a reference
// backing; a production WTSA would build this lazily and rank-compress
// each level instead of storing a bitset per node.
type Tree struct {
	root *node
	n    int
}

// Build constructs a Tree over saValues, which must be a permutation of
// [0, len(saValues)).
func Build(saValues []int) *Tree {
	n := len(saValues)
	return &Tree{root: build(0, n-1, saValues), n: n}
}

func build(lo, hi int, values []int) *node {
	nd := &node{lo: lo, hi: hi}
	if lo == hi {
		nd.leaf = true
		return nd
	}

	mid := lo + (hi-lo)/2

	leftVals := make([]int, 0, len(values))
	rightVals := make([]int, 0, len(values))
	var bits bitset.BitSet
	for i, v := range values {
		if v <= mid {
			leftVals = append(leftVals, v)
		} else {
			bits.Set(uint(i))
			rightVals = append(rightVals, v)
		}
	}

	nd.goesRight = bits
	nd.left = build(lo, mid, leftVals)
	nd.right = build(mid+1, hi, rightVals)
	return nd
}

// Root returns the root node, whose value range is [0, n-1].
func (t *Tree) Root() wtiface.WTNode {
	return t.root
}

// ValueRange returns the text-position range [lo, hi] reachable beneath n.
func (t *Tree) ValueRange(n wtiface.WTNode) (lo, hi int) {
	nd := n.(*node)
	return nd.lo, nd.hi
}

// IsLeaf reports whether n represents exactly one text position.
func (t *Tree) IsLeaf(n wtiface.WTNode) bool {
	return n.(*node).leaf
}

// Expand returns n's two structural children.
func (t *Tree) Expand(n wtiface.WTNode) (left, right wtiface.WTNode) {
	nd := n.(*node)
	return nd.left, nd.right
}

// ExpandRange projects the lex sub-range sub (local to n, 0-based,
// 0 <= sub.Lo <= sub.Hi <= n.hi-n.lo) onto n's two children's own local
// lex sub-ranges.
func (t *Tree) ExpandRange(n wtiface.WTNode, sub wtiface.Range) (left, right wtiface.Range) {
	nd := n.(*node)
	if sub.Empty() || nd.leaf {
		return wtiface.Range{Lo: 0, Hi: -1}, wtiface.Range{Lo: 0, Hi: -1}
	}

	zerosBefore := func(upto int) int {
		if upto < 0 {
			return 0
		}
		return nd.goesRight.Rank0(uint(upto))
	}
	onesBefore := func(upto int) int {
		if upto < 0 {
			return 0
		}
		return nd.goesRight.Rank(uint(upto))
	}

	leftStart := zerosBefore(sub.Lo - 1)
	leftLen := zerosBefore(sub.Hi) - zerosBefore(sub.Lo-1)
	rightStart := onesBefore(sub.Lo - 1)
	rightLen := onesBefore(sub.Hi) - onesBefore(sub.Lo-1)

	left = wtiface.Range{Lo: leftStart, Hi: leftStart + leftLen - 1}
	right = wtiface.Range{Lo: rightStart, Hi: rightStart + rightLen - 1}
	return left, right
}
