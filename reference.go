package gapidx

import "sort"

// RefMatches runs the reference enumerator (component C4): it
// materialises every s2 occurrence, sorts the positions, and for each s1
// occurrence binary-searches the window of s2 positions satisfying the
// gap constraint. It exists as a correctness oracle and benchmark
// baseline (spec §4.4), not for production use on large texts, and its
// emission order is unspecified — see DESIGN.md's Open Question 1. For
// ordered (text-order) emission use [Index.Matches].
func RefMatches(csa CSA, wt WTSA, s1, s2 []byte, gMin, gMax int) ([][2]int, error) {
	if len(s1) == 0 || len(s2) == 0 {
		return nil, ErrEmptyPattern
	}
	if gMin > gMax {
		return nil, ErrInvalidGapRange
	}

	rng1, ok1 := csa.BackwardSearch(s1)
	rng2, ok2 := csa.BackwardSearch(s2)
	if !ok1 || !ok2 {
		return nil, nil
	}

	p2 := leaves(wt, rng2)
	sort.Ints(p2)

	lMin := len(s1) + gMin
	lMax := len(s1) + gMax

	var out [][2]int
	for _, a := range leaves(wt, rng1) {
		lo := sort.SearchInts(p2, a+lMin)
		hi := sort.SearchInts(p2, a+lMax+1)
		for _, b2 := range p2[lo:hi] {
			out = append(out, [2]int{a, b2 + len(s2) - 1})
		}
	}
	return out, nil
}

// leaves returns the text positions covered by every leaf in the WTSA
// reachable from rng, walking from the root left child first, which yields
// them in ascending text-position order (not lex-rank order).
func leaves(wt WTSA, rng Range) []int {
	if rng.Empty() {
		return nil
	}

	positions := make([]int, 0, rng.Len())
	type frame struct {
		node WTNode
		sub  Range
	}
	stack := []frame{{node: wt.Root(), sub: rng}}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if f.sub.Empty() {
			continue
		}
		if wt.IsLeaf(f.node) {
			lo, _ := wt.ValueRange(f.node)
			positions = append(positions, lo)
			continue
		}

		left, right := wt.Expand(f.node)
		leftSub, rightSub := wt.ExpandRange(f.node, f.sub)
		stack = append(stack, frame{node: right, sub: rightSub}, frame{node: left, sub: leftSub})
	}

	return positions
}
