package gapidx

import "iter"

// Iterator is the lazy pull sequence over (a, b) match pairs (component
// C5). It is not restartable and not safe for concurrent use by more than
// one goroutine — each query owns its own Iterator, stacks and node
// cache frontier (spec §5).
type Iterator struct {
	cd    *coDescent
	cur   [2]int
	valid bool
}

func newIterator(csa CSA, wt WTSA, s1, s2 []byte, gMin, gMax int) (*Iterator, error) {
	if len(s1) == 0 || len(s2) == 0 {
		return nil, ErrEmptyPattern
	}
	if gMin > gMax {
		return nil, ErrInvalidGapRange
	}

	cd := &coDescent{
		lMin:  len(s1) + gMin,
		lMax:  len(s1) + gMax,
		s2Len: len(s2),
		bIdx:  -1,
	}

	root := newNodeCache(wt, wt.Root())

	if rng, ok := csa.BackwardSearch(s1); ok {
		cd.s0.push(stackFrame{sub: rng, node: root})
	}
	if rng, ok := csa.BackwardSearch(s2); ok {
		cd.s1.push(stackFrame{sub: rng, node: root})
	}

	it := &Iterator{cd: cd}
	it.Advance()
	return it, nil
}

// Valid reports whether Current holds a match pair.
func (it *Iterator) Valid() bool {
	return it.valid
}

// Current returns the match pair (a, b) at the iterator's current
// position. Only call this when Valid reports true.
func (it *Iterator) Current() (a, b int) {
	return it.cur[0], it.cur[1]
}

// Advance moves to the next match pair, or to the exhausted state.
func (it *Iterator) Advance() {
	a, b, ok := it.cd.step()
	it.valid = ok
	if ok {
		it.cur = [2]int{a, b}
	}
}

// Seq adapts the iterator to a range-over-func sequence of (a, b) pairs,
// for callers that prefer `for a, b := range it.Seq()`. Breaking out of
// the range early simply stops pulling further pairs.
func (it *Iterator) Seq() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for it.Valid() {
			a, b := it.Current()
			if !yield(a, b) {
				return
			}
			it.Advance()
		}
	}
}

// step performs one phase-A/phase-B advance and reports the new current
// pair, following spec §4.3's main loop.
func (cd *coDescent) step() (a, b int, ok bool) {
	cd.bIdx++
	if cd.bIdx >= len(cd.bValues) {
		if !cd.nextBatch() {
			return 0, 0, false
		}
	}
	return cd.a, cd.bValues[cd.bIdx] + cd.s2Len - 1, true
}
