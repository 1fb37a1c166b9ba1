package gapidx

// coDescent holds the two-stack frontier used by the DFS match algorithm
// (component C3). It implements the phase A / phase B loop from spec
// §4.3, directly following original_source's wild_card_match_iterator
// (next_batch / split_node / adjust_b_range).
type coDescent struct {
	s0, s1 frameStack // s0 backs s1-pattern occurrences, s1 backs s2-pattern occurrences

	bValues []int // ascending s2-positions currently in the gap window for a
	bIdx    int    // draining index into bValues for the current a

	a int

	lMin, lMax int // |s1|+gMin, |s1|+gMax
	s2Len      int
}

// adjustBWindow restores invariant I5 for the new current position a:
// it drops window entries now too close, then pulls in new ones from s1
// up to the new upper bound, splitting internal nodes as needed.
func (cd *coDescent) adjustBWindow() {
	// shrink
	for len(cd.bValues) > 0 && cd.a+cd.lMin > cd.bValues[0] {
		cd.bValues = cd.bValues[1:]
	}

	// expand
	for !cd.s1.empty() && cd.a+cd.lMax >= cd.s1.top().node.lo {
		top := cd.s1.top()
		if top.node.leaf {
			cd.bValues = append(cd.bValues, top.node.lo)
			cd.s1.pop()
		} else {
			cd.s1.split()
		}
	}
}

// nextBatch advances to the next a and (re-)populates bValues for it. It
// returns false once no further match exists, i.e. when either occurrence
// set is exhausted.
func (cd *coDescent) nextBatch() bool {
	cd.bIdx = 0

	// reuse path: the current b-window already reaches far enough right
	// that the next s0 leaf (whichever it turns out to be) can still
	// reuse some of it.
	for !cd.s0.empty() && len(cd.bValues) > 0 &&
		cd.s0.top().node.lo+cd.lMin <= cd.bValues[len(cd.bValues)-1] {
		top := cd.s0.top()
		if top.node.leaf {
			cd.a = top.node.lo
			cd.s0.pop()
			cd.adjustBWindow()
			if len(cd.bValues) > 0 {
				return true
			}
		} else {
			cd.s0.split()
		}
	}

	// fresh pair path: neither side has anything usable yet, narrow both
	// stacks down until a gap-overlapping pair of leaves is found.
	for !cd.s0.empty() && !cd.s1.empty() {
		t0, t1 := cd.s0.top(), cd.s1.top()

		switch {
		case t0.node.hi+cd.lMax < t1.node.lo:
			// every position under t0 is too far left for any position
			// under t1; t0 can never contribute again.
			cd.s0.pop()
		case t0.node.lo+cd.lMin > t1.node.hi:
			// symmetric: every position under t1 is too far left for t0,
			// and later s0 frames only lie further right.
			cd.s1.pop()
		case t0.node.leaf && t1.node.leaf:
			cd.a = t0.node.lo
			cd.bValues = append(cd.bValues, t1.node.lo)
			cd.s0.pop()
			cd.s1.pop()
			cd.adjustBWindow()
			return true
		default:
			if rangeSize(t1.node) > rangeSize(t0.node) {
				cd.s1.split()
			} else {
				cd.s0.split()
			}
		}
	}

	cd.bValues = nil
	return false
}

func rangeSize(nc *nodeCache) int {
	return nc.hi - nc.lo + 1
}
