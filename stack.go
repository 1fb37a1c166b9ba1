package gapidx

// stackFrame pairs a lex sub-range with the cached node it was carved
// from (spec §3, "Stack frame").
type stackFrame struct {
	sub  Range
	node *nodeCache
}

// frameStack is a LIFO over stackFrame, ordered so that top() always
// holds the frame with the smallest value-range lo (invariant I1). The
// wavelet tree's left child always covers a value range strictly below
// its right child's, so pushing right-then-left (see split, below)
// maintains that invariant with a plain slice — no priority queue needed,
// mirroring the teacher's push-right-then-left discipline in
// table_iter.go's Supernets/Subnets traversal stacks.
type frameStack struct {
	frames []stackFrame
}

func (s *frameStack) empty() bool {
	return len(s.frames) == 0
}

func (s *frameStack) top() stackFrame {
	return s.frames[len(s.frames)-1]
}

func (s *frameStack) push(f stackFrame) {
	if f.sub.Empty() {
		return
	}
	s.frames = append(s.frames, f)
}

func (s *frameStack) pop() stackFrame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]
	return f
}

// split pops the top frame, materialises its node's children, projects
// the frame's lex sub-range onto them, and pushes the non-empty results
// back in right-then-left order so the stack keeps invariant I1.
func (s *frameStack) split() {
	top := s.pop()

	left, right := top.node.ensureChildren()
	leftSub, rightSub := top.node.wt.ExpandRange(top.node.node, top.sub)

	s.push(stackFrame{sub: rightSub, node: right})
	s.push(stackFrame{sub: leftSub, node: left})
}
