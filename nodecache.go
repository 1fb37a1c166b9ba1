package gapidx

import "sync"

// nodeCache lazily materialises a WTSA node's children and remembers its
// value range and leaf flag, so that stack frames referring to the same
// tree node never re-derive either. Ownership is shared: a nodeCache stays
// alive as long as any stack frame holds it, the same way the teacher's
// bartNode.children entries are shared across whatever still references
// them (bartnode.go).
//
// ensureChildren is guarded by sync.Once rather than a plain "already
// expanded" bool: within one query the co-descent engine is single-
// threaded (spec §5) and a bool would suffice, but a nodeCache may
// legitimately be shared across concurrent queries reading the same
// index, and sync.Once makes that safe for free.
type nodeCache struct {
	wt   WTSA
	node WTNode

	lo, hi int
	leaf   bool

	once     sync.Once
	children [2]*nodeCache // [0]=left, [1]=right
}

// newNodeCache materialises the cache entry for n. This is constant work:
// it only reads ValueRange and IsLeaf.
func newNodeCache(wt WTSA, n WTNode) *nodeCache {
	lo, hi := wt.ValueRange(n)
	return &nodeCache{
		wt:   wt,
		node: n,
		lo:   lo,
		hi:   hi,
		leaf: wt.IsLeaf(n),
	}
}

// ensureChildren materialises nc's children exactly once, no matter how
// many stack frames call it concurrently.
func (nc *nodeCache) ensureChildren() (left, right *nodeCache) {
	nc.once.Do(func() {
		l, r := nc.wt.Expand(nc.node)
		nc.children[0] = newNodeCache(nc.wt, l)
		nc.children[1] = newNodeCache(nc.wt, r)
	})
	return nc.children[0], nc.children[1]
}
