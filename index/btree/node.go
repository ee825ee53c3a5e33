package btree

import "github.com/cockroachdb/errors"

// Node is one page of the tree. Capacity is fixed when the node is created:
// 2t-1 key slots and 2t child slots. Only the first N keys (and, for internal
// nodes, the first N+1 children) are live.
type Node struct {
	keys     []int64
	children []*Node
	n        int
	leaf     bool
	next     *Node // leaf chain, not an ownership edge
	t        int
}

func newNode(t int, leaf bool) *Node {
	nd := &Node{
		keys: make([]int64, 2*t-1),
		leaf: leaf,
		t:    t,
	}
	if !leaf {
		nd.children = make([]*Node, 2*t)
	}
	return nd
}

func (nd *Node) Key(i int) int64       { return nd.keys[i] }
func (nd *Node) SetKey(i int, k int64) { nd.keys[i] = k }
func (nd *Node) N() int                { return nd.n }
func (nd *Node) IsLeaf() bool          { return nd.leaf }
func (nd *Node) Next() *Node           { return nd.next }
func (nd *Node) SetNext(next *Node)    { nd.next = next }
func (nd *Node) T() int                { return nd.t }

// Child returns the child at slot i, or nil for leaves.
func (nd *Node) Child(i int) *Node {
	if nd.leaf {
		return nil
	}
	return nd.children[i]
}

func (nd *Node) SetChild(i int, c *Node) {
	nd.children[i] = c
}

// SetN sets the live key count.
func (nd *Node) SetN(n int) {
	if n < 0 || n > len(nd.keys) {
		panic(errors.AssertionFailedf("btree: node count %d outside [0, %d]", n, len(nd.keys)))
	}
	nd.n = n
}

// Keys returns a copy of the live keys.
func (nd *Node) Keys() []int64 {
	out := make([]int64, nd.n)
	copy(out, nd.keys[:nd.n])
	return out
}

func (nd *Node) full() bool { return nd.n == 2*nd.t-1 }

// lowerBound returns the index of the first live key >= k.
func (nd *Node) lowerBound(k int64) int {
	lo, hi := 0, nd.n
	for lo < hi {
		m := (lo + hi) / 2
		if nd.keys[m] < k {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// insertKeyAt shifts keys[pos:n] one slot right and writes k at pos.
func (nd *Node) insertKeyAt(pos int, k int64) {
	copy(nd.keys[pos+1:nd.n+1], nd.keys[pos:nd.n])
	nd.keys[pos] = k
	nd.n++
}

// removeKeyAt shifts keys[pos+1:n] one slot left. The count is not touched.
func (nd *Node) removeKeyAt(pos int) {
	copy(nd.keys[pos:nd.n-1], nd.keys[pos+1:nd.n])
}

// insertChildAt shifts children[pos:n+1] one slot right and writes c at pos.
// It must be called before the matching key insert bumps n.
func (nd *Node) insertChildAt(pos int, c *Node) {
	copy(nd.children[pos+1:nd.n+2], nd.children[pos:nd.n+1])
	nd.children[pos] = c
}

// removeChildAt shifts children[pos+1:n+1] one slot left and clears the
// vacated tail slot.
func (nd *Node) removeChildAt(pos int) {
	copy(nd.children[pos:nd.n], nd.children[pos+1:nd.n+1])
	nd.children[nd.n] = nil
}
