// Package btree implements an in-memory minimum-degree B-tree over int64 keys
// whose leaves are threaded into a left-to-right chain.
//
// Every node except the root holds between t-1 and 2t-1 keys. Insertion
// splits full nodes on the way down, deletion borrows from or merges with a
// sibling before descending into a child that holds only t-1 keys, so no
// operation ever has to walk back up the tree.
//
// A BTree is not safe for concurrent use.
package btree

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type BTree struct {
	root     *Node
	t        int // minimum degree; max keys = 2t-1
	log      *zap.Logger
	observer Observer
}

// New returns an empty tree of minimum degree t. It panics if t < 2.
func New(t int, opts ...Option) *BTree {
	if t < 2 {
		panic(errors.AssertionFailedf("btree: minimum degree must be at least 2, got %d", t))
	}
	bt := &BTree{t: t, log: zap.NewNop()}
	for _, opt := range opts {
		opt(bt)
	}
	bt.root = newNode(t, true)
	return bt
}

func (bt *BTree) T() int      { return bt.t }
func (bt *BTree) Root() *Node { return bt.root }

// Clear drops every node and starts over with an empty root leaf.
func (bt *BTree) Clear() {
	bt.root = newNode(bt.t, true)
}

func (bt *BTree) emit(e Event) {
	if bt.observer != nil {
		bt.observer(e)
	}
}

// --- SEARCH ---

// Search returns the node holding key, or nil if the key is absent.
func (bt *BTree) Search(key int64) *Node {
	return bt.search(bt.root, key)
}

// Contains reports whether key is stored in the tree.
func (bt *BTree) Contains(key int64) bool {
	return bt.Search(key) != nil
}

func (bt *BTree) search(x *Node, k int64) *Node {
	i := x.lowerBound(k)
	if i < x.n && x.keys[i] == k {
		return x
	}
	if x.leaf {
		return nil
	}
	return bt.search(x.children[i], k)
}

// --- INSERT ---

// Insert adds key. Duplicates are accepted and stored after the equal keys
// already present.
func (bt *BTree) Insert(key int64) {
	root := bt.root
	if root.full() {
		newRoot := newNode(bt.t, false)
		newRoot.children[0] = root
		bt.splitChild(newRoot, 0, root)
		bt.root = newRoot
		bt.log.Debug("root grew", zap.Int64("separator", newRoot.keys[0]))
		bt.emit(EventRootGrow)
	}
	bt.insertNonFull(bt.root, key)
}

func (bt *BTree) insertNonFull(x *Node, k int64) {
	i := x.n - 1
	if x.leaf {
		for i >= 0 && k < x.keys[i] {
			x.keys[i+1] = x.keys[i]
			i--
		}
		x.keys[i+1] = k
		x.n++
		return
	}

	for i >= 0 && k < x.keys[i] {
		i--
	}
	i++
	if x.children[i].full() {
		bt.splitChild(x, i, x.children[i])
		if k > x.keys[i] {
			i++
		}
	}
	bt.insertNonFull(x.children[i], k)
}

// splitChild splits y, the full child at x.children[i]. The upper t-1 keys
// (and t children) move to a new right sibling and the middle key moves up
// into x at slot i.
func (bt *BTree) splitChild(x *Node, i int, y *Node) {
	t := bt.t
	z := newNode(t, y.leaf)

	copy(z.keys, y.keys[t:2*t-1])
	z.n = t - 1
	if !y.leaf {
		copy(z.children, y.children[t:2*t])
		clear(y.children[t : 2*t])
	}
	mid := y.keys[t-1]
	y.n = t - 1

	x.insertChildAt(i+1, z)
	x.insertKeyAt(i, mid)

	if y.leaf {
		z.next = y.next
		y.next = z
	}

	bt.log.Debug("split child",
		zap.Int("index", i),
		zap.Bool("leaf", y.leaf),
		zap.Int64("promoted", mid))
	bt.emit(EventSplit)
}
