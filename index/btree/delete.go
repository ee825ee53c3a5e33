package btree

import "go.uber.org/zap"

// Delete removes one occurrence of key and reports whether anything was
// removed. Deleting an absent key leaves the tree untouched.
func (bt *BTree) Delete(key int64) bool {
	if bt.root.n == 0 || !bt.Contains(key) {
		return false
	}
	removed := bt.remove(bt.root, key)

	if bt.root.n == 0 {
		if bt.root.leaf {
			bt.root = newNode(bt.t, true)
		} else {
			old := bt.root
			bt.root = old.children[0]
			old.children[0] = nil
			bt.log.Debug("root collapsed", zap.Int("height", bt.Height()))
			bt.emit(EventRootCollapse)
		}
	}
	return removed
}

func (bt *BTree) remove(x *Node, k int64) bool {
	i := x.lowerBound(k)

	if i < x.n && x.keys[i] == k {
		if x.leaf {
			bt.removeFromLeaf(x, i)
			return true
		}
		return bt.removeFromInternal(x, i)
	}
	if x.leaf {
		return false
	}

	// A child with t-1 keys could underflow, so top it up before descending.
	last := i == x.n
	if x.children[i].n < bt.t {
		bt.fill(x, i)
	}
	if last && i > x.n {
		return bt.remove(x.children[i-1], k)
	}
	return bt.remove(x.children[i], k)
}

func (bt *BTree) removeFromLeaf(x *Node, i int) {
	x.removeKeyAt(i)
	x.n--
}

func (bt *BTree) removeFromInternal(x *Node, i int) bool {
	k := x.keys[i]
	y, z := x.children[i], x.children[i+1]

	switch {
	case y.n >= bt.t:
		pred := bt.predecessor(y)
		x.keys[i] = pred
		return bt.remove(y, pred)
	case z.n >= bt.t:
		succ := bt.successor(z)
		x.keys[i] = succ
		return bt.remove(z, succ)
	default:
		bt.merge(x, i)
		return bt.remove(y, k)
	}
}

// predecessor returns the largest key in the subtree rooted at x.
func (bt *BTree) predecessor(x *Node) int64 {
	for !x.leaf {
		x = x.children[x.n]
	}
	return x.keys[x.n-1]
}

// successor returns the smallest key in the subtree rooted at x.
func (bt *BTree) successor(x *Node) int64 {
	for !x.leaf {
		x = x.children[0]
	}
	return x.keys[0]
}

func (bt *BTree) fill(x *Node, i int) {
	switch {
	case i != 0 && x.children[i-1].n >= bt.t:
		bt.borrowFromPrev(x, i)
	case i != x.n && x.children[i+1].n >= bt.t:
		bt.borrowFromNext(x, i)
	case i != x.n:
		bt.merge(x, i)
	default:
		bt.merge(x, i-1)
	}
}

// borrowFromPrev rotates the last key of x.children[i-1] through the
// separator x.keys[i-1] into the front of x.children[i].
func (bt *BTree) borrowFromPrev(x *Node, i int) {
	c, s := x.children[i], x.children[i-1]

	copy(c.keys[1:c.n+1], c.keys[:c.n])
	if !c.leaf {
		copy(c.children[1:c.n+2], c.children[:c.n+1])
		c.children[0] = s.children[s.n]
		s.children[s.n] = nil
	}
	c.keys[0] = x.keys[i-1]
	x.keys[i-1] = s.keys[s.n-1]

	c.n++
	s.n--

	bt.log.Debug("borrow from prev", zap.Int("index", i), zap.Int64("separator", x.keys[i-1]))
	bt.emit(EventBorrowPrev)
}

// borrowFromNext rotates the first key of x.children[i+1] through the
// separator x.keys[i] onto the end of x.children[i].
func (bt *BTree) borrowFromNext(x *Node, i int) {
	c, s := x.children[i], x.children[i+1]

	c.keys[c.n] = x.keys[i]
	if !c.leaf {
		c.children[c.n+1] = s.children[0]
		copy(s.children[:s.n], s.children[1:s.n+1])
		s.children[s.n] = nil
	}
	x.keys[i] = s.keys[0]
	copy(s.keys[:s.n-1], s.keys[1:s.n])

	c.n++
	s.n--

	bt.log.Debug("borrow from next", zap.Int("index", i), zap.Int64("separator", x.keys[i]))
	bt.emit(EventBorrowNext)
}

// merge folds x.keys[i] and x.children[i+1] into x.children[i]. The right
// sibling is dropped and, for leaves, unlinked from the chain.
func (bt *BTree) merge(x *Node, i int) {
	y, z := x.children[i], x.children[i+1]

	y.keys[y.n] = x.keys[i]
	copy(y.keys[y.n+1:], z.keys[:z.n])
	if !y.leaf {
		copy(y.children[y.n+1:], z.children[:z.n+1])
	} else {
		y.next = z.next
	}
	y.n += z.n + 1

	x.removeKeyAt(i)
	x.removeChildAt(i + 1)
	x.n--

	bt.log.Debug("merge children", zap.Int("index", i), zap.Bool("leaf", y.leaf), zap.Int("keys", y.n))
	bt.emit(EventMerge)
}
