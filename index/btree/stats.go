package btree

// Nodes returns the number of nodes in the tree, root included.
func (bt *BTree) Nodes() int {
	return countNodes(bt.root)
}

func countNodes(x *Node) int {
	total := 1
	if !x.leaf {
		for i := 0; i <= x.n; i++ {
			total += countNodes(x.children[i])
		}
	}
	return total
}

// NodeCount returns the number of keys stored in the tree, one per key
// occurrence. Inserting a key and deleting it again always restores it, even
// when the insert split nodes that the delete does not merge back.
func (bt *BTree) NodeCount() int {
	return countKeys(bt.root)
}

// Len is NodeCount.
func (bt *BTree) Len() int { return bt.NodeCount() }

func countKeys(x *Node) int {
	total := x.n
	if !x.leaf {
		for i := 0; i <= x.n; i++ {
			total += countKeys(x.children[i])
		}
	}
	return total
}

// Height returns 0 for an empty tree and 1 for a tree that is a single leaf.
func (bt *BTree) Height() int {
	if bt.root.leaf && bt.root.n == 0 {
		return 0
	}
	return height(bt.root)
}

func height(x *Node) int {
	if x.leaf {
		return 1
	}
	tallest := 0
	for i := 0; i <= x.n; i++ {
		tallest = max(tallest, height(x.children[i]))
	}
	return 1 + tallest
}

// Min returns the smallest key; ok is false when the tree is empty.
func (bt *BTree) Min() (key int64, ok bool) {
	if bt.root.n == 0 {
		return 0, false
	}
	x := bt.leftmostLeaf()
	return x.keys[0], true
}

// Max returns the largest key; ok is false when the tree is empty.
func (bt *BTree) Max() (key int64, ok bool) {
	if bt.root.n == 0 {
		return 0, false
	}
	x := bt.root
	for !x.leaf {
		x = x.children[x.n]
	}
	return x.keys[x.n-1], true
}

// LeafKeys collects the keys held by leaves, left to right.
func (bt *BTree) LeafKeys() []int64 {
	var out []int64
	return collectLeafKeys(bt.root, out)
}

func collectLeafKeys(x *Node, out []int64) []int64 {
	if x.leaf {
		return append(out, x.keys[:x.n]...)
	}
	for i := 0; i <= x.n; i++ {
		out = collectLeafKeys(x.children[i], out)
	}
	return out
}
