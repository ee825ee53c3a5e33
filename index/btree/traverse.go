package btree

import "iter"

// PreOrder yields each node's keys before the keys of its subtrees.
func (bt *BTree) PreOrder() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		preOrder(bt.root, yield)
	}
}

func preOrder(x *Node, yield func(int64) bool) bool {
	for i := 0; i < x.n; i++ {
		if !yield(x.keys[i]) {
			return false
		}
	}
	if x.leaf {
		return true
	}
	for i := 0; i <= x.n; i++ {
		if !preOrder(x.children[i], yield) {
			return false
		}
	}
	return true
}

// InOrder yields every key in ascending order.
func (bt *BTree) InOrder() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		inOrder(bt.root, yield)
	}
}

func inOrder(x *Node, yield func(int64) bool) bool {
	for i := 0; i < x.n; i++ {
		if !x.leaf && !inOrder(x.children[i], yield) {
			return false
		}
		if !yield(x.keys[i]) {
			return false
		}
	}
	if !x.leaf {
		return inOrder(x.children[x.n], yield)
	}
	return true
}

// PostOrder yields the keys of a node's subtrees before the node's own keys.
func (bt *BTree) PostOrder() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		postOrder(bt.root, yield)
	}
}

func postOrder(x *Node, yield func(int64) bool) bool {
	if !x.leaf {
		for i := 0; i <= x.n; i++ {
			if !postOrder(x.children[i], yield) {
				return false
			}
		}
	}
	for i := 0; i < x.n; i++ {
		if !yield(x.keys[i]) {
			return false
		}
	}
	return true
}

// LevelOrder yields keys breadth-first, left to right within a level.
func (bt *BTree) LevelOrder() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		queue := []*Node{bt.root}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for i := 0; i < x.n; i++ {
				if !yield(x.keys[i]) {
					return
				}
			}
			if !x.leaf {
				queue = append(queue, x.children[:x.n+1]...)
			}
		}
	}
}

// NodeInfo describes one node as seen by a detailed level-order walk. IDs are
// assigned in breadth-first order starting at 0 for the root; Parent and Next
// are -1 when absent.
type NodeInfo struct {
	ID       int
	Parent   int
	Level    int
	Position int // index within the level
	Keys     []int64
	Leaf     bool
	Children int
	Next     int // ID of the next leaf in the chain
}

// LevelOrderDetail yields a NodeInfo per node, draining each level before
// starting the next.
func (bt *BTree) LevelOrderDetail() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		ids := map[*Node]int{bt.root: 0}
		parents := map[*Node]int{bt.root: -1}
		nextID := 1

		level := []*Node{bt.root}
		for depth := 0; len(level) > 0; depth++ {
			var below []*Node
			for pos, x := range level {
				info := NodeInfo{
					ID:       ids[x],
					Parent:   parents[x],
					Level:    depth,
					Position: pos,
					Keys:     x.Keys(),
					Leaf:     x.leaf,
					Next:     -1,
				}
				if !x.leaf {
					info.Children = x.n + 1
					for _, c := range x.children[:x.n+1] {
						ids[c] = nextID
						parents[c] = info.ID
						nextID++
						below = append(below, c)
					}
				}
				if x.next != nil {
					if id, ok := ids[x.next]; ok {
						info.Next = id
					}
				}
				if !yield(info) {
					return
				}
			}
			level = below
		}
	}
}

// Reporter receives a detailed level-order walk of the tree.
type Reporter interface {
	BeginLevel(level int)
	Node(info NodeInfo)
}

// Report walks the tree level by level, announcing each level before its
// nodes.
func (bt *BTree) Report(r Reporter) {
	current := -1
	for info := range bt.LevelOrderDetail() {
		if info.Level != current {
			current = info.Level
			r.BeginLevel(current)
		}
		r.Node(info)
	}
}

// LeafChain yields leaf keys by following next links from the leftmost leaf.
func (bt *BTree) LeafChain() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for x := bt.leftmostLeaf(); x != nil; x = x.next {
			for i := 0; i < x.n; i++ {
				if !yield(x.keys[i]) {
					return
				}
			}
		}
	}
}

func (bt *BTree) leftmostLeaf() *Node {
	x := bt.root
	for !x.leaf {
		x = x.children[0]
	}
	return x
}
