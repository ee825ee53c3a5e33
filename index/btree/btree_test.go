package btree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree inserts keys in order into a tree of degree t.
func buildTree(t *testing.T, degree int, keys ...int64) *BTree {
	t.Helper()
	bt := New(degree)
	for _, k := range keys {
		bt.Insert(k)
	}
	require.NoError(t, bt.Validate())
	return bt
}

func seqRange(lo, hi int64) []int64 {
	var out []int64
	for k := lo; k <= hi; k++ {
		out = append(out, k)
	}
	return out
}

// nodeKeys returns the live keys of every child of x.
func nodeKeys(x *Node) [][]int64 {
	var out [][]int64
	for i := 0; i <= x.N(); i++ {
		out = append(out, x.Child(i).Keys())
	}
	return out
}

func TestNewRejectsSmallDegree(t *testing.T) {
	require.Panics(t, func() { New(1) })
	require.Panics(t, func() { New(0) })
	require.NotPanics(t, func() { New(2) })
}

func TestEmptyTree(t *testing.T) {
	bt := New(3)

	assert.Nil(t, bt.Search(1))
	assert.False(t, bt.Contains(1))

	_, ok := bt.Min()
	assert.False(t, ok)
	_, ok = bt.Max()
	assert.False(t, ok)

	assert.False(t, bt.Delete(1))
	assert.Equal(t, 0, bt.Height())
	assert.Equal(t, 1, bt.Nodes())
	assert.Equal(t, 0, bt.NodeCount())
	assert.Equal(t, 0, bt.Len())
	assert.Empty(t, slices.Collect(bt.InOrder()))
	assert.Empty(t, bt.LeafKeys())
	require.NoError(t, bt.Validate())
}

func TestInsertScenarioDegreeThree(t *testing.T) {
	bt := buildTree(t, 3, 10, 20, 5, 6, 12, 30, 7, 17)

	assert.Equal(t, []int64{5, 6, 7, 10, 12, 17, 20, 30}, slices.Collect(bt.InOrder()))
	assert.Equal(t, 2, bt.Height())

	min, ok := bt.Min()
	require.True(t, ok)
	assert.Equal(t, int64(5), min)
	max, ok := bt.Max()
	require.True(t, ok)
	assert.Equal(t, int64(30), max)

	assert.Equal(t, []int64{10}, bt.Root().Keys())
	assert.Equal(t, [][]int64{{5, 6, 7}, {12, 17, 20, 30}}, nodeKeys(bt.Root()))
	assert.Equal(t, 3, bt.Nodes())
	assert.Equal(t, 8, bt.NodeCount())
	assert.Equal(t, 8, bt.Len())
}

func TestSearchReturnsHoldingNode(t *testing.T) {
	bt := buildTree(t, 3, 10, 20, 5, 6, 12, 30, 7, 17)

	assert.Same(t, bt.Root(), bt.Search(10))
	assert.Same(t, bt.Root().Child(1), bt.Search(17))
	assert.Nil(t, bt.Search(11))
	assert.Nil(t, bt.Search(100))
}

func TestRootSplitGrowsTree(t *testing.T) {
	bt := buildTree(t, 2, 1, 2, 3)
	assert.Equal(t, 1, bt.Height())

	bt.Insert(4)
	require.NoError(t, bt.Validate())
	assert.Equal(t, 2, bt.Height())
	assert.Equal(t, []int64{2}, bt.Root().Keys())
	assert.Equal(t, [][]int64{{1}, {3, 4}}, nodeKeys(bt.Root()))
}

func TestLeafSplitSplicesChain(t *testing.T) {
	bt := buildTree(t, 2, 1, 2, 3, 4)

	left, right := bt.Root().Child(0), bt.Root().Child(1)
	assert.Same(t, right, left.Next())
	assert.Nil(t, right.Next())

	// Split the right leaf; the new leaf must land between right and nil.
	bt.Insert(5)
	bt.Insert(6)
	require.NoError(t, bt.Validate())
	assert.Equal(t, [][]int64{{1}, {3}, {5, 6}}, nodeKeys(bt.Root()))
	assert.Same(t, bt.Root().Child(1), left.Next())
	assert.Same(t, bt.Root().Child(2), bt.Root().Child(1).Next())
}

func TestSequentialInsertShape(t *testing.T) {
	bt := buildTree(t, 2, seqRange(1, 10)...)

	assert.Equal(t, 3, bt.Height())
	assert.Equal(t, 8, bt.Nodes())
	assert.Equal(t, []int64{4}, bt.Root().Keys())
	assert.Equal(t, [][]int64{{2}, {6, 8}}, nodeKeys(bt.Root()))
	assert.Equal(t, [][]int64{{5}, {7}, {9, 10}}, nodeKeys(bt.Root().Child(1)))
	assert.Equal(t, []int64{1, 3, 5, 7, 9, 10}, bt.LeafKeys())
}

func TestDuplicatesAreKept(t *testing.T) {
	bt := buildTree(t, 2, 5, 5, 5, 5, 5, 3, 7)

	assert.Equal(t, 7, bt.Len())
	assert.Equal(t, []int64{3, 5, 5, 5, 5, 5, 7}, slices.Collect(bt.InOrder()))

	for i := 0; i < 5; i++ {
		require.True(t, bt.Delete(5), "delete #%d", i+1)
		require.NoError(t, bt.Validate())
	}
	assert.False(t, bt.Delete(5))
	assert.Equal(t, []int64{3, 7}, slices.Collect(bt.InOrder()))
}

func TestClear(t *testing.T) {
	bt := buildTree(t, 3, seqRange(1, 50)...)
	require.Greater(t, bt.Height(), 1)

	bt.Clear()
	assert.Equal(t, 0, bt.Height())
	assert.Equal(t, 1, bt.Nodes())
	assert.False(t, bt.Contains(25))
	require.NoError(t, bt.Validate())

	bt.Insert(7)
	assert.Equal(t, []int64{7}, slices.Collect(bt.InOrder()))
}

func TestObserverSeesSplits(t *testing.T) {
	counts := map[Event]int{}
	bt := New(2, WithObserver(func(e Event) { counts[e]++ }))
	for _, k := range seqRange(1, 10) {
		bt.Insert(k)
	}

	// Inserting 4, 6, 8, 9 and 10 each splits a node; 4 and 9 split the root.
	assert.Equal(t, 2, counts[EventRootGrow])
	assert.Equal(t, 5, counts[EventSplit])
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "split", EventSplit.String())
	assert.Equal(t, "borrow_prev", EventBorrowPrev.String())
	assert.Equal(t, "root_collapse", EventRootCollapse.String())
	assert.Equal(t, "unknown", Event(99).String())
}
