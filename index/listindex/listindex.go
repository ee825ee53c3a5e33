// Package listindex keeps keys in one sorted slice. It is the simplest
// correct KeySet and serves as the reference model for the tree.
package listindex

import (
	"slices"
	"sort"

	"github.com/btree-query-bench/leafchain/index"
)

var _ index.KeySet = (*ListIndex)(nil)

// ListIndex is a sorted multiset: duplicates are kept, Delete removes one.
type ListIndex struct {
	Data []int64
}

func NewListIndex() *ListIndex {
	return &ListIndex{
		Data: make([]int64, 0),
	}
}

func (l *ListIndex) Insert(key int64) error {
	// upper bound, so equal keys keep insertion order
	i := sort.Search(len(l.Data), func(i int) bool { return l.Data[i] > key })
	l.Data = slices.Insert(l.Data, i, key)
	return nil
}

func (l *ListIndex) Contains(key int64) (bool, error) {
	_, found := slices.BinarySearch(l.Data, key)
	return found, nil
}

func (l *ListIndex) Delete(key int64) (bool, error) {
	i, found := slices.BinarySearch(l.Data, key)
	if !found {
		return false, nil
	}
	l.Data = slices.Delete(l.Data, i, i+1)
	return true, nil
}

// Keys returns a copy of the stored keys in ascending order.
func (l *ListIndex) Keys() []int64 {
	return slices.Clone(l.Data)
}

func (l *ListIndex) Len() int { return len(l.Data) }

func (l *ListIndex) Scan() (index.Iterator, error) {
	return &ListIterator{
		data: l.Data,
		cur:  -1,
	}, nil
}

func (l *ListIndex) Close() error { return nil }

type ListIterator struct {
	data []int64
	cur  int
}

func (it *ListIterator) Next() bool {
	it.cur++
	return it.cur < len(it.data)
}

func (it *ListIterator) Key() int64   { return it.data[it.cur] }
func (it *ListIterator) Error() error { return nil }
func (it *ListIterator) Close() error { return nil }
