package btree

import (
	"iter"

	"github.com/btree-query-bench/leafchain/index"
)

var _ index.KeySet = (*KeySet)(nil)

// KeySet adapts a BTree to index.KeySet.
type KeySet struct {
	Tree *BTree
}

func NewKeySet(t int, opts ...Option) *KeySet {
	return &KeySet{Tree: New(t, opts...)}
}

func (s *KeySet) Insert(key int64) error {
	s.Tree.Insert(key)
	return nil
}

func (s *KeySet) Delete(key int64) (bool, error)   { return s.Tree.Delete(key), nil }
func (s *KeySet) Contains(key int64) (bool, error) { return s.Tree.Contains(key), nil }
func (s *KeySet) Close() error                     { return nil }

// Scan iterates the in-order sequence lazily; Close releases it early.
func (s *KeySet) Scan() (index.Iterator, error) {
	next, stop := iter.Pull(s.Tree.InOrder())
	return &Iterator{next: next, stop: stop}, nil
}

type Iterator struct {
	next func() (int64, bool)
	stop func()
	key  int64
}

func (it *Iterator) Next() bool {
	k, ok := it.next()
	if ok {
		it.key = k
	}
	return ok
}

func (it *Iterator) Key() int64   { return it.key }
func (it *Iterator) Error() error { return nil }
func (it *Iterator) Close() error { it.stop(); return nil }
