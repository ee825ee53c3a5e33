// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind the
// KeySet interface so the threaded B-tree can be benchmarked against it.
// Keys are stored with empty values; Pebble keeps set semantics, so repeated
// inserts of one key collapse into a single entry.
package lsm

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"github.com/btree-query-bench/leafchain/index"
)

var _ index.KeySet = (*LSM)(nil)

type LSM struct {
	db *pebble.DB
}

// Open opens (or creates) a Pebble database at the given directory path.
func Open(dir string) (*LSM, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "lsm: open %s", dir)
	}
	return &LSM{db: db}, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (l *LSM) Close() error {
	return l.db.Close()
}

func (l *LSM) Insert(key int64) error {
	if err := l.db.Set(encodeKey(key), nil, pebble.NoSync); err != nil {
		return errors.Wrap(err, "lsm: insert")
	}
	return nil
}

func (l *LSM) Contains(key int64) (bool, error) {
	_, closer, err := l.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "lsm: get")
	}
	closer.Close()
	return true, nil
}

// Delete removes key. Pebble deletes are blind, so presence is checked first.
func (l *LSM) Delete(key int64) (bool, error) {
	ok, err := l.Contains(key)
	if err != nil || !ok {
		return false, err
	}
	if err := l.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return false, errors.Wrap(err, "lsm: delete")
	}
	return true, nil
}

// Scan iterates every key in ascending order.
func (l *LSM) Scan() (index.Iterator, error) {
	iter, err := l.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "lsm: scan")
	}
	iter.First()
	return &scanIterator{iter: iter, first: true}, nil
}

// ─── Key encoding ─────────────────────────────────────────────────────────────

// encodeKey flips the sign bit and writes big-endian, so byte order matches
// signed integer order.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

// ─── Scan Iterator ────────────────────────────────────────────────────────────

type scanIterator struct {
	iter  *pebble.Iterator
	first bool
	key   int64
	err   error
}

func (it *scanIterator) Next() bool {
	var valid bool
	if it.first {
		// iter.First() was already called in Scan(); just check validity.
		it.first = false
		valid = it.iter.Valid()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		it.err = it.iter.Error()
		return false
	}
	k := it.iter.Key()
	if len(k) != 8 {
		it.err = errors.Newf("lsm: unexpected key length %d", len(k))
		return false
	}
	it.key = decodeKey(k)
	return true
}

func (it *scanIterator) Key() int64   { return it.key }
func (it *scanIterator) Error() error { return it.err }
func (it *scanIterator) Close() error { return it.iter.Close() }
