// Package index defines the key-set contract shared by the threaded B-tree and
// the baselines it is benchmarked against.
package index

// KeySet is an ordered collection of int64 keys.
type KeySet interface {
	Insert(key int64) error
	// Delete reports whether a key was removed.
	Delete(key int64) (bool, error)
	Contains(key int64) (bool, error)
	// Scan iterates every key in ascending order.
	Scan() (Iterator, error)
	Close() error
}
