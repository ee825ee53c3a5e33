package btree

import "github.com/cockroachdb/errors"

// Validate checks ordering, occupancy, balance and leaf-chain linkage, and
// returns an assertion failure describing the first violation found.
func (bt *BTree) Validate() error {
	if bt.root == nil {
		return errors.AssertionFailedf("btree: nil root")
	}
	v := &validator{t: bt.t, leafDepth: -1}
	if err := v.walk(bt.root, 0, nil, nil, true); err != nil {
		return err
	}

	for i, leaf := range v.leaves {
		var want *Node
		if i+1 < len(v.leaves) {
			want = v.leaves[i+1]
		}
		if leaf.next != want {
			return errors.AssertionFailedf("btree: leaf %d of %d breaks the leaf chain", i, len(v.leaves))
		}
	}
	return nil
}

type validator struct {
	t         int
	leafDepth int
	leaves    []*Node
}

// walk checks x and its subtree. lo and hi bound the keys allowed in x; keys
// equal to a bound are permitted because duplicates may straddle a separator.
func (v *validator) walk(x *Node, depth int, lo, hi *int64, isRoot bool) error {
	if x == nil {
		return errors.AssertionFailedf("btree: nil child at depth %d", depth)
	}
	if x.t != v.t {
		return errors.AssertionFailedf("btree: node degree %d, tree degree %d", x.t, v.t)
	}
	maxKeys := 2*v.t - 1
	if x.n > maxKeys {
		return errors.AssertionFailedf("btree: node at depth %d holds %d keys, max %d", depth, x.n, maxKeys)
	}
	if !isRoot && x.n < v.t-1 {
		return errors.AssertionFailedf("btree: node at depth %d holds %d keys, min %d", depth, x.n, v.t-1)
	}

	for i := 0; i < x.n; i++ {
		k := x.keys[i]
		if i > 0 && k < x.keys[i-1] {
			return errors.AssertionFailedf("btree: keys out of order at depth %d: %d after %d", depth, k, x.keys[i-1])
		}
		if lo != nil && k < *lo {
			return errors.AssertionFailedf("btree: key %d below separator %d", k, *lo)
		}
		if hi != nil && k > *hi {
			return errors.AssertionFailedf("btree: key %d above separator %d", k, *hi)
		}
	}

	if x.leaf {
		if x.children != nil {
			return errors.AssertionFailedf("btree: leaf at depth %d owns children", depth)
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.AssertionFailedf("btree: leaves at depths %d and %d", v.leafDepth, depth)
		}
		v.leaves = append(v.leaves, x)
		return nil
	}

	if isRoot && x.n == 0 {
		return errors.AssertionFailedf("btree: internal root with no keys")
	}
	for i := 0; i <= x.n; i++ {
		clo, chi := lo, hi
		if i > 0 {
			clo = &x.keys[i-1]
		}
		if i < x.n {
			chi = &x.keys[i]
		}
		if err := v.walk(x.children[i], depth+1, clo, chi, false); err != nil {
			return err
		}
	}
	return nil
}
