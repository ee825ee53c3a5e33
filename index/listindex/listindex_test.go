package listindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIndexKeepsOrder(t *testing.T) {
	l := NewListIndex()
	for _, k := range []int64{5, -3, 9, 5, 0} {
		require.NoError(t, l.Insert(k))
	}
	assert.Equal(t, []int64{-3, 0, 5, 5, 9}, l.Keys())
	assert.Equal(t, 5, l.Len())
}

func TestListIndexDeleteRemovesOne(t *testing.T) {
	l := NewListIndex()
	for _, k := range []int64{1, 2, 2, 3} {
		require.NoError(t, l.Insert(k))
	}

	ok, err := l.Delete(2)
	require.NoError(t, err)
	assert.True(t, ok)
	found, _ := l.Contains(2)
	assert.True(t, found)

	ok, _ = l.Delete(2)
	assert.True(t, ok)
	ok, _ = l.Delete(2)
	assert.False(t, ok)
	assert.Equal(t, []int64{1, 3}, l.Keys())
}

func TestListIndexScan(t *testing.T) {
	l := NewListIndex()
	for _, k := range []int64{3, 1, 2} {
		require.NoError(t, l.Insert(k))
	}

	it, err := l.Scan()
	require.NoError(t, err)
	defer it.Close()

	var got []int64
	for it.Next() {
		got = append(got, it.Key())
	}
	require.NoError(t, it.Error())
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestListIndexKeysIsACopy(t *testing.T) {
	l := NewListIndex()
	require.NoError(t, l.Insert(1))

	keys := l.Keys()
	keys[0] = 42
	assert.Equal(t, []int64{1}, l.Keys())
}
