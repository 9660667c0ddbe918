package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyTree(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	it := tree.Iterator()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIteratorAscendingOrder(t *testing.T) {
	tree, err := New[int](3)
	require.NoError(t, err)
	for _, key := range []int{9, 4, 13, 1, 6, 11, 16, 0, 2, 5, 7} {
		require.True(t, tree.Insert(key))
	}

	it := tree.Iterator()
	var got []int
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		got = append(got, key)
	}

	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7, 9, 11, 13, 16}, got)

	// Exhausted iterators stay exhausted.
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)
	for _, key := range []int{30, 10, 20} {
		require.True(t, tree.Insert(key))
	}

	assert.Equal(t, []int{10, 20, 30}, tree.Keys())
}

func TestJoin(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)
	for _, key := range []int{3, 1, 2} {
		require.True(t, tree.Insert(key))
	}

	assert.Equal(t, "1,2,3", tree.String())
	assert.Equal(t, "1 | 2 | 3", tree.Join(" | "))
}

func TestJoinEmptyTree(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	assert.Equal(t, "", tree.String())
}
