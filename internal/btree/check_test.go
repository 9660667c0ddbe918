package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmptyTree(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	require.NoError(t, tree.Check())
	assert.True(t, tree.CheckProperties())
}

func TestCheckValidTree(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)
	for key := 1; key <= 100; key++ {
		require.True(t, tree.Insert(key))
	}

	require.NoError(t, tree.Check())
	assert.True(t, tree.CheckProperties())
}

// The corruption tests hand-build order-4 trees that violate exactly one
// invariant each and assert the checker names it.

func TestCheckDetectsKeyCount(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	// Non-root leaf with zero keys (minimum for order 4 is 1).
	tree.root = &node[int]{
		keys: []int{20},
		children: []*node[int]{
			{keys: []int{10}},
			{keys: []int{}},
		},
	}
	tree.size = 2

	assert.ErrorIs(t, tree.Check(), ErrKeyCount)
	assert.False(t, tree.CheckProperties())
}

func TestCheckDetectsOverfullNode(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	tree.root = &node[int]{keys: []int{1, 2, 3, 4}}
	tree.size = 4

	assert.ErrorIs(t, tree.Check(), ErrKeyCount)
}

func TestCheckDetectsKeyOrder(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	tree.root = &node[int]{keys: []int{3, 2}}
	tree.size = 2

	assert.ErrorIs(t, tree.Check(), ErrKeyOrder)
}

func TestCheckDetectsDuplicateKeyInNode(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	tree.root = &node[int]{keys: []int{2, 2}}
	tree.size = 2

	assert.ErrorIs(t, tree.Check(), ErrKeyOrder)
}

func TestCheckDetectsChildCount(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	// Internal node with one key must have exactly two children.
	tree.root = &node[int]{
		keys: []int{20},
		children: []*node[int]{
			{keys: []int{10}},
		},
	}
	tree.size = 2

	assert.ErrorIs(t, tree.Check(), ErrChildCount)
}

func TestCheckDetectsMissingChild(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	tree.root = &node[int]{
		keys:     []int{20},
		children: []*node[int]{{keys: []int{10}}, nil},
	}
	tree.size = 2

	assert.ErrorIs(t, tree.Check(), ErrChildCount)
}

func TestCheckDetectsUnevenHeight(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	// Left subtree has height 1, right subtree height 0.
	tree.root = &node[int]{
		keys: []int{50},
		children: []*node[int]{
			{
				keys: []int{20},
				children: []*node[int]{
					{keys: []int{10}},
					{keys: []int{30}},
				},
			},
			{keys: []int{60}},
		},
	}
	tree.size = 5

	assert.ErrorIs(t, tree.Check(), ErrUnevenHeight)
}

func TestCheckDetectsSeparatorBounds(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	// 25 sits in the left subtree of separator 20.
	tree.root = &node[int]{
		keys: []int{20},
		children: []*node[int]{
			{keys: []int{25}},
			{keys: []int{30}},
		},
	}
	tree.size = 3

	assert.ErrorIs(t, tree.Check(), ErrSeparatorBounds)
}

func TestCheckDetectsSizeMismatch(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)
	require.True(t, tree.Insert(1))
	require.True(t, tree.Insert(2))

	tree.size = 5

	assert.ErrorIs(t, tree.Check(), ErrSizeMismatch)
}

func TestCheckDetectsPhantomSizeOnEmptyTree(t *testing.T) {
	tree, err := New[int](4)
	require.NoError(t, err)

	tree.size = 3

	assert.ErrorIs(t, tree.Check(), ErrSizeMismatch)
}
