package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindKey(t *testing.T) {
	n := &node[int]{keys: []int{10, 20, 30, 40}}

	tests := []struct {
		name      string
		key       int
		wantIdx   int
		wantFound bool
	}{
		{"before first", 5, 0, false},
		{"first", 10, 0, true},
		{"between", 25, 2, false},
		{"last", 40, 3, true},
		{"after last", 99, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := n.findKey(tt.key)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestInsertRemoveKeyAt(t *testing.T) {
	n := newLeaf[int](4)

	n.insertKeyAt(0, 20)
	n.insertKeyAt(0, 10)
	n.insertKeyAt(2, 30)
	assert.Equal(t, []int{10, 20, 30}, n.keys)

	removed := n.removeKeyAt(1)
	assert.Equal(t, 20, removed)
	assert.Equal(t, []int{10, 30}, n.keys)
}

func TestInsertRemoveChildAt(t *testing.T) {
	n := newInternal[int](4)
	a := newLeaf[int](4)
	b := newLeaf[int](4)
	c := newLeaf[int](4)

	n.insertChildAt(0, a)
	n.insertChildAt(1, c)
	n.insertChildAt(1, b)
	require.Len(t, n.children, 3)
	assert.Same(t, a, n.children[0])
	assert.Same(t, b, n.children[1])
	assert.Same(t, c, n.children[2])

	got := n.removeChildAt(1)
	assert.Same(t, b, got)
	require.Len(t, n.children, 2)
	assert.Same(t, c, n.children[1])
}

func TestLeaf(t *testing.T) {
	assert.True(t, newLeaf[int](4).leaf())

	n := newInternal[int](4)
	n.children = append(n.children, newLeaf[int](4))
	assert.False(t, n.leaf())
}

func TestSubtreeExtremes(t *testing.T) {
	// Two-level subtree: [20 | 40] over leaves [10], [30], [50 60].
	root := &node[int]{
		keys: []int{20, 40},
		children: []*node[int]{
			{keys: []int{10}},
			{keys: []int{30}},
			{keys: []int{50, 60}},
		},
	}

	assert.Equal(t, 10, root.minKey())
	assert.Equal(t, 60, root.maxKey())
	assert.Equal(t, 1, root.height())
	assert.Equal(t, 0, root.children[0].height())
}
