package btree

import (
	"cmp"
	"slices"
)

// node is a single B-tree node. Keys are kept strictly ascending. Internal
// nodes hold exactly len(keys)+1 children; leaf nodes hold none. A node is
// exclusively owned by its parent (the root by the tree), so splits and
// merges move children between owners, never share them.
type node[K cmp.Ordered] struct {
	keys     []K
	children []*node[K]
}

// newLeaf creates an empty leaf node sized for an order-M tree.
func newLeaf[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys: make([]K, 0, order-1),
	}
}

// newInternal creates an empty internal node sized for an order-M tree.
func newInternal[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys:     make([]K, 0, order-1),
		children: make([]*node[K], 0, order),
	}
}

// leaf reports whether the node has no children.
func (n *node[K]) leaf() bool {
	return len(n.children) == 0
}

// findKey returns the index where key should be inserted, or the index of
// the key if it is already present. Returns (index, found).
func (n *node[K]) findKey(key K) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

// insertKeyAt inserts a key at the given index, shifting later keys right.
func (n *node[K]) insertKeyAt(index int, key K) {
	n.keys = slices.Insert(n.keys, index, key)
}

// insertChildAt inserts a child at the given index, shifting later children
// right.
func (n *node[K]) insertChildAt(index int, child *node[K]) {
	n.children = slices.Insert(n.children, index, child)
}

// removeKeyAt removes and returns the key at the given index.
func (n *node[K]) removeKeyAt(index int) K {
	key := n.keys[index]
	n.keys = slices.Delete(n.keys, index, index+1)
	return key
}

// removeChildAt removes and returns the child at the given index.
func (n *node[K]) removeChildAt(index int) *node[K] {
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	return child
}

// minKey returns the smallest key in the subtree rooted at n, found by
// walking the leftmost child chain to a leaf. The node must not be empty.
func (n *node[K]) minKey() K {
	cur := n
	for !cur.leaf() {
		cur = cur.children[0]
	}
	return cur.keys[0]
}

// maxKey returns the largest key in the subtree rooted at n, found by
// walking the rightmost child chain to a leaf. The node must not be empty.
func (n *node[K]) maxKey() K {
	cur := n
	for !cur.leaf() {
		cur = cur.children[len(cur.children)-1]
	}
	return cur.keys[len(cur.keys)-1]
}

// height returns the number of edges from n down to a leaf, following the
// leftmost chain. All leaves sit at the same depth in a valid tree, so any
// chain would do.
func (n *node[K]) height() int {
	height := 0
	cur := n
	for !cur.leaf() {
		height++
		cur = cur.children[0]
	}
	return height
}
