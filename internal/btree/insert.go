package btree

import "cmp"

// promotion carries the outcome of a node split one level up the tree: the
// median key and the newly allocated right sibling holding the upper half
// of the split node. A nil promotion means the level below absorbed the
// insertion without splitting.
type promotion[K cmp.Ordered] struct {
	key   K
	right *node[K]
}

// Insert adds a key to the tree. It returns true if the key was inserted
// and false if it was already present; a duplicate insert leaves the tree
// untouched.
//
// Algorithm:
//  1. Descend recursively to the leaf that should hold the key
//  2. Insert the key into the leaf in sorted position
//  3. If a node overflows, split it around the median and promote the
//     median key into the parent
//  4. If the split propagates past the root, grow a new root holding the
//     single promoted key; tree height increases by exactly one
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		root := newLeaf[K](t.order)
		root.keys = append(root.keys, key)
		t.root = root
		t.size = 1
		return true
	}

	inserted, p := t.insertNode(t.root, key)
	if p != nil {
		t.growRoot(p)
	}
	if inserted {
		t.size++
	}
	return inserted
}

// insertNode inserts key into the subtree rooted at n. It returns whether
// the key was genuinely new and, when n itself split, the promotion the
// caller must absorb.
func (t *Tree[K]) insertNode(n *node[K], key K) (bool, *promotion[K]) {
	idx, found := n.findKey(key)
	if found {
		return false, nil
	}

	if n.leaf() {
		n.insertKeyAt(idx, key)
		return true, t.splitOverfull(n)
	}

	inserted, p := t.insertNode(n.children[idx], key)
	if p == nil {
		return inserted, nil
	}

	// The child at idx split: its median key and new right sibling slot in
	// at idx and idx+1.
	n.insertKeyAt(idx, p.key)
	n.insertChildAt(idx+1, p.right)
	return inserted, t.splitOverfull(n)
}

// splitOverfull splits n when it has overflowed to M keys. Keys [0, mid)
// stay in n, the median key at mid = (M-1)/2 is promoted, and keys
// (mid, M) move into a new right sibling. For internal nodes the children
// right of the median move with their keys; the moved slots are cleared in
// n so the sibling becomes their only owner.
func (t *Tree[K]) splitOverfull(n *node[K]) *promotion[K] {
	if len(n.keys) <= t.maxKeys() {
		return nil
	}

	mid := (t.order - 1) / 2
	promoted := n.keys[mid]

	var right *node[K]
	if n.leaf() {
		right = newLeaf[K](t.order)
	} else {
		right = newInternal[K](t.order)
		right.children = append(right.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}
	right.keys = append(right.keys, n.keys[mid+1:]...)
	n.keys = n.keys[:mid]

	return &promotion[K]{key: promoted, right: right}
}

// growRoot replaces the root after a split reached it: the new root holds
// the promoted key with the old root as its left child.
func (t *Tree[K]) growRoot(p *promotion[K]) {
	newRoot := newInternal[K](t.order)
	newRoot.keys = append(newRoot.keys, p.key)
	newRoot.children = append(newRoot.children, t.root, p.right)
	t.root = newRoot
}
