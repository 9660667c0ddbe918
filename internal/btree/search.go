package btree

// Search reports whether the key is present in the tree.
//
// The descent is iterative: within each node, find the smallest index whose
// key is >= the target; a match ends the search, otherwise the descent
// continues into the child at that index. No mutation, no allocation.
func (t *Tree[K]) Search(key K) bool {
	cur := t.root
	for cur != nil {
		idx, found := cur.findKey(key)
		if found {
			return true
		}
		if cur.leaf() {
			return false
		}
		cur = cur.children[idx]
	}
	return false
}

// RangeSearch returns all keys k with begin <= k <= end, in ascending
// order. The result is empty when no keys qualify or when the bounds are
// inverted. Each call re-traverses from the root; no cursor state is kept.
func (t *Tree[K]) RangeSearch(begin, end K) []K {
	if begin > end {
		return nil
	}
	var out []K
	t.rangeNode(t.root, begin, end, &out)
	return out
}

// rangeNode is a pruned in-order traversal: the subtree left of keys[i] is
// visited only if begin sorts below keys[i], and the rightmost child is
// always visited (it is bounded by the same pruning one level down).
func (t *Tree[K]) rangeNode(n *node[K], begin, end K, out *[]K) {
	if n == nil {
		return
	}
	for i, key := range n.keys {
		if !n.leaf() && begin < key {
			t.rangeNode(n.children[i], begin, end, out)
		}
		if begin <= key && key <= end {
			*out = append(*out, key)
		}
	}
	if !n.leaf() {
		t.rangeNode(n.children[len(n.children)-1], begin, end, out)
	}
}
