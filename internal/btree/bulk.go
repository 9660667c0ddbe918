package btree

import "cmp"

// BuildFromSorted builds a tree of the given order directly from keys that
// are already strictly ascending and free of duplicates. It streams the
// input once: every key is appended to the current rightmost leaf and
// splits propagate only along the rightmost path, using the same median
// rule as general insertion, so no other node is ever touched. The result
// satisfies exactly the invariants incremental insertion would produce.
//
// Returns ErrInvalidOrder when order < MinOrder. Unsorted or duplicate
// input is a contract violation with an undefined result; Insert is the
// safe path for unordered data.
func BuildFromSorted[K cmp.Ordered](keys []K, order int) (*Tree[K], error) {
	t, err := New[K](order)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return t, nil
	}

	t.root = newLeaf[K](order)
	path := make([]*node[K], 0, 8)

	for _, key := range keys {
		// Rebuild the rightmost path: root collapse never happens here, but
		// root growth does, so the walk restarts from the current root.
		path = append(path[:0], t.root)
		n := t.root
		for !n.leaf() {
			n = n.children[len(n.children)-1]
			path = append(path, n)
		}

		n.keys = append(n.keys, key)
		t.size++

		// Split overflowed nodes bottom-up along the path. A promoted key
		// is greater than everything already in the parent, so it and the
		// new sibling simply append.
		for i := len(path) - 1; i >= 0; i-- {
			p := t.splitOverfull(path[i])
			if p == nil {
				break
			}
			if i == 0 {
				t.growRoot(p)
				break
			}
			parent := path[i-1]
			parent.keys = append(parent.keys, p.key)
			parent.children = append(parent.children, p.right)
		}
	}

	return t, nil
}
