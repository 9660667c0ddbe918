package btree

// removeStatus is the tri-state outcome of a recursive removal, propagated
// one level up on the unwind.
type removeStatus uint8

const (
	// removeNotFound: the key was not in the subtree; nothing changed.
	removeNotFound removeStatus = iota
	// removeClean: the key was removed and repair already terminated below;
	// the caller has nothing to fix.
	removeClean
	// removeShrunk: the key was removed and the child the caller recursed
	// into just lost a key, so the caller must check it for underflow.
	removeShrunk
)

// Remove deletes a key from the tree. It returns true if the key was
// present and removed; removing an absent key is a no-op returning false.
//
// Algorithm:
//  1. Descend recursively, locating the key
//  2. A key found in an internal node is exchanged with its in-order
//     successor (the minimum of the right child subtree) so the actual
//     removal always happens in a leaf
//  3. On the unwind, a child that dropped below the minimum key count is
//     repaired by borrowing from a sibling, or by merging with one when
//     neither sibling has a key to spare
//  4. A merge shrinks the parent, so the repair propagates; if the root
//     empties with a single child left, that child becomes the new root
//     and tree height decreases by one
func (t *Tree[K]) Remove(key K) bool {
	if t.root == nil {
		return false
	}
	if t.removeNode(t.root, key) == removeNotFound {
		return false
	}

	if len(t.root.keys) == 0 {
		if t.root.leaf() {
			t.root = nil
		} else {
			t.root = t.root.children[0]
		}
	}
	t.size--
	return true
}

// removeNode removes key from the subtree rooted at n.
func (t *Tree[K]) removeNode(n *node[K], key K) removeStatus {
	idx, found := n.findKey(key)

	if n.leaf() {
		if !found {
			return removeNotFound
		}
		n.removeKeyAt(idx)
		return removeShrunk
	}

	child := idx
	if found {
		// Exchange with the successor; the target now lives in a leaf of
		// the right child subtree and the removal continues there.
		succ := n.children[idx+1].minKey()
		n.keys[idx] = succ
		key = succ
		child = idx + 1
	}

	status := t.removeNode(n.children[child], key)
	if status != removeShrunk {
		return status
	}
	return t.repairChild(n, child)
}

// repairChild restores the minimum-key invariant for children[i] after a
// removal in that subtree. Borrowing from a sibling terminates the repair
// at this level; merging removes a separator from n, so the caller must
// check n in turn.
func (t *Tree[K]) repairChild(n *node[K], i int) removeStatus {
	if len(n.children[i].keys) >= t.minKeys() {
		return removeClean
	}

	if i > 0 && len(n.children[i-1].keys) > t.minKeys() {
		t.borrowFromLeft(n, i)
		return removeClean
	}
	if i < len(n.keys) && len(n.children[i+1].keys) > t.minKeys() {
		t.borrowFromRight(n, i)
		return removeClean
	}

	// Neither sibling can spare a key: merge with the right sibling when
	// one exists, else with the left.
	if i < len(n.keys) {
		t.mergeChildren(n, i)
	} else {
		t.mergeChildren(n, i-1)
	}
	return removeShrunk
}

// borrowFromLeft rotates the left sibling's largest key up through the
// separator in n into the first slot of children[i]. Internal children
// move the sibling's rightmost child pointer along with it.
func (t *Tree[K]) borrowFromLeft(n *node[K], i int) {
	child := n.children[i]
	left := n.children[i-1]

	child.insertKeyAt(0, n.keys[i-1])
	if !child.leaf() {
		child.insertChildAt(0, left.removeChildAt(len(left.children)-1))
	}
	n.keys[i-1] = left.removeKeyAt(len(left.keys) - 1)
}

// borrowFromRight is the mirror of borrowFromLeft: the right sibling's
// smallest key rotates up through the separator into the last slot of
// children[i].
func (t *Tree[K]) borrowFromRight(n *node[K], i int) {
	child := n.children[i]
	right := n.children[i+1]

	child.keys = append(child.keys, n.keys[i])
	if !child.leaf() {
		child.children = append(child.children, right.removeChildAt(0))
	}
	n.keys[i] = right.removeKeyAt(0)
}

// mergeChildren merges children[i+1] into children[i]: the separator
// keys[i] is pulled down between them, the right sibling's keys and
// children are appended, and the emptied sibling and its separator are
// removed from n. The surviving node ends with at most M-1 keys.
func (t *Tree[K]) mergeChildren(n *node[K], i int) {
	left := n.children[i]
	right := n.children[i+1]

	left.keys = append(left.keys, n.keys[i])
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
	right.children = nil

	n.removeKeyAt(i)
	n.removeChildAt(i + 1)
}
