package btree

import (
	"cmp"
	"errors"
	"fmt"
)

// Invariant violations reported by Check.
var (
	ErrKeyCount        = errors.New("btree: node key count out of bounds")
	ErrKeyOrder        = errors.New("btree: node keys out of order")
	ErrChildCount      = errors.New("btree: wrong child count")
	ErrUnevenHeight    = errors.New("btree: subtree heights differ")
	ErrSeparatorBounds = errors.New("btree: separator does not bound its subtrees")
	ErrSizeMismatch    = errors.New("btree: cached size differs from reachable keys")
)

// Check validates every structural invariant of the tree and returns the
// first violation found, or nil if the tree is well-formed. It is a pure
// read-only traversal meant as a correctness oracle for tests; subtree
// heights are recomputed at every internal node, which is quadratic and
// must not be imitated on mutation paths.
func (t *Tree[K]) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree caches size %d", ErrSizeMismatch, t.size)
		}
		return nil
	}

	if err := t.checkNode(t.root); err != nil {
		return err
	}

	if counted := countKeys(t.root); counted != t.size {
		return fmt.Errorf("%w: cached %d, counted %d", ErrSizeMismatch, t.size, counted)
	}
	return nil
}

// CheckProperties reports whether the tree passes Check.
func (t *Tree[K]) CheckProperties() bool {
	return t.Check() == nil
}

func (t *Tree[K]) checkNode(n *node[K]) error {
	// The root is exempt from the minimum key count; it still may not be
	// empty while the tree has keys (an empty tree has a nil root).
	minKeys := t.minKeys()
	if n == t.root {
		minKeys = 1
	}
	if len(n.keys) < minKeys || len(n.keys) > t.maxKeys() {
		return fmt.Errorf("%w: %d keys, want %d..%d", ErrKeyCount, len(n.keys), minKeys, t.maxKeys())
	}

	for i := 0; i+1 < len(n.keys); i++ {
		if n.keys[i] >= n.keys[i+1] {
			return fmt.Errorf("%w: keys[%d] >= keys[%d]", ErrKeyOrder, i, i+1)
		}
	}

	if n.leaf() {
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: %d keys but %d children", ErrChildCount, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: children[%d] is missing", ErrChildCount, i)
		}
	}

	for _, child := range n.children {
		if err := t.checkNode(child); err != nil {
			return err
		}
	}

	want := n.children[0].height()
	for i := 1; i < len(n.children); i++ {
		if h := n.children[i].height(); h != want {
			return fmt.Errorf("%w: subtree %d has height %d, want %d", ErrUnevenHeight, i, h, want)
		}
	}

	// Every separator must sit strictly between the true extremes of its
	// adjacent subtrees; keys are globally unique, so equality is a
	// violation too.
	for i, key := range n.keys {
		if leftMax := n.children[i].maxKey(); leftMax >= key {
			return fmt.Errorf("%w: keys[%d] <= max of left subtree", ErrSeparatorBounds, i)
		}
		if rightMin := n.children[i+1].minKey(); rightMin <= key {
			return fmt.Errorf("%w: keys[%d] >= min of right subtree", ErrSeparatorBounds, i)
		}
	}

	return nil
}

// countKeys returns the number of keys reachable from n.
func countKeys[K cmp.Ordered](n *node[K]) int {
	count := len(n.keys)
	for _, child := range n.children {
		count += countKeys(child)
	}
	return count
}
