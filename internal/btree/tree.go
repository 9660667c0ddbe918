package btree

import (
	"cmp"
	"errors"
)

// MinOrder is the smallest supported tree order.
const MinOrder = 3

// Tree errors.
var (
	ErrEmptyTree    = errors.New("btree: tree is empty")
	ErrInvalidOrder = errors.New("btree: order must be at least 3")
)

// Tree is an in-memory B-tree holding a set of unique keys. The order M,
// fixed at construction, is the maximum number of children per internal
// node; a node holds at most M-1 keys. The zero value is not usable, use
// New or BuildFromSorted.
type Tree[K cmp.Ordered] struct {
	order int
	root  *node[K]
	size  int
}

// New creates an empty tree of the given order. The order is the maximum
// number of children per internal node and must be at least MinOrder.
func New[K cmp.Ordered](order int) (*Tree[K], error) {
	if order < MinOrder {
		return nil, ErrInvalidOrder
	}
	return &Tree[K]{order: order}, nil
}

// Order returns the order of the tree.
func (t *Tree[K]) Order() int {
	return t.order
}

// Len returns the number of keys currently stored.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.size == 0
}

// Height returns the number of edges from the root to any leaf, or -1 for
// an empty tree.
func (t *Tree[K]) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.height()
}

// Clear removes all keys. The previous nodes are released to the garbage
// collector as a whole, since the root was their only external reference.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// MinKey returns the smallest key in the tree.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K]) MinKey() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.minKey(), nil
}

// MaxKey returns the largest key in the tree.
// Returns ErrEmptyTree if the tree is empty.
func (t *Tree[K]) MaxKey() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.maxKey(), nil
}

// maxKeys is the per-node key capacity: M-1.
func (t *Tree[K]) maxKeys() int {
	return t.order - 1
}

// minKeys is the minimum key count for non-root nodes: ceil(M/2)-1.
func (t *Tree[K]) minKeys() int {
	return (t.order+1)/2 - 1
}
