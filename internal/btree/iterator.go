package btree

import (
	"cmp"
	"fmt"
	"strings"
)

// Iterator walks the tree's keys in ascending order. It holds an explicit
// stack of the path being visited, so iteration costs O(log n) memory and
// amortized O(1) per key. The iterator is a snapshot of the descent path
// only; mutating the tree mid-iteration invalidates it.
type Iterator[K cmp.Ordered] struct {
	stack []iterFrame[K]
}

// iterFrame tracks how far iteration has progressed within one node.
type iterFrame[K cmp.Ordered] struct {
	n   *node[K]
	pos int // next key index to emit
}

// Iterator returns an in-order iterator positioned before the smallest key.
func (t *Tree[K]) Iterator() *Iterator[K] {
	it := &Iterator[K]{}
	if t.root != nil {
		it.pushLeftmost(t.root)
	}
	return it
}

// pushLeftmost pushes n and its leftmost descendant chain onto the stack.
func (it *Iterator[K]) pushLeftmost(n *node[K]) {
	for {
		it.stack = append(it.stack, iterFrame[K]{n: n})
		if n.leaf() {
			return
		}
		n = n.children[0]
	}
}

// Next returns the next key in ascending order, or (zero, false) once the
// iterator is exhausted.
func (it *Iterator[K]) Next() (K, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.pos < len(top.n.keys) {
			key := top.n.keys[top.pos]
			top.pos++
			if !top.n.leaf() {
				// The child right of the emitted key comes next in order.
				it.pushLeftmost(top.n.children[top.pos])
			}
			return key, true
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	var zero K
	return zero, false
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	it := t.Iterator()
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		keys = append(keys, key)
	}
	return keys
}

// Join renders the keys in ascending order separated by sep.
func (t *Tree[K]) Join(sep string) string {
	var b strings.Builder
	it := t.Iterator()
	first := true
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		if !first {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, key)
		first = false
	}
	return b.String()
}

// String renders the keys in ascending order, comma separated.
func (t *Tree[K]) String() string {
	return t.Join(",")
}
