// Package btree implements a generic, order-parameterized B-tree used as the
// in-memory index core of the ironwood storage engine.
//
// # Overview
//
// The tree keeps a set of unique keys under a strict total order and
// provides:
//
//   - O(log n) lookup, insertion, and deletion
//   - Ascending range queries and in-order iteration
//   - Bulk construction from pre-sorted input in a single pass
//   - A structural invariant checker used by the test suite
//
// # Node Structure
//
// A node of an order-M tree holds at most M-1 keys in strictly ascending
// order. Internal nodes hold exactly one more child than keys; leaf nodes
// hold no children. Every non-root node holds at least ceil(M/2)-1 keys, and
// all leaves sit at the same depth.
//
// # Usage
//
// Create and use a tree:
//
//	tree, err := btree.New[int](4)
//
//	// Insert and remove keys
//	tree.Insert(42)
//	tree.Remove(42)
//
//	// Point and range lookups
//	found := tree.Search(42)
//	keys := tree.RangeSearch(10, 20)
//
//	// In-order iteration
//	it := tree.Iterator()
//	for key, ok := it.Next(); ok; key, ok = it.Next() {
//		// ...
//	}
//
// # Concurrency
//
// The tree is not safe for concurrent use. Callers that share a tree across
// goroutines must serialize access externally.
package btree
