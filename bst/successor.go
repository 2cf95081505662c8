package bst

// Successor returns the item that follows the first in-order occurrence of
// item. The boolean is false when item is absent or is the last in-order
// item. With duplicates the successor of an item may be an equal item.
//
// The search walks the in-order sequence, so it costs O(n) regardless of
// tree shape.
func (t *Tree[T]) Successor(item T) (T, bool) {
	// TODO: O(h) variant: leftmost node of the right subtree, else the
	// nearest ancestor whose left subtree holds the node.
	found := false
	for n := range t.InOrder() {
		if found {
			return n.Item, true
		}
		if t.compare(n.Item, item) == 0 {
			found = true
		}
	}
	var zero T

	return zero, false
}
