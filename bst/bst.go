package bst

import (
	"cmp"
	"fmt"
)

// New returns a tree ordered by cmp.Compare with items inserted in
// argument order.
func New[T cmp.Ordered](items ...T) *Tree[T] {
	return NewFunc[T](cmp.Compare[T], items...)
}

// NewFunc returns a tree ordered by compare with items inserted in
// argument order. It panics with ErrNilCompare if compare is nil.
func NewFunc[T any](compare CompareFunc[T], items ...T) *Tree[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	t := &Tree[T]{compare: compare}
	t.InsertAll(items...)

	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Empty reports whether the tree has no nodes.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Len counts the nodes by walking the tree. Size is not cached.
func (t *Tree[T]) Len() int {
	n := 0
	for range t.InOrder() {
		n++
	}

	return n
}

// Insert adds item as a new leaf. Items comparing less than or equal to a
// node go to its left, greater items go right. Duplicates are kept.
func (t *Tree[T]) Insert(item T) {
	leaf := &Node[T]{Item: item}
	if t.root == nil {
		t.root = leaf
		return
	}

	cur := t.root
	for {
		if t.compare(item, cur.Item) <= 0 {
			if cur.left == nil {
				cur.left = leaf
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = leaf
				return
			}
			cur = cur.right
		}
	}
}

// InsertAll inserts items in argument order.
func (t *Tree[T]) InsertAll(items ...T) {
	for _, item := range items {
		t.Insert(item)
	}
}

// FindNode returns the first node on the search path whose item equals
// item. The search goes left only when item is strictly less than the
// node; equal and greater items go right.
func (t *Tree[T]) FindNode(item T) (*Node[T], bool) {
	cur := t.root
	for cur != nil {
		c := t.compare(item, cur.Item)
		if c == 0 {
			return cur, true
		}
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return nil, false
}

// Find returns the stored item equal to item. The boolean is false when no
// such item is reachable.
func (t *Tree[T]) Find(item T) (T, bool) {
	n, ok := t.FindNode(item)
	if !ok {
		var zero T
		return zero, false
	}

	return n.Item, true
}

// Contains reports whether Find locates item.
func (t *Tree[T]) Contains(item T) bool {
	_, ok := t.FindNode(item)
	return ok
}

// Min returns the leftmost item.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.Item, true
}

// Max returns the rightmost item.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.Item, true
}

// Delete is not implemented and always returns ErrNotImplemented. The tree
// is left unchanged.
func (t *Tree[T]) Delete(item T) error {
	return fmt.Errorf("%w: delete %v", ErrNotImplemented, item)
}
