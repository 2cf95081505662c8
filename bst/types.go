// Package bst defines the node and tree types, the ordering contract,
// traversal order selectors and sentinel errors.
package bst

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations.
var (
	// ErrNotImplemented is returned by operations that are declared but
	// deliberately not implemented, such as Delete.
	ErrNotImplemented = errors.New("bst: operation not implemented")

	// ErrNilCompare is the panic value used when NewFunc is given a nil
	// comparison function.
	ErrNilCompare = errors.New("bst: compare function is nil")

	// ErrUnknownOrder indicates an Order value outside the defined set.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")
)

// CompareFunc orders two items: negative when a < b, zero when a == b,
// positive when a > b. It must be a total order over every item stored in
// a tree.
type CompareFunc[T any] func(a, b T) int

// Order selects one of the tree traversals.
type Order int

const (
	// InOrder visits left subtree, node, right subtree.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits node, right subtree, left subtree.
	PostOrder
	// LevelOrder visits nodes breadth-first, left child before right.
	LevelOrder
)

// String returns the flag-style name of the order.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "bfs"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a name produced by Order.String back to its Order.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{InOrder, PreOrder, PostOrder, LevelOrder} {
		if o.String() == s {
			return o, nil
		}
	}

	return InOrder, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Node holds one item and owns its two children. Children are never
// shared between nodes and there are no parent links.
type Node[T any] struct {
	// Item is the stored value.
	Item T

	left, right *Node[T]
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// String formats the node's item.
func (n *Node[T]) String() string { return fmt.Sprint(n.Item) }

// Tree is an unbalanced binary search tree. Build one with New or NewFunc;
// the zero value has no comparison function and is not usable.
type Tree[T any] struct {
	root    *Node[T]
	compare CompareFunc[T]
}
