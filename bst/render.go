package bst

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Side labels used by Render.
const (
	leftMeta  = "L"
	rightMeta = "R"
)

// String renders the in-order items, e.g. "[1 2 3]". It is meant for
// logging and test diffs, not as a stable serialization format.
func (t *Tree[T]) String() string {
	return t.Format(InOrder)
}

// Format renders the items of the traversal selected by o.
func (t *Tree[T]) Format(o Order) string {
	return fmt.Sprint(Items(t.Traverse(o)))
}

// Render draws the tree shape, one node per line, with each child tagged
// by its side:
//
//	5
//	├── [L]  2
//	│   ├── [L]  1
//	│   └── [R]  3
//	└── [R]  8
//
// An empty tree renders as "<empty>".
func (t *Tree[T]) Render() string {
	if t.root == nil {
		return treeprint.NewWithRoot("<empty>").String()
	}
	tp := treeprint.NewWithRoot(t.root.Item)
	renderChildren(tp, t.root)

	return tp.String()
}

func renderChildren[T any](tp treeprint.Tree, n *Node[T]) {
	if n.left != nil {
		renderChildren(tp.AddMetaBranch(leftMeta, n.left.Item), n.left)
	}
	if n.right != nil {
		renderChildren(tp.AddMetaBranch(rightMeta, n.right.Item), n.right)
	}
}
