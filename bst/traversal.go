package bst

import (
	"iter"

	"github.com/katalvlaran/lvtree/queue"
)

// All yields the items in ascending order. It is the tree's default
// iteration order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range t.InOrder() {
			if !yield(n.Item) {
				return
			}
		}
	}
}

// InOrder yields nodes left subtree first, then the node, then the right
// subtree. For a valid tree the items come out in non-decreasing order.
func (t *Tree[T]) InOrder() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		inOrder(t.root, yield)
	}
}

// PreOrder yields each node before its left and then right subtree.
func (t *Tree[T]) PreOrder() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		preOrder(t.root, yield)
	}
}

// PostOrder yields each node first, then its RIGHT subtree, then its LEFT
// subtree. This is not the textbook left, right, node order; the existing
// behavior is kept as is.
func (t *Tree[T]) PostOrder() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		postOrder(t.root, yield)
	}
}

// BFS yields nodes level by level, left child before right, driven by an
// explicit FIFO queue.
func (t *Tree[T]) BFS() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for _, n := range t.Levels() {
			if !yield(n) {
				return
			}
		}
	}
}

// levelItem pairs a queued node with its depth.
type levelItem[T any] struct {
	node  *Node[T]
	depth int
}

// Levels yields every node in BFS order together with its zero-based depth.
func (t *Tree[T]) Levels() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		if t.root == nil {
			return
		}
		q := queue.New[levelItem[T]](8)
		q.Enqueue(levelItem[T]{node: t.root})
		for it := range q.Drain() {
			if !yield(it.depth, it.node) {
				return
			}
			if it.node.left != nil {
				q.Enqueue(levelItem[T]{node: it.node.left, depth: it.depth + 1})
			}
			if it.node.right != nil {
				q.Enqueue(levelItem[T]{node: it.node.right, depth: it.depth + 1})
			}
		}
	}
}

// Traverse returns the traversal selected by o. Unknown orders yield
// nothing; use ParseOrder to validate user input first.
func (t *Tree[T]) Traverse(o Order) iter.Seq[*Node[T]] {
	switch o {
	case InOrder:
		return t.InOrder()
	case PreOrder:
		return t.PreOrder()
	case PostOrder:
		return t.PostOrder()
	case LevelOrder:
		return t.BFS()
	default:
		return func(func(*Node[T]) bool) {}
	}
}

// Items collects the items of a node sequence into a slice.
func Items[T any](seq iter.Seq[*Node[T]]) []T {
	var out []T
	for n := range seq {
		out = append(out, n.Item)
	}

	return out
}

// The recursive walkers return false once yield asks to stop, so the
// callers unwind without touching the rest of the tree.

func inOrder[T any](n *Node[T], yield func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, yield) && yield(n) && inOrder(n.right, yield)
}

func preOrder[T any](n *Node[T], yield func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}

	return yield(n) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func postOrder[T any](n *Node[T], yield func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}

	return yield(n) && postOrder(n.right, yield) && postOrder(n.left, yield)
}
