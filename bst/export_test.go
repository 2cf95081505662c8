package bst

import "cmp"

// BuildNode wires a node by hand so tests can create shapes Insert never
// produces.
func BuildNode[T any](item T, left, right *Node[T]) *Node[T] {
	return &Node[T]{Item: item, left: left, right: right}
}

// FromRoot wraps a hand-built node graph in a tree ordered by cmp.Compare.
func FromRoot[T cmp.Ordered](root *Node[T]) *Tree[T] {
	return &Tree[T]{root: root, compare: cmp.Compare[T]}
}
