// Package lvtree is an in-memory playground for classic tree algorithms,
// centred on an unbalanced binary search tree.
//
// What is inside:
//
//   - bst/   ordered BST: insert, lookup, lazy traversals (in-, pre-, post-order
//     and BFS), height, complete-level balance, validity checks, successor
//     and a treeprint rendering
//   - queue/ generic FIFO ring buffer used by the level-order walk
//   - cmd/lvtree  command-line tool that builds trees from arguments or
//     seeded random data and reports on them
//
// Quick ASCII example, inserting 5 2 8 1 3:
//
//	      5
//	     / \
//	    2   8
//	   / \
//	  1   3
//
//	in-order   [1 2 3 5 8]
//	pre-order  [5 2 1 3 8]
//	bfs        [5 2 8 1 3]
//
// Everything is single-threaded and allocation-light; no persistence and
// no I/O outside the command.
//
//	go get github.com/katalvlaran/lvtree/bst
package lvtree
