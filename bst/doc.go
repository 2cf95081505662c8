// Package bst implements an unbalanced, ordered binary search tree with
// lazy traversals, structural validation and balance/height analysis.
//
// What:
//
//   - Insert: binary-search descent; ties go LEFT, so duplicates are kept
//     and pile up on the left side of equal items. No rebalancing, so a
//     sorted insertion sequence degenerates into a chain.
//   - Find: equality first, then strictly-less goes left and everything
//     else goes right. Note this branching differs from Insert's tie rule.
//   - Traversals: InOrder, PreOrder, PostOrder and BFS, each a lazy
//     iter.Seq of nodes. PostOrder visits node, RIGHT, then LEFT.
//   - Analysis: Height, Balanced (every level above the deepest is full),
//     LevelWidths, IsValid (single-path shallow check), IsValidStrict
//     (full transitive check) and Successor.
//   - Rendering: String, Format and Render (tree shape via treeprint).
//
// Why:
//
//   - A compact teaching structure with real invariants, several recursive
//     algorithms and the classic edge cases: empty tree, duplicate keys,
//     skewed trees.
//
// Complexity:
//
//   - Insert, Find:          O(h), h = Height() (O(n) for a chain)
//   - Traversals:            O(n) time; O(h) stack for DFS orders, O(w) queue
//     for BFS where w is the widest level
//   - Height, LevelWidths:   O(n)
//   - Balanced:              O(n)
//   - IsValid:               O(h)
//   - IsValidStrict:         O(n)
//   - Successor, Len:        O(n)
//
// Errors:
//
//   - ErrNotImplemented   returned by Delete
//   - ErrNilCompare       panic value when NewFunc receives a nil comparison
//
// Absence (lookup miss, successor of the maximum, Min/Max of an empty tree)
// is reported with a comma-ok boolean, never an error.
//
// A Tree is not safe for concurrent use. Mutating a tree while one of its
// traversal sequences is partially consumed is undefined: the sequence may
// skip or repeat nodes.
package bst
