package bst

// Height returns the number of nodes on the longest root-to-leaf path.
// The root alone has height 1; an empty tree has height 0.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// LevelWidths returns the number of nodes at each depth, root first.
// The slice length equals Height().
func (t *Tree[T]) LevelWidths() []int {
	var widths []int
	for depth := range t.Levels() {
		if depth == len(widths) {
			widths = append(widths, 0)
		}
		widths[depth]++
	}

	return widths
}

// Balanced reports whether every level above the deepest one is full,
// i.e. level l holds exactly 2^l nodes. This is a complete-tree shape test,
// stricter than "subtree heights differ by at most one". The deepest level
// may hold any number of nodes. An empty tree is balanced.
func (t *Tree[T]) Balanced() bool {
	widths := t.LevelWidths()
	for level := 0; level < len(widths)-1; level++ {
		if widths[level] != 1<<level {
			return false
		}
	}

	return true
}

// IsValid performs a shallow ordering check along a single path. At each
// node it checks the left child (it must not be greater than the node) and
// descends into it; only when there is no left child does it check the
// right child (it must be greater than the node) and descend there. The
// other branch is never examined, so violations hidden in it are not
// reported. Use IsValidStrict for the full invariant.
func (t *Tree[T]) IsValid() bool {
	n := t.root
	for n != nil {
		switch {
		case n.left != nil:
			if t.compare(n.left.Item, n.Item) > 0 {
				return false
			}
			n = n.left
		case n.right != nil:
			if t.compare(n.right.Item, n.Item) <= 0 {
				return false
			}
			n = n.right
		default:
			return true
		}
	}

	return true
}

// IsValidStrict reports whether every node satisfies the ordering
// invariant transitively: all items in a left subtree are <= the node and
// all items in a right subtree are > the node.
func (t *Tree[T]) IsValidStrict() bool {
	return t.within(t.root, nil, nil)
}

// within checks that every item under n is > *lo (when set) and <= *hi
// (when set).
func (t *Tree[T]) within(n *Node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && t.compare(n.Item, *lo) <= 0 {
		return false
	}
	if hi != nil && t.compare(n.Item, *hi) > 0 {
		return false
	}

	return t.within(n.left, lo, &n.Item) && t.within(n.right, &n.Item, hi)
}
