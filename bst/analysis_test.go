package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/bst"
)

func TestHeight(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  int
	}{
		{"empty", nil, 0},
		{"root only", []int{1}, 1},
		{"mixed", []int{5, 2, 8, 1, 3}, 3},
		{"ascending chain", []int{1, 2, 3, 4, 5}, 5},
		{"duplicates stack left", []int{7, 7, 7, 7}, 4},
		{"complete", []int{4, 2, 6, 1, 3, 5, 7}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bst.New(tc.items...).Height())
		})
	}
}

func TestLevelWidths(t *testing.T) {
	assert.Empty(t, bst.New[int]().LevelWidths())
	assert.Equal(t, []int{1, 2, 2}, bst.New(5, 2, 8, 1, 3).LevelWidths())
	assert.Equal(t, []int{1, 1, 1, 1, 1}, bst.New(1, 2, 3, 4, 5).LevelWidths())
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  bool
	}{
		{"empty", nil, true},
		{"root only", []int{1}, true},
		{"complete depth 3", []int{4, 2, 6, 1, 3, 5, 7}, true},
		{"complete depth 4", []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}, true},
		{"partial last level", []int{4, 2, 6, 1}, true},
		{"partial last level right side", []int{5, 2, 8, 1, 3}, true},
		{"ascending chain", []int{1, 2, 3, 4, 5}, false},
		{"missing node above deepest level", []int{4, 2, 1}, false},
		{"same items in sorted order", []int{1, 2, 3, 4, 5, 6, 7}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bst.New(tc.items...).Balanced())
		})
	}
}

func TestIsValid_InsertBuiltTrees(t *testing.T) {
	assert.True(t, bst.New[int]().IsValid())
	assert.True(t, bst.New(5, 2, 8, 1, 3).IsValid())
	assert.True(t, bst.New(1, 2, 3, 4, 5).IsValid())

	// single-path rule: root -> 5 (left, 5 <= 5) -> 4 (left, 4 <= 5) -> leaf
	tr := bst.New(5, 5, 8, 4, 6, 7)
	assert.True(t, tr.IsValid())
	assert.True(t, tr.IsValidStrict())
}

func TestIsValid_ShallowViolations(t *testing.T) {
	// left child greater than its parent
	leftTooBig := bst.FromRoot(bst.BuildNode(5, bst.BuildNode(7, nil, nil), nil))
	assert.False(t, leftTooBig.IsValid())
	assert.False(t, leftTooBig.IsValidStrict())

	// right child equal to its parent with no left child to check first
	rightEqual := bst.FromRoot(bst.BuildNode(5, nil, bst.BuildNode(5, nil, nil)))
	assert.False(t, rightEqual.IsValid())
	assert.False(t, rightEqual.IsValidStrict())

	// violation two levels down the followed path
	deepOnPath := bst.FromRoot(
		bst.BuildNode(10,
			bst.BuildNode(5,
				bst.BuildNode(6, nil, nil),
				nil),
			nil),
	)
	assert.False(t, deepOnPath.IsValid())
}

func TestIsValid_ValidatesShallowViolationsButNotAllDeepOnes(t *testing.T) {
	// the right child of the root is never checked because a left child exists
	rightBranchIgnored := bst.FromRoot(
		bst.BuildNode(5,
			bst.BuildNode(3, nil, nil),
			bst.BuildNode(2, nil, nil)),
	)
	assert.True(t, rightBranchIgnored.IsValid())
	assert.False(t, rightBranchIgnored.IsValidStrict())

	// 9 sits in the left subtree of 5; each parent/child pair on the checked
	// path is fine, and the right child of 3 is skipped
	transitiveViolation := bst.FromRoot(
		bst.BuildNode(5,
			bst.BuildNode(3,
				bst.BuildNode(1, nil, nil),
				bst.BuildNode(9, nil, nil)),
			nil),
	)
	assert.True(t, transitiveViolation.IsValid())
	assert.False(t, transitiveViolation.IsValidStrict())
}

func TestIsValidStrict_Bounds(t *testing.T) {
	// 4 is in the right subtree of 5 via 8's left child
	tr := bst.FromRoot(
		bst.BuildNode(5,
			nil,
			bst.BuildNode(8, bst.BuildNode(4, nil, nil), nil)),
	)
	assert.False(t, tr.IsValidStrict())

	// 5 equal to the root is allowed on the left at any depth
	ok := bst.FromRoot(
		bst.BuildNode(5,
			bst.BuildNode(2, nil, bst.BuildNode(5, nil, nil)),
			nil),
	)
	assert.True(t, ok.IsValidStrict())
	assert.True(t, bst.New[int]().IsValidStrict())
}
