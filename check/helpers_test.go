package check_test

import (
	"checktree/node"
)

// sampleTree builds
//
//	A
//	├── B
//	│   └── B1
//	└── C
//
// with B disabled when disableB is set.
func sampleTree(disableB bool) *node.Index[string] {
	b := node.NewBranch("B", nil, node.NewLeaf("B1", nil))
	if disableB {
		b.Disable()
	}

	return node.MustIndex(node.NewBranch("A", nil, b, node.NewLeaf("C", nil)))
}
