package node_test

import (
	"fmt"

	"checktree/node"
)

func ExampleWalk() {
	root := node.NewBranch("docs", nil,
		node.NewBranch("drafts", nil, node.NewLeaf("todo.md", nil)).Disable(),
		node.NewLeaf("readme.md", nil),
	)

	node.Walk(root, func(n *node.Node[string]) node.Command {
		fmt.Println(n.Key)
		if n.Disabled {
			return node.Stop
		}

		return node.Continue
	})

	// Output:
	// docs
	// drafts
	// readme.md
}

func ExampleNewIndex() {
	idx, err := node.NewIndex(
		node.NewBranch(1, nil, node.NewLeaf(2, nil), node.NewLeaf(3, nil)),
	)
	if err != nil {
		panic(err)
	}

	for depth := 0; depth <= idx.MaxLevel(); depth++ {
		fmt.Print(depth, ":")
		for _, n := range idx.Level(depth) {
			fmt.Print(" ", n.Key)
		}
		fmt.Println()
	}

	// Output:
	// 0: 1
	// 1: 2 3
}
