package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checktree/node"
)

func walkTree() *node.Node[string] {
	return node.NewBranch("A", nil,
		node.NewBranch("B", nil,
			node.NewLeaf("B1", nil),
			node.NewLeaf("B2", nil),
		),
		node.NewBranch("C", nil,
			node.NewLeaf("C1", nil),
		),
		node.NewLeaf("D", nil),
	)
}

func TestWalk_PreOrder(t *testing.T) {
	var got []string
	node.Walk(walkTree(), func(n *node.Node[string]) node.Command {
		got = append(got, n.Key)
		return node.Continue
	})

	assert.Equal(t, []string{"A", "B", "B1", "B2", "C", "C1", "D"}, got)
}

func TestWalk_StopIsLocal(t *testing.T) {
	var got []string
	node.Walk(walkTree(), func(n *node.Node[string]) node.Command {
		got = append(got, n.Key)
		if n.Key == "B" {
			return node.Stop
		}

		return node.Continue
	})

	assert.Equal(t, []string{"A", "B", "C", "C1", "D"}, got)
}

func TestWalk_StopAtStart(t *testing.T) {
	visits := 0
	node.Walk(walkTree(), func(*node.Node[string]) node.Command {
		visits++
		return node.Stop
	})

	assert.Equal(t, 1, visits)
}

func TestWalk_Leaf(t *testing.T) {
	var got []int
	node.Walk(node.NewLeaf(3, nil), func(n *node.Node[int]) node.Command {
		got = append(got, n.Key)
		return node.Continue
	})

	assert.Equal(t, []int{3}, got)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "Continue", node.Continue.String())
	assert.Equal(t, "Stop", node.Stop.String())
	assert.Equal(t, "Command(9)", node.Command(9).String())
}
