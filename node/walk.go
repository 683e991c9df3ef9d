package node

//go:generate go tool stringer -type=Command -output=command_string.go

// Command is returned by a Walk visitor to steer the traversal.
type Command int

const (
	// Continue descends into the children of the visited node.
	Continue Command = iota
	// Stop skips the children of the visited node. Siblings and the rest of
	// the tree are still visited.
	Stop
)

// Walk visits n and then each of its children in order, depth-first and
// pre-order. A visitor returning Stop prunes the subtree below that node
// only. Walk accumulates nothing; visitors keep their own state.
func Walk[K comparable](n *Node[K], visit func(*Node[K]) Command) {
	if visit(n) == Stop {
		return
	}

	for _, child := range n.Children {
		Walk(child, visit)
	}
}
