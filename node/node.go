package node

// Node is a single item of a checkbox tree.
//
// Parent is a non-owning back-reference used for upward lookups only; the
// tree is owned root to leaf. RawNode carries the caller's payload and is
// never inspected.
type Node[K comparable] struct {
	Key      K
	Disabled bool
	IsLeaf   bool
	Children []*Node[K]
	Parent   *Node[K]
	RawNode  any
}

// NewLeaf creates a node without children.
func NewLeaf[K comparable](key K, raw any) *Node[K] {
	return &Node[K]{
		Key:     key,
		IsLeaf:  true,
		RawNode: raw,
	}
}

// NewBranch creates a node owning the given children and links their Parent
// back-references. With no children the result is a leaf.
func NewBranch[K comparable](key K, raw any, children ...*Node[K]) *Node[K] {
	n := &Node[K]{
		Key:     key,
		IsLeaf:  len(children) == 0,
		RawNode: raw,
	}

	if n.IsLeaf {
		return n
	}

	n.Children = children
	for _, c := range children {
		c.Parent = n
	}

	return n
}

// Disable marks the node disabled and returns it, so it can be chained
// with the constructors while the tree is being assembled.
func (n *Node[K]) Disable() *Node[K] {
	n.Disabled = true
	return n
}

// IsRoot reports whether the node has no parent.
func (n *Node[K]) IsRoot() bool { return n.Parent == nil }
