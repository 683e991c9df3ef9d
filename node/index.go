package node

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is wrapped by every error NewIndex returns.
var ErrMalformedTree = errors.New("malformed tree")

// Index is the read-only lookup handle over one tree (or forest).
//
// ByKey maps every key to its node. ByLevel maps every depth, root = 0, to
// the nodes at that depth in tree order. Both maps are shared with the
// caller and must not be mutated while an operation reads them.
type Index[K comparable] struct {
	ByKey   map[K]*Node[K]
	ByLevel map[int][]*Node[K]
}

// NewIndex builds the lookup tables for already linked roots. Level buckets
// are filled breadth-first, so each bucket lists nodes parent by parent in
// child order.
func NewIndex[K comparable](roots ...*Node[K]) (*Index[K], error) {
	idx := &Index[K]{
		ByKey:   make(map[K]*Node[K]),
		ByLevel: make(map[int][]*Node[K]),
	}

	seen := make(map[*Node[K]]struct{})
	level := roots

	for depth := 0; len(level) > 0; depth++ {
		var next []*Node[K]

		for _, n := range level {
			if n == nil {
				return nil, fmt.Errorf("%w: nil node at level %d", ErrMalformedTree, depth)
			}

			if _, ok := seen[n]; ok {
				return nil, fmt.Errorf("%w: node %v reached twice", ErrMalformedTree, n.Key)
			}

			seen[n] = struct{}{}

			if _, dup := idx.ByKey[n.Key]; dup {
				return nil, fmt.Errorf("%w: duplicate key %v", ErrMalformedTree, n.Key)
			}

			idx.ByKey[n.Key] = n
			idx.ByLevel[depth] = append(idx.ByLevel[depth], n)
			next = append(next, n.Children...)
		}

		level = next
	}

	return idx, nil
}

// MustIndex is like NewIndex but panics on a malformed tree.
// Intended for fixtures and examples.
func MustIndex[K comparable](roots ...*Node[K]) *Index[K] {
	idx, err := NewIndex(roots...)
	if err != nil {
		panic(err)
	}

	return idx
}

// Node looks up a node by key.
func (idx *Index[K]) Node(key K) (*Node[K], bool) {
	n, ok := idx.ByKey[key]
	return n, ok
}

// Level returns the nodes at depth, or nil when there are none.
func (idx *Index[K]) Level(depth int) []*Node[K] {
	return idx.ByLevel[depth]
}

// MaxLevel returns the deepest level present, or -1 for an empty index.
func (idx *Index[K]) MaxLevel() int {
	maxLevel := -1
	for depth := range idx.ByLevel {
		maxLevel = max(maxLevel, depth)
	}

	return maxLevel
}

// Len returns the number of indexed nodes.
func (idx *Index[K]) Len() int {
	return len(idx.ByKey)
}
