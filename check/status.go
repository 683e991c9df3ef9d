package check

import (
	"slices"

	"checktree/internal/common"
	"checktree/node"
	"checktree/options"
)

// Status is the derived selection state of a tree. Checked and
// Indeterminate never share a key.
type Status[K comparable] struct {
	Checked       []K
	Indeterminate []K
}

// IsChecked reports whether key is in the checked set.
func (s Status[K]) IsChecked(key K) bool {
	return slices.Contains(s.Checked, key)
}

// IsIndeterminate reports whether key is in the indeterminate set.
func (s Status[K]) IsIndeterminate(key K) bool {
	return slices.Contains(s.Indeterminate, key)
}

// CheckedKeys expands keys and aggregates the result bottom-up.
//
// Levels are processed from the deepest to the root so that children are
// classified before their parent. Disabled nodes and leaves are skipped;
// their membership comes from the expansion alone. For every other node
// only enabled children are counted: all of them checked makes the node
// checked, some of them checked makes it indeterminate. A node with no
// enabled children is checked unless options.PolicySkipVacuous is set.
func CheckedKeys[K comparable](keys []K, idx *node.Index[K], opts ...Option) Status[K] {
	cfg := newConfig(opts)

	checked := extend(keys, idx, cfg)
	indeterminate := common.NewOrderedSet[K]()
	maxLevel := idx.MaxLevel()

	for level := maxLevel; level >= 0; level-- {
		for _, n := range idx.Level(level) {
			if n.Disabled || n.IsLeaf {
				continue
			}

			full, partial, counted := classify(n, checked)

			switch {
			case full && counted == 0 && cfg.policy.Has(options.PolicySkipVacuous):
				// left unclassified
			case full:
				checked.Add(n.Key)
			case partial && !checked.Has(n.Key):
				indeterminate.Add(n.Key)
			}
		}
	}

	cfg.log.Debug("aggregated checked status",
		"maxLevel", maxLevel, "checked", checked.Len(), "indeterminate", indeterminate.Len())

	return Status[K]{
		Checked:       checked.Values(),
		Indeterminate: indeterminate.Values(),
	}
}

// classify scans the enabled children of n. full stays true until an
// unchecked enabled child is found; partial turns true on the first checked
// one. counted is the number of enabled children scanned.
func classify[K comparable](n *node.Node[K], checked *common.OrderedSet[K]) (full, partial bool, counted int) {
	full = true

	for _, child := range n.Children {
		if child.Disabled {
			continue
		}

		counted++

		if checked.Has(child.Key) {
			partial = true
		} else {
			full = false
		}

		if partial && !full {
			break
		}
	}

	return full, partial, counted
}
