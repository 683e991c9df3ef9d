package node

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"checktree/internal/diagnostic"
	"checktree/utils"
)

// Validate checks an index against the structural invariants the check
// algorithms rely on. It never panics, even on cyclic input, and reports
// every problem it finds. An index built by NewIndex from a well-formed tree
// yields no errors.
//
// Diagnostics come out in a stable order: level problems first, then
// per-node problems in level order, then reachability.
func Validate[K comparable](idx *Index[K]) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	levels, levelOf, top := validateLevels(idx)
	d.Merge(levels)

	keys := orderedKeys(idx, top)
	d.Merge(validateNodes(idx, keys, levelOf))
	d.Merge(validateAcyclic(idx, keys))

	return d
}

// validateLevels checks the level buckets and records the depth of every
// node listed in them. A tree of n nodes has no level deeper than n-1, so
// buckets past that are reported and skipped. top is the deepest bucket
// kept.
func validateLevels[K comparable](idx *Index[K]) (diagnostic.Diagnostics, map[K]int, int) {
	var d diagnostic.Diagnostics

	top := -1
	for _, depth := range slices.Sorted(maps.Keys(idx.ByLevel)) {
		switch {
		case utils.IsInRange(0, depth, idx.Len()-1):
			top = depth
		case depth < 0:
			d.AddError(diagnostic.CodeNegativeLevel, "level index is negative", "", depth)
		default:
			d.AddError(diagnostic.CodeLevelOutOfRange,
				fmt.Sprintf("level is deeper than %d indexed nodes allow", idx.Len()), "", depth)
		}
	}

	levelOf := make(map[K]int, len(idx.ByKey))

	for depth := 0; depth <= top; depth++ {
		bucket := idx.ByLevel[depth]
		if len(bucket) == 0 {
			d.AddError(diagnostic.CodeLevelGap, "no nodes at this depth", "", depth)
			continue
		}

		for _, n := range bucket {
			if n == nil {
				d.AddError(diagnostic.CodeUnknownLevelNode, "nil node in level bucket", "", depth)
				continue
			}

			key := fmt.Sprint(n.Key)
			if idx.ByKey[n.Key] != n {
				d.AddError(diagnostic.CodeUnknownLevelNode, "level node is not the indexed node for its key", key, depth)
				continue
			}

			if prev, ok := levelOf[n.Key]; ok {
				d.AddError(diagnostic.CodeDuplicateLevel,
					fmt.Sprintf("node also listed at level %d", prev), key, depth)

				continue
			}

			levelOf[n.Key] = depth
		}
	}

	return d, levelOf, top
}

// orderedKeys lists the keys of ByKey as the kept level buckets reach them,
// then the remaining keys sorted by their printed form.
func orderedKeys[K comparable](idx *Index[K], top int) []K {
	keys := make([]K, 0, len(idx.ByKey))
	listed := make(map[K]struct{}, len(idx.ByKey))

	for depth := 0; depth <= top; depth++ {
		for _, n := range idx.ByLevel[depth] {
			if n == nil {
				continue
			}

			if _, ok := idx.ByKey[n.Key]; !ok {
				continue
			}

			if _, ok := listed[n.Key]; ok {
				continue
			}

			listed[n.Key] = struct{}{}
			keys = append(keys, n.Key)
		}
	}

	var rest []K
	for k := range idx.ByKey {
		if _, ok := listed[k]; !ok {
			rest = append(rest, k)
		}
	}

	slices.SortFunc(rest, func(a, b K) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})

	return append(keys, rest...)
}

func validateNodes[K comparable](idx *Index[K], keys []K, levelOf map[K]int) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, k := range keys {
		n := idx.ByKey[k]
		key := fmt.Sprint(k)

		if n == nil {
			d.AddError(diagnostic.CodeKeyMismatch, "key maps to a nil node", key, -1)
			continue
		}

		if n.Key != k {
			d.AddError(diagnostic.CodeKeyMismatch, fmt.Sprintf("indexed under a different key than %v", n.Key), key, -1)
			continue
		}

		validateShape(&d, idx, n, key)

		depth, ok := levelOf[k]
		if !ok {
			d.AddError(diagnostic.CodeMissingLevel, "node is absent from every level bucket", key, -1)
			continue
		}

		validateDepth(&d, n, key, depth, levelOf)
	}

	return d
}

func validateShape[K comparable](d *diagnostic.Diagnostics, idx *Index[K], n *Node[K], key string) {
	switch {
	case n.IsLeaf && len(n.Children) > 0:
		d.AddError(diagnostic.CodeLeafHasChildren, "leaf node has children", key, -1)
	case !n.IsLeaf && len(n.Children) == 0:
		d.AddError(diagnostic.CodeBranchWithoutChild, "non-leaf node has no children", key, -1)
	}

	enabled := 0

	for _, c := range n.Children {
		if c == nil {
			d.AddError(diagnostic.CodeParentMismatch, "nil child", key, -1)
			continue
		}

		if c.Parent != n {
			d.AddError(diagnostic.CodeParentMismatch,
				fmt.Sprintf("child %v does not point back to its parent", c.Key), key, -1)
		}

		if idx.ByKey[c.Key] != c {
			d.AddError(diagnostic.CodeMissingKey,
				fmt.Sprintf("child %v is not indexed", c.Key), key, -1)
		}

		if !c.Disabled {
			enabled++
		}
	}

	if !n.Disabled && len(n.Children) > 0 && enabled == 0 {
		d.AddWarning(diagnostic.CodeAllChildrenDisabled,
			"every child is disabled, the node is checked by vacuous truth", key, -1)
	}
}

func validateDepth[K comparable](d *diagnostic.Diagnostics, n *Node[K], key string, depth int, levelOf map[K]int) {
	if n.Parent == nil {
		if depth != 0 {
			d.AddError(diagnostic.CodeWrongLevel, "root node is not at level 0", key, depth)
		}

		return
	}

	if parentDepth, ok := levelOf[n.Parent.Key]; !ok || parentDepth != depth-1 {
		d.AddError(diagnostic.CodeWrongLevel, "node is not one level below its parent", key, depth)
	}
}

func validateAcyclic[K comparable](idx *Index[K], keys []K) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	seen := make(map[*Node[K]]struct{}, len(idx.ByKey))

	for _, root := range idx.ByLevel[0] {
		if root == nil {
			continue
		}

		Walk(root, func(n *Node[K]) Command {
			if n == nil {
				return Stop
			}

			if _, ok := seen[n]; ok {
				d.AddError(diagnostic.CodeCycle, "node reached twice from the roots", fmt.Sprint(n.Key), -1)
				return Stop
			}

			seen[n] = struct{}{}

			return Continue
		})
	}

	for _, k := range keys {
		n := idx.ByKey[k]
		if n == nil {
			continue
		}

		if _, ok := seen[n]; !ok {
			d.AddError(diagnostic.CodeUnreachable, "node is not reachable from any root", fmt.Sprint(k), -1)
		}
	}

	return d
}
