package check

import (
	"checktree/internal/common"
	"checktree/node"
)

// ExtendedCheckedKeys returns every key implied by checking keys: the keys
// themselves plus each enabled descendant reachable without crossing a
// disabled node. A disabled node is kept only when listed explicitly.
//
// The result has no duplicates and lists keys in first-visit order.
func ExtendedCheckedKeys[K comparable](keys []K, idx *node.Index[K], opts ...Option) []K {
	cfg := newConfig(opts)
	return extend(keys, idx, cfg).Values()
}

func extend[K comparable](keys []K, idx *node.Index[K], cfg config) *common.OrderedSet[K] {
	explicit := common.NewOrderedSet(keys...)
	visited := make(map[K]struct{})
	extended := common.NewOrderedSet[K]()

	for _, key := range keys {
		n, ok := idx.Node(key)
		if !ok {
			cfg.log.Debug("ignoring unknown checked key", "key", key)
			continue
		}

		node.Walk(n, func(n *node.Node[K]) node.Command {
			// A revisited subtree was either fully expanded or blocked
			// the first time round.
			if _, ok := visited[n.Key]; ok {
				return node.Stop
			}

			visited[n.Key] = struct{}{}

			if n.Disabled {
				if explicit.Has(n.Key) {
					extended.Add(n.Key)
				}

				return node.Stop
			}

			extended.Add(n.Key)

			return node.Continue
		})
	}

	cfg.log.Debug("expanded checked keys",
		"explicit", explicit.Len(), "extended", extended.Len(), "visited", len(visited))

	return extended
}
