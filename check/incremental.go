package check

import (
	"checktree/internal/common"
	"checktree/node"
)

// AfterCheck returns the expansion of current with key added.
func AfterCheck[K comparable](key K, current []K, idx *node.Index[K], opts ...Option) []K {
	keys := make([]K, 0, len(current)+1)
	keys = append(keys, current...)
	keys = append(keys, key)

	return ExtendedCheckedKeys(keys, idx, opts...)
}

// AfterUncheck returns the expansion of current minus everything that
// checking key alone would imply. Keys implied by other checked nodes but
// also reachable from key are retracted too.
func AfterUncheck[K comparable](key K, current []K, idx *node.Index[K], opts ...Option) []K {
	cfg := newConfig(opts)

	extended := extend(current, idx, cfg).Values()
	retracted := extend([]K{key}, idx, cfg)

	return common.Without(extended, retracted)
}
