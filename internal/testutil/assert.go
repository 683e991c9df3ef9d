// Package testutil provides order-insensitive assertions for key sets,
// selection statuses and trees.
package testutil

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"checktree/check"
	"checktree/node"
)

func keyOpts[K comparable]() []cmp.Option {
	return []cmp.Option{
		cmpopts.SortSlices(func(a, b K) bool { return fmt.Sprint(a) < fmt.Sprint(b) }),
		cmpopts.EquateEmpty(),
	}
}

// KeysEqual asserts that want and got hold the same keys in any order.
func KeysEqual[K comparable](t testing.TB, want, got []K, msgAndArgs ...any) bool {
	t.Helper()

	if diff := cmp.Diff(want, got, keyOpts[K]()...); diff != "" {
		return assert.Fail(t, fmt.Sprintf("keys differ (-want +got):\n%s", diff), msgAndArgs...)
	}

	return true
}

// StatusEqual asserts that both checked and indeterminate sets match in any order.
func StatusEqual[K comparable](t testing.TB, want, got check.Status[K], msgAndArgs ...any) bool {
	t.Helper()

	ok := KeysEqual(t, want.Checked, got.Checked, append([]any{"checked keys"}, msgAndArgs...)...)
	ok = KeysEqual(t, want.Indeterminate, got.Indeterminate, append([]any{"indeterminate keys"}, msgAndArgs...)...) && ok

	return ok
}

// Disjoint asserts that a and b share no key.
func Disjoint[K comparable](t testing.TB, a, b []K, msgAndArgs ...any) bool {
	t.Helper()

	seen := make(map[K]struct{}, len(a))
	for _, k := range a {
		seen[k] = struct{}{}
	}

	for _, k := range b {
		if _, ok := seen[k]; ok {
			return assert.Fail(t, fmt.Sprintf("key %v is in both sets", k), msgAndArgs...)
		}
	}

	return true
}

// TreesEqual compares two node lists field by field. Parents are compared by
// key and raw payloads by deep equality; a mismatch dumps both subtrees.
func TreesEqual[K comparable](t testing.TB, want, got []*node.Node[K]) bool {
	t.Helper()

	if len(want) != len(got) {
		return assert.Fail(t, fmt.Sprintf("node count: want %d, got %d", len(want), len(got)))
	}

	ok := true
	for i := range want {
		ok = treeEqual(t, want[i], got[i]) && ok
	}

	return ok
}

func treeEqual[K comparable](t testing.TB, want, got *node.Node[K]) bool {
	t.Helper()

	if want == nil || got == nil {
		return assert.Equal(t, want == nil, got == nil, "nil node mismatch")
	}

	fail := func(field string) bool {
		return assert.Fail(t, fmt.Sprintf("node %v: %s differs", want.Key, field),
			"want:\n%s\ngot:\n%s", dump(want), dump(got))
	}

	switch {
	case want.Key != got.Key:
		return fail("key")
	case want.Disabled != got.Disabled:
		return fail("disabled")
	case want.IsLeaf != got.IsLeaf:
		return fail("isLeaf")
	case (want.Parent == nil) != (got.Parent == nil):
		return fail("parent")
	case want.Parent != nil && want.Parent.Key != got.Parent.Key:
		return fail("parent")
	case !assert.ObjectsAreEqual(want.RawNode, got.RawNode):
		return fail("rawNode")
	}

	return TreesEqual(t, want.Children, got.Children)
}

// dump renders a node without following parent pointers.
func dump[K comparable](n *node.Node[K]) string {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, MaxDepth: 1}
	return cfg.Sdump(struct {
		Key      K
		Disabled bool
		IsLeaf   bool
		Children int
		RawNode  any
	}{n.Key, n.Disabled, n.IsLeaf, len(n.Children), n.RawNode})
}
