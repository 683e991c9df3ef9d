package check_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checktree/check"
	"checktree/internal/testutil"
	"checktree/node"
)

func TestExtendedCheckedKeys(t *testing.T) {
	tests := []struct {
		name     string
		disableB bool
		checked  []string
		want     []string
	}{
		{name: "leaf", checked: []string{"B1"}, want: []string{"B1"}},
		{name: "root", checked: []string{"A"}, want: []string{"A", "B", "B1", "C"}},
		{name: "branch", checked: []string{"B"}, want: []string{"B", "B1"}},
		{name: "duplicates", checked: []string{"B", "B", "B1"}, want: []string{"B", "B1"}},
		{name: "overlapping", checked: []string{"B1", "A"}, want: []string{"B1", "A", "B", "C"}},
		{name: "unknown", checked: []string{"Z"}, want: []string{}},
		{name: "nil input", checked: nil, want: []string{}},
		{name: "disabled barrier", disableB: true, checked: []string{"A"}, want: []string{"A", "C"}},
		{name: "explicit disabled", disableB: true, checked: []string{"B"}, want: []string{"B"}},
		{name: "explicit disabled after root", disableB: true, checked: []string{"A", "B"}, want: []string{"A", "B", "C"}},
		{name: "explicit disabled before root", disableB: true, checked: []string{"B", "A"}, want: []string{"B", "A", "C"}},
		{name: "explicit leaf under disabled", disableB: true, checked: []string{"A", "B1"}, want: []string{"A", "C", "B1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := check.ExtendedCheckedKeys(tt.checked, sampleTree(tt.disableB))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtendedCheckedKeys_Idempotent(t *testing.T) {
	idx := sampleTree(true)

	for _, checked := range [][]string{{"A"}, {"B"}, {"B", "A"}, {"B1", "C"}} {
		once := check.ExtendedCheckedKeys(checked, idx)
		twice := check.ExtendedCheckedKeys(once, idx)
		testutil.KeysEqual(t, once, twice, "input %v", checked)
	}
}

func TestExtendedCheckedKeys_IntKeys(t *testing.T) {
	idx := node.MustIndex(
		node.NewBranch(1, nil,
			node.NewBranch(2, nil, node.NewLeaf(3, nil)),
			node.NewLeaf(4, nil).Disable(),
		),
		node.NewLeaf(5, nil),
	)

	assert.Equal(t, []int{1, 2, 3}, check.ExtendedCheckedKeys([]int{1}, idx))
	assert.Equal(t, []int{4, 5}, check.ExtendedCheckedKeys([]int{4, 5, 42}, idx))
}

func TestExtendedCheckedKeys_DoesNotAliasInput(t *testing.T) {
	idx := sampleTree(false)
	in := []string{"B1"}

	out := check.ExtendedCheckedKeys(in, idx)
	out[0] = "mutated"

	assert.Equal(t, []string{"B1"}, in)
	assert.Equal(t, []string{"B1"}, check.ExtendedCheckedKeys(in, idx))
}

func TestExtendedCheckedKeys_LogsUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got := check.ExtendedCheckedKeys([]string{"stale", "C"}, sampleTree(false), check.WithLogger(log))
	require.Equal(t, []string{"C"}, got)

	out := buf.String()
	assert.Contains(t, out, `"msg":"ignoring unknown checked key"`)
	assert.Contains(t, out, `"key":"stale"`)
	assert.Contains(t, out, `"extended":1`)
}
