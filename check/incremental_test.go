package check_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"checktree/check"
	"checktree/internal/testutil"
)

func TestAfterCheck(t *testing.T) {
	idx := sampleTree(false)

	assert.Equal(t, []string{"C", "B", "B1"}, check.AfterCheck("B", []string{"C"}, idx))
	assert.Equal(t, []string{"A", "B", "B1", "C"}, check.AfterCheck("A", nil, idx))
	assert.Equal(t, []string{"C"}, check.AfterCheck("missing", []string{"C"}, idx))
}

func TestAfterCheck_DoesNotAliasCurrent(t *testing.T) {
	idx := sampleTree(false)
	current := make([]string, 1, 8)
	current[0] = "C"

	check.AfterCheck("B", current, idx)

	assert.Equal(t, []string{"C"}, current)
	assert.Equal(t, "", current[:2][1])
}

func TestAfterUncheck(t *testing.T) {
	tests := []struct {
		name     string
		disableB bool
		key      string
		current  []string
		want     []string
	}{
		{name: "leaf", key: "B1", current: []string{"B1", "C"}, want: []string{"C"}},
		{name: "branch retracts subtree", key: "B", current: []string{"A"}, want: []string{"A", "C"}},
		{name: "root retracts everything", key: "A", current: []string{"B1", "C"}, want: []string{}},
		{name: "overlap is retracted too", key: "B", current: []string{"B1", "C"}, want: []string{"C"}},
		{name: "unknown key", key: "Z", current: []string{"B1"}, want: []string{"B1"}},
		{name: "disabled key", disableB: true, key: "B", current: []string{"B", "C"}, want: []string{"C"}},
		{name: "disabled key keeps leaf below", disableB: true, key: "B", current: []string{"B", "B1"}, want: []string{"B1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := check.AfterUncheck(tt.key, tt.current, sampleTree(tt.disableB))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAfterCheckThenUncheck(t *testing.T) {
	idx := sampleTree(true)

	for _, tt := range []struct {
		key     string
		current []string
	}{
		{key: "C", current: []string{"B1"}},
		{key: "B", current: []string{"C"}},
		{key: "A", current: nil},
	} {
		checked := check.AfterCheck(tt.key, tt.current, idx)
		got := check.AfterUncheck(tt.key, checked, idx)

		base := check.ExtendedCheckedKeys(tt.current, idx)
		only := check.ExtendedCheckedKeys([]string{tt.key}, idx)

		var want []string
		for _, k := range base {
			if !slices.Contains(only, k) {
				want = append(want, k)
			}
		}

		testutil.KeysEqual(t, want, got, "key %s", tt.key)
	}
}
