// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func TestReconcileStatus(t *testing.T) {
	tests := []struct {
		name        string
		remote      map[string]struct{}
		local       map[string]struct{}
		pending     map[string]struct{}
		wantSet     []string
		wantUnset   []string
	}{
		{
			name:    "empty inputs",
			remote:  idSet(),
			local:   idSet(),
			pending: idSet(),
		},
		{
			name:      "remote only ids are set locally",
			remote:    idSet("a", "b"),
			local:     idSet(),
			pending:   idSet(),
			wantSet:   []string{"a", "b"},
			wantUnset: nil,
		},
		{
			name:      "local only ids are unset",
			remote:    idSet(),
			local:     idSet("a"),
			pending:   idSet(),
			wantUnset: []string{"a"},
		},
		{
			// локальное изменение в полёте не должно быть затёрто
			// устаревшим снапшотом сервера
			name:    "pending id excluded from both outputs",
			remote:  idSet("a"),
			local:   idSet(),
			pending: idSet("a"),
		},
		{
			name:    "pending id excluded from unset",
			remote:  idSet(),
			local:   idSet("a"),
			pending: idSet("a"),
		},
		{
			// worked example: local unread {A,B,C}, remote unread {B,C,D},
			// pending mark-A-read {A} → set only D, unset nothing
			name:      "stale remote snapshot with in-flight change",
			remote:    idSet("B", "C", "D"),
			local:     idSet("A", "B", "C"),
			pending:   idSet("A"),
			wantSet:   []string{"D"},
			wantUnset: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toSet, toUnset := reconcileStatus(tt.remote, tt.local, tt.pending)
			assert.Equal(t, sorted(tt.wantSet), sorted(toSet))
			assert.Equal(t, sorted(tt.wantUnset), sorted(toUnset))
		})
	}
}

func TestReconcileStatus_Idempotent(t *testing.T) {
	remote := idSet("a", "b", "d")
	local := idSet("a", "c")
	pending := idSet("c")

	set1, unset1 := reconcileStatus(remote, local, pending)
	set2, unset2 := reconcileStatus(remote, local, pending)
	assert.Equal(t, sorted(set1), sorted(set2))
	assert.Equal(t, sorted(unset1), sorted(unset2))

	// Applying the result and reconciling again converges to no-op.
	for _, id := range set1 {
		local[id] = struct{}{}
	}
	for _, id := range unset1 {
		delete(local, id)
	}
	set3, unset3 := reconcileStatus(remote, local, pending)
	assert.Empty(t, set3)
	assert.Empty(t, unset3)
}

func TestReconcileStatus_PendingNeverEmitted(t *testing.T) {
	remote := idSet("a", "b", "c")
	local := idSet("b", "d")
	pending := idSet("a", "b", "c", "d")

	toSet, toUnset := reconcileStatus(remote, local, pending)
	for id := range pending {
		assert.NotContains(t, toSet, id)
		assert.NotContains(t, toUnset, id)
	}
}
