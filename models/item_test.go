// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemFields_Blank(t *testing.T) {
	tests := []struct {
		name   string
		fields ItemFields
		want   bool
	}{
		{name: "both set", fields: ItemFields{Name: "milk", Description: "2l"}, want: false},
		{name: "empty name", fields: ItemFields{Description: "2l"}, want: true},
		{name: "whitespace description", fields: ItemFields{Name: "milk", Description: " \t\n"}, want: true},
		{name: "both empty", fields: ItemFields{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fields.Blank())
		})
	}
}

func TestItem_RemoteIdentity(t *testing.T) {
	empty := ""
	id := "srv-1"

	assert.False(t, Item{}.HasRemote())
	assert.False(t, Item{RemoteID: &empty}.HasRemote())
	assert.True(t, Item{RemoteID: &id}.HasRemote())

	assert.Equal(t, "", Item{}.RemoteKey())
	assert.Equal(t, "srv-1", Item{RemoteID: &id}.RemoteKey())
}

func TestRemoteItem_ToLocal(t *testing.T) {
	remote := RemoteItem{ID: "srv-7", Name: "tea", Description: "green"}

	local := remote.ToLocal()
	assert.Zero(t, local.LocalID)
	assert.Equal(t, "srv-7", local.RemoteKey())
	assert.Equal(t, ItemFields{Name: "tea", Description: "green"}, local.Fields())
	assert.False(t, local.PendingSync)
	assert.False(t, local.PendingDelete)

	remote.ID = "changed"
	assert.Equal(t, "srv-7", local.RemoteKey())
}

func TestItemRequest_RoundTrip(t *testing.T) {
	fields := ItemFields{Name: "milk", Description: "2l"}
	assert.Equal(t, fields, NewItemRequest(fields).Fields())
}

func TestSyncReport_OK(t *testing.T) {
	assert.True(t, SyncReport{Created: 2}.OK())
	assert.False(t, SyncReport{Failures: []SyncFailure{{Op: SyncOpFetch}}}.OK())
}
