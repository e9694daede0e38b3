// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Item is the unit of synchronization kept in the local store.
//
// LocalID is assigned by the local store on first insertion and never changes.
// RemoteID stays nil until the item has been created on the remote service.
type Item struct {
	// LocalID is the local store identity of the item.
	LocalID int64 `json:"local_id"`

	// RemoteID is the identity assigned by the remote service, nil while the
	// item only exists locally.
	RemoteID *string `json:"remote_id,omitempty"`

	// Name is the user-visible title of the item.
	Name string `json:"name"`

	// Description is the user-visible body of the item.
	Description string `json:"description"`

	// PendingSync is true while local changes are not confirmed remotely.
	PendingSync bool `json:"pending_sync"`

	// PendingDelete marks an item deleted locally whose remote deletion is
	// not confirmed yet. Such items are hidden from readers.
	PendingDelete bool `json:"pending_delete"`
}

// ItemFields is the payload a caller supplies when creating or editing an
// item.
type ItemFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Fields returns the user-visible payload of the item.
func (i Item) Fields() ItemFields {
	return ItemFields{Name: i.Name, Description: i.Description}
}

// HasRemote reports whether the item was ever created on the remote service.
func (i Item) HasRemote() bool {
	return i.RemoteID != nil && *i.RemoteID != ""
}

// RemoteKey returns the remote identity or an empty string.
func (i Item) RemoteKey() string {
	if i.RemoteID == nil {
		return ""
	}
	return *i.RemoteID
}

// Blank reports whether any required field is empty after trimming.
func (f ItemFields) Blank() bool {
	return strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Description) == ""
}
