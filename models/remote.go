// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteItem is the representation of an item returned by the remote service.
type RemoteItem struct {
	// ID is the remote identity of the item.
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// CreatedAt and UpdatedAt are informational and never used for merging.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ItemRequest is the body sent to the remote service on create and update.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToLocal builds a confirmed local item from a remote one. The local
// identity is left zero; the store assigns it on insertion.
func (r RemoteItem) ToLocal() Item {
	id := r.ID
	return Item{
		RemoteID:    &id,
		Name:        r.Name,
		Description: r.Description,
	}
}

// NewItemRequest builds the request body for the given fields.
func NewItemRequest(fields ItemFields) ItemRequest {
	return ItemRequest{Name: fields.Name, Description: fields.Description}
}

// Fields returns the request body as item fields.
func (r ItemRequest) Fields() ItemFields {
	return ItemFields{Name: r.Name, Description: r.Description}
}
