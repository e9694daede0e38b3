// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the authoritative item store of the reference server.
type ItemRepository interface {
	// List returns every stored item ordered by name.
	List(ctx context.Context) ([]models.RemoteItem, error)
	// Get returns the item with the given id or ErrItemNotFound.
	Get(ctx context.Context, id string) (models.RemoteItem, error)
	// Create stores item under item.ID and returns it with timestamps set.
	Create(ctx context.Context, item models.RemoteItem) (models.RemoteItem, error)
	// Update replaces the fields of an existing item or returns ErrItemNotFound.
	Update(ctx context.Context, item models.RemoteItem) (models.RemoteItem, error)
	// Delete removes the item or returns ErrItemNotFound.
	Delete(ctx context.Context, id string) error
}
