// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalItemRepository is the durable item store of the client. LocalID is the
// only key used to address an item; remote ids are looked up only to merge
// remote state.
type LocalItemRepository interface {
	// ListActive returns every item not pending deletion, ordered by name.
	ListActive(ctx context.Context) ([]models.Item, error)
	// GetByRemoteID returns the item with the given remote id, including a
	// soft-deleted one. Returns ErrItemNotFound if there is none.
	GetByRemoteID(ctx context.Context, remoteID string) (models.Item, error)
	// GetByLocalID returns the item with the given local id, including a
	// soft-deleted one. Returns ErrItemNotFound if there is none.
	GetByLocalID(ctx context.Context, localID int64) (models.Item, error)
	// Insert stores a new item and returns its assigned local id.
	Insert(ctx context.Context, item models.Item) (int64, error)
	// InsertMany upserts items by remote id. Existing rows keep their sync
	// flags. A row with pending local work (pending_sync set) keeps its local
	// name and description: the remote copy does not overwrite unsynced edits.
	// Returns the number of rows inserted or refreshed.
	InsertMany(ctx context.Context, items []models.Item) (int, error)
	// Update overwrites the stored item with the same local id.
	Update(ctx context.Context, item models.Item) error
	SoftDelete(ctx context.Context, localID int64) error
	SoftDeleteByRemoteID(ctx context.Context, remoteID string) error
	HardDelete(ctx context.Context, localID int64) error
	HardDeleteByRemoteID(ctx context.Context, remoteID string) error
	// ListPendingSync returns every item with unconfirmed local changes.
	ListPendingSync(ctx context.Context) ([]models.Item, error)
	// PurgeSoftDeleted hard-deletes soft-deleted items whose remote id is not
	// in keepRemoteIDs. The list may be arbitrarily long. Returns the number
	// of removed rows.
	PurgeSoftDeleted(ctx context.Context, keepRemoteIDs []string) (int, error)
	// PruneAbsent hard-deletes confirmed items whose remote id is not in
	// presentRemoteIDs. Returns the number of removed rows.
	PruneAbsent(ctx context.Context, presentRemoteIDs []string) (int, error)
	// Subscribe streams the active item set: once immediately and again
	// after every committed change, including commits from other processes
	// sharing the file, until ctx is done or the subscription is cancelled.
	Subscribe(ctx context.Context) *Subscription
}
