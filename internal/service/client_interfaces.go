// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ItemSyncService is the offline-first reconciliation engine. Reads and
// writes always go to the local store first; the remote service is used
// opportunistically, guarded by the connectivity oracle.
//
// Errors returned by every method are *Error values (see [KindOf]).
type ItemSyncService interface {
	// Observe streams the active item set. The first value has Loading set,
	// the second carries the local contents, later values follow every local
	// change. A remote refresh runs once in the background after the local
	// contents were delivered. Cancel the subscription to stop.
	Observe(ctx context.Context) *store.Subscription

	// List returns the active items from the local store.
	List(ctx context.Context) ([]models.Item, error)

	// Refresh fetches every remote item and merges it into the local store.
	// Remote failures are logged and swallowed; only local storage failures
	// are returned.
	Refresh(ctx context.Context) error

	// Get returns one active item by local id.
	Get(ctx context.Context, localID int64) (models.Item, error)

	// Add validates fields and stores a new item. When online it is created
	// remotely first; any remote failure degrades to a queued local write.
	Add(ctx context.Context, fields models.ItemFields) (models.Item, error)

	// Update replaces the fields of an active item, pushing the change
	// remotely when possible and queueing it otherwise.
	Update(ctx context.Context, localID int64, fields models.ItemFields) (models.Item, error)

	// Delete soft-deletes the item, then purges it once the remote side
	// confirms or if it never existed remotely. A failed remote delete
	// returns a KindRemote error; the delete stays queued.
	Delete(ctx context.Context, localID int64) error

	// Sync drains every pending item against the remote service and merges
	// remote state back. It fails fast with KindRemoteUnavailable when
	// offline and returns KindAggregate when some steps failed.
	Sync(ctx context.Context) (models.SyncReport, error)
}

// SyncJob runs [ItemSyncService.Sync] periodically.
type SyncJob interface {
	// Run blocks, syncing on every interval tick until ctx is done.
	Run(ctx context.Context) error
}
