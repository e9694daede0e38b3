// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/connectivity"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

type itemSyncService struct {
	repo    store.LocalItemRepository
	adapter adapter.ServerAdapter
	oracle  connectivity.Oracle

	// locks serializes add/update/delete/sync steps on the same item.
	locks *keyedMutex
	// syncMu keeps sync passes from overlapping.
	syncMu sync.Mutex
	// mergeMu is held exclusively while a sync pass prunes against a remote
	// listing, and shared by online adds, so a freshly created item is never
	// pruned by a listing taken before its creation.
	mergeMu sync.RWMutex

	logger *logger.Logger
}

// NewItemSyncService wires the engine to its collaborators.
func NewItemSyncService(
	repo store.LocalItemRepository,
	serverAdapter adapter.ServerAdapter,
	oracle connectivity.Oracle,
	logger *logger.Logger,
) ItemSyncService {
	return &itemSyncService{
		repo:    repo,
		adapter: serverAdapter,
		oracle:  oracle,
		locks:   newKeyedMutex(),
		logger:  logger,
	}
}

func (s *itemSyncService) Observe(ctx context.Context) *store.Subscription {
	return store.NewSubscription(ctx, func(ctx context.Context, out chan<- models.ItemsSnapshot) {
		select {
		case out <- models.ItemsSnapshot{Loading: true}:
		case <-ctx.Done():
			return
		}

		local := s.repo.Subscribe(ctx)
		defer local.Cancel()

		var refresh sync.WaitGroup
		defer refresh.Wait()

		refreshed := false
		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-local.C:
				if !ok {
					return
				}

				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}

				if !refreshed {
					refreshed = true
					refresh.Add(1)
					go func() {
						defer refresh.Done()
						// the merge shows up through the local subscription
						_ = s.Refresh(ctx)
					}()
				}
			}
		}
	})
}

func (s *itemSyncService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, localError("list", err)
	}
	return items, nil
}

func (s *itemSyncService) Refresh(ctx context.Context) error {
	if !s.oracle.IsOnline() {
		s.logger.Debug().Str("func", "itemSyncService.Refresh").Msg("offline, serving local items only")
		return nil
	}

	remote, err := s.adapter.List(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "itemSyncService.Refresh").Msg("remote fetch failed, keeping local items")
		return nil
	}

	merged, err := s.repo.InsertMany(ctx, toLocal(remote))
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		s.logger.Err(err).Str("func", "itemSyncService.Refresh").Msg("failed to merge remote items")
		return localError("refresh", err)
	}

	s.logger.Debug().
		Str("func", "itemSyncService.Refresh").
		Int("remote", len(remote)).
		Int("merged", merged).
		Msg("remote items merged")
	return nil
}

func (s *itemSyncService) Get(ctx context.Context, localID int64) (models.Item, error) {
	item, err := s.repo.GetByLocalID(ctx, localID)
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		return models.Item{}, validationError("get", ErrItemNotFound)
	case err != nil:
		return models.Item{}, localError("get", err)
	case item.PendingDelete:
		return models.Item{}, validationError("get", ErrItemNotFound)
	}
	return item, nil
}

func (s *itemSyncService) Add(ctx context.Context, fields models.ItemFields) (models.Item, error) {
	fields = normalize(fields)
	if fields.Blank() {
		return models.Item{}, validationError("add", ErrBlankFields)
	}

	item := models.Item{
		Name:        fields.Name,
		Description: fields.Description,
		PendingSync: true,
	}

	if s.oracle.IsOnline() {
		s.mergeMu.RLock()
		defer s.mergeMu.RUnlock()

		remote, err := s.adapter.Create(ctx, fields)
		switch classifyRemote(ctx, err) {
		case outcomeOK:
			item = remote.ToLocal()
		case outcomeFallback:
			s.logger.Warn().Err(err).Str("func", "itemSyncService.Add").Msg("remote create failed, item queued for sync")
		case outcomeFatal:
			return models.Item{}, canceledError(ctx, "add")
		}
	}

	localID, err := s.repo.Insert(ctx, item)
	if errors.Is(err, store.ErrItemAlreadyExists) && item.HasRemote() {
		// a concurrent refresh already merged the new remote item
		existing, getErr := s.repo.GetByRemoteID(ctx, item.RemoteKey())
		if getErr != nil {
			return models.Item{}, localError("add", getErr)
		}
		return existing, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "itemSyncService.Add").Msg("failed to store item")
		return models.Item{}, localError("add", err)
	}

	item.LocalID = localID
	return item, nil
}

func (s *itemSyncService) Update(ctx context.Context, localID int64, fields models.ItemFields) (models.Item, error) {
	fields = normalize(fields)
	if fields.Blank() {
		return models.Item{}, validationError("update", ErrBlankFields)
	}

	unlock := s.locks.Lock(localID)
	defer unlock()

	item, err := s.Get(ctx, localID)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op = "update"
		}
		return models.Item{}, err
	}

	item.Name = fields.Name
	item.Description = fields.Description
	item.PendingSync = true

	if s.oracle.IsOnline() {
		var remote models.RemoteItem
		if item.HasRemote() {
			remote, err = s.adapter.Update(ctx, item.RemoteKey(), fields)
		} else {
			s.mergeMu.RLock()
			defer s.mergeMu.RUnlock()
			remote, err = s.adapter.Create(ctx, fields)
		}

		switch classifyRemote(ctx, err) {
		case outcomeOK:
			id := remote.ID
			item.RemoteID = &id
			item.PendingSync = false
		case outcomeFallback:
			s.logger.Warn().Err(err).
				Str("func", "itemSyncService.Update").
				Int64("local_id", localID).
				Msg("remote update failed, change queued for sync")
		case outcomeFatal:
			return models.Item{}, canceledError(ctx, "update")
		}
	}

	item, err = s.writeBack(ctx, item)
	if err != nil {
		s.logger.Err(err).Str("func", "itemSyncService.Update").Int64("local_id", localID).Msg("failed to store item")
		return models.Item{}, localError("update", err)
	}
	return item, nil
}

// writeBack writes item by local id. If the item has just been created
// remotely and a concurrent refresh already merged that remote row, the merged
// row is adopted and the pending duplicate removed.
func (s *itemSyncService) writeBack(ctx context.Context, item models.Item) (models.Item, error) {
	err := s.repo.Update(ctx, item)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, store.ErrItemAlreadyExists) || !item.HasRemote() {
		return models.Item{}, err
	}

	merged, err := s.repo.GetByRemoteID(ctx, item.RemoteKey())
	if err != nil {
		return models.Item{}, err
	}
	if err = s.repo.HardDelete(ctx, item.LocalID); err != nil {
		return models.Item{}, err
	}

	s.logger.Debug().
		Str("func", "itemSyncService.writeBack").
		Int64("local_id", item.LocalID).
		Int64("merged_local_id", merged.LocalID).
		Str("remote_id", item.RemoteKey()).
		Msg("remote item already merged, dropped pending duplicate")
	return merged, nil
}

func (s *itemSyncService) Delete(ctx context.Context, localID int64) error {
	unlock := s.locks.Lock(localID)
	defer unlock()

	item, err := s.repo.GetByLocalID(ctx, localID)
	if errors.Is(err, store.ErrItemNotFound) {
		return validationError("delete", ErrItemNotFound)
	}
	if err != nil {
		return localError("delete", err)
	}

	if err = s.repo.SoftDelete(ctx, localID); err != nil {
		s.logger.Err(err).Str("func", "itemSyncService.Delete").Int64("local_id", localID).Msg("failed to mark item deleted")
		return localError("delete", err)
	}

	if !item.HasRemote() {
		if err = s.repo.HardDelete(ctx, localID); err != nil {
			return localError("delete", err)
		}
		return nil
	}

	if !s.oracle.IsOnline() {
		return nil
	}

	err = s.adapter.Delete(ctx, item.RemoteKey())
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		s.logger.Warn().Err(err).
			Str("func", "itemSyncService.Delete").
			Int64("local_id", localID).
			Str("remote_id", item.RemoteKey()).
			Msg("remote delete failed, deletion queued for sync")
		return &Error{Kind: KindRemote, Op: "delete", Err: err}
	}

	if err = s.repo.HardDelete(ctx, localID); err != nil {
		return localError("delete", err)
	}
	return nil
}

func normalize(fields models.ItemFields) models.ItemFields {
	return models.ItemFields{
		Name:        strings.TrimSpace(fields.Name),
		Description: strings.TrimSpace(fields.Description),
	}
}

func toLocal(remote []models.RemoteItem) []models.Item {
	items := make([]models.Item, 0, len(remote))
	for _, r := range remote {
		items = append(items, r.ToLocal())
	}
	return items
}
