// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

// IDGenerator produces new remote item ids.
type IDGenerator interface {
	Generate() string
}

type itemService struct {
	itemRepository store.ItemRepository
	ids            IDGenerator

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, ids IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		ids:            ids,
		logger:         logger,
	}
}

func (s *itemService) List(ctx context.Context) ([]models.RemoteItem, error) {
	return s.itemRepository.List(ctx)
}

func (s *itemService) Get(ctx context.Context, id string) (models.RemoteItem, error) {
	return s.itemRepository.Get(ctx, id)
}

func (s *itemService) Create(ctx context.Context, request models.ItemRequest) (models.RemoteItem, error) {
	item := models.RemoteItem{
		ID:          s.ids.Generate(),
		Name:        request.Name,
		Description: request.Description,
	}

	created, err := s.itemRepository.Create(ctx, item)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("error creating item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "itemService.Create").Str("id", created.ID).Msg("item created")
	return created, nil
}

func (s *itemService) Update(ctx context.Context, id string, request models.ItemRequest) (models.RemoteItem, error) {
	updated, err := s.itemRepository.Update(ctx, models.RemoteItem{
		ID:          id,
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("error updating item: %w", err)
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	if err := s.itemRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	return nil
}
