// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-item-sync/models"
	"github.com/google/uuid"
)

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// ItemValidationService rejects malformed requests before they reach the
// wrapped ItemService.
type ItemValidationService struct {
	inner ItemService
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{}
}

func (v *ItemValidationService) List(ctx context.Context) ([]models.RemoteItem, error) {
	return v.inner.List(ctx)
}

func (v *ItemValidationService) Get(ctx context.Context, id string) (models.RemoteItem, error) {
	if err := validateID(id); err != nil {
		return models.RemoteItem{}, err
	}
	return v.inner.Get(ctx, id)
}

func (v *ItemValidationService) Create(ctx context.Context, request models.ItemRequest) (models.RemoteItem, error) {
	request, err := validateRequest(request)
	if err != nil {
		return models.RemoteItem{}, err
	}
	return v.inner.Create(ctx, request)
}

func (v *ItemValidationService) Update(ctx context.Context, id string, request models.ItemRequest) (models.RemoteItem, error) {
	if err := validateID(id); err != nil {
		return models.RemoteItem{}, err
	}
	request, err := validateRequest(request)
	if err != nil {
		return models.RemoteItem{}, err
	}
	return v.inner.Update(ctx, id, request)
}

func (v *ItemValidationService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func validateRequest(request models.ItemRequest) (models.ItemRequest, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	if request.Fields().Blank() {
		return request, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrBlankFields)
	}
	return request, nil
}

// validateID treats ids that are not UUIDs as unknown items.
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoIDProvided)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return nil
}
