// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ItemService is the business layer of the reference server.
type ItemService interface {
	List(ctx context.Context) ([]models.RemoteItem, error)
	Get(ctx context.Context, id string) (models.RemoteItem, error)

	// Create assigns a new id to the item and stores it.
	Create(ctx context.Context, request models.ItemRequest) (models.RemoteItem, error)
	Update(ctx context.Context, id string, request models.ItemRequest) (models.RemoteItem, error)
	Delete(ctx context.Context, id string) error
}
