// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/internal/utils"
)

// Services groups the services of the reference server.
type Services struct {
	ItemService ItemService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	items := NewItemService(storages.ItemRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		ItemService: NewItemValidationService().Wrap(items),
	}
}
