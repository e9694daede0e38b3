// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/connectivity"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
)

// ClientServices groups the services used by the client application.
type ClientServices struct {
	ItemService ItemSyncService
	SyncJob     SyncJob
}

func NewClientServices(
	repo store.LocalItemRepository,
	serverAdapter adapter.ServerAdapter,
	oracle connectivity.Oracle,
	syncInterval time.Duration,
	logger *logger.Logger,
) *ClientServices {
	itemSvc := NewItemSyncService(repo, serverAdapter, oracle, logger)

	return &ClientServices{
		ItemService: itemSvc,
		SyncJob:     NewSyncJob(itemSvc, oracle, syncInterval, logger),
	}
}
