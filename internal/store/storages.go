// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	ItemRepository ItemRepository

	closer io.Closer
}

// NewStorages wires the server repositories. A non-empty cfg.DB.DSN selects
// PostgreSQL; an empty one falls back to the in-memory repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Warn().Msg("no database DSN configured, items are kept in memory")
		return &Storages{ItemRepository: NewMemoryItemRepository()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		ItemRepository: NewItemRepository(db, logger),
		closer:         db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
