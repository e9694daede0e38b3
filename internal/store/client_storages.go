// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

// ClientStorages groups the client-side repositories and owns the database
// connection behind them.
type ClientStorages struct {
	// ItemRepository is the SQLite-backed item cache.
	ItemRepository LocalItemRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating and
// migrating it when needed, and wires the repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		ItemRepository: NewLocalItemRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
