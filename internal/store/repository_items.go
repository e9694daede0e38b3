// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions carry the request
// trace id.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// PostgreSQL connection.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) List(ctx context.Context) ([]models.RemoteItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.List").
			Msg("failed to execute query for listing items")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RemoteItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanRemoteItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.List").
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.List").
			Msg("error occurred during rows iteration")
		return nil, r.wrap(ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *itemRepository) Get(ctx context.Context, id string) (models.RemoteItem, error) {
	query, args, err := buildGetItemQuery(id)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Get", id, query, args...)
}

func (r *itemRepository) Create(ctx context.Context, item models.RemoteItem) (models.RemoteItem, error) {
	query, args, err := buildCreateItemQuery(item)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Create", item.ID, query, args...)
}

func (r *itemRepository) Update(ctx context.Context, item models.RemoteItem) (models.RemoteItem, error) {
	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Update", item.ID, query, args...)
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Delete").
			Str("id", id).
			Msg("failed to delete item")
		if invalidID(err) {
			return ErrItemNotFound
		}
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) queryOne(ctx context.Context, funcName, id, query string, args ...any) (models.RemoteItem, error) {
	log := logger.FromContext(ctx)

	item, err := scanRemoteItem(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return item, nil
	case errors.Is(err, sql.ErrNoRows), invalidID(err):
		return models.RemoteItem{}, ErrItemNotFound
	case uniqueViolation(err):
		return models.RemoteItem{}, fmt.Errorf("%w: id=%s", ErrItemAlreadyExists, id)
	}

	log.Err(err).
		Str("func", funcName).
		Str("id", id).
		Msg("failed to execute item query")
	return models.RemoteItem{}, r.wrap(ErrExecutingQuery, err)
}

// wrap attaches ErrStorageUnavailable to transient failures so the
// transport layer can answer with a retryable status.
func (r *itemRepository) wrap(kind, err error) error {
	if r.retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func scanRemoteItem(row rowScanner) (models.RemoteItem, error) {
	var item models.RemoteItem
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&item.ID, &item.Name, &item.Description, &createdAt, &updatedAt); err != nil {
		return models.RemoteItem{}, err
	}

	if createdAt.Valid {
		item.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	return item, nil
}
