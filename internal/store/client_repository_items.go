// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

// externalChangePollInterval is how often subscriptions check for commits
// made by other processes sharing the database file.
var externalChangePollInterval = 250 * time.Millisecond

// localItemRepository is the SQLite-backed implementation of
// [LocalItemRepository]. Every committed mutation wakes the subscribers.
type localItemRepository struct {
	*DB
	notifier *changeNotifier
	logger   *logger.Logger
}

// NewLocalItemRepository constructs a [LocalItemRepository] on top of an
// already migrated SQLite connection.
func NewLocalItemRepository(db *DB, logger *logger.Logger) LocalItemRepository {
	return &localItemRepository{
		DB:       db,
		notifier: newChangeNotifier(),
		logger:   logger,
	}
}

func (l *localItemRepository) ListActive(ctx context.Context) ([]models.Item, error) {
	query, args, err := buildListActiveQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryItems(ctx, "localItemRepository.ListActive", query, args...)
}

func (l *localItemRepository) ListPendingSync(ctx context.Context) ([]models.Item, error) {
	query, args, err := buildListPendingSyncQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryItems(ctx, "localItemRepository.ListPendingSync", query, args...)
}

func (l *localItemRepository) GetByLocalID(ctx context.Context, localID int64) (models.Item, error) {
	return l.getItem(ctx, sq.Eq{"local_id": localID})
}

func (l *localItemRepository) GetByRemoteID(ctx context.Context, remoteID string) (models.Item, error) {
	return l.getItem(ctx, sq.Eq{"remote_id": remoteID})
}

func (l *localItemRepository) Insert(ctx context.Context, item models.Item) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, insertLocalItem,
		nullableRemoteID(item),
		item.Name,
		item.Description,
		item.PendingSync,
		item.PendingDelete,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Insert").
			Str("remote_id", item.RemoteKey()).
			Msg("failed to insert item")
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: remote_id=%s", ErrItemAlreadyExists, item.RemoteKey())
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	localID, err := res.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Insert").
			Msg("failed to read assigned local id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	l.notifier.notify()
	return localID, nil
}

func (l *localItemRepository) InsertMany(ctx context.Context, items []models.Item) (int, error) {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return 0, nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.InsertMany").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertLocalItem)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.InsertMany").
			Msg("failed to prepare upsert statement")
		return 0, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	changed := 0
	for i, item := range items {
		res, execErr := stmt.ExecContext(ctx,
			nullableRemoteID(item),
			item.Name,
			item.Description,
			item.PendingSync,
			item.PendingDelete,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "localItemRepository.InsertMany").
				Int("iteration", i).
				Str("remote_id", item.RemoteKey()).
				Msg("failed to upsert item")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, _ := res.RowsAffected()
		changed += int(affected)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localItemRepository.InsertMany").
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if changed > 0 {
		l.notifier.notify()
	}
	return changed, nil
}

func (l *localItemRepository) Update(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, updateLocalItem,
		nullableRemoteID(item),
		item.Name,
		item.Description,
		item.PendingSync,
		item.PendingDelete,
		item.LocalID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Update").
			Int64("local_id", item.LocalID).
			Msg("failed to update item")
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: remote_id=%s", ErrItemAlreadyExists, item.RemoteKey())
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return l.expectChanged(res, fmt.Sprintf("local_id=%d", item.LocalID))
}

func (l *localItemRepository) SoftDelete(ctx context.Context, localID int64) error {
	res, err := l.exec(ctx, "localItemRepository.SoftDelete", softDeleteByLocalID, localID)
	if err != nil {
		return err
	}
	return l.expectChanged(res, fmt.Sprintf("local_id=%d", localID))
}

func (l *localItemRepository) SoftDeleteByRemoteID(ctx context.Context, remoteID string) error {
	res, err := l.exec(ctx, "localItemRepository.SoftDeleteByRemoteID", softDeleteByRemoteID, remoteID)
	if err != nil {
		return err
	}
	return l.expectChanged(res, "remote_id="+remoteID)
}

// HardDelete is idempotent: removing a missing item is not an error.
func (l *localItemRepository) HardDelete(ctx context.Context, localID int64) error {
	res, err := l.exec(ctx, "localItemRepository.HardDelete", hardDeleteByLocalID, localID)
	if err != nil {
		return err
	}
	l.notifyIfChanged(res)
	return nil
}

func (l *localItemRepository) HardDeleteByRemoteID(ctx context.Context, remoteID string) error {
	res, err := l.exec(ctx, "localItemRepository.HardDeleteByRemoteID", hardDeleteByRemoteID, remoteID)
	if err != nil {
		return err
	}
	l.notifyIfChanged(res)
	return nil
}

func (l *localItemRepository) PurgeSoftDeleted(ctx context.Context, keepRemoteIDs []string) (int, error) {
	query, args, err := buildPurgeSoftDeletedQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.deleteAgainstRemoteIDs(ctx, "localItemRepository.PurgeSoftDeleted", keepRemoteIDs, query, args...)
}

func (l *localItemRepository) PruneAbsent(ctx context.Context, presentRemoteIDs []string) (int, error) {
	query, args, err := buildPruneAbsentQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.deleteAgainstRemoteIDs(ctx, "localItemRepository.PruneAbsent", presentRemoteIDs, query, args...)
}

// deleteAgainstRemoteIDs loads remoteIDs into the merge id table in batches
// and runs the delete query against it, all in one transaction.
func (l *localItemRepository) deleteAgainstRemoteIDs(ctx context.Context, funcName string, remoteIDs []string, query string, args ...any) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, createMergeRemoteIDs); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create merge id table")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(remoteIDs); start += mergeRemoteIDsBatch {
		end := min(start+mergeRemoteIDsBatch, len(remoteIDs))

		insert, insertArgs, buildErr := buildInsertMergeRemoteIDsQuery(remoteIDs[start:end])
		if buildErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, insert, insertArgs...); err != nil {
			log.Err(err).
				Str("func", funcName).
				Int("offset", start).
				Msg("failed to load remote ids")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, dropMergeRemoteIDs); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to drop merge id table")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if affected > 0 {
		l.notifier.notify()
	}
	return int(affected), nil
}

// Subscribe re-reads the active set after every change committed through
// this repository, and after commits from other connections to the same
// file, which it detects by polling PRAGMA data_version.
func (l *localItemRepository) Subscribe(ctx context.Context) *Subscription {
	id, changes := l.notifier.subscribe()

	return NewSubscription(ctx, func(ctx context.Context, out chan<- models.ItemsSnapshot) {
		defer l.notifier.unsubscribe(id)

		ticker := time.NewTicker(externalChangePollInterval)
		defer ticker.Stop()

		// read before listing so a commit in between is not missed
		version, _ := l.dataVersion(ctx)
		for {
			items, err := l.ListActive(ctx)
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- models.ItemsSnapshot{Items: items, Err: err}:
			case <-ctx.Done():
				return
			}

			if !l.waitForChange(ctx, changes, ticker.C, &version) {
				return
			}
		}
	})
}

// waitForChange blocks until this repository commits a change or the data
// version moves past *version. Returns false once ctx is done.
func (l *localItemRepository) waitForChange(ctx context.Context, changes <-chan struct{}, tick <-chan time.Time, version *int64) bool {
	for {
		select {
		case <-changes:
			return true
		case <-tick:
			current, err := l.dataVersion(ctx)
			if err != nil || current == *version {
				continue
			}
			*version = current
			return true
		case <-ctx.Done():
			return false
		}
	}
}

// dataVersion changes whenever another connection commits to the database
// file. Commits made on the same connection leave it unchanged.
func (l *localItemRepository) dataVersion(ctx context.Context) (int64, error) {
	var version int64
	if err := l.DB.QueryRowContext(ctx, pragmaDataVersion).Scan(&version); err != nil {
		if ctx.Err() == nil {
			logger.FromContext(ctx).Debug().Err(err).
				Str("func", "localItemRepository.dataVersion").
				Msg("failed to read data version")
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return version, nil
}

func (l *localItemRepository) getItem(ctx context.Context, where sq.Eq) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLocalItemQuery(where)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.getItem").
			Any("where", where).
			Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (l *localItemRepository) queryItems(ctx context.Context, funcName, query string, args ...any) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (l *localItemRepository) exec(ctx context.Context, funcName, query string, args ...any) (sql.Result, error) {
	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}

func (l *localItemRepository) expectChanged(res sql.Result, key string) error {
	if l.notifyIfChanged(res) == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, key)
	}
	return nil
}

func (l *localItemRepository) notifyIfChanged(res sql.Result) int {
	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		return 0
	}
	l.notifier.notify()
	return int(affected)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item     models.Item
		remoteID sql.NullString
	)

	err := row.Scan(
		&item.LocalID,
		&remoteID,
		&item.Name,
		&item.Description,
		&item.PendingSync,
		&item.PendingDelete,
	)
	if err != nil {
		return models.Item{}, err
	}

	if remoteID.Valid {
		id := remoteID.String
		item.RemoteID = &id
	}
	return item, nil
}

func nullableRemoteID(item models.Item) sql.NullString {
	if !item.HasRemote() {
		return sql.NullString{}
	}
	return sql.NullString{String: *item.RemoteID, Valid: true}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}
