// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const itemsTable = "items"

var localItemColumns = []string{
	"local_id",
	"remote_id",
	"name",
	"description",
	"pending_sync",
	"pending_delete",
}

// sqliteBuilder renders "?" placeholders for the client SQLite database.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	insertLocalItem = `
		INSERT INTO items (remote_id, name, description, pending_sync, pending_delete)
		VALUES (?, ?, ?, ?, ?);`

	// upsertLocalItem merges a record by remote_id. Existing rows keep their
	// sync flags and are refreshed only while they carry no local edits and
	// their fields actually differ.
	upsertLocalItem = `
		INSERT INTO items (remote_id, name, description, pending_sync, pending_delete)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(remote_id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description
		WHERE items.pending_sync = 0
			AND (items.name <> excluded.name OR items.description <> excluded.description);`

	updateLocalItem = `
		UPDATE items
		SET remote_id = ?, name = ?, description = ?, pending_sync = ?, pending_delete = ?
		WHERE local_id = ?;`

	softDeleteByLocalID = `
		UPDATE items SET pending_delete = 1, pending_sync = 1
		WHERE local_id = ?;`

	softDeleteByRemoteID = `
		UPDATE items SET pending_delete = 1, pending_sync = 1
		WHERE remote_id = ?;`

	pragmaDataVersion = `PRAGMA data_version;`

	hardDeleteByLocalID  = `DELETE FROM items WHERE local_id = ?;`
	hardDeleteByRemoteID = `DELETE FROM items WHERE remote_id = ?;`
)

func buildListActiveQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(localItemColumns...).
		From(itemsTable).
		Where(sq.Eq{"pending_delete": false}).
		OrderBy("name ASC", "local_id ASC").
		ToSql()
}

func buildListPendingSyncQuery() (string, []any, error) {
	return sqliteBuilder.
		Select(localItemColumns...).
		From(itemsTable).
		Where(sq.Eq{"pending_sync": true}).
		OrderBy("local_id ASC").
		ToSql()
}

func buildGetLocalItemQuery(where sq.Eq) (string, []any, error) {
	return sqliteBuilder.
		Select(localItemColumns...).
		From(itemsTable).
		Where(where).
		Limit(1).
		ToSql()
}

// mergeRemoteIDsTable holds the remote ids of one merge. It lives in the
// temp schema of the connection that runs the merge transaction, so the id
// list never has to fit into bound parameters.
const mergeRemoteIDsTable = "temp.merge_remote_ids"

const (
	createMergeRemoteIDs = `CREATE TEMP TABLE IF NOT EXISTS merge_remote_ids (remote_id TEXT PRIMARY KEY);`
	dropMergeRemoteIDs   = `DROP TABLE IF EXISTS temp.merge_remote_ids;`

	notInMergeRemoteIDs = "remote_id NOT IN (SELECT remote_id FROM " + mergeRemoteIDsTable + ")"
)

// mergeRemoteIDsBatch caps the ids bound by one insert into
// mergeRemoteIDsTable. SQLite builds older than 3.32 allow 999 variables.
var mergeRemoteIDsBatch = 500

func buildInsertMergeRemoteIDsQuery(ids []string) (string, []any, error) {
	insert := sqliteBuilder.
		Insert(mergeRemoteIDsTable).
		Options("OR IGNORE").
		Columns("remote_id")
	for _, id := range ids {
		insert = insert.Values(id)
	}
	return insert.ToSql()
}

// buildPurgeSoftDeletedQuery removes soft-deleted rows that have no remote
// counterpart left: never-synced rows and rows whose remote id is not in
// mergeRemoteIDsTable.
func buildPurgeSoftDeletedQuery() (string, []any, error) {
	return sqliteBuilder.
		Delete(itemsTable).
		Where(sq.And{
			sq.Eq{"pending_delete": true},
			sq.Or{
				sq.Eq{"remote_id": nil},
				sq.Expr(notInMergeRemoteIDs),
			},
		}).
		ToSql()
}

// buildPruneAbsentQuery removes confirmed rows whose remote id is not in
// mergeRemoteIDsTable. Rows with pending work are never touched.
func buildPruneAbsentQuery() (string, []any, error) {
	return sqliteBuilder.
		Delete(itemsTable).
		Where(sq.And{
			sq.Eq{"pending_sync": false},
			sq.NotEq{"remote_id": nil},
			sq.Expr(notInMergeRemoteIDs),
		}).
		ToSql()
}
