// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-item-sync/models"
)

var remoteItemColumns = []string{
	"id",
	"name",
	"description",
	"created_at",
	"updated_at",
}

// postgresBuilder renders "$n" placeholders for PostgreSQL.
var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListItemsQuery() (string, []any, error) {
	return postgresBuilder.
		Select(remoteItemColumns...).
		From(itemsTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func buildGetItemQuery(id string) (string, []any, error) {
	return postgresBuilder.
		Select(remoteItemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateItemQuery(item models.RemoteItem) (string, []any, error) {
	return postgresBuilder.
		Insert(itemsTable).
		Columns("id", "name", "description").
		Values(item.ID, item.Name, item.Description).
		Suffix("RETURNING id, name, description, created_at, updated_at").
		ToSql()
}

func buildUpdateItemQuery(item models.RemoteItem) (string, []any, error) {
	return postgresBuilder.
		Update(itemsTable).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": item.ID}).
		Suffix("RETURNING id, name, description, created_at, updated_at").
		ToSql()
}

func buildDeleteItemQuery(id string) (string, []any, error) {
	return postgresBuilder.
		Delete(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
