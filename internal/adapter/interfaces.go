// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the sync client uses to talk
// to the remote item service.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
// Failures to reach the service at all wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic CRUD access to the remote item
// service. Every call either succeeds or returns an error; there are no
// partial responses.
type ServerAdapter interface {
	// List returns every item stored remotely.
	List(ctx context.Context) ([]models.RemoteItem, error)

	// Get returns one item by its remote id.
	Get(ctx context.Context, remoteID string) (models.RemoteItem, error)

	// Create stores a new item and returns it with its server-assigned id.
	Create(ctx context.Context, fields models.ItemFields) (models.RemoteItem, error)

	// Update replaces the fields of the item with the given remote id.
	Update(ctx context.Context, remoteID string, fields models.ItemFields) (models.RemoteItem, error)

	// Delete removes the item with the given remote id.
	Delete(ctx context.Context, remoteID string) error

	// Ping checks that the service is reachable and healthy.
	Ping(ctx context.Context) error
}
