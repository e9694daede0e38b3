// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-item-sync/internal/service"
)

// Runtime is what the command-line front end needs from an assembled client.
type Runtime interface {
	// Items returns the reconciliation engine.
	Items() service.ItemSyncService

	// Probe checks connectivity once and reports whether the remote service
	// is reachable. It always reports false in offline mode.
	Probe(ctx context.Context) bool

	// RunWorkers runs the connectivity monitor and the periodic sync job
	// until ctx is done.
	RunWorkers(ctx context.Context) error

	// Close releases the local store.
	Close() error
}
