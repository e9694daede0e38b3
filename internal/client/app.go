// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/connectivity"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/service"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/internal/workers"
)

// Options tweaks how the runtime is assembled.
type Options struct {
	// Offline pins the connectivity oracle to offline. The adapter is still
	// built but never called.
	Offline bool
}

// App is the assembled client runtime.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	monitor  *connectivity.Monitor
	logger   *logger.Logger
}

// NewApp opens the local store and wires the engine on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, opts Options, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create server adapter: %w", err), storages.Close())
	}

	app := &App{storages: storages, logger: log}

	var oracle connectivity.Oracle
	if opts.Offline {
		oracle = connectivity.NewStatic(false)
	} else {
		app.monitor = connectivity.NewMonitor(serverAdapter, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, log)
		oracle = app.monitor
	}

	app.services = service.NewClientServices(storages.ItemRepository, serverAdapter, oracle, cfg.Workers.SyncInterval, log)
	return app, nil
}

// Items implements [Runtime].
func (a *App) Items() service.ItemSyncService {
	return a.services.ItemService
}

// Probe implements [Runtime].
func (a *App) Probe(ctx context.Context) bool {
	if a.monitor == nil {
		return false
	}
	return a.monitor.Probe(ctx)
}

// RunWorkers implements [Runtime].
func (a *App) RunWorkers(ctx context.Context) error {
	var monitor workers.Worker
	if a.monitor != nil {
		monitor = a.monitor
	}

	a.logger.Info().Str("func", "App.RunWorkers").Msg("starting background workers")
	err := workers.NewWorkers(monitor, a.services.SyncJob).Run(ctx)
	a.logger.Info().Str("func", "App.RunWorkers").Msg("background workers stopped")
	return err
}

// Close implements [Runtime].
func (a *App) Close() error {
	return a.storages.Close()
}
