// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

func testConfig(t *testing.T, address string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: time.Second,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "items.db")}},
		Workers: config.ClientWorkers{
			SyncInterval:  time.Hour,
			ProbeInterval: time.Hour,
		},
	}
}

// remoteStub answers health checks and creates items with a fixed id.
func remoteStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/items", func(w http.ResponseWriter, r *http.Request) {
		var req models.ItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.RemoteItem{ID: "srv-1", Name: req.Name, Description: req.Description})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ── NewApp ──

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(context.Background(), nil, Options{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestNewApp_InvalidAddress(t *testing.T) {
	cfg := testConfig(t, "   ")

	_, err := NewApp(context.Background(), cfg, Options{}, logger.Nop())
	assert.Error(t, err)
}

// ── Offline ──

func TestApp_OfflineQueuesWrites(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, testConfig(t, "http://127.0.0.1:1"), Options{Offline: true}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.False(t, app.Probe(ctx))

	item, err := app.Items().Add(ctx, models.ItemFields{Name: "milk", Description: "2l"})
	require.NoError(t, err)
	assert.True(t, item.PendingSync)
	assert.Nil(t, item.RemoteID)

	items, err := app.Items().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "milk", items[0].Name)
}

// ── Online ──

func TestApp_OnlineCreatesRemotely(t *testing.T) {
	ctx := context.Background()
	srv := remoteStub(t)

	app, err := NewApp(ctx, testConfig(t, srv.URL), Options{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.True(t, app.Probe(ctx))

	item, err := app.Items().Add(ctx, models.ItemFields{Name: "milk", Description: "2l"})
	require.NoError(t, err)
	assert.False(t, item.PendingSync)
	require.NotNil(t, item.RemoteID)
	assert.Equal(t, "srv-1", *item.RemoteID)
}

func TestApp_ProbeUnreachable(t *testing.T) {
	ctx := context.Background()
	srv := remoteStub(t)
	address := srv.URL
	srv.Close()

	app, err := NewApp(ctx, testConfig(t, address), Options{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.False(t, app.Probe(ctx))
}

// ── RunWorkers ──

func TestApp_RunWorkersStopsWithContext(t *testing.T) {
	srv := remoteStub(t)

	app, err := NewApp(context.Background(), testConfig(t, srv.URL), Options{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunWorkers(ctx) }()

	require.Eventually(t, func() bool { return app.Probe(context.Background()) }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestApp_RunWorkersOffline(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, "http://127.0.0.1:1"), Options{Offline: true}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, app.RunWorkers(ctx))
}
