// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/mock"
	"github.com/MKhiriev/go-item-sync/internal/service"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

// fakeRuntime hands out a mocked engine and records lifecycle calls.
type fakeRuntime struct {
	items   *mock.MockItemSyncService
	probes  atomic.Int32
	closed  atomic.Bool
	workers func(ctx context.Context) error
}

func (f *fakeRuntime) Items() service.ItemSyncService { return f.items }

func (f *fakeRuntime) Probe(context.Context) bool {
	f.probes.Add(1)
	return true
}

func (f *fakeRuntime) RunWorkers(ctx context.Context) error {
	if f.workers == nil {
		<-ctx.Done()
		return nil
	}
	return f.workers(ctx)
}

func (f *fakeRuntime) Close() error {
	f.closed.Store(true)
	return nil
}

type harness struct {
	rt    *fakeRuntime
	items *mock.MockItemSyncService
	dir   string

	cfg  *config.ClientConfig
	opts client.Options
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	items := mock.NewMockItemSyncService(gomock.NewController(t))
	return &harness{
		rt:    &fakeRuntime{items: items},
		items: items,
		dir:   t.TempDir(),
	}
}

func (h *harness) execute(args ...string) (string, error) {
	factory := func(_ context.Context, cfg *config.ClientConfig, opts client.Options, _ *logger.Logger) (client.Runtime, error) {
		h.cfg = cfg
		h.opts = opts
		return h.rt, nil
	}

	cmd := NewRootCommand(factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args,
		"--db", filepath.Join(h.dir, "items.db"),
		"--log-file", filepath.Join(h.dir, "client.log"),
	))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func strPtr(s string) *string { return &s }

func snapshotStream(snaps ...models.ItemsSnapshot) func(ctx context.Context) *store.Subscription {
	return func(ctx context.Context) *store.Subscription {
		return store.NewSubscription(ctx, func(ctx context.Context, out chan<- models.ItemsSnapshot) {
			for _, snap := range snaps {
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
		})
	}
}

var errDisk = &service.Error{Kind: service.KindLocal, Op: "list", Err: errors.New("disk I/O error")}

// ── Root ──

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, err := h.execute("list", "--offline", "--server", "http://remote:9000")
	require.NoError(t, err)

	require.NotNil(t, h.cfg)
	assert.Equal(t, filepath.Join(h.dir, "items.db"), h.cfg.Storage.DB.DSN)
	assert.Equal(t, "http://remote:9000", h.cfg.Adapter.HTTPAddress)
	assert.Equal(t, filepath.Join(h.dir, "client.log"), h.cfg.Log.File)
	assert.True(t, h.opts.Offline)
}

func TestRoot_FactoryError(t *testing.T) {
	boom := errors.New("cannot open store")
	cmd := NewRootCommand(func(context.Context, *config.ClientConfig, client.Options, *logger.Logger) (client.Runtime, error) {
		return nil, boom
	})
	dir := t.TempDir()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--db", filepath.Join(dir, "items.db"), "--log-file", filepath.Join(dir, "client.log")})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRoot_NilRuntime(t *testing.T) {
	cmd := NewRootCommand(func(context.Context, *config.ClientConfig, client.Options, *logger.Logger) (client.Runtime, error) {
		return nil, nil
	})
	dir := t.TempDir()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"sync", "--db", filepath.Join(dir, "items.db"), "--log-file", filepath.Join(dir, "client.log")})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, ErrNilRuntime)
}

// ── list ──

func TestList_PrintsItems(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().List(gomock.Any()).Return([]models.Item{
		{LocalID: 1, RemoteID: strPtr("srv-1"), Name: "milk", Description: "2l"},
		{LocalID: 2, Name: "bread", Description: "rye", PendingSync: true},
	}, nil)

	out, err := h.execute("list")
	require.NoError(t, err)

	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "synced")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "bread")
	assert.Contains(t, out, "pending")
	assert.Equal(t, int32(1), h.rt.probes.Load())
	assert.True(t, h.rt.closed.Load())
}

func TestList_Refresh(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.items.EXPECT().Refresh(gomock.Any()).Return(nil),
		h.items.EXPECT().List(gomock.Any()).Return(nil, nil),
	)

	out, err := h.execute("list", "--refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "no items")
}

func TestList_LocalError(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().List(gomock.Any()).Return(nil, errDisk)

	_, err := h.execute("list")
	assert.Equal(t, service.KindLocal, service.KindOf(err))
	assert.True(t, h.rt.closed.Load())
}

// ── show ──

func TestShow(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Get(gomock.Any(), int64(3)).
		Return(models.Item{LocalID: 3, RemoteID: strPtr("srv-3"), Name: "tea", Description: "green"}, nil)

	out, err := h.execute("show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "tea")
	assert.Contains(t, out, "green")
	assert.Contains(t, out, "srv-3")
}

func TestShow_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "#x"} {
		t.Run(arg, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.execute("show", arg)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

// ── add ──

func TestAdd_Queued(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Add(gomock.Any(), models.ItemFields{Name: "milk", Description: "2l"}).
		Return(models.Item{LocalID: 1, Name: "milk", Description: "2l", PendingSync: true}, nil)

	out, err := h.execute("add", "--name", "milk", "--description", "2l")
	require.NoError(t, err)
	assert.Contains(t, out, "Added #1 milk")
	assert.Contains(t, out, "queued for sync")
}

func TestAdd_Synced(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Add(gomock.Any(), models.ItemFields{Name: "milk", Description: "2l"}).
		Return(models.Item{LocalID: 1, RemoteID: strPtr("srv-1"), Name: "milk", Description: "2l"}, nil)

	out, err := h.execute("add", "-n", "milk", "-D", "2l")
	require.NoError(t, err)
	assert.Contains(t, out, "Added #1 milk")
	assert.NotContains(t, out, "queued")
}

func TestAdd_Validation(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Add(gomock.Any(), models.ItemFields{Name: "milk"}).
		Return(models.Item{}, &service.Error{Kind: service.KindValidation, Op: "add", Err: service.ErrBlankFields})

	_, err := h.execute("add", "--name", "milk")
	assert.ErrorIs(t, err, service.ErrBlankFields)
}

// ── update ──

func TestUpdate_KeepsOmittedFields(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.items.EXPECT().Get(gomock.Any(), int64(2)).
			Return(models.Item{LocalID: 2, Name: "bread", Description: "rye"}, nil),
		h.items.EXPECT().Update(gomock.Any(), int64(2), models.ItemFields{Name: "bread", Description: "wheat"}).
			Return(models.Item{LocalID: 2, Name: "bread", Description: "wheat", PendingSync: true}, nil),
	)

	out, err := h.execute("update", "2", "--description", "wheat")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated #2 bread")
	assert.Contains(t, out, "queued for sync")
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	h := newHarness(t)

	_, err := h.execute("update", "2")
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestUpdate_NotFound(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Get(gomock.Any(), int64(9)).
		Return(models.Item{}, &service.Error{Kind: service.KindValidation, Op: "get", Err: service.ErrItemNotFound})

	_, err := h.execute("update", "9", "--name", "x")
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

// ── delete ──

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	out, err := h.execute("delete", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted #4")
}

func TestDelete_RemoteFailureStaysQueued(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Delete(gomock.Any(), int64(4)).
		Return(&service.Error{Kind: service.KindRemote, Op: "delete", Err: errors.New("503")})

	out, err := h.execute("rm", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "stays queued")
}

func TestDelete_LocalError(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Delete(gomock.Any(), int64(4)).Return(errDisk)

	_, err := h.execute("delete", "4")
	assert.Equal(t, service.KindLocal, service.KindOf(err))
}

// ── sync ──

func TestSync_Report(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Sync(gomock.Any()).
		Return(models.SyncReport{Pending: 3, Created: 1, Updated: 1, Deleted: 1, Merged: 5}, nil)

	out, err := h.execute("sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Sync complete")
	assert.Contains(t, out, "Pending: 3")
	assert.Contains(t, out, "Merged:  5")
}

func TestSync_Partial(t *testing.T) {
	h := newHarness(t)
	report := models.SyncReport{
		Pending: 2,
		Created: 1,
		Failures: []models.SyncFailure{
			{LocalID: 4, Op: models.SyncOpCreate, Err: errors.New("500 internal")},
			{Op: models.SyncOpFetch, Err: errors.New("timeout")},
		},
	}
	h.items.EXPECT().Sync(gomock.Any()).
		Return(report, &service.Error{Kind: service.KindAggregate, Op: "sync"})

	out, err := h.execute("sync")
	assert.Equal(t, service.KindAggregate, service.KindOf(err))
	assert.Contains(t, out, "Sync finished with failures")
	assert.Contains(t, out, "create #4: 500 internal")
	assert.Contains(t, out, "fetch remote items: timeout")
}

func TestSync_Offline(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Sync(gomock.Any()).
		Return(models.SyncReport{}, &service.Error{Kind: service.KindRemoteUnavailable, Op: "sync"})

	out, err := h.execute("sync")
	assert.ErrorIs(t, err, service.ErrRemoteUnavailable)
	assert.NotContains(t, out, "Pending:")
}

// ── watch / run ──

func TestWatch_PrintsSnapshots(t *testing.T) {
	h := newHarness(t)
	h.items.EXPECT().Observe(gomock.Any()).DoAndReturn(snapshotStream(
		models.ItemsSnapshot{Loading: true},
		models.ItemsSnapshot{Items: []models.Item{{LocalID: 1, Name: "milk", Description: "2l"}}},
		models.ItemsSnapshot{Err: errors.New("database is locked")},
	))

	out, err := h.execute("watch")
	require.NoError(t, err)
	assert.Contains(t, out, "loading...")
	assert.Contains(t, out, "1 item(s)")
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "database is locked")
}

func TestRun_StopsWhenStreamEnds(t *testing.T) {
	h := newHarness(t)
	var workersStopped atomic.Bool
	h.rt.workers = func(ctx context.Context) error {
		<-ctx.Done()
		workersStopped.Store(true)
		return nil
	}
	h.items.EXPECT().Observe(gomock.Any()).DoAndReturn(snapshotStream(
		models.ItemsSnapshot{Items: []models.Item{{LocalID: 1, Name: "milk", Description: "2l"}}},
	))

	out, err := h.execute("run")
	require.NoError(t, err)
	assert.Contains(t, out, "milk")
	assert.True(t, workersStopped.Load())
	assert.True(t, h.rt.closed.Load())
}

func TestRun_WorkerFailure(t *testing.T) {
	h := newHarness(t)
	boom := errors.New("monitor crashed")
	h.rt.workers = func(context.Context) error { return boom }
	h.items.EXPECT().Observe(gomock.Any()).DoAndReturn(func(ctx context.Context) *store.Subscription {
		return store.NewSubscription(ctx, func(ctx context.Context, _ chan<- models.ItemsSnapshot) {
			<-ctx.Done()
		})
	})

	_, err := h.execute("run")
	assert.ErrorIs(t, err, boom)
}

// ── helpers ──

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 42 ", want: 42},
		{in: "#7", want: 7},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "x", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "a long...", fitText("a long description", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "молоко", fitText("молоко", 6))
}
