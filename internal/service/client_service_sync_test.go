// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/mock"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

// expectMerge sets up the final fetch-and-merge step of a sync pass.
func expectMerge(repo *mock.MockLocalItemRepository, serverAdapter *mock.MockServerAdapter, remote []models.RemoteItem, ids []string) {
	serverAdapter.EXPECT().List(gomock.Any()).Return(remote, nil)
	repo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(len(remote), nil)
	repo.EXPECT().PurgeSoftDeleted(gomock.Any(), ids).Return(0, nil)
	repo.EXPECT().PruneAbsent(gomock.Any(), ids).Return(0, nil)
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestItemSyncService_Sync_Offline(t *testing.T) {
	svc, _, _, oracle := newTestItemSvc(t)
	oracle.EXPECT().IsOnline().Return(false)

	report, err := svc.Sync(context.Background())
	assert.Equal(t, KindRemoteUnavailable, KindOf(err))
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Zero(t, report.Pending)
}

func TestItemSyncService_Sync_NothingPending(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return(nil, nil)
	expectMerge(repo, serverAdapter, []models.RemoteItem{{ID: "r1", Name: "n", Description: "d"}}, []string{"r1"})

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 1, report.Merged)
}

func TestItemSyncService_Sync_ListPendingFails(t *testing.T) {
	svc, repo, _, oracle := newTestItemSvc(t)

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return(nil, errDisk)

	_, err := svc.Sync(context.Background())
	assert.Equal(t, KindLocal, KindOf(err))
}

func TestItemSyncService_Sync_Branches(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	deleteRemote := models.Item{LocalID: 1, RemoteID: strPtr("r1"), Name: "a", Description: "a", PendingSync: true, PendingDelete: true}
	deleteLocal := models.Item{LocalID: 2, Name: "b", Description: "b", PendingSync: true, PendingDelete: true}
	create := models.Item{LocalID: 3, Name: "c", Description: "c", PendingSync: true}
	update := models.Item{LocalID: 4, RemoteID: strPtr("r4"), Name: "d", Description: "d", PendingSync: true}
	pending := []models.Item{deleteRemote, deleteLocal, create, update}

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return(pending, nil)
	for _, item := range pending {
		repo.EXPECT().GetByLocalID(gomock.Any(), item.LocalID).Return(item, nil)
	}

	serverAdapter.EXPECT().Delete(gomock.Any(), "r1").Return(nil)
	repo.EXPECT().HardDelete(gomock.Any(), int64(1)).Return(nil)

	repo.EXPECT().HardDelete(gomock.Any(), int64(2)).Return(nil)

	serverAdapter.EXPECT().Create(gomock.Any(), models.ItemFields{Name: "c", Description: "c"}).
		Return(models.RemoteItem{ID: "r3", Name: "c", Description: "c"}, nil)
	repo.EXPECT().Update(gomock.Any(), models.Item{LocalID: 3, RemoteID: strPtr("r3"), Name: "c", Description: "c"}).Return(nil)

	serverAdapter.EXPECT().Update(gomock.Any(), "r4", models.ItemFields{Name: "d", Description: "d"}).
		Return(models.RemoteItem{ID: "r4", Name: "d", Description: "d"}, nil)
	repo.EXPECT().Update(gomock.Any(), models.Item{LocalID: 4, RemoteID: strPtr("r4"), Name: "d", Description: "d"}).Return(nil)

	expectMerge(repo, serverAdapter, []models.RemoteItem{
		{ID: "r3", Name: "c", Description: "c"},
		{ID: "r4", Name: "d", Description: "d"},
	}, []string{"r3", "r4"})

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{
		Pending: 4,
		Created: 1,
		Updated: 1,
		Deleted: 1,
		Purged:  1,
		Merged:  2,
	}, report)
}

func TestItemSyncService_Sync_RemoteDeleteNotFoundCountsAsDeleted(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)
	item := models.Item{LocalID: 1, RemoteID: strPtr("r1"), PendingSync: true, PendingDelete: true}

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return([]models.Item{item}, nil)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(1)).Return(item, nil)
	serverAdapter.EXPECT().Delete(gomock.Any(), "r1").Return(adapter.ErrNotFound)
	repo.EXPECT().HardDelete(gomock.Any(), int64(1)).Return(nil)
	expectMerge(repo, serverAdapter, nil, []string{})

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deleted)
}

func TestItemSyncService_Sync_PartialFailureContinues(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	failing := models.Item{LocalID: 1, Name: "a", Description: "a", PendingSync: true}
	ok := models.Item{LocalID: 2, Name: "b", Description: "b", PendingSync: true}

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return([]models.Item{failing, ok}, nil)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(1)).Return(failing, nil)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(2)).Return(ok, nil)

	serverAdapter.EXPECT().Create(gomock.Any(), models.ItemFields{Name: "a", Description: "a"}).
		Return(models.RemoteItem{}, adapter.ErrServiceUnavailable)
	serverAdapter.EXPECT().Create(gomock.Any(), models.ItemFields{Name: "b", Description: "b"}).
		Return(models.RemoteItem{ID: "r2", Name: "b", Description: "b"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	expectMerge(repo, serverAdapter, []models.RemoteItem{{ID: "r2", Name: "b", Description: "b"}}, []string{"r2"})

	report, err := svc.Sync(context.Background())
	assert.Equal(t, KindAggregate, KindOf(err))
	assert.ErrorIs(t, err, ErrPartialSync)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)

	assert.Equal(t, 1, report.Created)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, int64(1), report.Failures[0].LocalID)
	assert.Equal(t, models.SyncOpCreate, report.Failures[0].Op)
}

func TestItemSyncService_Sync_FetchFailureReported(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return(nil, nil)
	serverAdapter.EXPECT().List(gomock.Any()).Return(nil, adapter.ErrTransport)

	report, err := svc.Sync(context.Background())
	assert.Equal(t, KindAggregate, KindOf(err))
	require.Len(t, report.Failures, 1)
	assert.Equal(t, models.SyncOpFetch, report.Failures[0].Op)
}

func TestItemSyncService_Sync_LocalErrorAborts(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	first := models.Item{LocalID: 1, Name: "a", Description: "a", PendingSync: true}
	second := models.Item{LocalID: 2, Name: "b", Description: "b", PendingSync: true}

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return([]models.Item{first, second}, nil)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(1)).Return(first, nil)
	serverAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.RemoteItem{ID: "r1", Name: "a", Description: "a"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errDisk)

	_, err := svc.Sync(context.Background())
	assert.Equal(t, KindLocal, KindOf(err))
	assert.ErrorIs(t, err, errDisk)
}

func TestItemSyncService_Sync_SkipsItemsChangedConcurrently(t *testing.T) {
	svc, repo, serverAdapter, oracle := newTestItemSvc(t)

	gone := models.Item{LocalID: 1, Name: "a", Description: "a", PendingSync: true}
	settled := models.Item{LocalID: 2, RemoteID: strPtr("r2"), Name: "b", Description: "b", PendingSync: true}

	oracle.EXPECT().IsOnline().Return(true)
	repo.EXPECT().ListPendingSync(gomock.Any()).Return([]models.Item{gone, settled}, nil)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(1)).Return(models.Item{}, store.ErrItemNotFound)
	repo.EXPECT().GetByLocalID(gomock.Any(), int64(2)).Return(models.Item{LocalID: 2, RemoteID: strPtr("r2"), Name: "b", Description: "b"}, nil)
	expectMerge(repo, serverAdapter, []models.RemoteItem{{ID: "r2", Name: "b", Description: "b"}}, []string{"r2"})

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Pending)
	assert.Zero(t, report.Created+report.Updated+report.Deleted)
}
