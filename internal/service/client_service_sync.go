// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-item-sync/internal/adapter"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

func (s *itemSyncService) Sync(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport

	if !s.oracle.IsOnline() {
		return report, &Error{Kind: KindRemoteUnavailable, Op: "sync"}
	}

	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	pending, err := s.repo.ListPendingSync(ctx)
	if err != nil {
		return report, localError("sync", err)
	}
	report.Pending = len(pending)

	for _, item := range pending {
		if err = s.syncItem(ctx, item.LocalID, &report); err != nil {
			return report, err
		}
	}

	if err = s.mergeRemote(ctx, &report); err != nil {
		return report, err
	}

	log := s.logger.Info()
	if !report.OK() {
		log = s.logger.Warn()
	}
	log.Str("func", "itemSyncService.Sync").
		Int("pending", report.Pending).
		Int("created", report.Created).
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Int("purged", report.Purged).
		Int("merged", report.Merged).
		Int("failed", len(report.Failures)).
		Msg("sync pass finished")

	if !report.OK() {
		errs := make([]error, 0, len(report.Failures))
		for _, f := range report.Failures {
			errs = append(errs, f.Err)
		}
		return report, &Error{Kind: KindAggregate, Op: "sync", Err: errors.Join(errs...)}
	}
	return report, nil
}

// syncItem reconciles one pending item. Remote failures are recorded in
// report; only local storage failures are returned.
func (s *itemSyncService) syncItem(ctx context.Context, localID int64, report *models.SyncReport) error {
	unlock := s.locks.Lock(localID)
	defer unlock()

	// re-read under the lock: a concurrent delete or edit may have changed it
	item, err := s.repo.GetByLocalID(ctx, localID)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil
	}
	if err != nil {
		return localError("sync", err)
	}
	if !item.PendingSync {
		return nil
	}

	switch {
	case item.PendingDelete && item.HasRemote():
		err = s.adapter.Delete(ctx, item.RemoteKey())
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			s.recordFailure(report, item, models.SyncOpDelete, err)
			return nil
		}
		if err = s.repo.HardDelete(ctx, localID); err != nil {
			return localError("sync", err)
		}
		report.Deleted++

	case item.PendingDelete:
		if err = s.repo.HardDelete(ctx, localID); err != nil {
			return localError("sync", err)
		}
		report.Purged++

	case !item.HasRemote():
		remote, createErr := s.adapter.Create(ctx, item.Fields())
		if createErr != nil {
			s.recordFailure(report, item, models.SyncOpCreate, createErr)
			return nil
		}
		id := remote.ID
		item.RemoteID = &id
		item.PendingSync = false
		if _, err = s.writeBack(ctx, item); err != nil {
			return localError("sync", err)
		}
		report.Created++

	default:
		if _, err = s.adapter.Update(ctx, item.RemoteKey(), item.Fields()); err != nil {
			s.recordFailure(report, item, models.SyncOpUpdate, err)
			return nil
		}
		item.PendingSync = false
		if err = s.repo.Update(ctx, item); err != nil {
			return localError("sync", err)
		}
		report.Updated++
	}

	return nil
}

// mergeRemote fetches the remote item set and applies it: new and changed
// items are upserted, soft-deleted items gone remotely are purged and
// confirmed items gone remotely are pruned.
func (s *itemSyncService) mergeRemote(ctx context.Context, report *models.SyncReport) error {
	s.mergeMu.Lock()
	defer s.mergeMu.Unlock()

	remote, err := s.adapter.List(ctx)
	if err != nil {
		s.recordFailure(report, models.Item{}, models.SyncOpFetch, err)
		return nil
	}

	merged, err := s.repo.InsertMany(ctx, toLocal(remote))
	if err != nil {
		return localError("sync", err)
	}
	report.Merged += merged

	ids := make([]string, 0, len(remote))
	for _, r := range remote {
		ids = append(ids, r.ID)
	}

	purged, err := s.repo.PurgeSoftDeleted(ctx, ids)
	if err != nil {
		return localError("sync", err)
	}
	pruned, err := s.repo.PruneAbsent(ctx, ids)
	if err != nil {
		return localError("sync", err)
	}
	report.Purged += purged + pruned

	return nil
}

func (s *itemSyncService) recordFailure(report *models.SyncReport, item models.Item, op models.SyncOp, err error) {
	s.logger.Warn().Err(err).
		Str("func", "itemSyncService.Sync").
		Str("op", string(op)).
		Int64("local_id", item.LocalID).
		Str("remote_id", item.RemoteKey()).
		Msg("sync step failed")

	report.Failures = append(report.Failures, models.SyncFailure{
		LocalID:  item.LocalID,
		RemoteID: item.RemoteKey(),
		Op:       op,
		Err:      &Error{Kind: KindRemote, Op: string(op), Err: err},
	})
}
