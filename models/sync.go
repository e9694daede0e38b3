// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncOp names the remote operation a sync step attempted.
type SyncOp string

const (
	SyncOpCreate SyncOp = "create"
	SyncOpUpdate SyncOp = "update"
	SyncOpDelete SyncOp = "delete"
	SyncOpFetch  SyncOp = "fetch"
)

// SyncFailure describes one step of a sync pass that could not be reconciled.
// The item stays queued for the next pass.
type SyncFailure struct {
	LocalID  int64  `json:"local_id,omitempty"`
	RemoteID string `json:"remote_id,omitempty"`
	Op       SyncOp `json:"op"`
	Err      error  `json:"-"`
}

// SyncReport summarizes a full sync pass.
type SyncReport struct {
	// Pending is the number of items that were queued when the pass started.
	Pending int `json:"pending"`

	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`

	// Purged counts items removed locally without a remote call: never-synced
	// deletions and items pruned after the final fetch.
	Purged int `json:"purged"`

	// Merged counts remote items applied during the final fetch.
	Merged int `json:"merged"`

	Failures []SyncFailure `json:"failures,omitempty"`
}

// OK reports whether every step of the pass succeeded.
func (r SyncReport) OK() bool {
	return len(r.Failures) == 0
}
