// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemsSnapshot is one value of the observation stream: the active item set
// at a point in time.
type ItemsSnapshot struct {
	// Items holds every item that is not pending deletion, in display order.
	Items []Item

	// Loading is true only for the first snapshot, emitted before the local
	// store was read.
	Loading bool

	// Err is set when the local store could not be read. Remote failures
	// never show up here.
	Err error
}
