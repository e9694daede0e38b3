// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transport server.
type Server interface {
	// RunServer serves requests until ctx is done, then shuts down
	// gracefully. It returns the first listen or shutdown error.
	RunServer(ctx context.Context) error
}
