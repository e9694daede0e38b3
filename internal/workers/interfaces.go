// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background jobs of the client, such as
// the connectivity monitor and the periodic sync job.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job fails,
// and returns nil on a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
