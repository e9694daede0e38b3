// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-sync/internal/logger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestStatic(t *testing.T) {
	s := NewStatic(false)
	assert.False(t, s.IsOnline())

	s.Set(true)
	assert.True(t, s.IsOnline())

	var o Oracle = s
	assert.True(t, o.IsOnline())
}

func TestMonitor_Probe(t *testing.T) {
	var healthy atomic.Bool
	m := NewMonitor(pingFunc(func(context.Context) error {
		if healthy.Load() {
			return nil
		}
		return errors.New("connection refused")
	}), time.Hour, time.Second, logger.Nop())

	assert.False(t, m.IsOnline(), "offline before the first probe")

	assert.False(t, m.Probe(context.Background()))
	assert.False(t, m.IsOnline())

	healthy.Store(true)
	assert.True(t, m.Probe(context.Background()))
	assert.True(t, m.IsOnline())
}

func TestMonitor_ProbeTimeout(t *testing.T) {
	m := NewMonitor(pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), time.Hour, 10*time.Millisecond, logger.Nop())

	assert.False(t, m.Probe(context.Background()))
}

func TestMonitor_Run(t *testing.T) {
	var calls atomic.Int32
	m := NewMonitor(pingFunc(func(context.Context) error {
		calls.Add(1)
		return nil
	}), 5*time.Millisecond, time.Second, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, m.IsOnline())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}
