// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity answers "is the remote service usable right now".
//
// [Oracle] is the synchronous predicate the sync engine consults before any
// network call. [Static] is a settable implementation for tests and forced
// offline mode; [Monitor] derives the answer from periodic health probes.
package connectivity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/logger"
)

//go:generate mockgen -source=connectivity.go -destination=../mock/connectivity_mock.go -package=mock

// Oracle reports whether the network is currently usable. IsOnline must be
// cheap and free of side effects.
type Oracle interface {
	IsOnline() bool
}

// Pinger checks the remote service once.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Static is an [Oracle] whose answer is set explicitly.
type Static struct {
	online atomic.Bool
}

// NewStatic returns a Static oracle starting in the given state.
func NewStatic(online bool) *Static {
	s := &Static{}
	s.online.Store(online)
	return s
}

func (s *Static) IsOnline() bool {
	return s.online.Load()
}

// Set changes the reported state.
func (s *Static) Set(online bool) {
	s.online.Store(online)
}

// Monitor is an [Oracle] backed by health probes. IsOnline returns the
// result of the latest probe; before the first probe it reports offline.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	online   atomic.Bool
	logger   *logger.Logger
}

// NewMonitor builds a Monitor probing pinger every interval, each probe
// bounded by timeout.
func NewMonitor(pinger Pinger, interval, timeout time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// Probe pings the service once, stores and returns the result.
func (m *Monitor) Probe(ctx context.Context) bool {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	err := m.pinger.Ping(ctx)
	online := err == nil

	if was := m.online.Swap(online); was != online {
		if online {
			m.logger.Info().Str("func", "Monitor.Probe").Msg("remote service is reachable")
		} else {
			m.logger.Warn().Err(err).Str("func", "Monitor.Probe").Msg("remote service is unreachable")
		}
	}

	return online
}

// Run probes immediately and then on every tick until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	m.Probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}
