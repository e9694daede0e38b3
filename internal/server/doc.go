// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the reference item service,
// including graceful shutdown when its context is cancelled.
package server
