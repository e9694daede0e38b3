// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sync client runtime.
//
// It opens the local SQLite store, builds the HTTP adapter and the
// connectivity oracle, and wires them into the reconciliation engine and its
// background workers. The command-line front end drives the result through
// [Runtime].
package client
