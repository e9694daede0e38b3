// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the reference item server.
//
// Routes:
//
//	GET    /api/health
//	GET    /api/items
//	POST   /api/items
//	GET    /api/items/{id}
//	PUT    /api/items/{id}
//	DELETE /api/items/{id}
//
// Every request gets a trace id (X-Trace-ID), a request-scoped logger and an
// access log line before it reaches the service layer.
package http
