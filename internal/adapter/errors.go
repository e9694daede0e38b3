// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport wraps failures to get any response from the service:
	// refused connections, DNS errors, timeouts.
	ErrTransport = errors.New("remote service unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded or
	// lacks required fields.
	ErrUnexpectedResponse = errors.New("unexpected response from remote service")
)
