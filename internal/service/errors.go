// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by the server service when a request
	// body fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrValidationNoIDProvided = errors.New("no item id was given")
)
