// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrInvalidID       = errors.New("item id must be a positive integer")
	ErrNothingToUpdate = errors.New("nothing to update: pass --name and/or --description")
	ErrNilRuntime      = errors.New("runtime factory returned nil")
)
