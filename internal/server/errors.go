// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var errHTTPNotConfigured = errors.New("http handler or listen address is missing")
