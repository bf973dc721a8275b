// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned for unknown subcommands and malformed flags.
	ErrUsage = errors.New("usage error")
	// ErrNoToken is returned when an admin subcommand runs without an
	// access token.
	ErrNoToken = errors.New("no access token: run login or set PENINSULA_TOKEN")
)
