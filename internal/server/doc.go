// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the background workers, and stops
// both gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
