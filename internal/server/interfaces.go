// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the control plane process.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown stops serving and releases resources.
type Server interface {
	RunServer() error
	Shutdown()
}
