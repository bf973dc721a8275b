// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the control plane next to the
// HTTP server.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately; the job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job has fully exited
// and is safe to call on a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// RetryClassifier tells transient store failures from permanent ones.
// Implemented by *store.DB.
type RetryClassifier interface {
	IsRetryable(err error) bool
}
