// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/store"
)

// RefreshTokenJanitor periodically deletes expired refresh token records.
// Expired records are already rejected on refresh; the janitor only keeps
// the table from growing.
type RefreshTokenJanitor struct {
	tokens     store.RefreshTokenRepository
	classifier RetryClassifier
	interval   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshTokenJanitor creates an idle janitor. A non-positive interval
// disables it: Start becomes a no-op. classifier may be nil.
func NewRefreshTokenJanitor(tokens store.RefreshTokenRepository, classifier RetryClassifier, interval time.Duration, logger *logger.Logger) *RefreshTokenJanitor {
	return &RefreshTokenJanitor{
		tokens:     tokens,
		classifier: classifier,
		interval:   interval,
		logger:     logger,
	}
}

// Start stops a previously started run and launches a new one that prunes
// once immediately and then on every tick.
func (j *RefreshTokenJanitor) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("refresh token janitor disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("refresh token janitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

func (j *RefreshTokenJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// prune runs one deletion pass. Failures are logged and retried on the next
// tick; a transient failure is only a warning.
func (j *RefreshTokenJanitor) prune(ctx context.Context) {
	deleted, err := j.tokens.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if j.classifier != nil && j.classifier.IsRetryable(err) {
			j.logger.Warn().Err(err).Msg("pruning expired refresh tokens failed, will retry")
			return
		}
		j.logger.Err(err).Msg("pruning expired refresh tokens failed")
		return
	}

	if deleted > 0 {
		j.logger.Info().Int64("deleted", deleted).Msg("expired refresh tokens pruned")
	}
}
