// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/metrics"
	"github.com/MKhiriev/peninsula/internal/updater"
	"github.com/MKhiriev/peninsula/models"
)

// Keys of the structured fields attached to ErrUpdateScriptFailed.
const (
	FieldExitCode = "exitCode"
	FieldStdout   = "stdout"
	FieldStderr   = "stderr"
)

type updateService struct {
	inspector RepoInspector
	runner    ScriptRunner

	// lock enforces a single apply in flight for the whole process.
	lock *updater.Lock

	audit   AuditService
	metrics MetricsRecorder
	logger  *logger.Logger
}

func NewUpdateService(
	inspector RepoInspector,
	runner ScriptRunner,
	lock *updater.Lock,
	audit AuditService,
	metrics MetricsRecorder,
	logger *logger.Logger,
) UpdateService {
	if lock == nil {
		lock = updater.NewLock()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &updateService{
		inspector: inspector,
		runner:    runner,
		lock:      lock,
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
	}
}

// Check reports whether the remote branch has moved. Hashes are compared in
// full and abbreviated in the result.
func (s *updateService) Check(ctx context.Context, actorID int64) (models.UpdateCheckResult, error) {
	result, err := s.inspector.Inspect(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("update check failed")
		return models.UpdateCheckResult{}, ErrUpdateCheckFailed.Wrap(err).WithDetails(err.Error())
	}

	s.audit.Record(ctx, models.Actor(actorID), models.ActionUpdateCheck, map[string]any{
		"branch":          result.Branch,
		"updateAvailable": result.UpdateAvailable,
		"commitsBehind":   result.CommitsBehind,
	})

	result.Local = result.Local.Short()
	result.Remote = result.Remote.Short()
	return result, nil
}

// Apply runs the update script under the process-wide lock. The lock is
// released on every path, including a timed out script.
//
// The run is detached from the caller's cancellation: a client that gives up
// waiting must not interrupt a half-applied update. The runner's own
// timeout still bounds it.
func (s *updateService) Apply(ctx context.Context, actorID int64) (models.UpdateApplyResponse, error) {
	log := logger.FromContext(ctx)

	release, ok := s.lock.TryAcquire()
	if !ok {
		s.metrics.UpdateRun(metrics.UpdateRejected)
		log.Info().Int64("actor_user_id", actorID).Msg("update apply rejected, another run is in progress")
		return models.UpdateApplyResponse{}, ErrUpdateInProgress
	}
	s.metrics.SetUpdateInProgress(true)
	defer func() {
		release()
		s.metrics.SetUpdateInProgress(false)
	}()

	s.audit.Record(ctx, models.Actor(actorID), models.ActionUpdateApply, map[string]any{})

	log.Info().Int64("actor_user_id", actorID).Msg("update script started")
	result, err := s.runner.Run(context.WithoutCancel(ctx))
	if err != nil {
		s.metrics.UpdateRun(metrics.UpdateFailed)
		log.Err(err).Msg("update script could not be started")
		return models.UpdateApplyResponse{}, ErrUpdateApplyFailed.Wrap(err).WithDetails(err.Error())
	}

	fields := map[string]any{
		FieldExitCode: result.ExitCode,
		FieldStdout:   result.Stdout,
		FieldStderr:   result.Stderr,
	}

	switch {
	case result.TimedOut:
		s.metrics.UpdateRun(metrics.UpdateTimedOut)
		log.Error().Int("exit_code", result.ExitCode).Msg("update script timed out")
		return models.UpdateApplyResponse{}, ErrUpdateScriptFailed.
			WithDetails("update script timed out").
			WithFields(fields)
	case result.ExitCode != 0:
		s.metrics.UpdateRun(metrics.UpdateFailed)
		log.Error().Int("exit_code", result.ExitCode).Str("stderr", result.Stderr).Msg("update script failed")
		return models.UpdateApplyResponse{}, ErrUpdateScriptFailed.WithFields(fields)
	}

	s.metrics.UpdateRun(metrics.UpdateSucceeded)
	log.Info().Msg("update script finished")

	return models.UpdateApplyResponse{
		Success: true,
		Output:  result.Stdout,
	}, nil
}
