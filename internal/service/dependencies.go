// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=dependencies.go -destination=../mock/service_deps_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/peninsula/models"
)

// RepoInspector reports the drift between the deployed working tree and
// its remote. Implemented by updater.GitInspector.
type RepoInspector interface {
	Inspect(ctx context.Context) (models.UpdateCheckResult, error)
}

// ScriptRunner executes the update script once and returns its terminal
// outcome. A non-zero exit is a result, not an error; an error means the
// script could not be started. Implemented by updater.ScriptRunner.
type ScriptRunner interface {
	Run(ctx context.Context) (models.UpdateRunResult, error)
}

// MetricsRecorder receives domain events worth counting. Implemented by
// metrics.Metrics.
type MetricsRecorder interface {
	LoginAttempt(outcome string)
	UpdateRun(outcome string)
	SetUpdateInProgress(running bool)
}

type nopMetrics struct{}

func (nopMetrics) LoginAttempt(string)      {}
func (nopMetrics) UpdateRun(string)         {}
func (nopMetrics) SetUpdateInProgress(bool) {}
