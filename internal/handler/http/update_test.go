// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/models"
)

func newUpdateRouter(t *testing.T, updates *mockUpdateService) http.Handler {
	t.Helper()
	services := newTestServices()
	services.UpdateService = updates
	return newTestRouter(t, services)
}

func TestCheckUpdate(t *testing.T) {
	router := newUpdateRouter(t, &mockUpdateService{
		checkFn: func(context.Context, int64) (models.UpdateCheckResult, error) {
			return models.UpdateCheckResult{
				UpdateAvailable: true,
				CommitsBehind:   3,
				Branch:          "main",
				Local:           models.RepoState{Hash: "01234567", Message: "old", Date: "2026-01-01"},
				Remote:          models.RepoState{Hash: "89abcdef", Message: "new", Date: "2026-01-02"},
			}, nil
		},
	})

	rr := do(t, router, http.MethodGet, "/v1/admin/update/check", nil, adminToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"updateAvailable": true,
		"commitsBehind": 3,
		"branch": "main",
		"local": {"hash": "01234567", "message": "old", "date": "2026-01-01"},
		"remote": {"hash": "89abcdef", "message": "new", "date": "2026-01-02"}
	}`, rr.Body.String())
}

func TestCheckUpdate_Failure(t *testing.T) {
	router := newUpdateRouter(t, &mockUpdateService{
		checkFn: func(context.Context, int64) (models.UpdateCheckResult, error) {
			return models.UpdateCheckResult{}, service.ErrUpdateCheckFailed.WithDetails("git fetch origin: exit status 128")
		},
	})

	rr := do(t, router, http.MethodGet, "/v1/admin/update/check", nil, adminToken)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "update_check_failed", resp.Error)
	assert.Equal(t, "git fetch origin: exit status 128", resp.Details)
	assert.Nil(t, resp.ExitCode)
}

func TestApplyUpdate(t *testing.T) {
	router := newUpdateRouter(t, &mockUpdateService{
		applyFn: func(context.Context, int64) (models.UpdateApplyResponse, error) {
			return models.UpdateApplyResponse{Success: true, Output: "pulled\n"}, nil
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/admin/update/apply", nil, adminToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"output":"pulled\n"}`, rr.Body.String())
}

func TestApplyUpdate_ScriptFailed(t *testing.T) {
	router := newUpdateRouter(t, &mockUpdateService{
		applyFn: func(context.Context, int64) (models.UpdateApplyResponse, error) {
			return models.UpdateApplyResponse{}, service.ErrUpdateScriptFailed.WithFields(map[string]any{
				service.FieldExitCode: 2,
				service.FieldStdout:   "building",
				service.FieldStderr:   "compile error",
			})
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/admin/update/apply", nil, adminToken)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t,
		`{"error":"update_script_failed","exitCode":2,"stdout":"building","stderr":"compile error"}`,
		rr.Body.String())
}

func TestApplyUpdate_AlreadyRunning(t *testing.T) {
	router := newUpdateRouter(t, &mockUpdateService{
		applyFn: func(context.Context, int64) (models.UpdateApplyResponse, error) {
			return models.UpdateApplyResponse{}, service.ErrUpdateInProgress
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/admin/update/apply", nil, adminToken)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "update_already_in_progress", decodeError(t, rr).Error)
}

// The handler does not serialize applies itself; it relays whatever the
// service decides for each concurrent caller.
func TestApplyUpdate_ConcurrentCallers(t *testing.T) {
	var (
		mu      sync.Mutex
		running bool
	)
	started := make(chan struct{})
	finish := make(chan struct{})

	router := newUpdateRouter(t, &mockUpdateService{
		applyFn: func(context.Context, int64) (models.UpdateApplyResponse, error) {
			mu.Lock()
			if running {
				mu.Unlock()
				return models.UpdateApplyResponse{}, service.ErrUpdateInProgress
			}
			running = true
			mu.Unlock()

			close(started)
			<-finish
			return models.UpdateApplyResponse{Success: true}, nil
		},
	})

	winner := make(chan int, 1)
	go func() {
		winner <- do(t, router, http.MethodPost, "/v1/admin/update/apply", nil, adminToken).Code
	}()
	<-started

	const losers = 5
	codes := make(chan int, losers)
	for range losers {
		go func() {
			codes <- do(t, router, http.MethodPost, "/v1/admin/update/apply", nil, adminToken).Code
		}()
	}
	for range losers {
		assert.Equal(t, http.StatusConflict, <-codes)
	}

	close(finish)
	assert.Equal(t, http.StatusOK, <-winner)
}
