// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package updater

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "update.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func newTestRunner(t *testing.T, body string, timeout time.Duration) (*ScriptRunner, string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	dir := t.TempDir()
	cfg := config.Update{
		RepoDir: dir,
		Script:  writeScript(t, dir, body),
		UseSudo: false,
		Timeout: timeout,
	}

	return NewScriptRunner(cfg, WithShell("sh"), WithWaitDelay(500*time.Millisecond)), dir
}

func TestScriptRunner_Success(t *testing.T) {
	runner, _ := newTestRunner(t, "echo updated; echo 'warning: dirty tree' >&2", 10*time.Second)

	result, err := runner.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "updated\n", result.Stdout)
	assert.Equal(t, "warning: dirty tree\n", result.Stderr)
	assert.False(t, result.TimedOut)
}

func TestScriptRunner_NonZeroExitIsAResult(t *testing.T) {
	runner, _ := newTestRunner(t, "echo partial; echo 'npm ERR!' >&2; exit 3", 10*time.Second)

	result, err := runner.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "partial\n", result.Stdout)
	assert.Equal(t, "npm ERR!\n", result.Stderr)
}

func TestScriptRunner_RunsInRepoDir(t *testing.T) {
	runner, dir := newTestRunner(t, "pwd", 10*time.Second)

	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(result.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScriptRunner_TimeoutKillsProcessGroup(t *testing.T) {
	// the background sleep keeps stdout open; only a group kill ends it
	runner, _ := newTestRunner(t, "echo started; sleep 30 & sleep 30", 300*time.Millisecond)

	start := time.Now()
	result, err := runner.Run(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Equal(t, -1, result.ExitCode)
	assert.Equal(t, "started\n", result.Stdout)
	assert.Less(t, elapsed, 10*time.Second)
}

func TestScriptRunner_StartFailure(t *testing.T) {
	dir := t.TempDir()
	runner := NewScriptRunner(config.Update{
		RepoDir: dir,
		Script:  filepath.Join(dir, "update.sh"),
		Timeout: time.Second,
	}, WithShell(filepath.Join(dir, "no-such-shell")))

	_, err := runner.Run(context.Background())

	assert.ErrorIs(t, err, ErrStartScript)
}

func TestScriptRunner_Command(t *testing.T) {
	withSudo := NewScriptRunner(config.Update{Script: "/srv/app/scripts/update.sh", UseSudo: true})
	name, args := withSudo.command()
	assert.Equal(t, "sudo", name)
	assert.Equal(t, []string{"-n", "bash", "/srv/app/scripts/update.sh"}, args)

	direct := NewScriptRunner(config.Update{Script: "/srv/app/scripts/update.sh"})
	name, args = direct.command()
	assert.Equal(t, "bash", name)
	assert.Equal(t, []string{"/srv/app/scripts/update.sh"}, args)
}
