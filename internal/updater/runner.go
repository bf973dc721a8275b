// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package updater

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/models"
)

// ErrStartScript is returned when the update script process cannot be
// spawned (missing interpreter, bad working directory, ...).
var ErrStartScript = errors.New("failed to start update script")

const (
	defaultShell     = "bash"
	defaultWaitDelay = 5 * time.Second
)

// ScriptRunner executes the update script and reports a single terminal
// outcome.
type ScriptRunner struct {
	dir       string
	script    string
	useSudo   bool
	shell     string
	timeout   time.Duration
	waitDelay time.Duration
}

// RunnerOption customizes a [ScriptRunner].
type RunnerOption func(*ScriptRunner)

// WithShell replaces the interpreter used to run the script.
func WithShell(shell string) RunnerOption {
	return func(r *ScriptRunner) { r.shell = shell }
}

// WithWaitDelay bounds how long Run waits for the output pipes to drain
// after the process has been killed.
func WithWaitDelay(d time.Duration) RunnerOption {
	return func(r *ScriptRunner) { r.waitDelay = d }
}

// NewScriptRunner builds a runner from the update settings. The script path
// is expected to be normalized (absolute or relative to RepoDir).
func NewScriptRunner(cfg config.Update, opts ...RunnerOption) *ScriptRunner {
	r := &ScriptRunner{
		dir:       cfg.RepoDir,
		script:    cfg.Script,
		useSudo:   cfg.UseSudo,
		shell:     defaultShell,
		timeout:   cfg.Timeout,
		waitDelay: defaultWaitDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// command returns the program and arguments: "sudo bash <script>" or
// "bash <script>".
func (r *ScriptRunner) command() (string, []string) {
	if r.useSudo {
		return "sudo", []string{"-n", r.shell, r.script}
	}
	return r.shell, []string{r.script}
}

// Run executes the script in the repository directory and blocks until it
// exits or the timeout fires. A non-zero exit is not an error: it is part
// of the returned result. An error is returned only when the process could
// not be spawned or waited on.
//
// On timeout the whole process group is killed and the result carries
// TimedOut and exit code -1.
func (r *ScriptRunner) Run(ctx context.Context) (models.UpdateRunResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	name, args := r.command()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.WaitDelay = r.waitDelay
	setProcessGroup(cmd)

	var stdout, stderr outputBuffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return models.UpdateRunResult{}, fmt.Errorf("%w: %w", ErrStartScript, err)
	}

	waitErr := cmd.Wait()

	result := models.UpdateRunResult{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil,
		result.TimedOut,
		errors.As(waitErr, &exitErr),
		errors.Is(waitErr, exec.ErrWaitDelay):
		return result, nil
	case ctx.Err() != nil:
		// cancelled by the caller
		return result, fmt.Errorf("update script interrupted: %w", ctx.Err())
	default:
		return result, fmt.Errorf("error waiting for update script: %w", waitErr)
	}
}

// outputBuffer accumulates a child's output as it is produced. It is safe
// to read while the copying goroutine is still writing.
type outputBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *outputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
