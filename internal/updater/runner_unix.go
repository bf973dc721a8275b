// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package updater

import (
	"os/exec"
	"syscall"
)

// setProcessGroup starts the child in its own process group and makes
// context cancellation kill the whole group, so helpers spawned by the
// script do not outlive it.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
