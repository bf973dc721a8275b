// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package updater

import "os/exec"

// setProcessGroup keeps the default behavior of killing only the direct
// child on platforms without process groups.
func setProcessGroup(*exec.Cmd) {}
