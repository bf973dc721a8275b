// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package updater holds the mechanics of the self-update feature:
//
//   - [GitInspector] compares the local HEAD of the deployed working tree
//     with the head of its tracked remote branch using the git CLI;
//   - [ScriptRunner] executes the update script with a hard timeout,
//     killing the whole process group when the deadline passes;
//   - [Lock] is the single-flight guard that keeps at most one script
//     execution in flight per process.
//
// Policy (auditing, error mapping, who may call what) lives in the service
// layer.
package updater
