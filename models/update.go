// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RepoState describes a single commit of the tracked repository.
type RepoState struct {
	// Hash is the full commit hash. Responses abbreviate it, comparisons
	// always use the full value.
	Hash    string `json:"hash"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Short returns the state with its hash abbreviated to 8 characters.
func (s RepoState) Short() RepoState {
	if len(s.Hash) > 8 {
		s.Hash = s.Hash[:8]
	}
	return s
}

// UpdateCheckResult is the outcome of comparing local HEAD with the tracked
// remote branch head.
type UpdateCheckResult struct {
	UpdateAvailable bool      `json:"updateAvailable"`
	CommitsBehind   int       `json:"commitsBehind"`
	Branch          string    `json:"branch"`
	Local           RepoState `json:"local"`
	Remote          RepoState `json:"remote"`
}

// UpdateRunResult is the terminal outcome of one update script execution.
type UpdateRunResult struct {
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`

	// TimedOut is set when the script was killed by the hard timeout. The
	// exit code is -1 in that case.
	TimedOut bool `json:"timedOut,omitempty"`
}

// UpdateApplyResponse is returned when the update script exits with zero.
type UpdateApplyResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
}
