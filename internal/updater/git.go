// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package updater

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/MKhiriev/peninsula/models"
)

// ErrGitCommand is wrapped by every failed git invocation.
var ErrGitCommand = errors.New("git command failed")

// logFormat prints hash, subject and committer date separated by NUL bytes.
const logFormat = "--format=%H%x00%s%x00%ci"

// GitInspector reads repository state through the git CLI.
type GitInspector struct {
	repoDir string
	remote  string
	gitPath string
}

// NewGitInspector returns an inspector for the working tree at repoDir
// tracking the given remote (usually "origin").
func NewGitInspector(repoDir, remote string) *GitInspector {
	return &GitInspector{
		repoDir: repoDir,
		remote:  remote,
		gitPath: "git",
	}
}

// Inspect fetches the remote and compares local HEAD with the head of
// <remote>/<current branch>. UpdateAvailable compares full hashes; the
// returned states carry full hashes as well.
func (g *GitInspector) Inspect(ctx context.Context) (models.UpdateCheckResult, error) {
	local, err := g.state(ctx, "HEAD")
	if err != nil {
		return models.UpdateCheckResult{}, err
	}

	branch, err := g.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return models.UpdateCheckResult{}, err
	}

	if _, err = g.git(ctx, "fetch", g.remote); err != nil {
		return models.UpdateCheckResult{}, err
	}

	remoteRef := g.remote + "/" + branch
	remote, err := g.state(ctx, remoteRef)
	if err != nil {
		return models.UpdateCheckResult{}, err
	}

	count, err := g.git(ctx, "rev-list", "--count", "HEAD.."+remoteRef)
	if err != nil {
		return models.UpdateCheckResult{}, err
	}

	behind, err := strconv.Atoi(count)
	if err != nil || behind < 0 {
		return models.UpdateCheckResult{}, fmt.Errorf("%w: unexpected commit count %q", ErrGitCommand, count)
	}

	return models.UpdateCheckResult{
		UpdateAvailable: local.Hash != remote.Hash,
		CommitsBehind:   behind,
		Branch:          branch,
		Local:           local,
		Remote:          remote,
	}, nil
}

func (g *GitInspector) state(ctx context.Context, ref string) (models.RepoState, error) {
	out, err := g.git(ctx, "log", "-1", logFormat, ref, "--")
	if err != nil {
		return models.RepoState{}, err
	}

	parts := strings.SplitN(out, "\x00", 3)
	if len(parts) != 3 || parts[0] == "" {
		return models.RepoState{}, fmt.Errorf("%w: unexpected log output for %s", ErrGitCommand, ref)
	}

	return models.RepoState{Hash: parts[0], Message: parts[1], Date: parts[2]}, nil
}

// git runs one git subcommand inside the repository and returns its
// trimmed stdout. Stderr is attached to the error.
func (g *GitInspector) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, g.gitPath, append([]string{"-C", g.repoDir}, args...)...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: git %s: %s", ErrGitCommand, strings.Join(args, " "), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
