// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package updater

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gitFixture is a working tree cloned from a bare "origin" plus a second
// clone used to push new upstream commits.
type gitFixture struct {
	origin   string
	work     string
	upstream string
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

func commitFile(t *testing.T, dir, name, message string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(message), 0o644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-q", "-m", message)
	return runGit(t, dir, "rev-parse", "HEAD")
}

func newGitFixture(t *testing.T) gitFixture {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available")
	}

	// isolate from the user's git configuration
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "peninsula")
	t.Setenv("GIT_AUTHOR_EMAIL", "peninsula@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "peninsula")
	t.Setenv("GIT_COMMITTER_EMAIL", "peninsula@example.com")

	root := t.TempDir()
	f := gitFixture{
		origin:   filepath.Join(root, "origin.git"),
		work:     filepath.Join(root, "work"),
		upstream: filepath.Join(root, "upstream"),
	}

	require.NoError(t, os.MkdirAll(f.origin, 0o755))
	runGit(t, f.origin, "init", "-q", "--bare")
	runGit(t, f.origin, "symbolic-ref", "HEAD", "refs/heads/main")

	require.NoError(t, os.MkdirAll(f.work, 0o755))
	runGit(t, f.work, "init", "-q")
	runGit(t, f.work, "symbolic-ref", "HEAD", "refs/heads/main")
	commitFile(t, f.work, "README", "initial commit")
	runGit(t, f.work, "remote", "add", "origin", f.origin)
	runGit(t, f.work, "push", "-q", "origin", "main")

	runGit(t, root, "clone", "-q", f.origin, f.upstream)

	return f
}

func TestGitInspector_UpToDate(t *testing.T) {
	f := newGitFixture(t)
	head := runGit(t, f.work, "rev-parse", "HEAD")

	result, err := NewGitInspector(f.work, "origin").Inspect(context.Background())

	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, 0, result.CommitsBehind)
	assert.Equal(t, "main", result.Branch)
	assert.Equal(t, head, result.Local.Hash)
	assert.Equal(t, head, result.Remote.Hash)
	assert.Equal(t, "initial commit", result.Local.Message)
	assert.NotEmpty(t, result.Local.Date)
}

func TestGitInspector_Behind(t *testing.T) {
	f := newGitFixture(t)
	local := runGit(t, f.work, "rev-parse", "HEAD")

	commitFile(t, f.upstream, "CHANGELOG", "fix: first")
	remoteHead := commitFile(t, f.upstream, "VERSION", "feat: second")
	runGit(t, f.upstream, "push", "-q", "origin", "main")

	result, err := NewGitInspector(f.work, "origin").Inspect(context.Background())

	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, 2, result.CommitsBehind)
	assert.Equal(t, local, result.Local.Hash)
	assert.Equal(t, remoteHead, result.Remote.Hash)
	assert.Equal(t, "feat: second", result.Remote.Message)
}

func TestGitInspector_AheadIsStillAnUpdate(t *testing.T) {
	f := newGitFixture(t)
	commitFile(t, f.work, "LOCAL", "local hotfix")

	result, err := NewGitInspector(f.work, "origin").Inspect(context.Background())

	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable, "hashes differ")
	assert.Equal(t, 0, result.CommitsBehind)
}

func TestGitInspector_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available")
	}
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	_, err := NewGitInspector(t.TempDir(), "origin").Inspect(context.Background())

	require.ErrorIs(t, err, ErrGitCommand)
	assert.Contains(t, err.Error(), "git log")
}

func TestGitInspector_MissingRemote(t *testing.T) {
	f := newGitFixture(t)

	_, err := NewGitInspector(f.work, "upstream-mirror").Inspect(context.Background())

	require.ErrorIs(t, err, ErrGitCommand)
	assert.Contains(t, err.Error(), "fetch")
}
