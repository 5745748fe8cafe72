package gitlog

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Args(t *testing.T) {
	assert.Nil(t, Window{}.Args())

	w := Window{
		After:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, []string{"--after=2024-01-08", "--before=2024-01-10"}, w.Args())
	assert.True(t, w.contains("2024-01-08"))
	assert.True(t, w.contains("2024-01-10"))
	assert.False(t, w.contains("2024-01-07"))
	assert.False(t, w.contains("2024-01-11"))
}

func TestNew(t *testing.T) {
	src, err := New("", "", "")
	require.NoError(t, err)
	assert.IsType(t, &ExecSource{}, src)

	src, err = New(" GoGit ", "", "/tmp")
	require.NoError(t, err)
	assert.IsType(t, &GoGitSource{}, src)

	_, err = New("svn", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestGoGitSource_Log(t *testing.T) {
	repoPath := t.TempDir()
	createRepoWithCommits(t, repoPath, []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
	})

	out, err := (&GoGitSource{Dir: repoPath}).Log(Window{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-01-03 09:00:00 +0000",
		"2024-01-01 11:00:00 +0000",
		"2024-01-01 10:00:00 +0000",
	}, strings.Split(out, "\n"))
}

func TestGoGitSource_LogWindow(t *testing.T) {
	repoPath := t.TempDir()
	east := time.FixedZone("", 9*60*60)
	createRepoWithCommits(t, repoPath, []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		// 按作者时区的日历日计算，UTC 下是 1 月 2 日
		time.Date(2024, 1, 3, 1, 0, 0, 0, east),
		time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
	})

	w := Window{
		After:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	out, err := (&GoGitSource{Dir: repoPath}).Log(w)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05 09:00:00 +0000\n2024-01-03 01:00:00 +0900", out)
}

func TestGoGitSource_Subdirectory(t *testing.T) {
	repoPath := t.TempDir()
	createRepoWithCommits(t, repoPath, []time.Time{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)})

	sub := filepath.Join(repoPath, "nested", "dir")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	out, err := (&GoGitSource{Dir: sub}).Log(Window{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 10:00:00 +0000", out)
}

func TestGoGitSource_EmptyRepo(t *testing.T) {
	repoPath := t.TempDir()
	initRepo(t, repoPath)

	out, err := (&GoGitSource{Dir: repoPath}).Log(Window{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGoGitSource_NotARepo(t *testing.T) {
	_, err := (&GoGitSource{Dir: t.TempDir()}).Log(Window{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open repo")
}

func TestExecSource_Log(t *testing.T) {
	requireGit(t)

	repoPath := t.TempDir()
	createRepoWithCommits(t, repoPath, []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
	})

	out, err := (&ExecSource{Dir: repoPath}).Log(Window{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03 09:00:00 +0000\n2024-01-01 10:00:00 +0000", out)
}

func TestExecSource_EmptyRepo(t *testing.T) {
	requireGit(t)

	repoPath := t.TempDir()
	initRepo(t, repoPath)

	out, err := (&ExecSource{Dir: repoPath}).Log(Window{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExecSource_NotARepo(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := (&ExecSource{Dir: dir}).Log(Window{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git log")
}

func TestExecSource_MissingBinary(t *testing.T) {
	_, err := (&ExecSource{Git: filepath.Join(t.TempDir(), "no-such-git")}).Log(Window{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute")
}

func TestNewLogProgressBar_NotTerminal(t *testing.T) {
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func() bool { return false }

	assert.Nil(t, newLogProgressBar())
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func createRepoWithCommits(t *testing.T, repoPath string, dates []time.Time) {
	t.Helper()

	r := initRepo(t, repoPath)
	wt, err := r.Worktree()
	require.NoError(t, err)

	for i, when := range dates {
		commitFile(t, wt, repoPath, "file.txt", strings.Repeat("x", i+1)+"\n", when)
	}
}

func initRepo(t *testing.T, repoPath string) *git.Repository {
	t.Helper()

	require.NoError(t, os.MkdirAll(repoPath, 0o755))
	r, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)
	return r
}

func commitFile(t *testing.T, wt *git.Worktree, repoPath, name, content string, when time.Time) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0o644))

	_, err := wt.Add(name)
	require.NoError(t, err)

	sig := &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  when,
	}
	_, err = wt.Commit("test commit", &git.CommitOptions{
		Author:    sig,
		Committer: sig,
	})
	require.NoError(t, err)
}
