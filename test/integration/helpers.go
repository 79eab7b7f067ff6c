package integration

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readme-preview/internal/lint"
)

const (
	readmesDir = "../../test/testdata/readmes"
	goldenDir  = "../../test/testdata/golden"
)

// setupTestRepo copies a fixture project into a temporary git checkout whose
// origin points at remoteURL. The checkout has a single commit.
func setupTestRepo(t *testing.T, fixture, remoteURL string) string {
	t.Helper()

	tmpDir := t.TempDir()

	err := copyDir(filepath.Join(readmesDir, fixture), tmpDir)
	require.NoError(t, err, "failed to copy fixture files")

	repo, err := git.PlainInit(tmpDir, false)
	require.NoError(t, err, "failed to initialize git repo")

	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
	require.NoError(t, err, "failed to add origin remote")

	w, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	err = w.AddGlob(".")
	require.NoError(t, err, "failed to add files to git")

	_, err = w.Commit("Initial test commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to create initial commit")

	return tmpDir
}

// copyDir recursively copies a directory tree.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if strings.Contains(relPath, ".git") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, 0o750)
		}

		return copyFile(path, targetPath)
	})
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	// #nosec G304 -- test utility with paths from test setup, not user input
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	// #nosec G304 -- test utility with paths from test setup, not user input
	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

func readFixture(t *testing.T, fixture string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(readmesDir, fixture, "README.md"))
	require.NoError(t, err, "failed to read fixture")
	return string(data)
}

// normalizeCheckResult replaces nil lists so empty results compare equal to
// their JSON form.
func normalizeCheckResult(r lint.CheckResult) lint.CheckResult {
	if r.Issues == nil {
		r.Issues = []string{}
	}
	if r.StrictIssues == nil {
		r.StrictIssues = []string{}
	}
	return r
}

// verifyCheckResult compares result with the golden file, or rewrites the
// golden file when updateGolden is set.
func verifyCheckResult(t *testing.T, result lint.CheckResult, goldenPath string, updateGolden bool) {
	t.Helper()

	normalized := normalizeCheckResult(result)

	if updateGolden {
		data, err := json.MarshalIndent(normalized, "", "  ")
		require.NoError(t, err, "failed to marshal result")

		err = os.MkdirAll(filepath.Dir(goldenPath), 0o750)
		require.NoError(t, err, "failed to create golden directory")

		// #nosec G306 -- golden files are committed test data
		err = os.WriteFile(goldenPath, append(data, '\n'), 0o644)
		require.NoError(t, err, "failed to write golden file")

		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	goldenData, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "failed to read golden file: %s", goldenPath)

	var expected lint.CheckResult
	err = json.Unmarshal(goldenData, &expected)
	require.NoError(t, err, "failed to unmarshal golden file")

	assert.Equal(t, normalizeCheckResult(expected), normalized, "check result mismatch for %s", goldenPath)
}
