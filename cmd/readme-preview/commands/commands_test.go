package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	derrors "git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/lint"
	"git.home.luguber.info/inful/readme-preview/internal/preview"
	"git.home.luguber.info/inful/readme-preview/internal/scaffold"
)

const goodReadme = `# Widget

A small widget library for composing things.

## Install

` + "```sh\nnpm install widget\n```" + `

## Usage

Call the widget from your code and pass any options you need. The widget is
configured with sensible defaults, so most projects never need to change a
thing. Read the API reference for the full list of options and examples of
how they combine with each other.
`

func writeReadme(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.File = writeReadme(t, dir, "# Hello\n\n![logo](./logo.png)\n")
	cfg.BaseURL = "https://cdn.example/assets"

	var out bytes.Buffer
	require.NoError(t, runBuild(&Global{}, cfg, dir, &out))

	path := filepath.Join(dir, preview.BuildDir, preview.BuildFile)
	assert.Equal(t, "✅ Wrote preview to: "+path+"\n", out.String())

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), `src="https://cdn.example/assets/logo.png"`)
	assert.Contains(t, string(html), "<title>README Preview</title>")
}

func TestRunBuild_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.File = filepath.Join(dir, "NOPE.md")

	err := runBuild(&Global{}, cfg, dir, io.Discard)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
	assert.NoDirExists(t, filepath.Join(dir, preview.BuildDir))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		readme string
		strict bool
		passed bool
		output string
	}{
		{
			name:   "basic pass",
			readme: goodReadme,
			passed: true,
			output: "✅ README passed checks.\n",
		},
		{
			name:   "basic failure",
			readme: "no heading here\n",
			output: "⚠️ README issues:\n- Missing H1 title.\n",
		},
		{
			name:   "strict issues hidden without strict",
			readme: "# Title\n",
			passed: true,
			output: "✅ README passed checks.\n",
		},
		{
			name:   "strict issues reported with strict",
			readme: "# Title\n",
			strict: true,
			output: "⚠️ README issues:\n- README is very short (<400 chars).\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.File = writeReadme(t, t.TempDir(), tt.readme)
			cfg.Strict = tt.strict

			var out bytes.Buffer
			passed, err := (&CheckCmd{Format: "text"}).check(nil, cfg, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, passed)
			if tt.passed {
				assert.Equal(t, tt.output, out.String())
			} else {
				assert.True(t, strings.HasPrefix(out.String(), tt.output), out.String())
			}
		})
	}
}

func TestCheck_JSON(t *testing.T) {
	cfg := config.Defaults()
	cfg.File = writeReadme(t, t.TempDir(), "plain text\n")

	var out bytes.Buffer
	passed, err := (&CheckCmd{Format: "json"}).check(nil, cfg, &out)
	require.NoError(t, err)
	assert.False(t, passed)

	var decoded lint.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, []string{"Missing H1 title."}, decoded.Issues)
}

func TestCheck_MissingFile(t *testing.T) {
	cfg := config.Defaults()
	cfg.File = filepath.Join(t.TempDir(), "README.md")

	_, err := (&CheckCmd{Format: "text"}).check(nil, cfg, io.Discard)
	require.Error(t, err)
	assert.Equal(t, 1, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.WorkflowName = "From Config"

	var out bytes.Buffer
	require.NoError(t, (&InitCmd{Dir: dir, WorkflowOnly: true}).run(cfg, &out))

	workflow, err := os.ReadFile(filepath.Join(dir, scaffold.WorkflowPath))
	require.NoError(t, err)
	assert.Contains(t, string(workflow), "name: From Config")
	assert.Contains(t, out.String(), "✅ Wrote "+filepath.Join(dir, scaffold.WorkflowPath))
	assert.Contains(t, out.String(), "✅ Init complete.")

	out.Reset()
	require.NoError(t, (&InitCmd{Dir: dir, WorkflowOnly: true, WorkflowName: "Flag"}).run(cfg, &out))
	assert.Contains(t, out.String(), "Skipped")
	assert.Contains(t, out.String(), "Nothing to do")
}

func TestInit_ExclusiveFlags(t *testing.T) {
	err := (&InitCmd{Dir: t.TempDir(), WorkflowOnly: true, ReadmeOnly: true}).run(config.Defaults(), io.Discard)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// syncBuffer guards the output written by the serving goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestPreviewServe(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.File = writeReadme(t, dir, "# Served\n")
	cfg.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	cmd := &PreviewCmd{NoOpen: true, Metrics: true}
	done := make(chan error, 1)
	go func() {
		done <- cmd.serve(ctx, nil, cfg, RenderOptions(cfg, dir), &out)
	}()

	url := preview.URL(cfg.Port)
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url + "/") // #nosec G107 -- local test server
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "<h1")
	assert.Contains(t, body, "Served")

	resp, err := http.Get(url + preview.MetricsPath) // #nosec G107 -- local test server
	require.NoError(t, err)
	metricsBody, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), "readme_preview_render_results_total")

	assert.Contains(t, out.String(), "Preview: "+url)
	assert.Contains(t, out.String(), "Press Ctrl+C to stop.")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("preview did not shut down")
	}
}

func TestPreviewServe_MissingFile(t *testing.T) {
	cfg := config.Defaults()
	cfg.File = filepath.Join(t.TempDir(), "README.md")

	err := (&PreviewCmd{NoOpen: true}).serve(context.Background(), nil, cfg, RenderOptions(cfg, ""), io.Discard)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}
