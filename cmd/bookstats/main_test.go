package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstats/internal/config"
)

func writeConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()

	cfg := config.Default()
	cfg.Input.Path = filepath.Join(dir, "books-isbns.txt")
	cfg.Output.Path = filepath.Join(dir, "answers.txt")
	cfg.Output.Console = false
	cfg.OpenLibrary.BaseURL = baseURL

	path := filepath.Join(dir, "bookstats.yaml")
	require.NoError(t, cfg.SaveConfig(path))

	return path
}

func TestRun_WritesReportFile(t *testing.T) {
	t.Setenv(configEnv, "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ISBN:0441013597": {"title": "Dune", "publishers": [{"name": "Ace"}]}}`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, srv.URL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books-isbns.txt"), []byte("0441013597\n"), 0644))

	var stdout, stderr bytes.Buffer

	code := run([]string{"-config", cfgPath, "-v"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	report, err := os.ReadFile(filepath.Join(dir, "answers.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(report), "1. How many different books are in the list?\nAnswer: \n 1\n"))
	assert.Empty(t, stdout.String(), "console output is disabled")

	// -v lowers the configured info level to debug.
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), "Normalized ISBN")
}

func TestRun_ConfigFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(configEnv, writeConfig(t, dir, "http://127.0.0.1:1"))

	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	// The input list does not exist, so the run fails after truncating the report.
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "Could not read ISBN list")

	report, err := os.ReadFile(filepath.Join(dir, "answers.txt"))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestRun_InitConfig(t *testing.T) {
	t.Setenv(configEnv, "")

	path := filepath.Join(t.TempDir(), "generated.yaml")

	var stdout, stderr bytes.Buffer

	require.Equal(t, exitOK, run([]string{"-init-config", path}, &stdout, &stderr))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRun_BadInvocations(t *testing.T) {
	t.Setenv(configEnv, "")

	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run([]string{"-bogus"}, &stdout, &stderr))
	assert.Equal(t, exitError, run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))
}
