package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/ecverify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const platformsDir = "../../internal/platforms"

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvPlatforms, "")

	var stdout, stderr bytes.Buffer
	args = append([]string{"--log-level", "error"}, args...)
	code := execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestVerify_BuiltinPlatformsPass(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "verify", "--jobs", "4")

	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "HighWire")
	assert.Contains(t, res.stdout, "9 passed, 0 failed, 0 errors, 0 skipped")
}

func TestVerify_JSONSelection(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "verify", "--format", "json", "hw", "emerald")
	require.Equal(t, 0, res.code, res.stderr)

	var doc struct {
		Passed    bool `json:"passed"`
		Platforms []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
	assert.True(t, doc.Passed)
	require.Len(t, doc.Platforms, 2)
	assert.Equal(t, "emerald", doc.Platforms[0].Name)
	assert.Equal(t, "hw", doc.Platforms[1].Name)
}

func TestVerify_MismatchFailsRun(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "emerald", "testdata")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emerald.csv"),
		[]byte("in-url;out-rtype;out-mime;out-unitid;out-title_id\nhttp://www.emeraldinsight.com/series/ail;BOOK;MISC;ail;ail\n"), 0644))
	htmlPath := filepath.Join(root, "out", "report.html")

	res := runCLI(t, "", "--platforms-dir", root, "verify", "--html-report", htmlPath)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "FAILED emerald")
	assert.Contains(t, res.stdout, "diff rtype: BOOK{+SERIE+}")
	assert.NotContains(t, res.stderr, "Error:")
	assert.FileExists(t, htmlPath)
}

func TestVerify_InvalidFlags(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "verify", "--jobs", "1000")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error:")

	res = runCLI(t, "", "--platforms-dir", platformsDir, "verify", "--format", "xml")
	assert.Equal(t, 1, res.code)

	res = runCLI(t, "", "--config", "missing.yaml", "verify")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "config file does not exist")
}

func TestList_JSON(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "list", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var infos []struct {
		Name       string   `json:"name"`
		Label      string   `json:"label"`
		Domains    []string `json:"domains"`
		Fixtures   int      `json:"fixtures"`
		Registered bool     `json:"registered"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &infos))
	require.Len(t, infos, 9)
	for _, info := range infos {
		assert.True(t, info.Registered, info.Name)
		assert.Positive(t, info.Fixtures, info.Name)
	}
	assert.Equal(t, "HighWire", infos[3].Label)
}

func TestList_Table(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "list", "oso")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Oxford Scholarship Online")
	assert.NotContains(t, res.stdout, "HighWire")
}

func decodeLines(t *testing.T, out string) []classifyOutput {
	t.Helper()
	var lines []classifyOutput
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var line classifyOutput
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestClassify_Platform(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "classify", "hw", "--size", "5000",
		"http://jco.ascopubs.org/content/6/4/458.full")
	require.Equal(t, 0, res.code, res.stderr)

	lines := decodeLines(t, res.stdout)
	require.Len(t, lines, 1)
	assert.Equal(t, "hw", lines[0].Platform)
	assert.Equal(t, "ARTICLE", lines[0].Result["rtype"])
	assert.Equal(t, false, lines[0].Result["_granted"])
}

func TestClassify_AutoFromStdin(t *testing.T) {
	stdin := "# comment\n" +
		"http://www.emeraldinsight.com/series/ail\n" +
		"\n" +
		"http://jco.ascopubs.org/content/6/4/458.full\n" +
		"http://unknown.example.com/page\n"
	res := runCLI(t, stdin, "--platforms-dir", platformsDir, "classify", "auto")

	assert.Equal(t, 1, res.code)
	lines := decodeLines(t, res.stdout)
	require.Len(t, lines, 3)
	assert.Equal(t, "emerald", lines[0].Platform)
	assert.Equal(t, "BOOKSERIE", lines[0].Result["rtype"])
	assert.Equal(t, "hw", lines[1].Platform)
	assert.Equal(t, "jco.ascopubs.org/6/4/458", lines[1].Result["unitid"])
	assert.Empty(t, lines[2].Platform)
	assert.Contains(t, lines[2].Error, "no platform serves host")
}

func TestClassify_Debug(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "classify", "--debug", "seg", "http://library.seg.org/toc/gpysa7/81/3")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "Analyzing")
}

func TestClassify_UnknownPlatform(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", platformsDir, "classify", "nope", "http://x.org/")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown platform")
}

func TestWatch_MissingPlatform(t *testing.T) {
	res := runCLI(t, "", "--platforms-dir", t.TempDir(), "watch", "nope")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "ERROR")
	assert.Contains(t, res.stderr, "failed to watch")
}
