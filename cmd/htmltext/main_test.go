// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const listFixture = `<p>Steps:</p><ol start="3"><li>Download</li><li><p>Install</p><p>Reboot after install.</p></li></ol><ul><li>done</li></ul>`

func TestRunConvertWritesTextToStdout(t *testing.T) {
	t.Parallel()

	inputPath := writeHTMLFixture(t, listFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", inputPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	want := "Steps:\n\n3. Download\n4. Install\n\n   Reboot after install.\n\n* done\n"
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}

	if stderr.Len() != 0 {
		t.Fatalf("stderr should be empty at default log level, got: %s", stderr.String())
	}
}

func TestRunConvertFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`<ul><li>A</li><li>B</li></ul>`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.String() != "* A\n* B\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunConvertEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "empty input")
}

func TestRunConvertReportsStdinReadError(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, brokenReader{}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "read html input: read input: broken pipe")
}

func TestRunConvertWritesTextToOutputFile(t *testing.T) {
	t.Parallel()

	inputPath := writeHTMLFixture(t, `<ol><li>one</li></ol>`)
	outPath := filepath.Join(t.TempDir(), "page.txt")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", inputPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	if string(content) != "1. one\n" {
		t.Fatalf("output file content = %q", string(content))
	}
}

func TestRunConvertBulletAndTagFlags(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`<dir><li>a</li></dir><ul><li>b</li></ul>`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "--bullet=-", "--tag", "dir=unordered-list"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.String() != "- a\n\n- b\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunConvertWithConfigFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "htmltext.yaml")
	config := "bullet: \"+\"\ntags:\n  dir: ordered-list\n"
	if err := os.WriteFile(configPath, []byte(config), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdin := strings.NewReader(`<dir><li>a</li></dir><menu><li>b</li></menu>`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "--config", configPath}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.String() != "1. a\n\n+ b\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunConvertRejectsUnknownConfigKeys(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "htmltext.yaml")
	if err := os.WriteFile(configPath, []byte("marker: \"-\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "--config", configPath}, strings.NewReader("<p>x</p>"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "decode config file")
}

func TestRunConvertVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "-v"}, strings.NewReader("<li>orphan</li>"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "DEBUG")
	assertContains(t, stderr.String(), "list item without enclosing list")
	assertContains(t, stderr.String(), "converted document")

	if stdout.String() != "orphan\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunConvertWarnsOnEmptyDocument(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert"}, strings.NewReader("<script>x()</script>"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "document rendered no text")
}

func TestRunConvertInvalidTagBinding(t *testing.T) {
	t.Parallel()

	for _, binding := range []string{"dir", "dir=", "=list-item"} {
		var stdout bytes.Buffer
		var stderr bytes.Buffer
		code := runWithIO([]string{"convert", "--tag", binding}, strings.NewReader("<p>x</p>"), &stdout, &stderr)
		if code != 1 {
			t.Fatalf("binding %q: expected exit code 1, got %d", binding, code)
		}

		assertContains(t, stderr.String(), "invalid tag binding")
	}
}

func TestRunConvertUnknownHandlerKind(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "--tag", "dir=bullets"}, strings.NewReader("<p>x</p>"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "unknown handler kind")
}

func TestRunConvertContentType(t *testing.T) {
	t.Parallel()

	stdin := bytes.NewReader([]byte("<ul><li>\xcf\xf0\xe8\xe2\xe5\xf2</li></ul>"))
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"convert", "--content-type", "text/html; charset=windows-1251"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.String() != "* Привет\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunConfigStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"config"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	var config fileConfig
	if err := yaml.Unmarshal(stdout.Bytes(), &config); err != nil {
		t.Fatalf("decode printed config: %v", err)
	}

	if config.Bullet != "*" || config.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected config: %+v", config)
	}

	if config.Tags["ol"] != "ordered-list" || config.Tags["li"] != "list-item" {
		t.Fatalf("printed config misses list tags: %v", config.Tags)
	}
}

func TestRunConfigRoundTripsThroughLoad(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "htmltext.yaml")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"config", outPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	config, err := loadConfig(outPath)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if config.Tags["menu"] != "menu-list" {
		t.Fatalf("unexpected menu binding: %q", config.Tags["menu"])
	}
}

func TestRunKinds(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"kinds"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "ordered-list: ol\n")
	assertContains(t, stdout.String(), "list-item: li\n")
	assertContains(t, stdout.String(), "inline\n")
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit code = %d", code)
	}

	assertContains(t, stdout.String(), "version:  dev")
}

func TestRunReturnsErrorForMissingInputFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", filepath.Join(t.TempDir(), "missing.html")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "read html input:")
}

func TestRunReturnsErrorForMissingCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunReturnsErrorForUnknownBullet(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--bullet", "#"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "Invalid value")
}

func TestRunHelpGoesToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"convert", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	assertContains(t, stdout.String(), "--bullet")
}

func TestParseTagBindings(t *testing.T) {
	t.Parallel()

	got, err := parseTagBindings([]string{" dir = unordered-list ", "x-item=list-item"})
	if err != nil {
		t.Fatalf("parseTagBindings: %v", err)
	}

	if got["dir"] != "unordered-list" || got["x-item"] != "list-item" {
		t.Fatalf("unexpected bindings: %v", got)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := newLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	if _, err := newLogger(&bytes.Buffer{}, "none"); err != nil {
		t.Fatalf("none level: %v", err)
	}
}

func writeHTMLFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write html fixture: %v", err)
	}

	return path
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

// brokenReader fails every read.
type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
