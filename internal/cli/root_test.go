package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"

	"github.com/gannonh/kata-tui/internal/tui"
)

func writePlanningDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".planning")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"PROJECT.md": "# Kata TUI\n\n## Core Value\n\nSee progress at a glance.\n",
		"ROADMAP.md": "# Roadmap\n\n### Phase 1: Foundation\n**Goal:** Parse files\n**Requirements:**\n- [x] CORE-01: Load roadmap\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func nonTerminalInput(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// terminalInput returns the follower side of a pseudo-terminal.
func terminalInput(t *testing.T) *os.File {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return tty
}

func execute(t *testing.T, in *os.File, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, nil, "--version")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "kata version "+Version) {
		t.Fatalf("expected version output, got %q", out)
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, nil, "a", "b"); err == nil {
		t.Fatalf("expected error for two positional args")
	}
}

func TestRootCmd_NonTerminalIsStartupFatal(t *testing.T) {
	dir := writePlanningDir(t)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, nonTerminalInput(t), "--config", cfg, dir)
	if !errors.Is(err, tui.ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}

func TestRootCmd_MalformedConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := execute(t, terminalInput(t), "--config", cfg, writePlanningDir(t))
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected config parse error, got %v", err)
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, nonTerminalInput(t), "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "log-level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestRootCmd_LogsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "kata.log")
	cfg := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, nonTerminalInput(t), "--config", cfg, "--log-file", logPath, "--log-level", "debug", "-p", writePlanningDir(t))
	if !errors.Is(err, tui.ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "dashboard failed") {
		t.Fatalf("expected failure to be logged, got:\n%s", b)
	}
	if strings.Contains(string(b), "planning data loaded") {
		t.Fatalf("expected terminal check before loading, got:\n%s", b)
	}
}

func TestRootCmd_NonTerminalSkipsConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := execute(t, nonTerminalInput(t), "--config", cfg, writePlanningDir(t))
	if !errors.Is(err, tui.ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal before config parsing, got %v", err)
	}
}

func TestNewLogger_DiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", "warn")
	if err != nil || logger == nil {
		t.Fatalf("expected discard logger, got %v", err)
	}
	closeLog()
}

func TestShowCmd_PrintsParsedData(t *testing.T) {
	dir := writePlanningDir(t)

	out, err := execute(t, nil, "show", dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{`"name":"Kata TUI"`, `"id":"CORE-01"`, `"status":"complete"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got:\n%s", want, out)
		}
	}

	out, err = execute(t, nil, "show", "--format", "yaml", "-p", dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "name: Kata TUI") {
		t.Fatalf("expected yaml output, got:\n%s", out)
	}
}

func TestShowCmd_MissingDirIsEmptyData(t *testing.T) {
	out, err := execute(t, nil, "show", filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("expected missing files to degrade, got %v", err)
	}
	if !strings.Contains(out, `"phases":null`) {
		t.Fatalf("expected empty roadmap, got:\n%s", out)
	}
}
