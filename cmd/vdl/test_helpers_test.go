package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	binDir      string
	configPath  string
	downloadDir string
	logDir      string
	argsFile    string
}

// setupCLITestEnv prepares an isolated HOME, a config file, and a bin
// directory (already on PATH) for stub executables.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	binDir := filepath.Join(base, "bin")
	downloadDir := filepath.Join(base, "downloads")
	logDir := filepath.Join(base, "logs")
	for _, dir := range []string{homeDir, binDir, downloadDir, logDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	env := &cliTestEnv{
		baseDir:     base,
		binDir:      binDir,
		configPath:  filepath.Join(base, "config.toml"),
		downloadDir: downloadDir,
		logDir:      logDir,
		argsFile:    filepath.Join(base, "args.txt"),
	}
	t.Setenv("ARGS_FILE", env.argsFile)

	content := fmt.Sprintf(
		"[paths]\ndownload_dir = %q\nlog_dir = %q\n\n[history]\nenabled = true\nmax_entries = 100\n",
		downloadDir, logDir,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

// writeStub installs an executable shell script under the env's bin directory.
func (e *cliTestEnv) writeStub(t *testing.T, name, script string) string {
	t.Helper()
	path := filepath.Join(e.binDir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// writeYTDLPStub installs a yt-dlp stub that answers --version and records
// every other invocation's arguments to ARGS_FILE, exiting with exitCode.
func (e *cliTestEnv) writeYTDLPStub(t *testing.T, exitCode int) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "2025.08.01"
  exit 0
fi
printf '%%s\n' "$@" > "$ARGS_FILE"
exit %d
`, exitCode)
	e.writeStub(t, "yt-dlp", script)
}

// recordedArgs returns the argument list from the stub's last invocation.
func (e *cliTestEnv) recordedArgs(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	return strings.Fields(strings.ReplaceAll(string(data), "\n", " "))
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireArgsContain(t *testing.T, args []string, want ...string) {
	t.Helper()
	joined := " " + strings.Join(args, " ") + " "
	for _, fragment := range want {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("expected args %v to contain %q", args, fragment)
		}
	}
}
