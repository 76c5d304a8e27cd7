package main

import (
	"strings"
	"testing"
)

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No download history")
}

func TestHistoryListsAndClears(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	if _, _, err := runCLI(t, env, "download", testURL); err != nil {
		t.Fatalf("download: %v", err)
	}
	if _, _, err := runCLI(t, env, "download", "--audio-only", testURL); err != nil {
		t.Fatalf("download: %v", err)
	}

	out, _, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "video")
	requireContains(t, out, "audio")
	requireContains(t, out, testURL)

	out, _, err = runCLI(t, env, "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Cleared 2")

	out, _, err = runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No download history")
}

func TestHistoryLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	for i := 0; i < 3; i++ {
		if _, _, err := runCLI(t, env, "download", testURL); err != nil {
			t.Fatalf("download: %v", err)
		}
	}

	out, _, err := runCLI(t, env, "history", "--limit", "1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if got := strings.Count(out, testURL); got != 1 {
		t.Fatalf("expected 1 row, found %d URL occurrences:\n%s", got, out)
	}
}
