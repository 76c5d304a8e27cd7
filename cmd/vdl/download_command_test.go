package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/history"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestDownloadBuildsVideoArgs(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	_, _, err := runCLI(t, env, "download", testURL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	args := env.recordedArgs(t)
	requireArgsContain(t, args,
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]",
		"-o", "-P", env.downloadDir,
		"--no-playlist",
		testURL,
	)
	for _, arg := range args {
		if arg == "--write-subs" || arg == "--extract-audio" {
			t.Fatalf("unexpected %q in args %v", arg, args)
		}
	}
}

func TestDownloadAudioOnly(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	if _, _, err := runCLI(t, env, "download", "--audio-only", testURL); err != nil {
		t.Fatalf("download: %v", err)
	}
	requireArgsContain(t, env.recordedArgs(t), "--extract-audio", "--audio-format", "mp3")
}

func TestDownloadCustomFormatAndSubtitles(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	_, _, err := runCLI(t, env,
		"download", "-f", "22+bestaudio", "--subs", "--sub-langs", "en,spanish", testURL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	requireArgsContain(t, env.recordedArgs(t),
		"-f", "22+bestaudio",
		"--write-subs", "--sub-langs", "en,es",
	)
}

func TestDownloadPropagatesExitCode(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 3)

	_, _, err := runCLI(t, env, "download", testURL)
	if err == nil {
		t.Fatal("expected error from failing yt-dlp")
	}
	if code := ytdlp.ExitCode(err); code != 3 {
		t.Fatalf("ExitCode = %d, want 3", code)
	}
}

func TestDownloadRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	if _, _, err := runCLI(t, env, "download", testURL); err != nil {
		t.Fatalf("download: %v", err)
	}

	store, err := history.Open(filepath.Join(env.logDir, "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	record := records[0]
	if record.Kind != "video" || record.ExitCode != 0 || record.RunID == "" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if len(record.URLs) != 1 || record.URLs[0] != testURL {
		t.Fatalf("unexpected URLs: %v", record.URLs)
	}
}

func TestDownloadMissingCookiesFileWarnsAndProceeds(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	_, stderr, err := runCLI(t, env,
		"download", "--cookies", filepath.Join(env.baseDir, "missing.txt"), testURL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	requireContains(t, stderr, "not found")

	for _, arg := range env.recordedArgs(t) {
		if arg == "--cookies" {
			t.Fatalf("expected no --cookies in args after warning")
		}
	}
}

func TestDownloadCookiesAndBrowserConflict(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	cookieFile := filepath.Join(env.baseDir, "cookies.txt")
	if err := os.WriteFile(cookieFile, []byte("# Netscape HTTP Cookie File\n"), 0o644); err != nil {
		t.Fatalf("write cookies: %v", err)
	}

	_, _, err := runCLI(t, env,
		"download", "--cookies", cookieFile, "--browser", "firefox", testURL)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	requireContains(t, err.Error(), "not both")
}

func TestDownloadMissingBinary(t *testing.T) {
	env := setupCLITestEnv(t)
	// Empty PATH: only the (empty) stub bin directory is searchable.
	t.Setenv("PATH", env.binDir)

	_, _, err := runCLI(t, env, "download", testURL)
	if err == nil {
		t.Fatal("expected missing binary error")
	}
	requireContains(t, err.Error(), "not installed")
}
