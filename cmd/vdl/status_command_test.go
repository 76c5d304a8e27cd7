package main

import (
	"testing"
)

func TestStatusAllPresent(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)
	env.writeStub(t, "ffmpeg", "#!/bin/sh\nexit 0\n")
	env.writeStub(t, "ffprobe", "#!/bin/sh\nexit 0\n")

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "yt-dlp")
	requireContains(t, out, "2025.08.01")
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "Download directory")
}

func TestStatusMissingRequiredFails(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PATH", env.binDir)

	out, _, err := runCLI(t, env, "status")
	if err == nil {
		t.Fatal("expected error when required dependencies are missing")
	}
	requireContains(t, out, "missing")
}

func TestVersionReportsBoth(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	out, _, err := runCLI(t, env, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "vdl")
	requireContains(t, out, "2025.08.01")
}

func TestFormatsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeYTDLPStub(t, 0)

	out, _, err := runCLI(t, env, "formats", testURL)
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	requireContains(t, out, "Available formats for "+testURL)
	requireArgsContain(t, env.recordedArgs(t), "-F", testURL)
}
