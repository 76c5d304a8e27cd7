package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/cookies"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/deps"
)

// Result reports a single preflight check outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// lowDiskBytes is the free-space threshold below which the download
// directory check warns. Large format downloads routinely exceed a gigabyte.
const lowDiskBytes = 2 << 30

// CheckSystemDeps evaluates the external binaries vdl relies on.
func CheckSystemDeps(ctx context.Context, cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "yt-dlp",
			Command:     cfg.Binary(),
			Description: "Performs all downloading and format negotiation",
		},
		{
			Name:        "FFmpeg",
			Command:     "ffmpeg",
			Description: "Required for audio extraction, merging, and thumbnail embedding",
		},
		{
			Name:        "FFprobe",
			Command:     "ffprobe",
			Description: "Used by yt-dlp for media inspection",
			Optional:    true,
		},
	}

	results := deps.CheckBinaries(requirements)
	for i := range results {
		if !results[i].Available || results[i].Name != "yt-dlp" {
			continue
		}
		if version, err := deps.Version(ctx, results[i].Command); err == nil && version != "" {
			results[i].Version = version
		}
	}
	return results
}

// CheckCookies reports the cookie file discovery outcome. A missing cookie
// file passes; downloads simply run unauthenticated.
func CheckCookies(cfg *config.Config) Result {
	const name = "Cookies"

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	found := cookies.Discover(workDir, cfg.Paths.CookieDir)
	if found == "" {
		return Result{Name: name, Passed: true, Detail: "no cookie file found (downloads run unauthenticated)"}
	}
	if !cookies.LooksNetscape(found) {
		return Result{Name: name, Detail: fmt.Sprintf("%s does not look like a Netscape cookie export", found)}
	}
	return Result{Name: name, Passed: true, Detail: found}
}

// CheckDownloadDir verifies that the download target exists, is writable, and
// has breathing room left.
func CheckDownloadDir(cfg *config.Config) Result {
	const name = "Download directory"

	path := cfg.Paths.DownloadDir
	if path == "" {
		var err error
		if path, err = os.Getwd(); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("resolve working directory: %v", err)}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (free space unknown: %v)", path, err)}
	}
	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	if free < lowDiskBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (only %s free)", path, formatBytes(free))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s free)", path, formatBytes(free))}
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
