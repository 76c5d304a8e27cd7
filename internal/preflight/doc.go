// Package preflight inspects the runtime environment before downloads run:
// external binaries, cookie discovery, and download directory health. The
// status command renders these results; the download paths use the yt-dlp
// check alone so a missing optional tool never blocks a run.
package preflight
