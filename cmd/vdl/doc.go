// Package main hosts the vdl CLI entrypoint and command graph.
//
// The Cobra-based command tree maps user-facing download options onto yt-dlp
// command lines and runs the tool as a subprocess, relaying its output and
// exit status. It centralizes configuration resolution and structured logging
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
