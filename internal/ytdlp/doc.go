// Package ytdlp maps download requests onto yt-dlp command lines and runs the
// tool as a subprocess. All actual downloading, format negotiation, and
// site-specific handling belongs to yt-dlp; this package only constructs
// arguments, relays output, and propagates exit status.
package ytdlp
