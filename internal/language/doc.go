// Package language normalizes user-supplied subtitle language input into the
// ISO 639-1 codes yt-dlp expects, and renders display names for summaries.
package language
