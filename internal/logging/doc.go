// Package logging wires log/slog with a key=value console handler and a JSON
// handler. Structured output goes to stderr and the configured log file so
// stdout stays reserved for relayed yt-dlp output.
package logging
