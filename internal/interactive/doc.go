// Package interactive walks the user through assembling a download request:
// URLs, download type, authentication, output template, and extras, ending in
// a summary table and a confirm prompt. The prompt primitives sit behind the
// Prompter interface so the sequencing logic is testable without a terminal.
package interactive
