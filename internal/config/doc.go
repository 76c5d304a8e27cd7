// Package config loads, normalizes, and validates vdl's TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/vdl/config.toml, then a project-local vdl.toml. Missing files are
// not an error; defaults apply. All path fields are tilde-expanded and made
// absolute during load so downstream packages never deal with relative paths.
package config
