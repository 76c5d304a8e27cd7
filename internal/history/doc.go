// Package history persists a record of past download runs in a local SQLite
// database so `vdl history` can show what was fetched, when, and with what
// outcome.
package history
