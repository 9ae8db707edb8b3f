// Package sqlite provides a SQLite-backed driven.ResultStore using the
// pure Go modernc.org/sqlite driver. The schema is managed by embedded,
// numbered migrations.
package sqlite
