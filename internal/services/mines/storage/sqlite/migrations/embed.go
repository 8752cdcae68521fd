package migrations

import "embed"

// FS contains embedded SQLite migrations for the move audit log.
//
//go:embed *.sql
var FS embed.FS
