package migrations

import "embed"

// FS contains embedded SQLite migrations for ROI storage.
//
//go:embed *.sql
var FS embed.FS
