// Package migrations embeds the SQLite schema of the run store.
package migrations

import "embed"

// FS contains the embedded migrations, applied in file name order.
//
//go:embed *.sql
var FS embed.FS
