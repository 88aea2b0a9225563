// Package migrations embeds the SQL schema migrations so the server
// binary can bring the database up to date at startup without needing
// the migration files on disk.
package migrations

import "embed"

// FS holds the embedded goose migration files.
//
//go:embed *.sql
var FS embed.FS
