// Package migrations embeds the SQLite schema for the settings store.
package migrations

import "embed"

// FS contains the embedded golang-migrate migrations.
//
//go:embed *.sql
var FS embed.FS
