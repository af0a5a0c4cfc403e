// Package migrations embeds the goose SQL migrations for the users and posts tables.
package migrations

import "embed"

// FS holds every migration file, applied in version order.
//
//go:embed *.sql
var FS embed.FS
