// Package migrations embeds the goose SQL migrations of the local upload
// journal.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
