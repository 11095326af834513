// Package migrations embeds the goose SQL migrations for the vault database.
// The evolution policy is additive only: a migration may create tables,
// add columns or add indexes, never drop or rewrite existing data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
