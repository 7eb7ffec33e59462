// Package migrations embeds the SQL migration files applied by goose at
// server startup and by the integration tests.
package migrations

import "embed"

// FS holds every *.sql migration. Pass it to goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
