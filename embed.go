// Package root embeds assets that must ship inside the binary.
package root

import "embed"

// Migrations holds the goose migration files so the migrate command works
// regardless of the working directory.
//
//go:embed migrations/*.sql
var Migrations embed.FS
