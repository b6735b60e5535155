// Package travel holds assets shared by the binaries of the travel booking service.
package travel

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
