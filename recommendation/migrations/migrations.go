package migrations

import "embed"

//go:embed *.sql
var migrationFS embed.FS

var MigrationFiles = &migrationFS
