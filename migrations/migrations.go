// Package migrations embeds the SQL schema of the plant catalog.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
