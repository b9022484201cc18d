// Package migrations embeds the SQL schema migrations so binaries can run
// them without shipping files alongside the executable.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
