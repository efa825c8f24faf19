// Package migrations embeds the SQL schema migrations shipped with the
// binary, one directory per storage backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
