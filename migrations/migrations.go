// Package migrations embeds the versioned schema migrations for both storage
// backends. Files are named NNN_name.sql and applied in order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
