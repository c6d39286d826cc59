// Package migrations embeds the SQL schema for each supported database driver.
package migrations

import "embed"

//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS
